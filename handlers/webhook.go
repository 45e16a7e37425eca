package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"sportello/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// maxWebhookBody caps the payload read from the processor.
const maxWebhookBody = 65536

// WebhookHandler receives Stripe events, verifies their signature and logs
// the recognized ones. There is no fulfillment trigger behind it: Stripe owns
// the retry policy, we only acknowledge.
type WebhookHandler struct {
	secret string
	logger *zap.Logger
}

func NewWebhookHandler(secret string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		secret: secret,
		logger: logger,
	}
}

func (h *WebhookHandler) StripeWebhookHandler(c *gin.Context) {
	if h.secret == "" {
		h.logger.Error("stripe webhook secret is not configured")
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read request body", "")
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.secret)
	if err != nil {
		h.logger.Warn("webhook signature verification failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid signature", "")
		return
	}

	switch string(event.Type) {
	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			h.logger.Error("could not parse payment intent event", zap.Error(err))
			utils.JSONError(c, http.StatusBadRequest, "malformed event payload", "")
			return
		}
		h.logger.Info("payment succeeded",
			zap.String("intent", pi.ID),
			zap.Int64("amount", pi.Amount),
			zap.String("currency", string(pi.Currency)),
			zap.String("service", pi.Metadata["service"]),
			zap.String("bookingRef", pi.Metadata["bookingRef"]))
	case "checkout.session.completed":
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			h.logger.Error("could not parse checkout session event", zap.Error(err))
			utils.JSONError(c, http.StatusBadRequest, "malformed event payload", "")
			return
		}
		h.logger.Info("checkout completed",
			zap.String("session", cs.ID),
			zap.Int64("amount", cs.AmountTotal),
			zap.String("bookingRef", cs.ClientReferenceID))
	default:
		h.logger.Info("unhandled webhook event", zap.String("type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
