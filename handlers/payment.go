package handlers

import (
	"errors"
	"net/http"

	"sportello/i18n"
	"sportello/models"
	"sportello/services/payment"
	"sportello/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment intent endpoints. One handler covers
// every service in the catalog; the :service route parameter selects the
// per-service configuration.
type PaymentHandler struct {
	service payment.IntentService
	logger  *zap.Logger
}

func NewPaymentHandler(service payment.IntentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger,
	}
}

// CreateIntentHandler accepts the option choice plus optional customer
// metadata and responds with the client secret for the front-end widget.
func (h *PaymentHandler) CreateIntentHandler(c *gin.Context) {
	serviceID := c.Param("service")

	var req models.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, i18n.Message(c, "common.invalid_input"), err.Error())
		return
	}

	secret, err := h.service.CreateIntent(c.Request.Context(), serviceID, req)
	if err != nil {
		var mf *payment.MissingFieldError
		switch {
		case errors.Is(err, payment.ErrUnknownService):
			utils.JSONError(c, http.StatusBadRequest, i18n.Message(c, "payment.unknown_service"), serviceID)
		case errors.Is(err, payment.ErrUnknownOption):
			utils.JSONError(c, http.StatusBadRequest, i18n.Message(c, "payment.unknown_option"), req.Option)
		case errors.Is(err, payment.ErrQuantityTooLarge):
			utils.JSONError(c, http.StatusBadRequest, i18n.Message(c, "payment.invalid_quantity"), "")
		case errors.As(err, &mf):
			utils.JSONError(c, http.StatusBadRequest, i18n.Message(c, "payment.missing_field", map[string]any{"Field": mf.Field}), "")
		default:
			// Processor details stay in the logs, never in the response.
			h.logger.Error("payment intent request failed", zap.String("service", serviceID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, i18n.Message(c, "payment.failed"), "")
		}
		return
	}

	c.JSON(http.StatusOK, models.IntentResponse{ClientSecret: secret})
}
