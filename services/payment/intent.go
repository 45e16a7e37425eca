package payment

import (
	"context"
	"errors"
	"fmt"

	"sportello/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// --- Interfaces ---

// IntentCreator is the single outbound call to the payment processor.
type IntentCreator interface {
	CreateIntent(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// IntentService validates a service/option choice against the catalog and
// requests a payment intent from the processor.
type IntentService interface {
	CreateIntent(ctx context.Context, serviceID string, req models.IntentRequest) (string, error)
}

// --- Stripe-backed creator ---

type StripeIntentCreator struct{}

func (StripeIntentCreator) CreateIntent(_ context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.New(params)
}

// --- IntentService implementation ---

type DefaultIntentService struct {
	Creator IntentCreator
	Logger  *zap.Logger
}

func NewIntentService(creator IntentCreator, logger *zap.Logger) *DefaultIntentService {
	return &DefaultIntentService{
		Creator: creator,
		Logger:  logger,
	}
}

// CreateIntent looks up the price for the requested option, attaches the
// customer metadata, and asks the processor for a payment intent. It returns
// the client secret for the front-end widget.
//
// Repeated calls with the same booking reference create distinct intents: the
// reference is reconciliation metadata, not an idempotency key.
func (s *DefaultIntentService) CreateIntent(ctx context.Context, serviceID string, req models.IntentRequest) (string, error) {
	cfg, ok := Catalog[serviceID]
	if !ok {
		return "", ErrUnknownService
	}
	opt, ok := cfg.Options[req.Option]
	if !ok {
		return "", ErrUnknownOption
	}
	for _, field := range cfg.RequiredFields {
		if req.Field(field) == "" {
			return "", &MissingFieldError{Field: field}
		}
	}

	if cfg.AllowQuantity && req.Quantity > MaxQuantity {
		return "", ErrQuantityTooLarge
	}
	amount := opt.Amount
	if cfg.AllowQuantity && req.Quantity > 1 {
		amount *= int64(req.Quantity)
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(Currency),
		Description: stripe.String(opt.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String(string(stripe.PaymentIntentAutomaticPaymentMethodsAllowRedirectsAlways)),
		},
	}
	// Everything below is opaque reconciliation metadata for the dashboard.
	params.AddMetadata("service", serviceID)
	params.AddMetadata("option", req.Option)
	if req.Name != "" {
		params.AddMetadata("name", req.Name)
	}
	if req.Email != "" {
		params.AddMetadata("email", req.Email)
		params.ReceiptEmail = stripe.String(req.Email)
	}
	if req.Telephone != "" {
		params.AddMetadata("telephone", req.Telephone)
	}
	if req.Locale != "" {
		params.AddMetadata("locale", req.Locale)
	}
	if req.BookingRef != "" {
		params.AddMetadata("bookingRef", req.BookingRef)
	}

	pi, err := s.Creator.CreateIntent(ctx, params)
	if err != nil {
		s.Logger.Error("payment intent creation failed",
			zap.String("service", serviceID),
			zap.String("option", req.Option),
			zap.Error(err))
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	if pi.ClientSecret == "" {
		s.Logger.Error("payment intent has no client secret",
			zap.String("service", serviceID),
			zap.String("intent", pi.ID))
		return "", errors.New("payment intent has no client secret")
	}
	return pi.ClientSecret, nil
}
