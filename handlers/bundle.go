package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the wired handlers for route registration.
type HandlerBundle struct {
	// Payment endpoints.
	CreateIntentHandler gin.HandlerFunc

	// Form/booking endpoints.
	SubmitFormHandler gin.HandlerFunc

	// Webhook endpoints.
	StripeWebhookHandler gin.HandlerFunc
}
