// Package locales holds the translation maps for the public API surface.
package locales

// MessagesEn contains English translations.
var MessagesEn = map[string]string{
	// Payment intent endpoints
	"payment.unknown_service":  "Unknown service",
	"payment.unknown_option":   "Unknown or missing option",
	"payment.missing_field":    "Missing required field: {{.Field}}",
	"payment.invalid_quantity": "Quantity out of range",
	"payment.failed":           "We could not start the payment. Please try again later.",

	// Booking / form submission endpoints
	"booking.rate_limited":  "Too many submissions. Please try again in a few minutes.",
	"booking.missing_field": "Missing required field: {{.Field}}",
	"booking.received":      "Thank you, your request has been received.",

	// Generic
	"common.internal_error": "Something went wrong. Please try again later.",
	"common.invalid_input":  "Invalid input",

	// Notification email
	"email.booking.subject": "New booking {{.Reference}}",
}
