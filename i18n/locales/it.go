package locales

// MessagesIt contains Italian translations.
var MessagesIt = map[string]string{
	// Payment intent endpoints
	"payment.unknown_service":  "Servizio sconosciuto",
	"payment.unknown_option":   "Opzione mancante o sconosciuta",
	"payment.missing_field":    "Campo obbligatorio mancante: {{.Field}}",
	"payment.invalid_quantity": "Quantità non valida",
	"payment.failed":           "Non è stato possibile avviare il pagamento. Riprova più tardi.",

	// Booking / form submission endpoints
	"booking.rate_limited":  "Troppe richieste. Riprova tra qualche minuto.",
	"booking.missing_field": "Campo obbligatorio mancante: {{.Field}}",
	"booking.received":      "Grazie, la tua richiesta è stata ricevuta.",

	// Generic
	"common.internal_error": "Qualcosa è andato storto. Riprova più tardi.",
	"common.invalid_input":  "Dati non validi",

	// Notification email
	"email.booking.subject": "Nuova prenotazione {{.Reference}}",
}
