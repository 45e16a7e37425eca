package models

// IntentRequest is the body accepted by the payment intent endpoints.
// Customer fields are forwarded to the processor as opaque metadata for later
// reconciliation; they never drive any logic here.
// Option keys into the service's price table; Quantity is only honoured by
// quantity-priced services; BookingRef is an advisory reference, not a dedupe
// key.
type IntentRequest struct {
	Option     string `json:"option"`
	Quantity   int    `json:"quantity,omitempty"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Telephone  string `json:"telephone,omitempty"`
	Locale     string `json:"locale,omitempty"`
	BookingRef string `json:"bookingRef,omitempty"`
}

// Field returns the value of a customer field by its wire name.
func (r IntentRequest) Field(name string) string {
	switch name {
	case "name":
		return r.Name
	case "email":
		return r.Email
	case "telephone":
		return r.Telephone
	default:
		return ""
	}
}

// IntentResponse carries the client secret the front-end payment widget needs.
type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
