package models

import "time"

// Submission is a form/booking submission. It binds from JSON or multipart
// form bodies. Website is the honeypot field: legitimate users never fill it,
// a non-empty value signals a bot. Date uses "YYYY-MM-DD".
type Submission struct {
	Service   string `json:"service" form:"service"`
	Name      string `json:"name" form:"name"`
	Email     string `json:"email" form:"email"`
	Telephone string `json:"telephone" form:"telephone"`
	Message   string `json:"message" form:"message"`
	Date      string `json:"date" form:"date"`
	Locale    string `json:"locale" form:"locale"`
	Website   string `json:"website" form:"website"`
}

// Field returns the value of a submission field by its wire name.
func (s Submission) Field(name string) string {
	switch name {
	case "service":
		return s.Service
	case "name":
		return s.Name
	case "email":
		return s.Email
	case "telephone":
		return s.Telephone
	case "message":
		return s.Message
	case "date":
		return s.Date
	default:
		return ""
	}
}

// SubmissionResult is what a form endpoint reports back to the front-end.
type SubmissionResult struct {
	BookingID   string `json:"bookingId,omitempty"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	Message     string `json:"message,omitempty"`
}

// BookingRecord is the row appended to the bookings spreadsheet.
type BookingRecord struct {
	BookingID     string
	Service       string
	Name          string
	Email         string
	Telephone     string
	Message       string
	Date          string
	Locale        string
	AttachmentURL string
	CreatedAt     time.Time
}
