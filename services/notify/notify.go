package notify

import (
	"context"
	"fmt"

	"sportello/i18n"
	"sportello/models"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Mailer sends the operator-facing booking summary. Sending is best-effort
// everywhere it is used: a failed notification never fails a booking.
type Mailer interface {
	SendBookingNotification(ctx context.Context, rec models.BookingRecord) error
}

// ResendMailer is the production implementation, backed by the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
	to     string
	logger *zap.Logger
}

func NewResendMailer(apiKey, from, to string, logger *zap.Logger) (*ResendMailer, error) {
	if apiKey == "" || from == "" || to == "" {
		return nil, fmt.Errorf("resend mailer initialization error: missing api key, sender or recipient")
	}
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
		logger: logger,
	}, nil
}

func (m *ResendMailer) SendBookingNotification(ctx context.Context, rec models.BookingRecord) error {
	localizer := i18n.GetLocalizer(rec.Locale)
	subject := i18n.T(localizer, "email.booking.subject", map[string]any{"Reference": rec.BookingID})

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: subject,
		Text:    renderSummary(rec),
	}
	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send booking notification: %w", err)
	}
	m.logger.Info("booking notification sent",
		zap.String("booking", rec.BookingID),
		zap.String("email", sent.Id))
	return nil
}

// renderSummary formats the plain-text body the operators read.
func renderSummary(rec models.BookingRecord) string {
	body := fmt.Sprintf(
		"Booking: %s\nService: %s\nName: %s\nEmail: %s\nTelephone: %s\nDate: %s\nLocale: %s\nReceived: %s\n",
		rec.BookingID, rec.Service, rec.Name, rec.Email, rec.Telephone, rec.Date, rec.Locale,
		rec.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	if rec.Message != "" {
		body += "\n" + rec.Message + "\n"
	}
	if rec.AttachmentURL != "" {
		body += "\nAttachment: " + rec.AttachmentURL + "\n"
	}
	return body
}
