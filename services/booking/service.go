package booking

import (
	"context"
	"io"
	"net/url"
	"time"

	"sportello/models"
	"sportello/services/notify"
	"sportello/services/records"

	"go.uber.org/zap"
)

// FormConfig declares one submission endpoint: the fields it requires and
// whether the response should redirect the visitor to the hosted checkout.
type FormConfig struct {
	RequiredFields []string
	Checkout       bool
}

// Forms maps form identifiers to their configuration.
var Forms = map[string]FormConfig{
	"contact": {
		RequiredFields: []string{"name", "email", "message"},
	},
	"appointments": {
		RequiredFields: []string{"service", "name", "email", "telephone", "date"},
		Checkout:       true,
	},
	"documents": {
		RequiredFields: []string{"name", "email"},
	},
}

// Attachment is an optional file sent with a multipart submission.
type Attachment struct {
	Filename string
	Content  io.Reader
}

// --- Interfaces ---

type SubmissionService interface {
	Submit(ctx context.Context, form string, sub models.Submission, att *Attachment) (*models.SubmissionResult, error)
}

// --- SubmissionService implementation ---

// DefaultSubmissionService handles form submissions: honeypot filtering,
// required-field checks, reference generation, record keeping and the
// best-effort operator notification. Mailer and Recorder may be nil when the
// matching provider is not configured.
type DefaultSubmissionService struct {
	Mailer          notify.Mailer
	Recorder        records.Recorder
	CheckoutBaseURL string
	Logger          *zap.Logger
}

func NewSubmissionService(mailer notify.Mailer, recorder records.Recorder, checkoutBaseURL string, logger *zap.Logger) *DefaultSubmissionService {
	return &DefaultSubmissionService{
		Mailer:          mailer,
		Recorder:        recorder,
		CheckoutBaseURL: checkoutBaseURL,
		Logger:          logger,
	}
}

func (s *DefaultSubmissionService) Submit(ctx context.Context, form string, sub models.Submission, att *Attachment) (*models.SubmissionResult, error) {
	cfg, ok := Forms[form]
	if !ok {
		return nil, ErrUnknownForm
	}

	// A populated honeypot means a bot: answer as if accepted, do nothing.
	if sub.Website != "" {
		s.Logger.Debug("honeypot triggered, dropping submission", zap.String("form", form))
		return &models.SubmissionResult{BookingID: NewReference()}, nil
	}

	for _, field := range cfg.RequiredFields {
		if sub.Field(field) == "" {
			return nil, &MissingFieldError{Field: field}
		}
	}

	rec := models.BookingRecord{
		BookingID: NewReference(),
		Service:   sub.Service,
		Name:      sub.Name,
		Email:     sub.Email,
		Telephone: sub.Telephone,
		Message:   sub.Message,
		Date:      sub.Date,
		Locale:    sub.Locale,
		CreatedAt: time.Now(),
	}

	// Record keeping and notification are both best-effort. An attachment that
	// uploads before a failed append is left in place, there is no rollback.
	if s.Recorder != nil {
		if att != nil {
			link, err := s.Recorder.SaveAttachment(ctx, att.Filename, att.Content)
			if err != nil {
				s.Logger.Error("attachment upload failed", zap.String("booking", rec.BookingID), zap.Error(err))
			} else {
				rec.AttachmentURL = link
			}
		}
		if err := s.Recorder.AppendBooking(ctx, rec); err != nil {
			s.Logger.Error("booking record append failed", zap.String("booking", rec.BookingID), zap.Error(err))
		}
	}
	if s.Mailer != nil {
		if err := s.Mailer.SendBookingNotification(ctx, rec); err != nil {
			s.Logger.Error("booking notification failed", zap.String("booking", rec.BookingID), zap.Error(err))
		}
	}

	result := &models.SubmissionResult{BookingID: rec.BookingID}
	if cfg.Checkout && s.CheckoutBaseURL != "" {
		result.RedirectURL = s.checkoutURL(rec)
	}
	return result, nil
}

// checkoutURL builds the hosted checkout link with the booking reference and
// email pre-filled as query parameters.
func (s *DefaultSubmissionService) checkoutURL(rec models.BookingRecord) string {
	u, err := url.Parse(s.CheckoutBaseURL)
	if err != nil {
		s.Logger.Error("invalid checkout base URL", zap.String("url", s.CheckoutBaseURL), zap.Error(err))
		return ""
	}
	q := u.Query()
	q.Set("client_reference_id", rec.BookingID)
	if rec.Email != "" {
		q.Set("prefilled_email", rec.Email)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
