package booking

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"

	"sportello/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMailer struct {
	sent []models.BookingRecord
	err  error
}

func (f *fakeMailer) SendBookingNotification(_ context.Context, rec models.BookingRecord) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, rec)
	return nil
}

type fakeRecorder struct {
	attachments []string
	appended    []models.BookingRecord
	saveErr     error
	appendErr   error
}

func (f *fakeRecorder) SaveAttachment(_ context.Context, filename string, _ io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.attachments = append(f.attachments, filename)
	return "https://drive.example.com/" + filename, nil
}

func (f *fakeRecorder) AppendBooking(_ context.Context, rec models.BookingRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, rec)
	return nil
}

func validContact() models.Submission {
	return models.Submission{
		Name:    "Maria Rossi",
		Email:   "maria@example.com",
		Message: "I need help registering with a GP.",
		Locale:  "it",
	}
}

func TestSubmitContact(t *testing.T) {
	mailer := &fakeMailer{}
	recorder := &fakeRecorder{}
	svc := NewSubmissionService(mailer, recorder, "", zap.NewNop())

	result, err := svc.Submit(context.Background(), "contact", validContact(), nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.BookingID, "SP-"))
	assert.Empty(t, result.RedirectURL)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, result.BookingID, mailer.sent[0].BookingID)
	require.Len(t, recorder.appended, 1)
	assert.Equal(t, "maria@example.com", recorder.appended[0].Email)
	assert.False(t, recorder.appended[0].CreatedAt.IsZero())
}

func TestSubmitHoneypot(t *testing.T) {
	mailer := &fakeMailer{}
	recorder := &fakeRecorder{}
	svc := NewSubmissionService(mailer, recorder, "", zap.NewNop())

	sub := validContact()
	sub.Website = "https://spam.example.com"

	result, err := svc.Submit(context.Background(), "contact", sub, nil)
	require.NoError(t, err)

	// Success-shaped response, but no side effects at all.
	assert.NotEmpty(t, result.BookingID)
	assert.Empty(t, mailer.sent)
	assert.Empty(t, recorder.appended)
	assert.Empty(t, recorder.attachments)
}

func TestSubmitMissingFields(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewSubmissionService(mailer, nil, "", zap.NewNop())

	sub := validContact()
	sub.Email = ""

	_, err := svc.Submit(context.Background(), "contact", sub, nil)
	var mf *MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "email", mf.Field)
	assert.Empty(t, mailer.sent)
	assert.True(t, IsInputError(err))
}

func TestSubmitUnknownForm(t *testing.T) {
	svc := NewSubmissionService(nil, nil, "", zap.NewNop())

	_, err := svc.Submit(context.Background(), "no-such-form", validContact(), nil)
	assert.ErrorIs(t, err, ErrUnknownForm)
	assert.True(t, IsInputError(err))
}

func TestSubmitCheckoutRedirect(t *testing.T) {
	svc := NewSubmissionService(nil, nil, "https://buy.stripe.com/test_abc123", zap.NewNop())

	sub := models.Submission{
		Service:   "appointments",
		Name:      "Maria Rossi",
		Email:     "maria@example.com",
		Telephone: "+447700900123",
		Date:      "2026-09-15",
	}
	result, err := svc.Submit(context.Background(), "appointments", sub, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result.RedirectURL)

	u, err := url.Parse(result.RedirectURL)
	require.NoError(t, err)
	assert.Equal(t, "buy.stripe.com", u.Host)
	assert.Equal(t, result.BookingID, u.Query().Get("client_reference_id"))
	assert.Equal(t, "maria@example.com", u.Query().Get("prefilled_email"))
}

func TestSubmitNotificationFailureIsSwallowed(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("resend: 503")}
	recorder := &fakeRecorder{}
	svc := NewSubmissionService(mailer, recorder, "", zap.NewNop())

	result, err := svc.Submit(context.Background(), "contact", validContact(), nil)
	require.NoError(t, err, "notification failures must not fail the submission")
	assert.NotEmpty(t, result.BookingID)
	assert.Len(t, recorder.appended, 1)
}

func TestSubmitRecordFailuresDoNotRollBack(t *testing.T) {
	recorder := &fakeRecorder{appendErr: errors.New("sheets: quota exceeded")}
	svc := NewSubmissionService(nil, recorder, "", zap.NewNop())

	att := &Attachment{Filename: "passport.pdf", Content: strings.NewReader("pdf")}
	result, err := svc.Submit(context.Background(), "documents", models.Submission{
		Name:  "Maria Rossi",
		Email: "maria@example.com",
	}, att)
	require.NoError(t, err)
	assert.NotEmpty(t, result.BookingID)
	// The attachment stays uploaded even though the append failed.
	assert.Equal(t, []string{"passport.pdf"}, recorder.attachments)
}

func TestSubmitAttachment(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewSubmissionService(nil, recorder, "", zap.NewNop())

	att := &Attachment{Filename: "contract.pdf", Content: strings.NewReader("pdf")}
	_, err := svc.Submit(context.Background(), "documents", models.Submission{
		Name:  "Maria Rossi",
		Email: "maria@example.com",
	}, att)
	require.NoError(t, err)

	require.Len(t, recorder.appended, 1)
	assert.Equal(t, "https://drive.example.com/contract.pdf", recorder.appended[0].AttachmentURL)
}

func TestNewReference(t *testing.T) {
	a := NewReference()
	b := NewReference()

	assert.True(t, strings.HasPrefix(a, "SP-"))
	assert.Len(t, a, len("SP-")+8)
	assert.NotEqual(t, a, b)
	assert.Equal(t, strings.ToUpper(a), a)
}
