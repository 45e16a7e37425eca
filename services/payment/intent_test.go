package payment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"sportello/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// fakeCreator records intent requests and fabricates distinct intents.
type fakeCreator struct {
	calls []*stripe.PaymentIntentParams
	err   error
	empty bool
}

func (f *fakeCreator) CreateIntent(_ context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}
	n := len(f.calls)
	pi := &stripe.PaymentIntent{ID: fmt.Sprintf("pi_%d", n)}
	if !f.empty {
		pi.ClientSecret = fmt.Sprintf("pi_%d_secret", n)
	}
	return pi, nil
}

func newTestService(creator *fakeCreator) *DefaultIntentService {
	return NewIntentService(creator, zap.NewNop())
}

func TestCreateIntentPriceLookup(t *testing.T) {
	creator := &fakeCreator{}
	svc := newTestService(creator)

	secret, err := svc.CreateIntent(context.Background(), "appointments", models.IntentRequest{
		Option:    "ap-2",
		Name:      "Maria Rossi",
		Telephone: "+447700900123",
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", secret)

	require.Len(t, creator.calls, 1)
	params := creator.calls[0]
	assert.Equal(t, int64(7800), *params.Amount)
	assert.Equal(t, "gbp", *params.Currency)
	assert.Equal(t, "Consultation (60 minutes)", *params.Description)
	assert.True(t, *params.AutomaticPaymentMethods.Enabled)
	assert.Equal(t, "always", *params.AutomaticPaymentMethods.AllowRedirects)
}

func TestCreateIntentUnknownOption(t *testing.T) {
	creator := &fakeCreator{}
	svc := newTestService(creator)

	_, err := svc.CreateIntent(context.Background(), "appointments", models.IntentRequest{
		Option:    "ap-99",
		Name:      "Maria Rossi",
		Telephone: "+447700900123",
	})
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Empty(t, creator.calls, "no processor call for unknown options")

	_, err = svc.CreateIntent(context.Background(), "appointments", models.IntentRequest{
		Name:      "Maria Rossi",
		Telephone: "+447700900123",
	})
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Empty(t, creator.calls)
}

func TestCreateIntentUnknownService(t *testing.T) {
	creator := &fakeCreator{}
	svc := newTestService(creator)

	_, err := svc.CreateIntent(context.Background(), "no-such-service", models.IntentRequest{Option: "ap-2"})
	assert.ErrorIs(t, err, ErrUnknownService)
	assert.Empty(t, creator.calls)
}

func TestCreateIntentRequiredFields(t *testing.T) {
	creator := &fakeCreator{}
	svc := newTestService(creator)

	_, err := svc.CreateIntent(context.Background(), "appointments", models.IntentRequest{
		Option: "ap-1",
		Name:   "Maria Rossi",
		// telephone missing
	})
	var mf *MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "telephone", mf.Field)
	assert.Empty(t, creator.calls)
	assert.True(t, IsInputError(err))
}

func TestCreateIntentQuantityScaling(t *testing.T) {
	creator := &fakeCreator{}
	svc := newTestService(creator)

	_, err := svc.CreateIntent(context.Background(), "translations", models.IntentRequest{
		Option:   "doc-standard",
		Quantity: 3,
		Name:     "Maria Rossi",
		Email:    "maria@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3*3500), *creator.calls[0].Amount)

	// Services without quantity pricing ignore the field.
	_, err = svc.CreateIntent(context.Background(), "appointments", models.IntentRequest{
		Option:    "ap-1",
		Quantity:  4,
		Name:      "Maria Rossi",
		Telephone: "+447700900123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4500), *creator.calls[1].Amount)
}

func TestCreateIntentQuantityBound(t *testing.T) {
	creator := &fakeCreator{}
	svc := newTestService(creator)

	_, err := svc.CreateIntent(context.Background(), "translations", models.IntentRequest{
		Option:   "doc-standard",
		Quantity: 1000000,
		Name:     "Maria Rossi",
		Email:    "maria@example.com",
	})
	assert.ErrorIs(t, err, ErrQuantityTooLarge)
	assert.True(t, IsInputError(err))
	assert.Empty(t, creator.calls, "no processor call for out-of-range quantities")

	// The bound itself is still priceable.
	_, err = svc.CreateIntent(context.Background(), "translations", models.IntentRequest{
		Option:   "doc-standard",
		Quantity: MaxQuantity,
		Name:     "Maria Rossi",
		Email:    "maria@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(MaxQuantity*3500), *creator.calls[0].Amount)
}

func TestCreateIntentMetadata(t *testing.T) {
	creator := &fakeCreator{}
	svc := newTestService(creator)

	_, err := svc.CreateIntent(context.Background(), "translations", models.IntentRequest{
		Option:     "doc-sworn",
		Name:       "Maria Rossi",
		Email:      "maria@example.com",
		Telephone:  "+447700900123",
		Locale:     "it",
		BookingRef: "SP-1A2B3C4D",
	})
	require.NoError(t, err)

	params := creator.calls[0]
	assert.Equal(t, "translations", params.Metadata["service"])
	assert.Equal(t, "doc-sworn", params.Metadata["option"])
	assert.Equal(t, "Maria Rossi", params.Metadata["name"])
	assert.Equal(t, "maria@example.com", params.Metadata["email"])
	assert.Equal(t, "+447700900123", params.Metadata["telephone"])
	assert.Equal(t, "it", params.Metadata["locale"])
	assert.Equal(t, "SP-1A2B3C4D", params.Metadata["bookingRef"])
	assert.Equal(t, "maria@example.com", *params.ReceiptEmail)
}

// TestCreateIntentNoDedupe documents current behavior: identical requests with
// the same booking reference still create two distinct intents.
func TestCreateIntentNoDedupe(t *testing.T) {
	creator := &fakeCreator{}
	svc := newTestService(creator)

	req := models.IntentRequest{
		Option:     "ap-2",
		Name:       "Maria Rossi",
		Telephone:  "+447700900123",
		BookingRef: "SP-1A2B3C4D",
	}
	first, err := svc.CreateIntent(context.Background(), "appointments", req)
	require.NoError(t, err)
	second, err := svc.CreateIntent(context.Background(), "appointments", req)
	require.NoError(t, err)

	assert.Len(t, creator.calls, 2)
	assert.NotEqual(t, first, second)
}

func TestCreateIntentProcessorFailure(t *testing.T) {
	creator := &fakeCreator{err: errors.New("stripe: connection refused")}
	svc := newTestService(creator)

	_, err := svc.CreateIntent(context.Background(), "appointments", models.IntentRequest{
		Option:    "ap-1",
		Name:      "Maria Rossi",
		Telephone: "+447700900123",
	})
	require.Error(t, err)
	assert.False(t, IsInputError(err))
}

func TestCreateIntentMissingClientSecret(t *testing.T) {
	creator := &fakeCreator{empty: true}
	svc := newTestService(creator)

	_, err := svc.CreateIntent(context.Background(), "appointments", models.IntentRequest{
		Option:    "ap-1",
		Name:      "Maria Rossi",
		Telephone: "+447700900123",
	})
	require.Error(t, err)
	assert.False(t, IsInputError(err))
}
