package payment

import (
	"errors"
	"fmt"
)

// Input errors surface to callers as 4xx; everything else is a processor or
// configuration failure and surfaces as a generic 5xx.
var (
	ErrUnknownService   = errors.New("unknown service")
	ErrUnknownOption    = errors.New("unknown or missing option")
	ErrQuantityTooLarge = errors.New("quantity out of range")
)

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// IsInputError reports whether err was caused by the caller's request rather
// than by the payment processor or configuration.
func IsInputError(err error) bool {
	var mf *MissingFieldError
	return errors.Is(err, ErrUnknownService) ||
		errors.Is(err, ErrUnknownOption) ||
		errors.Is(err, ErrQuantityTooLarge) ||
		errors.As(err, &mf)
}
