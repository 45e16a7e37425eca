package booking

import (
	"errors"
	"fmt"
)

var ErrUnknownForm = errors.New("unknown form")

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// IsInputError reports whether err was caused by the caller's submission.
func IsInputError(err error) bool {
	var mf *MissingFieldError
	return errors.Is(err, ErrUnknownForm) || errors.As(err, &mf)
}
