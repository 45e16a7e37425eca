package booking

import (
	"strings"

	"github.com/google/uuid"
)

// NewReference generates an opaque booking reference like "SP-3F9A21C4".
// It exists for human reconciliation only and is never used for dedupe.
func NewReference() string {
	id := uuid.New().String()
	return "SP-" + strings.ToUpper(id[:8])
}
