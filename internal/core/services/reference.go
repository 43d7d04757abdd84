package services

import (
	"strings"

	"github.com/google/uuid"
)

// Reference number prefixes
const (
	RequestRefPrefix   = "REQ"
	ComplaintRefPrefix = "REC"
)

// NewReference builds a human-readable reference number such as
// REQ-3F2A8C1D. The random component comes from a UUID so references
// stay unique without a counter table; the column's unique index is the
// final guard. A reference is immutable once assigned.
func NewReference(prefix string) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + "-" + strings.ToUpper(raw[:8])
}
