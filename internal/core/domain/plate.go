package domain

import (
	"strings"
	"unicode"
)

// NormalizePlate strips all whitespace from a plate number and upper-cases it.
// The normalized form is the join key across owners, towing records, and OTP
// challenges. Normalization is idempotent.
func NormalizePlate(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
