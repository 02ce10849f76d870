package analysis

import (
	"strings"
	"unicode/utf8"
)

// CheckAnswerLength validates the trimmed answer against the minimum
// character count. It runs before any backend call so a minimum-effort
// failure never costs a network round trip.
func CheckAnswerLength(answer string, minimum int) error {
	if utf8.RuneCountInString(strings.TrimSpace(answer)) < minimum {
		return &ErrAnswerTooShort{Minimum: minimum}
	}
	return nil
}
