// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "US"

// Digits strips every non-digit character from the input.
func Digits(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatDisplay formats a raw input string into the (NNN) NNN-NNNN display shape
// used by the booking form, based on how many digits have been typed so far:
// up to 3 digits bare, 4 to 6 as (NNN) NNN, 7 or more as (NNN) NNN-NNNN.
// Digits beyond the tenth are dropped.
func FormatDisplay(input string) string {
	digits := Digits(input)

	switch {
	case len(digits) < 4:
		return digits
	case len(digits) < 7:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		if len(digits) > 10 {
			digits = digits[:10]
		}
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	}
}

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}
