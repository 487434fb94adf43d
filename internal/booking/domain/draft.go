// Package domain holds the booking draft model and its derived state.
// Everything here is pure: step completion and the active step are computed
// from the draft on every read, never stored.
package domain

import (
	"strings"

	"dumpster_booking_backend/platform/phone"
)

// BookingType distinguishes business from residential bookings. The required
// contact-name message depends on it.
type BookingType string

const (
	BookingTypeResidential BookingType = "residential"
	BookingTypeBusiness    BookingType = "business"
)

// IsValid reports whether t is one of the two defined booking types.
func (t BookingType) IsValid() bool {
	return t == BookingTypeResidential || t == BookingTypeBusiness
}

// StepCount is the number of sequential form sections.
const StepCount = 4

// Draft is the in-progress booking. It is ephemeral: created empty, mutated
// field by field, and discarded after a successful submit or expiry.
type Draft struct {
	BookingType     BookingType `json:"bookingType"`
	ContactName     string      `json:"contactName"`
	SelectedSize    string      `json:"selectedSize"`
	Address         string      `json:"address"`
	AddressSelected bool        `json:"addressSelected"`
	Phone           string      `json:"phone"`
	Email           string      `json:"email"`
	Notes           string      `json:"notes"`
}

// NewDraft returns an empty draft. Business is the default booking type,
// matching the form's initial state.
func NewDraft() Draft {
	return Draft{BookingType: BookingTypeBusiness}
}

// PhoneDigits returns the digits-only view of the phone field.
func (d Draft) PhoneDigits() string {
	return phone.Digits(d.Phone)
}

// IsStepComplete reports completion for a 1-based step index:
// 1 identity, 2 size, 3 address, 4 contact details.
func (d Draft) IsStepComplete(step int) bool {
	switch step {
	case 1:
		return strings.TrimSpace(d.ContactName) != ""
	case 2:
		return d.SelectedSize != ""
	case 3:
		return strings.TrimSpace(d.Address) != ""
	case 4:
		return len(d.PhoneDigits()) >= 10 && strings.TrimSpace(d.Email) != ""
	default:
		return false
	}
}

// CurrentStep returns the first incomplete step, or the last step when the
// whole draft is complete. It drives visual emphasis only and never gates
// submission.
func (d Draft) CurrentStep() int {
	for step := 1; step < StepCount; step++ {
		if !d.IsStepComplete(step) {
			return step
		}
	}
	return StepCount
}
