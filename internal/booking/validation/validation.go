// Package validation checks a booking draft field by field at submit time.
// The full pass is all-or-nothing: every field is checked and the complete
// set of failures is returned at once, so the caller can highlight every
// invalid field in the same response.
package validation

import (
	"strings"
	"unicode/utf8"

	"dumpster_booking_backend/internal/booking/domain"
	"dumpster_booking_backend/platform/phone"
	"dumpster_booking_backend/platform/validator"
)

// Field names used as FieldErrors keys.
const (
	FieldContactName  = "contactName"
	FieldSelectedSize = "selectedSize"
	FieldAddress      = "address"
	FieldPhone        = "phone"
	FieldEmail        = "email"
)

const (
	msgBusinessNameRequired = "Business name is required"
	msgContactNameRequired  = "Contact name is required"
	msgContactNameTooLong   = "Please keep it under 80 characters"
	msgSizeRequired         = "Please pick a dumpster size"
	msgAddressIncomplete    = "Please select a full address from the dropdown"
	msgPhoneTooShort        = "Phone number must be at least 10 digits"
	msgEmailRequired        = "Email address is required"
	msgEmailInvalid         = "Please enter a valid email address"
)

const maxContactNameLen = 80

// FieldErrors maps a field name to a human-readable message. A validation
// pass replaces the whole map, it is never merged incrementally.
type FieldErrors map[string]string

// OrderValidator validates booking drafts.
type OrderValidator struct {
	val *validator.Validator
}

func New(val *validator.Validator) *OrderValidator {
	return &OrderValidator{val: val}
}

// ContactName validates the name field. The required message depends on the
// booking type. Returns "" when valid.
func (v *OrderValidator) ContactName(name string, bookingType domain.BookingType) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		if bookingType == domain.BookingTypeBusiness {
			return msgBusinessNameRequired
		}
		return msgContactNameRequired
	}
	if utf8.RuneCountInString(trimmed) > maxContactNameLen {
		return msgContactNameTooLong
	}
	return ""
}

// Address validates the delivery address. Both the selection flag and the
// structural shape (a comma and a minimum length) must hold.
func (v *OrderValidator) Address(address string, wasSelected bool) string {
	if !wasSelected || len(strings.Split(address, ",")) < 2 || len(address) < 15 {
		return msgAddressIncomplete
	}
	return ""
}

// Phone validates the phone field. Formatting punctuation is stripped before
// the digit count check.
func (v *OrderValidator) Phone(input string) string {
	if len(phone.Digits(input)) < 10 {
		return msgPhoneTooShort
	}
	return ""
}

// Email validates the email field against a basic local@domain.tld shape.
func (v *OrderValidator) Email(email string) string {
	if strings.TrimSpace(email) == "" {
		return msgEmailRequired
	}
	if err := v.val.Var(email, "email"); err != nil {
		return msgEmailInvalid
	}
	return ""
}

// Validate runs the full pass over the draft. Notes are always optional.
// The returned map is empty (not nil) when the draft is valid.
func (v *OrderValidator) Validate(d domain.Draft) FieldErrors {
	errs := make(FieldErrors)

	if msg := v.ContactName(d.ContactName, d.BookingType); msg != "" {
		errs[FieldContactName] = msg
	}
	if d.SelectedSize == "" {
		errs[FieldSelectedSize] = msgSizeRequired
	}
	if msg := v.Address(d.Address, d.AddressSelected); msg != "" {
		errs[FieldAddress] = msg
	}
	if msg := v.Phone(d.Phone); msg != "" {
		errs[FieldPhone] = msg
	}
	if msg := v.Email(d.Email); msg != "" {
		errs[FieldEmail] = msg
	}

	return errs
}
