package validation

import (
	"strings"
	"testing"

	"dumpster_booking_backend/internal/booking/domain"
	"dumpster_booking_backend/platform/validator"
)

func newValidator() *OrderValidator {
	return New(validator.New())
}

func validDraft() domain.Draft {
	return domain.Draft{
		BookingType:     domain.BookingTypeBusiness,
		ContactName:     "Acme LLC",
		SelectedSize:    "20",
		Address:         "500 Main St, Waterbury, CT 06702",
		AddressSelected: true,
		Phone:           "(203) 555-0123",
		Email:           "a@b.com",
	}
}

func TestValidate_ValidDraftHasNoErrors(t *testing.T) {
	errs := newValidator().Validate(validDraft())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_ReportsEveryInvalidField(t *testing.T) {
	d := validDraft()
	d.ContactName = ""
	d.Email = ""
	d.Phone = "(203) 555"

	errs := newValidator().Validate(d)

	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(errs), errs)
	}
	if errs[FieldContactName] == "" || errs[FieldEmail] == "" || errs[FieldPhone] == "" {
		t.Fatalf("expected one entry per invalid field, got %v", errs)
	}
}

func TestContactName_MessageDependsOnBookingType(t *testing.T) {
	v := newValidator()

	if msg := v.ContactName("  ", domain.BookingTypeBusiness); msg != "Business name is required" {
		t.Fatalf("business: got %q", msg)
	}
	if msg := v.ContactName("", domain.BookingTypeResidential); msg != "Contact name is required" {
		t.Fatalf("residential: got %q", msg)
	}
}

func TestContactName_EightyCharacterCap(t *testing.T) {
	v := newValidator()

	if msg := v.ContactName(strings.Repeat("a", 80), domain.BookingTypeBusiness); msg != "" {
		t.Fatalf("80 chars must pass, got %q", msg)
	}
	if msg := v.ContactName(strings.Repeat("a", 81), domain.BookingTypeBusiness); msg != "Please keep it under 80 characters" {
		t.Fatalf("81 chars must fail, got %q", msg)
	}

	// The cap counts characters, not bytes: 80 accented runes are 160 bytes.
	if msg := v.ContactName(strings.Repeat("é", 80), domain.BookingTypeBusiness); msg != "" {
		t.Fatalf("80 accented chars must pass, got %q", msg)
	}
	if msg := v.ContactName(strings.Repeat("é", 81), domain.BookingTypeBusiness); msg == "" {
		t.Fatalf("81 accented chars must fail")
	}
}

func TestAddress_SelectionFlagIsLoadBearing(t *testing.T) {
	v := newValidator()
	full := "123 Main St, Waterbury, CT"

	if msg := v.Address("123 Main St", true); msg == "" {
		t.Fatalf("short address without comma must fail even when selected")
	}
	if msg := v.Address(full, true); msg != "" {
		t.Fatalf("selected full address must pass, got %q", msg)
	}
	if msg := v.Address(full, false); msg == "" {
		t.Fatalf("the same text without the selection flag must fail")
	}
}

func TestPhone_StripsFormattingBeforeCounting(t *testing.T) {
	v := newValidator()

	if msg := v.Phone("(203) 555-0123"); msg != "" {
		t.Fatalf("formatted 10-digit number must pass, got %q", msg)
	}
	if msg := v.Phone("(203) 555-012"); msg != "Phone number must be at least 10 digits" {
		t.Fatalf("9 digits must fail, got %q", msg)
	}
}

func TestEmail_RequiredAndShape(t *testing.T) {
	v := newValidator()

	if msg := v.Email(""); msg != "Email address is required" {
		t.Fatalf("empty email: got %q", msg)
	}
	if msg := v.Email("not-an-email"); msg != "Please enter a valid email address" {
		t.Fatalf("malformed email: got %q", msg)
	}
	if msg := v.Email("a@b.com"); msg != "" {
		t.Fatalf("valid email must pass, got %q", msg)
	}
}

func TestValidate_NotesAlwaysOptional(t *testing.T) {
	d := validDraft()
	d.Notes = ""
	if errs := newValidator().Validate(d); len(errs) != 0 {
		t.Fatalf("empty notes must not fail, got %v", errs)
	}

	d.Notes = strings.Repeat("long note ", 500)
	if errs := newValidator().Validate(d); len(errs) != 0 {
		t.Fatalf("long notes must not fail, got %v", errs)
	}
}
