package domain

import "testing"

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft()
	if d.BookingType != BookingTypeBusiness {
		t.Fatalf("expected business default, got %q", d.BookingType)
	}
	if d.CurrentStep() != 1 {
		t.Fatalf("empty draft must start at step 1, got %d", d.CurrentStep())
	}
}

func TestCurrentStep_FirstIncompleteWins(t *testing.T) {
	d := NewDraft()

	d.ContactName = "Acme LLC"
	if d.CurrentStep() != 2 {
		t.Fatalf("expected step 2 after name, got %d", d.CurrentStep())
	}

	d.SelectedSize = "20"
	if d.CurrentStep() != 3 {
		t.Fatalf("expected step 3 after size, got %d", d.CurrentStep())
	}

	d.Address = "500 Main St, Waterbury, CT 06702"
	if d.CurrentStep() != 4 {
		t.Fatalf("expected step 4 after address, got %d", d.CurrentStep())
	}
}

func TestCurrentStep_CompleteDraftStaysOnLastStep(t *testing.T) {
	d := Draft{
		BookingType:  BookingTypeBusiness,
		ContactName:  "Acme LLC",
		SelectedSize: "20",
		Address:      "500 Main St, Waterbury, CT 06702",
		Phone:        "(203) 555-0123",
		Email:        "a@b.com",
	}

	if !d.IsStepComplete(4) {
		t.Fatalf("step 4 should be complete")
	}
	if d.CurrentStep() != StepCount {
		t.Fatalf("complete draft must sit on the last step, got %d", d.CurrentStep())
	}
}

func TestIsStepComplete_ContactStepNeedsPhoneAndEmail(t *testing.T) {
	d := NewDraft()
	d.Phone = "(203) 555-012" // 9 digits
	d.Email = "a@b.com"
	if d.IsStepComplete(4) {
		t.Fatalf("9 phone digits must not complete step 4")
	}

	d.Phone = "(203) 555-0123"
	d.Email = "   "
	if d.IsStepComplete(4) {
		t.Fatalf("blank email must not complete step 4")
	}

	d.Email = "a@b.com"
	if !d.IsStepComplete(4) {
		t.Fatalf("10 digits and an email must complete step 4")
	}
}

func TestIsStepComplete_NameIsTrimmed(t *testing.T) {
	d := NewDraft()
	d.ContactName = "   "
	if d.IsStepComplete(1) {
		t.Fatalf("whitespace-only name must not complete step 1")
	}
}

func TestBookingType_IsValid(t *testing.T) {
	if !BookingTypeResidential.IsValid() || !BookingTypeBusiness.IsValid() {
		t.Fatalf("defined booking types must be valid")
	}
	if BookingType("commercial").IsValid() {
		t.Fatalf("unknown booking type must be invalid")
	}
}
