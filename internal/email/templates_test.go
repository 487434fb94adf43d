package email

import (
	"strings"
	"testing"
)

func sampleParams() OrderEmailParams {
	return OrderEmailParams{
		SizeName:          "20-Yard",
		BasePrice:         550,
		BookingDescriptor: "Business",
		ContactName:       "Acme LLC",
		Address:           "500 Main St, Waterbury, CT 06702",
		Phone:             "(203) 555-0123",
		Email:             "a@b.com",
		Notes:             "Gate code 4411",
	}
}

func TestRenderOrderInternal(t *testing.T) {
	content, err := renderEmailTemplate("order_internal.html",
		newOrderEmailData(sampleParams(), "(347) 299-0482", "New Dumpster Order", "New Dumpster Rental Order"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"New Dumpster Rental Order",
		"20-Yard",
		"$550",
		"Business - Acme LLC",
		"500 Main St, Waterbury, CT 06702",
		"(203) 555-0123",
		"a@b.com",
		"Gate code 4411",
		"(347) 299-0482",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("internal email missing %q:\n%s", want, content)
		}
	}
}

func TestRenderOrderInternal_MissingEmailShowsNotProvided(t *testing.T) {
	p := sampleParams()
	p.Email = ""
	p.Notes = ""

	content, err := renderEmailTemplate("order_internal.html",
		newOrderEmailData(p, "(347) 299-0482", "New Dumpster Order", "New Dumpster Rental Order"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(content, "Not provided") {
		t.Fatalf("expected Not provided placeholder:\n%s", content)
	}
	if strings.Contains(content, "Notes:") {
		t.Fatalf("empty notes must be omitted:\n%s", content)
	}
}

func TestRenderOrderConfirmation(t *testing.T) {
	content, err := renderEmailTemplate("order_confirmation.html",
		newOrderEmailData(sampleParams(), "(347) 299-0482", subjectOrderConfirmation, "Thanks for reaching out!"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Thanks for reaching out!",
		"20-Yard dumpster",
		"Notes you shared",
		"We look forward to working with you",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("confirmation email missing %q:\n%s", want, content)
		}
	}
}
