// Package transport defines the booking module's request and response shapes.
package transport

import (
	"fmt"

	"dumpster_booking_backend/internal/booking/domain"
	"dumpster_booking_backend/internal/booking/drafts"
	"dumpster_booking_backend/internal/booking/validation"
	"dumpster_booking_backend/internal/pricing"

	"github.com/google/uuid"
)

// UpdateDraftRequest is a partial draft update. Only fields present in the
// request body are applied; a present field clears its own validation error.
type UpdateDraftRequest struct {
	BookingType     *string `json:"bookingType,omitempty" binding:"omitempty,oneof=business residential"`
	ContactName     *string `json:"contactName,omitempty"`
	SelectedSize    *string `json:"selectedSize,omitempty"`
	Address         *string `json:"address,omitempty"`
	AddressSelected *bool   `json:"addressSelected,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// StepView is the derived completion state for one form section.
type StepView struct {
	Step     int  `json:"step"`
	Complete bool `json:"complete"`
}

// DraftView is the full form state returned on every draft read and write.
type DraftView struct {
	ID          uuid.UUID              `json:"id"`
	Draft       domain.Draft           `json:"draft"`
	FieldErrors validation.FieldErrors `json:"fieldErrors"`
	Steps       []StepView             `json:"steps"`
	CurrentStep int                    `json:"currentStep"`
	BasePrice   int                    `json:"basePrice,omitempty"`
	CtaLabel    string                 `json:"ctaLabel"`
	Submitting  bool                   `json:"submitting"`
}

// OrderResult mirrors the submit collaborator's contract.
type OrderResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BasePrice int    `json:"basePrice,omitempty"`
}

// SubmitResponse pairs the order result with the post-submit draft view, so
// the form can render the outcome and the (possibly reset) draft in one
// round trip.
type SubmitResponse struct {
	Result OrderResult `json:"result"`
	Draft  DraftView   `json:"draft"`
}

// NewDraftView derives the view from a stored record.
func NewDraftView(rec drafts.Record, catalog *pricing.Catalog) DraftView {
	steps := make([]StepView, 0, domain.StepCount)
	for step := 1; step <= domain.StepCount; step++ {
		steps = append(steps, StepView{Step: step, Complete: rec.Draft.IsStepComplete(step)})
	}

	view := DraftView{
		ID:          rec.ID,
		Draft:       rec.Draft,
		FieldErrors: rec.FieldErrors,
		Steps:       steps,
		CurrentStep: rec.Draft.CurrentStep(),
		CtaLabel:    "Request dumpster",
		Submitting:  rec.Submitting,
	}

	if size, ok := catalog.Lookup(rec.Draft.SelectedSize); ok {
		view.BasePrice = size.BasePrice
		view.CtaLabel = ctaLabel(size.BasePrice)
	}

	return view
}

func ctaLabel(basePrice int) string {
	return fmt.Sprintf("Request dumpster • $%d", basePrice)
}
