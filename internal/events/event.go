// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"dumpster_booking_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Booking Domain Events
// =============================================================================

// OrderSubmitted is published after the submission pipeline resolves,
// whether the email collaborator succeeded or not.
type OrderSubmitted struct {
	BaseEvent
	DraftID     uuid.UUID `json:"draftId"`
	BookingType string    `json:"bookingType"`
	Size        string    `json:"size"`
	BasePrice   int       `json:"basePrice"`
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
}

func (e OrderSubmitted) EventName() string { return "booking.order.submitted" }

// OrderRateLimited is published when a submit attempt was rejected by the
// soft throttle before validation ran.
type OrderRateLimited struct {
	BaseEvent
	DraftID uuid.UUID `json:"draftId"`
	Reason  string    `json:"reason"`
}

func (e OrderRateLimited) EventName() string { return "booking.order.rate_limited" }
