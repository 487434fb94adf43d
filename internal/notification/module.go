package notification

import (
	"context"
	"fmt"
	"time"

	"dumpster_booking_backend/internal/events"
	"dumpster_booking_backend/platform/logger"
)

// Module owns the notice store and the ops-logging subscriptions.
// It registers no routes of its own: notices are read through the
// booking module under the draft resource.
type Module struct {
	store *Store
	log   *logger.Logger
}

func NewModule(noticeTTL time.Duration, log *logger.Logger) *Module {
	return &Module{
		store: NewStore(noticeTTL),
		log:   log,
	}
}

func (m *Module) Name() string {
	return "notification"
}

// Store exposes the notice store to the booking module.
func (m *Module) Store() *Store {
	return m.store
}

// SubscribeEvents wires the ops-logging handlers onto the bus.
func (m *Module) SubscribeEvents(bus events.Bus) {
	bus.Subscribe(events.OrderSubmitted{}.EventName(), events.HandlerFunc(m.onOrderSubmitted))
	bus.Subscribe(events.OrderRateLimited{}.EventName(), events.HandlerFunc(m.onOrderRateLimited))
}

func (m *Module) onOrderSubmitted(_ context.Context, event events.Event) error {
	e, ok := event.(events.OrderSubmitted)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	m.log.OrderEvent("order_submitted", e.DraftID.String(), e.Size, e.Success, e.Message)
	return nil
}

func (m *Module) onOrderRateLimited(_ context.Context, event events.Event) error {
	e, ok := event.(events.OrderRateLimited)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	m.log.OrderEvent("order_rate_limited", e.DraftID.String(), "", false, e.Reason)
	return nil
}

// StartSweeper runs the periodic expiry pass until ctx is cancelled.
func (m *Module) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.store.Sweep()
			}
		}
	}()
}
