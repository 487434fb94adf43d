// Package booking wires the draft lifecycle module: store, service, routes,
// and the background expiry sweeper.
package booking

import (
	"context"
	"time"

	"dumpster_booking_backend/internal/booking/drafts"
	"dumpster_booking_backend/internal/booking/handler"
	"dumpster_booking_backend/internal/booking/ratelimit"
	"dumpster_booking_backend/internal/booking/service"
	"dumpster_booking_backend/internal/booking/validation"
	"dumpster_booking_backend/internal/email"
	"dumpster_booking_backend/internal/events"
	apphttp "dumpster_booking_backend/internal/http"
	"dumpster_booking_backend/internal/maps"
	"dumpster_booking_backend/internal/notification"
	"dumpster_booking_backend/internal/pricing"
	"dumpster_booking_backend/platform/config"
	"dumpster_booking_backend/platform/logger"
	"dumpster_booking_backend/platform/validator"
)

const sweepInterval = time.Minute

// Module owns the booking draft endpoints.
type Module struct {
	store   *drafts.Store
	service *service.Service
	handler *handler.Handler
	log     *logger.Logger
}

func NewModule(
	cfg config.BookingConfig,
	val *validator.Validator,
	catalog *pricing.Catalog,
	limiter ratelimit.Limiter,
	sender email.Sender,
	notices *notification.Store,
	mapsSvc *maps.Service,
	bus events.Bus,
	log *logger.Logger,
) *Module {
	store := drafts.NewStore(cfg.GetDraftTTL())
	svc := service.New(
		store,
		validation.New(val),
		catalog,
		limiter,
		sender,
		notices,
		mapsSvc,
		bus,
		log,
		cfg,
	)

	return &Module{
		store:   store,
		service: svc,
		handler: handler.New(svc),
		log:     log,
	}
}

func (m *Module) Name() string {
	return "booking"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/bookings/drafts")
	group.POST("", m.handler.CreateDraft)
	group.GET("/:id", m.handler.GetDraft)
	group.PATCH("/:id", m.handler.UpdateDraft)
	group.POST("/:id/submit", m.handler.Submit)
	group.GET("/:id/notices", m.handler.ListNotices)
}

// StartSweeper expires stale drafts in the background until ctx is cancelled.
func (m *Module) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := m.store.Sweep(); removed > 0 {
					m.log.Debug("expired drafts swept", "count", removed)
				}
			}
		}
	}()
}

var _ apphttp.Module = (*Module)(nil)
