package maps

import (
	apphttp "dumpster_booking_backend/internal/http"
)

// Module wires the address lookup routes.
type Module struct {
	service *Service
	handler *Handler
}

func NewModule(service *Service) *Module {
	return &Module{
		service: service,
		handler: NewHandler(service),
	}
}

func (m *Module) Name() string {
	return "maps"
}

// Service exposes the lookup service to the booking module, which uses it
// to settle address selection flags on draft updates.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/maps")
	group.Use(ctx.LookupRateLimiter.RateLimit())
	group.GET("/address-lookup", m.handler.LookupAddress)
}

var _ apphttp.Module = (*Module)(nil)
