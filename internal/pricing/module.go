package pricing

import (
	apphttp "dumpster_booking_backend/internal/http"
)

// Module wires the pricing HTTP routes.
type Module struct {
	handler *Handler
	catalog *Catalog
}

func NewModule(catalog *Catalog) *Module {
	return &Module{
		handler: NewHandler(catalog),
		catalog: catalog,
	}
}

func (m *Module) Name() string {
	return "pricing"
}

// Catalog exposes the loaded catalog to other modules.
func (m *Module) Catalog() *Catalog {
	return m.catalog
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/pricing")
	group.GET("/sizes", m.handler.ListSizes)
	group.GET("/quote", m.handler.GetQuote)
}

var _ apphttp.Module = (*Module)(nil)
