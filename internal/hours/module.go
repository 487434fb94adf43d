package hours

import (
	"time"

	apphttp "dumpster_booking_backend/internal/http"
	"dumpster_booking_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module wires the office-hours route.
type Module struct{}

func NewModule() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "hours"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/office-hours", func(c *gin.Context) {
		httpkit.OK(c, Current(time.Now()))
	})
}

var _ apphttp.Module = (*Module)(nil)
