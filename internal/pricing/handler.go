package pricing

import (
	"net/http"

	"dumpster_booking_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the pricing catalog and quote endpoints.
type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// QuoteRequest represents the query parameters for a quote.
type QuoteRequest struct {
	Size       string  `form:"size" binding:"required"`
	DistanceMi float64 `form:"distanceMi" binding:"omitempty,gte=0"`
}

// ListSizes handles GET /api/v1/pricing/sizes.
func (h *Handler) ListSizes(c *gin.Context) {
	httpkit.OK(c, gin.H{"sizes": h.catalog.Sizes()})
}

// GetQuote handles GET /api/v1/pricing/quote?size=10&distanceMi=22.
func (h *Handler) GetQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'size' is required", nil)
		return
	}

	size, ok := h.catalog.Lookup(req.Size)
	if !ok {
		httpkit.Error(c, http.StatusNotFound, "unknown dumpster size", nil)
		return
	}

	httpkit.OK(c, gin.H{
		"size":  size,
		"quote": h.catalog.CalculateQuote(size, req.DistanceMi),
	})
}
