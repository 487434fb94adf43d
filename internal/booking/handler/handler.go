// Package handler exposes the booking draft HTTP endpoints.
package handler

import (
	"net/http"

	"dumpster_booking_backend/internal/booking/service"
	"dumpster_booking_backend/internal/booking/transport"
	"dumpster_booking_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// CreateDraft handles POST /bookings/drafts.
func (h *Handler) CreateDraft(c *gin.Context) {
	view := h.svc.CreateDraft()
	httpkit.JSON(c, http.StatusCreated, view)
}

// GetDraft handles GET /bookings/drafts/:id.
func (h *Handler) GetDraft(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	view, err := h.svc.GetDraft(id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, view)
}

// UpdateDraft handles PATCH /bookings/drafts/:id.
func (h *Handler) UpdateDraft(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	var req transport.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	view, err := h.svc.UpdateDraft(id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, view)
}

// Submit handles POST /bookings/drafts/:id/submit. The submitter is keyed by
// client IP for throttling.
func (h *Handler) Submit(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	resp, err := h.svc.Submit(c.Request.Context(), id, c.ClientIP())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// ListNotices handles GET /bookings/drafts/:id/notices.
func (h *Handler) ListNotices(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	notices, err := h.svc.Notices(id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"notices": notices})
}

func draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid draft id", nil)
		return uuid.Nil, false
	}
	return id, true
}
