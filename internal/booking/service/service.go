// Package service runs the booking form's server side: draft lifecycle,
// field updates, and the submission pipeline.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dumpster_booking_backend/internal/booking/domain"
	"dumpster_booking_backend/internal/booking/drafts"
	"dumpster_booking_backend/internal/booking/ratelimit"
	"dumpster_booking_backend/internal/booking/transport"
	"dumpster_booking_backend/internal/booking/validation"
	"dumpster_booking_backend/internal/email"
	"dumpster_booking_backend/internal/events"
	"dumpster_booking_backend/internal/maps"
	"dumpster_booking_backend/internal/notification"
	"dumpster_booking_backend/internal/pricing"
	"dumpster_booking_backend/platform/apperr"
	"dumpster_booking_backend/platform/config"
	"dumpster_booking_backend/platform/logger"
	"dumpster_booking_backend/platform/phone"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	msgValidationFailed = "Please fix the errors above"
	msgSubmitSuccess    = "Order submitted successfully!"
	msgSubmitInFlight   = "A submission is already in progress"
)

// Service coordinates the draft store with the collaborators: pricing,
// address selection, the throttle, and the email dispatcher.
type Service struct {
	store   *drafts.Store
	val     *validation.OrderValidator
	catalog *pricing.Catalog
	limiter ratelimit.Limiter
	sender  email.Sender
	notices *notification.Store
	maps    *maps.Service
	bus     events.Bus
	log     *logger.Logger
	cfg     config.BookingConfig
}

func New(
	store *drafts.Store,
	val *validation.OrderValidator,
	catalog *pricing.Catalog,
	limiter ratelimit.Limiter,
	sender email.Sender,
	notices *notification.Store,
	mapsSvc *maps.Service,
	bus events.Bus,
	log *logger.Logger,
	cfg config.BookingConfig,
) *Service {
	return &Service{
		store:   store,
		val:     val,
		catalog: catalog,
		limiter: limiter,
		sender:  sender,
		notices: notices,
		maps:    mapsSvc,
		bus:     bus,
		log:     log,
		cfg:     cfg,
	}
}

// CreateDraft starts an empty draft.
func (s *Service) CreateDraft() transport.DraftView {
	rec := s.store.Create()
	return transport.NewDraftView(rec, s.catalog)
}

// GetDraft returns the current view of a draft.
func (s *Service) GetDraft(id uuid.UUID) (transport.DraftView, error) {
	rec, err := s.store.Get(id)
	if err != nil {
		return transport.DraftView{}, err
	}
	return transport.NewDraftView(rec, s.catalog), nil
}

// Notices returns the active toast notices for a draft.
func (s *Service) Notices(id uuid.UUID) ([]notification.Notice, error) {
	if _, err := s.store.Get(id); err != nil {
		return nil, err
	}
	return s.notices.ListActive(id), nil
}

// UpdateDraft applies a partial update. Each field present in the request
// overwrites the draft field and clears that field's validation error; absent
// fields are untouched. The phone field is stored in display format.
func (s *Service) UpdateDraft(id uuid.UUID, req transport.UpdateDraftRequest) (transport.DraftView, error) {
	if req.SelectedSize != nil && *req.SelectedSize != "" && !s.catalog.IsValidSize(*req.SelectedSize) {
		return transport.DraftView{}, apperr.BadRequest(fmt.Sprintf("unknown dumpster size %q", *req.SelectedSize))
	}

	rec, err := s.store.Update(id, func(rec *drafts.Record) error {
		if req.BookingType != nil {
			bt := domain.BookingType(*req.BookingType)
			if !bt.IsValid() {
				return apperr.BadRequest(fmt.Sprintf("unknown booking type %q", *req.BookingType))
			}
			rec.Draft.BookingType = bt
			delete(rec.FieldErrors, validation.FieldContactName)
		}
		if req.ContactName != nil {
			rec.Draft.ContactName = *req.ContactName
			delete(rec.FieldErrors, validation.FieldContactName)
		}
		if req.SelectedSize != nil {
			rec.Draft.SelectedSize = *req.SelectedSize
			delete(rec.FieldErrors, validation.FieldSelectedSize)
		}
		if req.Address != nil {
			rec.Draft.Address = *req.Address
			selected, verifiedBy := s.maps.ResolveSelection(*req.Address, req.AddressSelected)
			rec.Draft.AddressSelected = selected
			if selected {
				s.log.Debug("address selection settled",
					"draft_id", rec.ID.String(), "verified_by", verifiedBy)
			}
			delete(rec.FieldErrors, validation.FieldAddress)
		}
		if req.Phone != nil {
			rec.Draft.Phone = phone.FormatDisplay(*req.Phone)
			delete(rec.FieldErrors, validation.FieldPhone)
		}
		if req.Email != nil {
			rec.Draft.Email = *req.Email
			delete(rec.FieldErrors, validation.FieldEmail)
		}
		if req.Notes != nil {
			rec.Draft.Notes = *req.Notes
		}
		return nil
	})
	if err != nil {
		return transport.DraftView{}, err
	}

	return transport.NewDraftView(rec, s.catalog), nil
}

// Submit runs the pipeline for one attempt: throttle, validation, then the
// email collaborator. clientKey identifies the submitter for throttling,
// normally the client IP.
//
// A collaborator failure is an order outcome, not a transport error: the
// response carries success=false with the call-us-directly message and the
// draft is preserved. Throttle denials and validation failures return typed
// errors instead, since no order was attempted.
func (s *Service) Submit(ctx context.Context, id uuid.UUID, clientKey string) (transport.SubmitResponse, error) {
	rec, err := s.store.Update(id, func(rec *drafts.Record) error {
		if rec.Submitting {
			return apperr.Conflict(msgSubmitInFlight)
		}
		rec.Submitting = true
		return nil
	})
	if err != nil {
		return transport.SubmitResponse{}, err
	}

	resp, err := s.submitLocked(ctx, rec, clientKey)

	// Always release the guard; the record may already be reset or gone.
	if final, clearErr := s.store.Update(id, func(rec *drafts.Record) error {
		rec.Submitting = false
		return nil
	}); clearErr == nil {
		resp.Draft = transport.NewDraftView(final, s.catalog)
	}

	return resp, err
}

func (s *Service) submitLocked(ctx context.Context, rec drafts.Record, clientKey string) (transport.SubmitResponse, error) {
	decision, limitErr := s.limiter.Check(ctx, clientKey, time.Now())
	if limitErr != nil {
		s.log.Warn("rate limit store unavailable", "error", limitErr.Error())
	}
	if !decision.Allowed {
		s.notices.Post(rec.ID, notification.CategoryError, decision.Reason)
		s.bus.Publish(ctx, events.OrderRateLimited{
			BaseEvent: events.NewBaseEvent(),
			DraftID:   rec.ID,
			Reason:    decision.Reason,
		})
		return transport.SubmitResponse{}, apperr.RateLimited(decision.Reason)
	}

	fieldErrors := s.val.Validate(rec.Draft)
	if _, uerr := s.store.Update(rec.ID, func(r *drafts.Record) error {
		r.FieldErrors = fieldErrors
		return nil
	}); uerr != nil {
		return transport.SubmitResponse{}, uerr
	}
	if len(fieldErrors) > 0 {
		s.notices.Post(rec.ID, notification.CategoryError, msgValidationFailed)
		return transport.SubmitResponse{}, apperr.Validation(msgValidationFailed).WithDetails(fieldErrors)
	}

	size, ok := s.catalog.Lookup(rec.Draft.SelectedSize)
	if !ok {
		return transport.SubmitResponse{}, apperr.Internal("selected size missing from catalog")
	}

	params := s.normalize(rec.Draft, size)
	result := s.dispatchOrder(ctx, params, size)

	category := notification.CategoryError
	if result.Success {
		category = notification.CategorySuccess
		if s.cfg.GetResetDraftAfterSubmit() {
			if _, rerr := s.store.Reset(rec.ID); rerr != nil {
				s.log.Warn("draft reset failed", "draft_id", rec.ID.String(), "error", rerr.Error())
			}
		}
	}
	s.notices.Post(rec.ID, category, result.Message)

	s.bus.Publish(ctx, events.OrderSubmitted{
		BaseEvent:   events.NewBaseEvent(),
		DraftID:     rec.ID,
		BookingType: string(rec.Draft.BookingType),
		Size:        size.Key,
		BasePrice:   size.BasePrice,
		Success:     result.Success,
		Message:     result.Message,
	})

	return transport.SubmitResponse{Result: result}, nil
}

// normalize builds the email payload from a validated draft: trimmed name
// and notes, E.164 phone where parseable, the address as validated.
func (s *Service) normalize(d domain.Draft, size pricing.Size) email.OrderEmailParams {
	descriptor := "Residential"
	if d.BookingType == domain.BookingTypeBusiness {
		descriptor = "Business"
	}

	return email.OrderEmailParams{
		SizeName:          size.Name,
		BasePrice:         size.BasePrice,
		BookingDescriptor: descriptor,
		ContactName:       strings.TrimSpace(d.ContactName),
		Address:           d.Address,
		Phone:             phone.NormalizeE164(d.Phone),
		Email:             strings.TrimSpace(d.Email),
		Notes:             strings.TrimSpace(d.Notes),
	}
}

// dispatchOrder sends the internal notification and the customer
// confirmation concurrently. Only the internal email decides the outcome;
// a failed confirmation is logged and swallowed.
func (s *Service) dispatchOrder(ctx context.Context, params email.OrderEmailParams, size pricing.Size) transport.OrderResult {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.sender.SendOrderEmail(gctx, params)
	})
	g.Go(func() error {
		if err := s.sender.SendOrderConfirmationEmail(gctx, params); err != nil {
			s.log.EmailError("order_confirmation", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.EmailError("order_internal", err)
		return transport.OrderResult{
			Success: false,
			Message: fmt.Sprintf("Sorry, there was an error submitting your order. Please call %s directly.", s.cfg.GetBusinessPhone()),
		}
	}

	return transport.OrderResult{
		Success:   true,
		Message:   msgSubmitSuccess,
		BasePrice: size.BasePrice,
	}
}
