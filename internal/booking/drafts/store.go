// Package drafts holds in-progress bookings in memory. Drafts are ephemeral
// by contract: they expire after a TTL and are deleted after a successful
// submit when the reset behavior is enabled.
package drafts

import (
	"sync"
	"time"

	"dumpster_booking_backend/internal/booking/domain"
	"dumpster_booking_backend/internal/booking/validation"
	"dumpster_booking_backend/platform/apperr"

	"github.com/google/uuid"
)

const errDraftNotFound = "Booking draft not found or expired"

// Record is one stored draft plus its form-level state: the current field
// errors and the in-flight submission guard.
type Record struct {
	ID          uuid.UUID
	Draft       domain.Draft
	FieldErrors validation.FieldErrors
	Submitting  bool
	UpdatedAt   time.Time
}

// Store is a mutex-guarded in-memory draft table with lazy TTL expiry.
type Store struct {
	mu      sync.Mutex
	records map[uuid.UUID]*Record
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		records: make(map[uuid.UUID]*Record),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Create inserts a fresh empty draft and returns a copy of its record.
func (s *Store) Create() Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &Record{
		ID:          uuid.New(),
		Draft:       domain.NewDraft(),
		FieldErrors: validation.FieldErrors{},
		UpdatedAt:   s.now(),
	}
	s.records[rec.ID] = rec
	return snapshot(rec)
}

// Get returns a copy of the record, expiring it first if the TTL has passed.
func (s *Store) Get(id uuid.UUID) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.locked(id)
	if err != nil {
		return Record{}, err
	}
	return snapshot(rec), nil
}

// Update applies fn to the record under the store lock and returns the
// resulting copy. fn errors abort the update.
func (s *Store) Update(id uuid.UUID, fn func(*Record) error) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.locked(id)
	if err != nil {
		return Record{}, err
	}
	if err := fn(rec); err != nil {
		return Record{}, err
	}
	rec.UpdatedAt = s.now()
	return snapshot(rec), nil
}

// Reset replaces the draft with a fresh one in place, keeping the ID so the
// client can continue on the same form after a successful submit.
func (s *Store) Reset(id uuid.UUID) (Record, error) {
	return s.Update(id, func(rec *Record) error {
		rec.Draft = domain.NewDraft()
		rec.FieldErrors = validation.FieldErrors{}
		return nil
	})
}

// Delete removes the record if present.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
}

// Sweep removes every expired record. Called periodically by the module.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, rec := range s.records {
		if s.expired(rec) {
			delete(s.records, id)
			removed++
		}
	}
	return removed
}

func (s *Store) locked(id uuid.UUID) (*Record, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, apperr.NotFound(errDraftNotFound)
	}
	if s.expired(rec) {
		delete(s.records, id)
		return nil, apperr.NotFound(errDraftNotFound)
	}
	return rec, nil
}

func (s *Store) expired(rec *Record) bool {
	return s.ttl > 0 && s.now().Sub(rec.UpdatedAt) > s.ttl
}

// snapshot copies the record for return outside the store lock. The field
// error map must not alias the stored one: callers marshal their copy while
// later updates keep mutating the original.
func snapshot(rec *Record) Record {
	out := *rec
	out.FieldErrors = make(validation.FieldErrors, len(rec.FieldErrors))
	for field, msg := range rec.FieldErrors {
		out.FieldErrors[field] = msg
	}
	return out
}
