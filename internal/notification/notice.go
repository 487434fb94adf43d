// Package notification holds the short-lived toast notices shown on a
// booking draft. Notices expire on their own; clients only ever read the
// active set.
package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notice categories.
const (
	CategorySuccess = "success"
	CategoryError   = "error"
)

// Notice is a single toast message scoped to a draft.
type Notice struct {
	ID        uuid.UUID `json:"id"`
	DraftID   uuid.UUID `json:"draftId"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store keeps notices in memory, grouped by draft.
type Store struct {
	mu      sync.Mutex
	notices map[uuid.UUID][]Notice
	ttl     time.Duration

	now func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		notices: make(map[uuid.UUID][]Notice),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Post records a notice for the draft and returns it.
func (s *Store) Post(draftID uuid.UUID, category, message string) Notice {
	now := s.now()
	notice := Notice{
		ID:        uuid.New(),
		DraftID:   draftID,
		Category:  category,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.notices[draftID] = append(s.notices[draftID], notice)
	s.mu.Unlock()

	return notice
}

// ListActive returns the unexpired notices for a draft, oldest first,
// dropping expired ones as it goes. The returned slice is the caller's own:
// it never shares a backing array with the store, which Sweep compacts in
// place under the lock.
func (s *Store) ListActive(draftID uuid.UUID) []Notice {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notice, 0, len(s.notices[draftID]))
	for _, n := range s.notices[draftID] {
		if now.Before(n.ExpiresAt) {
			active = append(active, n)
		}
	}

	if len(active) == 0 {
		delete(s.notices, draftID)
		return active
	}

	s.notices[draftID] = active

	out := make([]Notice, len(active))
	copy(out, active)
	return out
}

// Clear drops every notice for a draft.
func (s *Store) Clear(draftID uuid.UUID) {
	s.mu.Lock()
	delete(s.notices, draftID)
	s.mu.Unlock()
}

// Sweep removes expired notices across all drafts and returns how many
// were dropped. Meant for a periodic background pass.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for draftID, list := range s.notices {
		kept := list[:0]
		for _, n := range list {
			if now.Before(n.ExpiresAt) {
				kept = append(kept, n)
			} else {
				removed++
			}
		}
		if len(kept) == 0 {
			delete(s.notices, draftID)
		} else {
			s.notices[draftID] = kept
		}
	}

	return removed
}
