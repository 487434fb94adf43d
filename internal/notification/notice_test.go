package notification

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPostAndListActive(t *testing.T) {
	store := NewStore(6 * time.Second)
	draftID := uuid.New()

	store.Post(draftID, CategoryError, "Phone number must be at least 10 digits")
	store.Post(draftID, CategorySuccess, "Order submitted successfully!")

	active := store.ListActive(draftID)
	if len(active) != 2 {
		t.Fatalf("expected 2 active notices, got %d", len(active))
	}
	if active[0].Category != CategoryError || active[1].Category != CategorySuccess {
		t.Fatal("notices should come back oldest first")
	}
	if !active[0].ExpiresAt.After(active[0].CreatedAt) {
		t.Fatal("expiry should be after creation")
	}
}

func TestNoticesExpire(t *testing.T) {
	store := NewStore(6 * time.Second)
	draftID := uuid.New()

	base := time.Now()
	store.now = func() time.Time { return base }
	store.Post(draftID, CategorySuccess, "Order submitted successfully!")

	store.now = func() time.Time { return base.Add(5 * time.Second) }
	if got := len(store.ListActive(draftID)); got != 1 {
		t.Fatalf("notice should still be active at 5s, got %d", got)
	}

	store.now = func() time.Time { return base.Add(7 * time.Second) }
	if got := len(store.ListActive(draftID)); got != 0 {
		t.Fatalf("notice should have expired at 7s, got %d", got)
	}
}

func TestListActiveIsPerDraft(t *testing.T) {
	store := NewStore(6 * time.Second)
	a := uuid.New()
	b := uuid.New()

	store.Post(a, CategoryError, "Please fix the errors above")

	if got := len(store.ListActive(b)); got != 0 {
		t.Fatalf("draft b should have no notices, got %d", got)
	}
	if got := len(store.ListActive(a)); got != 1 {
		t.Fatalf("draft a should have one notice, got %d", got)
	}
}

func TestSweep(t *testing.T) {
	store := NewStore(6 * time.Second)
	a := uuid.New()
	b := uuid.New()

	base := time.Now()
	store.now = func() time.Time { return base }
	store.Post(a, CategoryError, "old")
	store.Post(b, CategoryError, "old")

	store.now = func() time.Time { return base.Add(10 * time.Second) }
	store.Post(b, CategorySuccess, "fresh")

	if removed := store.Sweep(); removed != 2 {
		t.Fatalf("expected 2 swept notices, got %d", removed)
	}
	if got := len(store.ListActive(b)); got != 1 {
		t.Fatalf("fresh notice should survive the sweep, got %d", got)
	}
	if got := len(store.ListActive(a)); got != 0 {
		t.Fatalf("draft a should be empty after sweep, got %d", got)
	}
}

func TestClear(t *testing.T) {
	store := NewStore(6 * time.Second)
	draftID := uuid.New()

	store.Post(draftID, CategorySuccess, "Order submitted successfully!")
	store.Clear(draftID)

	if got := len(store.ListActive(draftID)); got != 0 {
		t.Fatalf("expected no notices after clear, got %d", got)
	}
}

func TestListActiveDoesNotAliasStore(t *testing.T) {
	store := NewStore(6 * time.Second)
	draftID := uuid.New()

	base := time.Now()
	store.now = func() time.Time { return base }
	store.Post(draftID, CategoryError, "first")

	store.now = func() time.Time { return base.Add(3 * time.Second) }
	store.Post(draftID, CategorySuccess, "second")

	held := store.ListActive(draftID)
	if len(held) != 2 {
		t.Fatalf("expected 2 active notices, got %d", len(held))
	}

	// Expiring the first notice compacts the stored slice; the slice
	// returned earlier must keep both entries intact.
	store.now = func() time.Time { return base.Add(7 * time.Second) }
	store.Sweep()
	store.Post(draftID, CategoryError, "third")

	if len(held) != 2 || held[0].Message != "first" || held[1].Message != "second" {
		t.Fatalf("held slice changed after sweep: %+v", held)
	}
}
