package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps counters in process memory. Used in tests and as the
// fallback when no Redis URL is configured; counters do not survive restarts.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Counters
	ttl     time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Counters),
		ttl:     ttl,
	}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (Counters, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.entries[key]
	if !ok {
		return Counters{}, false, nil
	}
	if m.ttl > 0 && time.Since(c.LastAttempt) > m.ttl {
		delete(m.entries, key)
		return Counters{}, false, nil
	}
	return c, true, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, c Counters) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = c
	return nil
}

var _ Store = (*MemoryStore)(nil)
