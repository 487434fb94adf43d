// Package ratelimit implements the soft submission throttle. It is a
// best-effort brake on repeat form submissions, not a security control.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Counters is the persisted throttle state for one client: the timestamp of
// the last attempt and how many attempts landed in the rolling window.
type Counters struct {
	LastAttempt time.Time
	Count       int
}

// Store persists counters per client key.
type Store interface {
	Get(ctx context.Context, key string) (Counters, bool, error)
	Set(ctx context.Context, key string, c Counters) error
}

// Decision is the outcome of a throttle check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Limiter decides whether a submission attempt may proceed and records it.
type Limiter interface {
	Check(ctx context.Context, key string, now time.Time) (Decision, error)
}

// Config holds the throttle rules.
type Config struct {
	// MinInterval is the cool-down between consecutive attempts.
	MinInterval time.Duration
	// Window is the rolling window; the count resets after this much inactivity.
	Window time.Duration
	// MaxPerWindow is the attempt ceiling inside one window.
	MaxPerWindow int
	// BusinessPhone appears in the too-many-submissions message.
	BusinessPhone string
}

// SubmitLimiter applies the throttle rules over a Store.
type SubmitLimiter struct {
	store Store
	cfg   Config
}

func New(store Store, cfg Config) *SubmitLimiter {
	return &SubmitLimiter{store: store, cfg: cfg}
}

// Check runs the throttle for one attempt. Order matters: the cool-down is
// checked first and a denied attempt is not recorded. Only an allowed attempt
// writes back the new timestamp and count.
//
// A store failure allows the attempt and returns the error for logging; a
// broken counter store must not block bookings.
func (l *SubmitLimiter) Check(ctx context.Context, key string, now time.Time) (Decision, error) {
	counters, found, err := l.store.Get(ctx, key)
	if err != nil {
		return Decision{Allowed: true}, fmt.Errorf("rate limit read: %w", err)
	}

	if found {
		elapsed := now.Sub(counters.LastAttempt)
		if elapsed < l.cfg.MinInterval {
			return Decision{Reason: "Please wait a few seconds before trying again."}, nil
		}
		if elapsed > l.cfg.Window {
			counters.Count = 0
		}
	}

	if counters.Count >= l.cfg.MaxPerWindow {
		return Decision{
			Reason: fmt.Sprintf("Too many submissions. Please call %s to book directly.", l.cfg.BusinessPhone),
		}, nil
	}

	counters.LastAttempt = now
	counters.Count++
	if err := l.store.Set(ctx, key, counters); err != nil {
		return Decision{Allowed: true}, fmt.Errorf("rate limit write: %w", err)
	}

	return Decision{Allowed: true}, nil
}

var _ Limiter = (*SubmitLimiter)(nil)
