package ratelimit

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testConfig() Config {
	return Config{
		MinInterval:   3 * time.Second,
		Window:        5 * time.Minute,
		MaxPerWindow:  10,
		BusinessPhone: "(347) 299-0482",
	}
}

func TestCheck_FirstAttemptAllowed(t *testing.T) {
	limiter := New(NewMemoryStore(0), testConfig())

	decision, err := limiter.Check(context.Background(), "1.2.3.4", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Allowed {
		t.Fatalf("first attempt must be allowed: %v", decision)
	}
}

func TestCheck_CoolDownRejectsWithinThreeSeconds(t *testing.T) {
	limiter := New(NewMemoryStore(0), testConfig())
	ctx := context.Background()
	base := time.Now()

	if d, _ := limiter.Check(ctx, "ip", base); !d.Allowed {
		t.Fatalf("first attempt must pass")
	}

	d, err := limiter.Check(ctx, "ip", base.Add(2*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Allowed {
		t.Fatalf("attempt inside the cool-down must be denied")
	}
	if !strings.Contains(d.Reason, "wait") {
		t.Fatalf("cool-down denial must carry the wait message, got %q", d.Reason)
	}
}

func TestCheck_FourSecondsApartBothProceed(t *testing.T) {
	limiter := New(NewMemoryStore(0), testConfig())
	ctx := context.Background()
	base := time.Now()

	first, _ := limiter.Check(ctx, "ip", base)
	second, _ := limiter.Check(ctx, "ip", base.Add(4*time.Second))

	if !first.Allowed || !second.Allowed {
		t.Fatalf("attempts 4s apart must both be allowed: %v, %v", first, second)
	}
}

func TestCheck_TenthAttemptAllowedEleventhDenied(t *testing.T) {
	limiter := New(NewMemoryStore(0), testConfig())
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 10; i++ {
		d, err := limiter.Check(ctx, "ip", now)
		if err != nil {
			t.Fatalf("attempt %d error: %v", i+1, err)
		}
		if !d.Allowed {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
		now = now.Add(4 * time.Second)
	}

	d, _ := limiter.Check(ctx, "ip", now)
	if d.Allowed {
		t.Fatalf("11th attempt inside the window must be denied")
	}
	if !strings.Contains(d.Reason, "Too many submissions") {
		t.Fatalf("ceiling denial must carry the too-many message, got %q", d.Reason)
	}
	if !strings.Contains(d.Reason, "(347) 299-0482") {
		t.Fatalf("ceiling denial must include the business phone, got %q", d.Reason)
	}
}

func TestCheck_WindowResetsAfterFiveMinutesIdle(t *testing.T) {
	limiter := New(NewMemoryStore(0), testConfig())
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 10; i++ {
		limiter.Check(ctx, "ip", now)
		now = now.Add(4 * time.Second)
	}

	// Idle past the window: the rolling count starts over.
	now = now.Add(6 * time.Minute)
	d, err := limiter.Check(ctx, "ip", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Allowed {
		t.Fatalf("attempt after an idle window must be allowed: %v", d)
	}
}

func TestCheck_KeysAreIndependent(t *testing.T) {
	limiter := New(NewMemoryStore(0), testConfig())
	ctx := context.Background()
	base := time.Now()

	limiter.Check(ctx, "first", base)
	d, _ := limiter.Check(ctx, "second", base.Add(time.Second))
	if !d.Allowed {
		t.Fatalf("a different client must not share the cool-down")
	}
}

func newRedisTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStoreWithClient(client, 10*time.Minute), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := newRedisTestStore(t)
	ctx := context.Background()

	if _, found, err := store.Get(ctx, "ip"); err != nil || found {
		t.Fatalf("expected empty store, found=%v err=%v", found, err)
	}

	want := Counters{LastAttempt: time.UnixMilli(1700000000000), Count: 3}
	if err := store.Set(ctx, "ip", want); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, found, err := store.Get(ctx, "ip")
	if err != nil || !found {
		t.Fatalf("get after set: found=%v err=%v", found, err)
	}
	if !got.LastAttempt.Equal(want.LastAttempt) || got.Count != want.Count {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestRedisStore_CountersExpire(t *testing.T) {
	store, mr := newRedisTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "ip", Counters{LastAttempt: time.Now(), Count: 1}); err != nil {
		t.Fatalf("set: %v", err)
	}

	mr.FastForward(11 * time.Minute)

	if _, found, err := store.Get(ctx, "ip"); err != nil || found {
		t.Fatalf("counters must expire with the TTL, found=%v err=%v", found, err)
	}
}

func TestCheck_WorksAgainstRedisStore(t *testing.T) {
	store, _ := newRedisTestStore(t)
	limiter := New(store, testConfig())
	ctx := context.Background()
	base := time.Now()

	first, err := limiter.Check(ctx, "ip", base)
	if err != nil || !first.Allowed {
		t.Fatalf("first attempt: allowed=%v err=%v", first.Allowed, err)
	}

	second, err := limiter.Check(ctx, "ip", base.Add(time.Second))
	if err != nil {
		t.Fatalf("second attempt error: %v", err)
	}
	if second.Allowed {
		t.Fatalf("cool-down must hold through the redis store")
	}
}
