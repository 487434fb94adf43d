package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists counters in Redis so they survive restarts. Each client
// key maps to two string values, a unix-millisecond timestamp and a count,
// both expiring after the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis using a URL (redis://...).
func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opt), ttl: ttl}, nil
}

// NewRedisStoreWithClient wraps an existing client (tests).
func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Ping verifies connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) lastKey(key string) string {
	return "booking:ratelimit:" + key + ":last"
}

func (r *RedisStore) countKey(key string) string {
	return "booking:ratelimit:" + key + ":count"
}

func (r *RedisStore) Get(ctx context.Context, key string) (Counters, bool, error) {
	values, err := r.client.MGet(ctx, r.lastKey(key), r.countKey(key)).Result()
	if err != nil {
		return Counters{}, false, err
	}
	if values[0] == nil {
		return Counters{}, false, nil
	}

	lastMs, err := strconv.ParseInt(asString(values[0]), 10, 64)
	if err != nil {
		return Counters{}, false, fmt.Errorf("corrupt rate limit timestamp: %w", err)
	}

	count := 0
	if values[1] != nil {
		count, err = strconv.Atoi(asString(values[1]))
		if err != nil {
			return Counters{}, false, fmt.Errorf("corrupt rate limit count: %w", err)
		}
	}

	return Counters{
		LastAttempt: time.UnixMilli(lastMs),
		Count:       count,
	}, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, c Counters) error {
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.lastKey(key), strconv.FormatInt(c.LastAttempt.UnixMilli(), 10), r.ttl)
	pipe.Set(ctx, r.countKey(key), strconv.Itoa(c.Count), r.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

var _ Store = (*RedisStore)(nil)
