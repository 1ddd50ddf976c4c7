// Package redis keeps checkout idempotency keys in Redis.
package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix = "checkout:"

	// DefaultKeyTTL is how long a key blocks a repeated checkout.
	DefaultKeyTTL = 10 * time.Minute
)

// Connect parses a redis:// URL and checks the server is reachable.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err = rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}

// CheckoutGuard implements ports.CheckoutGuard with SETNX and a TTL.
type CheckoutGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCheckoutGuard creates a guard. A non-positive ttl uses DefaultKeyTTL.
func NewCheckoutGuard(rdb *redis.Client, ttl time.Duration) *CheckoutGuard {
	if ttl <= 0 {
		ttl = DefaultKeyTTL
	}
	return &CheckoutGuard{rdb: rdb, ttl: ttl}
}

// Claim stores key if absent. It reports false when the key is still held
// by an earlier checkout.
func (g *CheckoutGuard) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := g.rdb.SetNX(ctx, redisKey(key), time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim checkout key: %w", err)
	}
	return ok, nil
}

// Release deletes key so the checkout can be retried.
func (g *CheckoutGuard) Release(ctx context.Context, key string) error {
	if err := g.rdb.Del(ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to release checkout key: %w", err)
	}
	return nil
}

func redisKey(key string) string {
	return keyPrefix + strings.TrimSpace(key)
}

// NoopCheckoutGuard accepts every key. It is used when Redis is not
// configured.
type NoopCheckoutGuard struct{}

func (NoopCheckoutGuard) Claim(context.Context, string) (bool, error) { return true, nil }
func (NoopCheckoutGuard) Release(context.Context, string) error       { return nil }
