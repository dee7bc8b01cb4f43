package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DuplicateGuard rejects repeat submissions inside a time window.
type DuplicateGuard interface {
	// Claim returns false when key was already claimed inside the window.
	Claim(ctx context.Context, key string) (bool, error)
	// Release forgets a claim so the visitor can retry.
	Release(ctx context.Context, key string) error
}

// NoopGuard accepts every submission.
type NoopGuard struct{}

func (NoopGuard) Claim(context.Context, string) (bool, error) { return true, nil }
func (NoopGuard) Release(context.Context, string) error       { return nil }

// RedisGuard claims keys with SET NX and a TTL.
type RedisGuard struct {
	client *redis.Client
	window time.Duration
}

// NewRedisGuard creates a guard; window <= 0 falls back to ten minutes.
func NewRedisGuard(client *redis.Client, window time.Duration) *RedisGuard {
	if window <= 0 {
		window = 10 * time.Minute
	}
	return &RedisGuard{client: client, window: window}
}

func (g *RedisGuard) Claim(ctx context.Context, key string) (bool, error) {
	return g.client.SetNX(ctx, key, "1", g.window).Result()
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, key).Err()
}

// duplicateKey hashes email and address; Redis never sees the raw email.
func duplicateKey(email, propertyAddress string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(email) + "|" + strings.ToLower(propertyAddress)))
	return "leads:dup:" + hex.EncodeToString(sum[:16])
}
