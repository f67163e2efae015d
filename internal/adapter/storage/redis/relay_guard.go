package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RelayGuard implements ports.RelayGuard using Redis SET NX.
type RelayGuard struct {
	client goredis.UniversalClient
	prefix string
}

// NewRelayGuard creates a new Redis-backed guard.
func NewRelayGuard(client goredis.UniversalClient) *RelayGuard {
	return &RelayGuard{
		client: client,
		prefix: "guard:",
	}
}

// Claim atomically takes the key if nobody holds it.
// Returns true if the key was free, false if it is already claimed.
// A zero ttl keeps the claim until Release.
func (g *RelayGuard) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := g.client.SetArgs(ctx, g.prefix+key, time.Now().UnixMilli(), goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis guard claim: %w", err)
	}
	return result == "OK", nil
}

// Release drops the claim. Releasing a free key is not an error.
func (g *RelayGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, g.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis guard release: %w", err)
	}
	return nil
}
