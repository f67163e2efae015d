package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultReplayTTL applies when a caller stores a relay response without a TTL.
const DefaultReplayTTL = 24 * time.Hour

// IdempotencyCache keeps relay-tx responses so a retried request with the
// same key replays the stored body instead of sending a second transaction.
type IdempotencyCache struct {
	client goredis.UniversalClient
	prefix string
}

// NewIdempotencyCache creates a Redis-backed replay cache.
func NewIdempotencyCache(client goredis.UniversalClient) *IdempotencyCache {
	return &IdempotencyCache{client: client, prefix: "relay:replay:"}
}

// Get returns the stored response body, or nil when none is stored.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := c.client.Get(ctx, c.prefix+key).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("reading relay replay %s: %w", key, err)
	}
	return body, nil
}

// Set stores body under key. A later Set replaces a pending response with the
// confirmed one. Every entry expires.
func (c *IdempotencyCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultReplayTTL
	}
	if err := c.client.Set(ctx, c.prefix+key, body, ttl).Err(); err != nil {
		return fmt.Errorf("storing relay replay %s: %w", key, err)
	}
	return nil
}
