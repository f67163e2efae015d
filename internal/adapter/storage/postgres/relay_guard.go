package postgres

import (
	"context"
	"fmt"
	"time"
)

// RelayGuard implements ports.RelayGuard on the relay_claims table.
// A NULL expiry holds the claim until it is released.
type RelayGuard struct {
	pool Pool
	now  func() time.Time
}

// NewRelayGuard creates a new RelayGuard.
func NewRelayGuard(pool Pool) *RelayGuard {
	return &RelayGuard{pool: pool, now: time.Now}
}

// Claim inserts the key, or takes over a claim whose expiry has passed.
func (g *RelayGuard) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	now := g.now().UTC()
	var expires *time.Time
	if ttl > 0 {
		at := now.Add(ttl)
		expires = &at
	}

	query := `INSERT INTO relay_claims (key, expires_at) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET expires_at = EXCLUDED.expires_at
		WHERE relay_claims.expires_at IS NOT NULL AND relay_claims.expires_at <= $3`

	tag, err := g.pool.Exec(ctx, query, key, expires, now)
	if err != nil {
		return false, fmt.Errorf("claim %s: %w", key, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (g *RelayGuard) Release(ctx context.Context, key string) error {
	if _, err := g.pool.Exec(ctx, `DELETE FROM relay_claims WHERE key = $1`, key); err != nil {
		return fmt.Errorf("release %s: %w", key, err)
	}
	return nil
}
