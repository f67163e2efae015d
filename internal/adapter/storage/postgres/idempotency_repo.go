package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// IdempotencyRepo implements ports.IdempotencyCache on the relay_responses table.
type IdempotencyRepo struct {
	pool Pool
	now  func() time.Time
}

// NewIdempotencyRepo creates a new IdempotencyRepo.
func NewIdempotencyRepo(pool Pool) *IdempotencyRepo {
	return &IdempotencyRepo{pool: pool, now: time.Now}
}

// Get returns the cached response, or nil if it is missing or expired.
func (r *IdempotencyRepo) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT response FROM relay_responses WHERE key = $1 AND expires_at > $2`

	var data []byte
	err := r.pool.QueryRow(ctx, query, key, r.now().UTC()).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get idempotency response: %w", err)
	}
	return data, nil
}

func (r *IdempotencyRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	query := `INSERT INTO relay_responses (key, response, expires_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET response = EXCLUDED.response, expires_at = EXCLUDED.expires_at`

	_, err := r.pool.Exec(ctx, query, key, value, r.now().UTC().Add(ttl))
	if err != nil {
		return fmt.Errorf("set idempotency response: %w", err)
	}
	return nil
}
