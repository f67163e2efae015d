package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"encoding/json"
	"time"

	"private-tips/internal/core/domain"
)

// BalanceUpdateFunc computes the next blob from the current balance
// (nil when the KOL has none yet).
type BalanceUpdateFunc func(current *domain.EncryptedBalance) (json.RawMessage, error)

// BalanceStore keeps one opaque encrypted balance per KOL.
type BalanceStore interface {
	// Get returns nil, nil when no balance was ever written.
	Get(ctx context.Context, kolID string) (*domain.EncryptedBalance, error)
	// Set overwrites unconditionally; the last writer wins.
	Set(ctx context.Context, kolID string, blob json.RawMessage) (*domain.EncryptedBalance, error)
	// Update applies fn atomically with respect to other Update calls.
	Update(ctx context.Context, kolID string, fn BalanceUpdateFunc) (*domain.EncryptedBalance, error)
}

// TipRepository persists tip workflow records.
type TipRepository interface {
	Create(ctx context.Context, rec *domain.TipRecord) error
	// Get returns apperror TIP_004 when the record does not exist.
	Get(ctx context.Context, encryptionID string) (*domain.TipRecord, error)
	Update(ctx context.Context, rec *domain.TipRecord) error
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// RelayGuard hands out exclusive, expiring claims on a key.
type RelayGuard interface {
	// Claim returns true if the key was free and is now held by the caller.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// IdempotencyCache stores replayable responses by key.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RateLimiter counts requests per key in fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*domain.RateLimitResult, error)
}
