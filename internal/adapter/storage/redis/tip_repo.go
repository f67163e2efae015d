package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"private-tips/internal/core/domain"
	"private-tips/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultTipTTL is how long tip records are kept.
const DefaultTipTTL = 7 * 24 * time.Hour

// TipRepository implements ports.TipRepository, one JSON document per tip.
type TipRepository struct {
	client goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewTipRepository creates a new Redis-backed tip repository.
func NewTipRepository(client goredis.UniversalClient, ttl time.Duration) *TipRepository {
	if ttl <= 0 {
		ttl = DefaultTipTTL
	}
	return &TipRepository{client: client, prefix: "tip:record:", ttl: ttl}
}

func (r *TipRepository) Create(ctx context.Context, rec *domain.TipRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal tip: %w", err)
	}
	ok, err := r.client.SetNX(ctx, r.prefix+rec.EncryptionID, data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis tip create: %w", err)
	}
	if !ok {
		return fmt.Errorf("tip %s already exists", rec.EncryptionID)
	}
	return nil
}

func (r *TipRepository) Get(ctx context.Context, encryptionID string) (*domain.TipRecord, error) {
	data, err := r.client.Get(ctx, r.prefix+encryptionID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, apperror.ErrNotFound("Tip")
		}
		return nil, fmt.Errorf("redis tip get: %w", err)
	}
	var rec domain.TipRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal tip %s: %w", encryptionID, err)
	}
	return &rec, nil
}

// Update replaces an existing record, keeping its expiry.
func (r *TipRepository) Update(ctx context.Context, rec *domain.TipRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal tip: %w", err)
	}
	err = r.client.SetArgs(ctx, r.prefix+rec.EncryptionID, data, goredis.SetArgs{Mode: "XX", KeepTTL: true}).Err()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return apperror.ErrNotFound("Tip")
		}
		return fmt.Errorf("redis tip update: %w", err)
	}
	return nil
}
