package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const (
	fieldBlob      = "blob"
	fieldUpdatedAt = "updated_at"
	fieldVersion   = "version"
)

// ErrBalanceContended is returned when Update lost every optimistic retry.
var ErrBalanceContended = errors.New("balance update contended")

// BalanceStore implements ports.BalanceStore with one hash per KOL.
// Update is a WATCH/MULTI compare-and-swap.
type BalanceStore struct {
	client     goredis.UniversalClient
	prefix     string
	maxRetries int
	now        func() time.Time
}

// NewBalanceStore creates a new Redis-backed balance store.
func NewBalanceStore(client goredis.UniversalClient) *BalanceStore {
	return &BalanceStore{
		client:     client,
		prefix:     "balance:",
		maxRetries: 50,
		now:        time.Now,
	}
}

// Get returns nil, nil when the KOL has no balance.
func (s *BalanceStore) Get(ctx context.Context, kolID string) (*domain.EncryptedBalance, error) {
	return s.read(ctx, s.client, kolID)
}

// Set overwrites the blob; the last writer wins.
func (s *BalanceStore) Set(ctx context.Context, kolID string, blob json.RawMessage) (*domain.EncryptedBalance, error) {
	key := s.prefix + kolID
	now := s.now().UTC()

	var version *goredis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key, fieldBlob, []byte(blob), fieldUpdatedAt, now.Format(time.RFC3339Nano))
		version = pipe.HIncrBy(ctx, key, fieldVersion, 1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis balance set: %w", err)
	}
	return &domain.EncryptedBalance{KolID: kolID, Blob: blob, LastUpdated: now, Version: version.Val()}, nil
}

// Update reads, applies fn and writes back only if nobody else wrote in
// between, retrying up to maxRetries times.
func (s *BalanceStore) Update(ctx context.Context, kolID string, fn ports.BalanceUpdateFunc) (*domain.EncryptedBalance, error) {
	key := s.prefix + kolID
	var out *domain.EncryptedBalance

	txf := func(tx *goredis.Tx) error {
		current, err := s.read(ctx, tx, kolID)
		if err != nil {
			return err
		}
		blob, err := fn(current)
		if err != nil {
			return err
		}

		next := &domain.EncryptedBalance{KolID: kolID, Blob: blob, LastUpdated: s.now().UTC(), Version: 1}
		if current != nil {
			next.Version = current.Version + 1
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, key,
				fieldBlob, []byte(blob),
				fieldUpdatedAt, next.LastUpdated.Format(time.RFC3339Nano),
				fieldVersion, next.Version,
			)
			return nil
		})
		if err != nil {
			return err
		}
		out = next
		return nil
	}

	for i := 0; i < s.maxRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("redis balance update %s: %w", kolID, ErrBalanceContended)
}

// hashReader is satisfied by both a client and a WATCH transaction.
type hashReader interface {
	HGetAll(ctx context.Context, key string) *goredis.MapStringStringCmd
}

func (s *BalanceStore) read(ctx context.Context, c hashReader, kolID string) (*domain.EncryptedBalance, error) {
	fields, err := c.HGetAll(ctx, s.prefix+kolID).Result()
	if err != nil {
		return nil, fmt.Errorf("redis balance get: %w", err)
	}
	blob, ok := fields[fieldBlob]
	if !ok {
		return nil, nil
	}

	bal := &domain.EncryptedBalance{KolID: kolID, Blob: json.RawMessage(blob)}
	if ts, err := time.Parse(time.RFC3339Nano, fields[fieldUpdatedAt]); err == nil {
		bal.LastUpdated = ts
	}
	if v, err := strconv.ParseInt(fields[fieldVersion], 10, 64); err == nil {
		bal.Version = v
	}
	return bal, nil
}
