package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// BalanceRepo implements ports.BalanceStore on the kol_balances table.
// A row with a NULL blob is a lock placeholder and reads as absent.
type BalanceRepo struct {
	pool Pool
	now  func() time.Time
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool, now: time.Now}
}

func (r *BalanceRepo) Get(ctx context.Context, kolID string) (*domain.EncryptedBalance, error) {
	query := `SELECT blob, version, updated_at FROM kol_balances WHERE kol_id = $1 AND blob IS NOT NULL`

	b := &domain.EncryptedBalance{KolID: kolID}
	var blob []byte
	err := r.pool.QueryRow(ctx, query, kolID).Scan(&blob, &b.Version, &b.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	b.Blob = json.RawMessage(blob)
	return b, nil
}

func (r *BalanceRepo) Set(ctx context.Context, kolID string, blob json.RawMessage) (*domain.EncryptedBalance, error) {
	query := `INSERT INTO kol_balances (kol_id, blob, version, updated_at)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (kol_id) DO UPDATE
		SET blob = EXCLUDED.blob, version = kol_balances.version + 1, updated_at = EXCLUDED.updated_at
		RETURNING version`

	b := &domain.EncryptedBalance{KolID: kolID, Blob: blob, LastUpdated: r.now().UTC()}
	if err := r.pool.QueryRow(ctx, query, kolID, []byte(blob), b.LastUpdated).Scan(&b.Version); err != nil {
		return nil, fmt.Errorf("set balance: %w", err)
	}
	return b, nil
}

// Update locks the KOL's row for the duration of fn. The placeholder insert
// gives first-time writers a row to lock.
func (r *BalanceRepo) Update(ctx context.Context, kolID string, fn ports.BalanceUpdateFunc) (*domain.EncryptedBalance, error) {
	var out *domain.EncryptedBalance
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO kol_balances (kol_id, version, updated_at) VALUES ($1, 0, $2) ON CONFLICT (kol_id) DO NOTHING`,
			kolID, r.now().UTC())
		if err != nil {
			return fmt.Errorf("reserve balance row: %w", err)
		}

		var (
			blob    string
			version int64
			updated time.Time
		)
		err = tx.QueryRow(ctx,
			`SELECT COALESCE(blob::text, ''), version, updated_at FROM kol_balances WHERE kol_id = $1 FOR UPDATE`,
			kolID).Scan(&blob, &version, &updated)
		if err != nil {
			return fmt.Errorf("lock balance: %w", err)
		}

		var current *domain.EncryptedBalance
		if blob != "" {
			current = &domain.EncryptedBalance{KolID: kolID, Blob: json.RawMessage(blob), Version: version, LastUpdated: updated}
		}
		next, err := fn(current)
		if err != nil {
			return err
		}

		b := &domain.EncryptedBalance{KolID: kolID, Blob: next, LastUpdated: r.now().UTC()}
		err = tx.QueryRow(ctx,
			`UPDATE kol_balances SET blob = $2, version = version + 1, updated_at = $3 WHERE kol_id = $1 RETURNING version`,
			kolID, []byte(next), b.LastUpdated).Scan(&b.Version)
		if err != nil {
			return fmt.Errorf("write balance: %w", err)
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
