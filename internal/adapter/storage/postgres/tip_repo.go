package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"private-tips/internal/core/domain"
	"private-tips/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// TipRepo implements ports.TipRepository. The full record is kept as JSONB;
// state and tx_hash are duplicated into columns for querying.
type TipRepo struct {
	pool Pool
}

// NewTipRepo creates a new TipRepo.
func NewTipRepo(pool Pool) *TipRepo {
	return &TipRepo{pool: pool}
}

func (r *TipRepo) Create(ctx context.Context, rec *domain.TipRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal tip: %w", err)
	}
	query := `INSERT INTO tip_records (encryption_id, kol_id, state, tx_hash, record, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.pool.Exec(ctx, query,
		rec.EncryptionID, rec.KolID, string(rec.State), rec.TxHash, data, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert tip: %w", err)
	}
	return nil
}

func (r *TipRepo) Get(ctx context.Context, encryptionID string) (*domain.TipRecord, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `SELECT record FROM tip_records WHERE encryption_id = $1`, encryptionID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrNotFound("Tip")
		}
		return nil, fmt.Errorf("get tip: %w", err)
	}
	var rec domain.TipRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal tip %s: %w", encryptionID, err)
	}
	return &rec, nil
}

func (r *TipRepo) Update(ctx context.Context, rec *domain.TipRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal tip: %w", err)
	}
	query := `UPDATE tip_records SET state = $2, tx_hash = $3, record = $4, updated_at = $5 WHERE encryption_id = $1`

	tag, err := r.pool.Exec(ctx, query, rec.EncryptionID, string(rec.State), rec.TxHash, data, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update tip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrNotFound("Tip")
	}
	return nil
}
