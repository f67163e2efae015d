package postgres

import (
	"context"
	"fmt"
)

// schema is applied idempotently at startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS kol_balances (
		kol_id     TEXT PRIMARY KEY,
		blob       JSONB,
		version    BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tip_records (
		encryption_id TEXT PRIMARY KEY,
		kol_id        TEXT NOT NULL DEFAULT '',
		state         TEXT NOT NULL,
		tx_hash       TEXT NOT NULL DEFAULT '',
		record        JSONB NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tip_records_kol ON tip_records (kol_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id            UUID PRIMARY KEY,
		actor         TEXT NOT NULL DEFAULT '',
		action        TEXT NOT NULL,
		resource_type TEXT NOT NULL,
		resource_id   TEXT NOT NULL DEFAULT '',
		details       TEXT NOT NULL DEFAULT '',
		ip_address    TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS relay_claims (
		key        TEXT PRIMARY KEY,
		expires_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS relay_responses (
		key        TEXT PRIMARY KEY,
		response   BYTEA NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate creates the tables the repositories need.
func Migrate(ctx context.Context, pool Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
