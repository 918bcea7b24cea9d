package database

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on startup. Statements are idempotent so a
// restart against an already-migrated database is a no-op.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		kind TEXT NOT NULL,
		video_id TEXT NOT NULL,
		session_id TEXT,
		user_id TEXT,
		provider TEXT,
		seconds DOUBLE PRECISION NOT NULL DEFAULT 0,
		data_used_mb DOUBLE PRECISION NOT NULL DEFAULT 0,
		size_bytes DOUBLE PRECISION NOT NULL DEFAULT 0,
		event_label TEXT,
		amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_kind_provider ON events (kind, provider)`,
	`CREATE TABLE IF NOT EXISTS provider_balances (
		provider TEXT PRIMARY KEY,
		earnings DOUBLE PRECISION NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS videos (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		upload_size DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_videos_created_at ON videos (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS withdrawal_requests (
		id UUID PRIMARY KEY,
		provider TEXT NOT NULL,
		account_name TEXT NOT NULL DEFAULT '',
		account_number TEXT NOT NULL DEFAULT '',
		bank_name TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		current_balance DOUBLE PRECISION NOT NULL DEFAULT 0,
		payload JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d failed: %v", i, err)
		}
	}
	return nil
}
