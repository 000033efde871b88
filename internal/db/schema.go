package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS sources (
	id          VARCHAR(36) PRIMARY KEY,
	url         VARCHAR(2048) NOT NULL,
	status      VARCHAR(16) NOT NULL DEFAULT 'pending',
	progress    INT NOT NULL DEFAULT 0,
	metadata    JSONB,
	transcript  JSONB,
	error       TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_sources_status ON sources (status);

CREATE TABLE IF NOT EXISTS quotes (
	id                 VARCHAR(36) PRIMARY KEY,
	text               TEXT NOT NULL,
	citation           TEXT NOT NULL,
	deep_link          VARCHAR(2048) NOT NULL DEFAULT '',
	timestamp_seconds  DOUBLE PRECISION NOT NULL DEFAULT 0,
	source_id          VARCHAR(36) NOT NULL,
	selected_text      TEXT NOT NULL DEFAULT '',
	created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_quotes_source ON quotes (source_id);

CREATE TABLE IF NOT EXISTS app_settings (
	key        VARCHAR(64) PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate applies the schema. All statements are idempotent, so running it
// on every startup is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
