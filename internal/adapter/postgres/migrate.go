package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS urls (
		id         BIGSERIAL PRIMARY KEY,
		name       VARCHAR(255) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS checks (
		id          BIGSERIAL PRIMARY KEY,
		url_id      BIGINT NOT NULL REFERENCES urls(id),
		status_code INTEGER,
		h1          TEXT,
		title       TEXT,
		description TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_checks_url_id_created_at ON checks (url_id, created_at DESC, id DESC);
`

// Migrate ensures the database schema exists. It is run once at startup.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schema)
	return err
}
