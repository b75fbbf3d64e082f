// Package postgres opens the shared database handle and bootstraps the
// ledger schema.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Open connects to postgres and verifies the connection.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Migrate creates the ledger tables if they do not exist. Amounts are stored
// as BIGINT micro-units; ids are assigned by the stores, not by sequences, so
// they start at zero and stay dense.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS policies (
			id              BIGINT PRIMARY KEY,
			holder          TEXT        NOT NULL,
			coverage_amount BIGINT      NOT NULL,
			premium         BIGINT      NOT NULL,
			start_date      TIMESTAMPTZ NOT NULL,
			end_date        TIMESTAMPTZ NOT NULL,
			is_active       BOOLEAN     NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS policies_holder_idx ON policies (holder)`,
		`CREATE TABLE IF NOT EXISTS claims (
			id                BIGINT PRIMARY KEY,
			policy_id         BIGINT      NOT NULL REFERENCES policies (id),
			claimant          TEXT        NOT NULL,
			claim_amount      BIGINT      NOT NULL,
			submission_date   TIMESTAMPTZ NOT NULL,
			status            TEXT        NOT NULL,
			medical_documents TEXT        NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS claims_claimant_idx ON claims (claimant)`,
		`CREATE TABLE IF NOT EXISTS treasury_custody (
			singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
			balance   BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0)
		)`,
		`INSERT INTO treasury_custody (singleton, balance) VALUES (TRUE, 0)
			ON CONFLICT (singleton) DO NOTHING`,
		`CREATE TABLE IF NOT EXISTS treasury_accounts (
			address TEXT PRIMARY KEY,
			balance BIGINT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS treasury_transfers (
			id        BIGSERIAL PRIMARY KEY,
			kind      TEXT        NOT NULL,
			from_addr TEXT        NOT NULL,
			to_addr   TEXT        NOT NULL,
			amount    BIGINT      NOT NULL,
			at        TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id      UUID PRIMARY KEY,
			type    TEXT        NOT NULL,
			at      TIMESTAMPTZ NOT NULL,
			payload JSONB       NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
