package policy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"healthledger/pkg/domain"
	"healthledger/pkg/platform/sentinel"
	txcontext "healthledger/pkg/platform/tx"
)

// PostgresStore persists policies in the policies table. Id allocation uses
// MAX(id)+1 inside the caller's transaction; the ledger facade serializes all
// mutating operations, so the allocation cannot race.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) Create(ctx context.Context, p Policy) (domain.PolicyID, error) {
	query := `
		INSERT INTO policies (id, holder, coverage_amount, premium, start_date, end_date, is_active)
		SELECT COALESCE(MAX(id) + 1, 0), $1, $2, $3, $4, $5, $6 FROM policies
		RETURNING id
	`
	var id int64
	err := s.execer(ctx).QueryRowContext(ctx, query,
		string(p.Holder),
		int64(p.CoverageAmount),
		int64(p.Premium),
		p.StartDate,
		p.EndDate,
		p.IsActive,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert policy: %w", err)
	}
	return domain.PolicyID(id), nil
}

func (s *PostgresStore) Get(ctx context.Context, id domain.PolicyID) (Policy, error) {
	query := `
		SELECT id, holder, coverage_amount, premium, start_date, end_date, is_active
		FROM policies WHERE id = $1
	`
	p, err := scanPolicy(s.execer(ctx).QueryRowContext(ctx, query, int64(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return Policy{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Policy{}, fmt.Errorf("select policy: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) ListByHolder(ctx context.Context, holder domain.Address) ([]Policy, error) {
	query := `
		SELECT id, holder, coverage_amount, premium, start_date, end_date, is_active
		FROM policies WHERE holder = $1 ORDER BY id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, string(holder))
	if err != nil {
		return nil, fmt.Errorf("select policies by holder: %w", err)
	}
	defer rows.Close()

	var out []Policy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan policy: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Deactivate(ctx context.Context, id domain.PolicyID) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`UPDATE policies SET is_active = FALSE WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("deactivate policy: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Count(ctx context.Context) (uint64, error) {
	var n uint64
	err := s.execer(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM policies`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count policies: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPolicy(row rowScanner) (Policy, error) {
	var (
		p        Policy
		id       int64
		holder   string
		coverage int64
		prem     int64
	)
	if err := row.Scan(&id, &holder, &coverage, &prem, &p.StartDate, &p.EndDate, &p.IsActive); err != nil {
		return Policy{}, err
	}
	p.ID = domain.PolicyID(id)
	p.Holder = domain.Address(holder)
	p.CoverageAmount = domain.Amount(coverage)
	p.Premium = domain.Amount(prem)
	return p, nil
}
