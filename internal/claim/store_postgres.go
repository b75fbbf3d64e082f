package claim

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"healthledger/pkg/domain"
	"healthledger/pkg/platform/sentinel"
	txcontext "healthledger/pkg/platform/tx"
)

// PostgresStore persists claims in the claims table. Id allocation mirrors
// the policy store: MAX(id)+1 under the facade's serialized mutation boundary.
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

func (s *PostgresStore) Create(ctx context.Context, c Claim) (domain.ClaimID, error) {
	query := `
		INSERT INTO claims (id, policy_id, claimant, claim_amount, submission_date, status, medical_documents)
		SELECT COALESCE(MAX(id) + 1, 0), $1, $2, $3, $4, $5, $6 FROM claims
		RETURNING id
	`
	var id int64
	err := s.execer(ctx).QueryRowContext(ctx, query,
		int64(c.PolicyID),
		string(c.Claimant),
		int64(c.ClaimAmount),
		c.SubmissionDate,
		string(c.Status),
		c.MedicalDocuments,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert claim: %w", err)
	}
	return domain.ClaimID(id), nil
}

func (s *PostgresStore) Get(ctx context.Context, id domain.ClaimID) (Claim, error) {
	query := `
		SELECT id, policy_id, claimant, claim_amount, submission_date, status, medical_documents
		FROM claims WHERE id = $1
	`
	c, err := scanClaim(s.execer(ctx).QueryRowContext(ctx, query, int64(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return Claim{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Claim{}, fmt.Errorf("select claim: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) ListByClaimant(ctx context.Context, claimant domain.Address) ([]Claim, error) {
	query := `
		SELECT id, policy_id, claimant, claim_amount, submission_date, status, medical_documents
		FROM claims WHERE claimant = $1 ORDER BY id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, string(claimant))
	if err != nil {
		return nil, fmt.Errorf("select claims by claimant: %w", err)
	}
	defer rows.Close()

	var out []Claim
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) SetStatus(ctx context.Context, id domain.ClaimID, from, to Status) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`UPDATE claims SET status = $1 WHERE id = $2 AND status = $3`,
		string(to), int64(id), string(from))
	if err != nil {
		return fmt.Errorf("update claim status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 1 {
		return nil
	}
	// Distinguish a missing claim from a stale status.
	var exists bool
	if err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM claims WHERE id = $1)`, int64(id)).Scan(&exists); err != nil {
		return fmt.Errorf("check claim existence: %w", err)
	}
	if !exists {
		return sentinel.ErrNotFound
	}
	return sentinel.ErrInvalidState
}

func (s *PostgresStore) Count(ctx context.Context) (uint64, error) {
	var n uint64
	if err := s.execer(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM claims`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count claims: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClaim(row rowScanner) (Claim, error) {
	var (
		c        Claim
		id       int64
		policyID int64
		claimant string
		amount   int64
		status   string
	)
	if err := row.Scan(&id, &policyID, &claimant, &amount, &c.SubmissionDate, &status, &c.MedicalDocuments); err != nil {
		return Claim{}, err
	}
	c.ID = domain.ClaimID(id)
	c.PolicyID = domain.PolicyID(policyID)
	c.Claimant = domain.Address(claimant)
	c.ClaimAmount = domain.Amount(amount)
	c.Status = Status(status)
	return c, nil
}
