package treasury

import (
	"context"
	"database/sql"
	"fmt"

	"healthledger/pkg/domain"
	"healthledger/pkg/platform/sentinel"
	txcontext "healthledger/pkg/platform/tx"
)

// PostgresStore keeps custody in a single-row table, account balances in an
// upserted accounts table, and the transfer history append-only. Debits guard
// the balance in the UPDATE itself so an uncovered payout never half-applies.
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

func (s *PostgresStore) Balance(ctx context.Context) (domain.Amount, error) {
	var balance int64
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT balance FROM treasury_custody WHERE singleton = TRUE`).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("select custody balance: %w", err)
	}
	return domain.Amount(balance), nil
}

func (s *PostgresStore) Apply(ctx context.Context, t Transfer) error {
	ex := s.execer(ctx)
	switch t.Kind {
	case TransferDeposit:
		if _, err := ex.ExecContext(ctx,
			`UPDATE treasury_custody SET balance = balance + $1 WHERE singleton = TRUE`,
			int64(t.Amount)); err != nil {
			return fmt.Errorf("credit custody: %w", err)
		}
	case TransferPayout, TransferWithdrawal:
		res, err := ex.ExecContext(ctx,
			`UPDATE treasury_custody SET balance = balance - $1 WHERE singleton = TRUE AND balance >= $1`,
			int64(t.Amount))
		if err != nil {
			return fmt.Errorf("debit custody: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return sentinel.ErrInvalidState
		}
		if _, err := ex.ExecContext(ctx, `
			INSERT INTO treasury_accounts (address, balance) VALUES ($1, $2)
			ON CONFLICT (address) DO UPDATE SET balance = treasury_accounts.balance + EXCLUDED.balance
		`, string(t.To), int64(t.Amount)); err != nil {
			return fmt.Errorf("credit account: %w", err)
		}
	default:
		return sentinel.ErrInvalidState
	}

	if _, err := ex.ExecContext(ctx, `
		INSERT INTO treasury_transfers (kind, from_addr, to_addr, amount, at)
		VALUES ($1, $2, $3, $4, $5)
	`, string(t.Kind), string(t.From), string(t.To), int64(t.Amount), t.At); err != nil {
		return fmt.Errorf("append transfer: %w", err)
	}
	return nil
}

func (s *PostgresStore) AccountBalance(ctx context.Context, addr domain.Address) (domain.Amount, error) {
	var balance int64
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT COALESCE((SELECT balance FROM treasury_accounts WHERE address = $1), 0)`,
		string(addr)).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("select account balance: %w", err)
	}
	return domain.Amount(balance), nil
}

func (s *PostgresStore) Transfers(ctx context.Context, limit int) ([]Transfer, error) {
	query := `
		SELECT kind, from_addr, to_addr, amount, at
		FROM treasury_transfers ORDER BY id DESC
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select transfers: %w", err)
	}
	defer rows.Close()

	var out []Transfer
	for rows.Next() {
		var (
			t      Transfer
			kind   string
			from   string
			to     string
			amount int64
		)
		if err := rows.Scan(&kind, &from, &to, &amount, &t.At); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		t.Kind = TransferKind(kind)
		t.From = domain.Address(from)
		t.To = domain.Address(to)
		t.Amount = domain.Amount(amount)
		out = append(out, t)
	}
	return out, rows.Err()
}
