package treasury

import (
	"context"

	"healthledger/pkg/domain"
)

// Store keeps the custody balance, the per-identity settled account balances
// that payouts and withdrawals land on, and the append-only transfer history.
//
// Apply is the only mutation. A deposit credits custody; a payout or
// withdrawal debits custody and credits the destination account, returning
// sentinel.ErrInvalidState when custody cannot cover the amount so the
// facade can fail the whole operation atomically.
type Store interface {
	Balance(ctx context.Context) (domain.Amount, error)
	Apply(ctx context.Context, t Transfer) error
	AccountBalance(ctx context.Context, addr domain.Address) (domain.Amount, error)
	Transfers(ctx context.Context, limit int) ([]Transfer, error)
}
