// Package treasury holds custody of collected premiums and settles payouts
// and administrator withdrawals against it.
package treasury

import (
	"context"
	"errors"
	"time"

	"healthledger/pkg/domain"
	dErrors "healthledger/pkg/domain-errors"
	"healthledger/pkg/platform/sentinel"
)

type Treasury struct {
	store Store
}

func New(store Store) *Treasury {
	return &Treasury{store: store}
}

// Deposit adds a premium payment to custody. The full paid value is retained,
// including any excess over the computed premium.
func (t *Treasury) Deposit(ctx context.Context, from domain.Address, amount domain.Amount, at time.Time) error {
	if amount.IsNegative() {
		return dErrors.New(dErrors.CodeBadRequest, "deposit amount must not be negative")
	}
	if err := t.store.Apply(ctx, Transfer{Kind: TransferDeposit, From: from, Amount: amount, At: at}); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "apply deposit", err)
	}
	return nil
}

// Pay settles an approved claim amount from custody to the claimant. A payout
// custody cannot cover fails whole with InsufficientTreasuryBalance; nothing
// is partially paid.
func (t *Treasury) Pay(ctx context.Context, to domain.Address, amount domain.Amount, at time.Time) error {
	err := t.store.Apply(ctx, Transfer{Kind: TransferPayout, To: to, Amount: amount, At: at})
	if errors.Is(err, sentinel.ErrInvalidState) {
		return dErrors.New(dErrors.CodeInsufficientTreasuryBalance, "treasury balance cannot cover payout")
	}
	if err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "apply payout", err)
	}
	return nil
}

// WithdrawAll drains the entire custody balance to the given account and
// returns the amount moved. A zero balance is a no-op, not a failure.
func (t *Treasury) WithdrawAll(ctx context.Context, to domain.Address, at time.Time) (domain.Amount, error) {
	balance, err := t.store.Balance(ctx)
	if err != nil {
		return 0, dErrors.Wrap(dErrors.CodeInternal, "read custody balance", err)
	}
	if balance.IsZero() {
		return 0, nil
	}
	if err := t.store.Apply(ctx, Transfer{Kind: TransferWithdrawal, To: to, Amount: balance, At: at}); err != nil {
		return 0, dErrors.Wrap(dErrors.CodeInternal, "apply withdrawal", err)
	}
	return balance, nil
}

// Balance returns the current custody balance.
func (t *Treasury) Balance(ctx context.Context) (domain.Amount, error) {
	return t.store.Balance(ctx)
}

// AccountBalance returns the settled balance credited to addr by payouts and
// withdrawals.
func (t *Treasury) AccountBalance(ctx context.Context, addr domain.Address) (domain.Amount, error) {
	return t.store.AccountBalance(ctx, addr)
}

// Transfers returns the most recent fund movements, newest first.
func (t *Treasury) Transfers(ctx context.Context, limit int) ([]Transfer, error) {
	return t.store.Transfers(ctx, limit)
}
