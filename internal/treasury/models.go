package treasury

import (
	"time"

	"healthledger/pkg/domain"
)

// TransferKind labels the direction and purpose of a fund movement.
type TransferKind string

const (
	// TransferDeposit moves a premium payment into custody.
	TransferDeposit TransferKind = "deposit"
	// TransferPayout moves an approved claim amount from custody to the
	// claimant's account.
	TransferPayout TransferKind = "payout"
	// TransferWithdrawal drains custody to the administrator's account.
	TransferWithdrawal TransferKind = "withdrawal"
)

// Transfer is one fund movement in or out of custody. Transfers are
// append-only; the custody balance is always the sum of deposits minus the
// sum of payouts and withdrawals.
type Transfer struct {
	Kind   TransferKind
	From   domain.Address
	To     domain.Address
	Amount domain.Amount
	At     time.Time
}
