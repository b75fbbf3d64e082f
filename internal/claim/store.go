package claim

import (
	"context"

	"healthledger/pkg/domain"
)

// Store owns the claim arena: append-only records addressed by monotonic id
// plus a per-claimant index. The only in-place mutation is the status
// transition, guarded by SetStatus.
type Store interface {
	// Create appends a new record and returns the id it was assigned.
	// The ID field of the argument is ignored.
	Create(ctx context.Context, c Claim) (domain.ClaimID, error)
	Get(ctx context.Context, id domain.ClaimID) (Claim, error)
	ListByClaimant(ctx context.Context, claimant domain.Address) ([]Claim, error)
	// SetStatus transitions a claim from one status to another. Returns
	// sentinel.ErrInvalidState when the current status is not from, and
	// sentinel.ErrNotFound for an unknown id.
	SetStatus(ctx context.Context, id domain.ClaimID, from, to Status) error
	Count(ctx context.Context) (uint64, error)
}
