package policy

import (
	"context"

	"healthledger/pkg/domain"
)

// Store owns the policy arena: an append-only sequence of records addressed
// by monotonic id, plus a per-holder index. Implementations assign ids
// starting at zero and never delete or reuse an entry; the only in-place
// mutation is Deactivate.
type Store interface {
	// Create appends a new record and returns the id it was assigned.
	// The ID field of the argument is ignored.
	Create(ctx context.Context, p Policy) (domain.PolicyID, error)
	Get(ctx context.Context, id domain.PolicyID) (Policy, error)
	ListByHolder(ctx context.Context, holder domain.Address) ([]Policy, error)
	// Deactivate sets IsActive to false. Deactivating an already inactive
	// policy is a no-op.
	Deactivate(ctx context.Context, id domain.PolicyID) error
	Count(ctx context.Context) (uint64, error)
}
