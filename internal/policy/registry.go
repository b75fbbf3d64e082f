package policy

import (
	"context"
	"errors"
	"time"

	"healthledger/internal/premium"
	"healthledger/pkg/domain"
	dErrors "healthledger/pkg/domain-errors"
	"healthledger/pkg/platform/sentinel"
)

// Registry issues policies and answers policy queries. It owns all Policy
// records through its Store; nothing else writes them.
type Registry struct {
	store Store
	term  time.Duration
}

// NewRegistry builds a Registry. term is the fixed coverage term added to the
// purchase time to produce the policy end date.
func NewRegistry(store Store, term time.Duration) *Registry {
	return &Registry{store: store, term: term}
}

// Purchase validates and issues a new policy for holder. Preconditions are
// checked in order, each with its own failure code:
//  1. coverage within [MinCoverage, MaxCoverage]
//  2. paid covers the computed premium
//
// The recorded premium is the computed quote, not the amount paid; any excess
// payment is retained by the treasury and never refunded.
func (r *Registry) Purchase(ctx context.Context, holder domain.Address, coverage, paid domain.Amount, now time.Time) (Policy, error) {
	if !premium.InRange(coverage) {
		return Policy{}, dErrors.New(dErrors.CodeInvalidCoverageAmount, "invalid coverage amount")
	}
	quote, err := premium.Quote(coverage)
	if err != nil {
		return Policy{}, err
	}
	if paid < quote {
		return Policy{}, dErrors.New(dErrors.CodeInsufficientPremium, "insufficient premium payment")
	}

	p := Policy{
		Holder:         holder,
		CoverageAmount: coverage,
		Premium:        quote,
		StartDate:      now,
		EndDate:        now.Add(r.term),
		IsActive:       true,
	}
	id, err := r.store.Create(ctx, p)
	if err != nil {
		return Policy{}, dErrors.Wrap(dErrors.CodeInternal, "create policy", err)
	}
	p.ID = id
	return p, nil
}

// Get returns a policy by id.
func (r *Registry) Get(ctx context.Context, id domain.PolicyID) (Policy, error) {
	p, err := r.store.Get(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return Policy{}, dErrors.New(dErrors.CodeNotFound, "policy does not exist")
	}
	if err != nil {
		return Policy{}, dErrors.Wrap(dErrors.CodeInternal, "load policy", err)
	}
	return p, nil
}

// ListByHolder returns every policy ever issued to holder, oldest first.
func (r *Registry) ListByHolder(ctx context.Context, holder domain.Address) ([]Policy, error) {
	return r.store.ListByHolder(ctx, holder)
}

// Deactivate marks a policy inactive. Called once per policy lifetime, when
// its first claim is adjudicated.
func (r *Registry) Deactivate(ctx context.Context, id domain.PolicyID) error {
	err := r.store.Deactivate(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "policy does not exist")
	}
	if err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "deactivate policy", err)
	}
	return nil
}

// Count returns the total number of policies ever issued.
func (r *Registry) Count(ctx context.Context) (uint64, error) {
	return r.store.Count(ctx)
}
