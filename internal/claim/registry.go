package claim

import (
	"context"
	"errors"
	"time"

	"healthledger/internal/policy"
	"healthledger/pkg/domain"
	dErrors "healthledger/pkg/domain-errors"
	"healthledger/pkg/platform/sentinel"
)

// Policies is the slice of the policy registry the claim registry needs:
// state validation on submit, and the coupled deactivation on adjudication.
type Policies interface {
	Get(ctx context.Context, id domain.PolicyID) (policy.Policy, error)
	Deactivate(ctx context.Context, id domain.PolicyID) error
}

// Registry owns claim records and runs the claim lifecycle against the
// policy registry.
type Registry struct {
	store    Store
	policies Policies
}

func NewRegistry(store Store, policies Policies) *Registry {
	return &Registry{store: store, policies: policies}
}

// Submit validates and records a new claim. Preconditions, in order:
//  1. the policy exists
//  2. the caller is the policy holder
//  3. the policy is active
//  4. the claim amount does not exceed the coverage amount
//  5. the claim amount is not negative
//
// A policy may accumulate any number of pending claims while active; the
// first adjudicated one ends its eligibility.
func (r *Registry) Submit(ctx context.Context, claimant domain.Address, policyID domain.PolicyID, amount domain.Amount, documents string, now time.Time) (Claim, error) {
	p, err := r.policies.Get(ctx, policyID)
	if err != nil {
		return Claim{}, err
	}
	if p.Holder != claimant {
		return Claim{}, dErrors.New(dErrors.CodeNotAuthorized, "caller is not the policy holder")
	}
	if !p.IsActive {
		return Claim{}, dErrors.New(dErrors.CodePolicyNotActive, "policy is not active")
	}
	if amount > p.CoverageAmount {
		return Claim{}, dErrors.New(dErrors.CodeClaimExceedsCoverage, "claim amount exceeds coverage")
	}
	if amount.IsNegative() {
		// Not just transport hygiene: approving a negative claim would
		// credit custody in the payout.
		return Claim{}, dErrors.New(dErrors.CodeBadRequest, "claim amount must not be negative")
	}

	c := Claim{
		PolicyID:         policyID,
		Claimant:         claimant,
		ClaimAmount:      amount,
		SubmissionDate:   now,
		Status:           StatusPending,
		MedicalDocuments: documents,
	}
	id, err := r.store.Create(ctx, c)
	if err != nil {
		return Claim{}, dErrors.Wrap(dErrors.CodeInternal, "create claim", err)
	}
	c.ID = id
	return c, nil
}

// Decide transitions a pending claim to Approved or Rejected and deactivates
// the referenced policy regardless of the outcome: a policy is consumed by
// its first adjudicated claim. The administrator check and the payout on
// approval belong to the ledger facade, not here.
func (r *Registry) Decide(ctx context.Context, id domain.ClaimID, approve bool) (Claim, error) {
	to := StatusRejected
	if approve {
		to = StatusApproved
	}
	err := r.store.SetStatus(ctx, id, StatusPending, to)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return Claim{}, dErrors.New(dErrors.CodeNotFound, "claim does not exist")
	case errors.Is(err, sentinel.ErrInvalidState):
		return Claim{}, dErrors.New(dErrors.CodeClaimAlreadyProcessed, "claim already processed")
	case err != nil:
		return Claim{}, dErrors.Wrap(dErrors.CodeInternal, "update claim status", err)
	}

	c, err := r.Get(ctx, id)
	if err != nil {
		return Claim{}, err
	}
	if err := r.policies.Deactivate(ctx, c.PolicyID); err != nil {
		return Claim{}, err
	}
	return c, nil
}

// Get returns a claim by id.
func (r *Registry) Get(ctx context.Context, id domain.ClaimID) (Claim, error) {
	c, err := r.store.Get(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return Claim{}, dErrors.New(dErrors.CodeNotFound, "claim does not exist")
	}
	if err != nil {
		return Claim{}, dErrors.Wrap(dErrors.CodeInternal, "load claim", err)
	}
	return c, nil
}

// ListByClaimant returns every claim ever filed by claimant, oldest first.
func (r *Registry) ListByClaimant(ctx context.Context, claimant domain.Address) ([]Claim, error) {
	return r.store.ListByClaimant(ctx, claimant)
}

// Count returns the total number of claims ever submitted.
func (r *Registry) Count(ctx context.Context) (uint64, error) {
	return r.store.Count(ctx)
}
