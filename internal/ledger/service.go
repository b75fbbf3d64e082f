// Package ledger composes the premium calculator, the policy and claim
// registries, access control, and the treasury into the four public mutating
// operations plus read-only queries. It is the only entry point external
// collaborators call.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"healthledger/internal/accesscontrol"
	"healthledger/internal/claim"
	"healthledger/internal/event"
	"healthledger/internal/platform/metrics"
	"healthledger/internal/policy"
	"healthledger/internal/treasury"
	"healthledger/pkg/domain"
	dErrors "healthledger/pkg/domain-errors"
	"healthledger/pkg/platform/middleware/device"
	txcontext "healthledger/pkg/platform/tx"
)

// Service is the ledger facade. A single mutex serializes every mutating
// operation, standing in for the deterministic single-writer execution
// environment the ledger semantics assume: an operation either fully applies
// or leaves state untouched, and queries only ever observe committed state.
type Service struct {
	mu sync.Mutex

	access   *accesscontrol.AccessControl
	policies *policy.Registry
	claims   *claim.Registry
	treasury *treasury.Treasury
	events   *event.Publisher
	metrics  *metrics.Metrics
	logger   *slog.Logger
	tracer   trace.Tracer

	// db, when set, wraps each mutating operation in a SQL transaction so
	// the postgres-backed stores commit all-or-nothing. Memory-backed
	// deployments leave it nil and rely on precondition ordering alone.
	db *sql.DB

	now func() time.Time
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithDB enables the transactional mutation boundary for postgres stores.
func WithDB(db *sql.DB) Option {
	return func(s *Service) { s.db = db }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(
	access *accesscontrol.AccessControl,
	policies *policy.Registry,
	claims *claim.Registry,
	tre *treasury.Treasury,
	events *event.Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		access:   access,
		policies: policies,
		claims:   claims,
		treasury: tre,
		events:   events,
		metrics:  m,
		logger:   logger,
		tracer:   otel.Tracer("healthledger/ledger"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// mutate runs fn inside the ledger's serialized, atomic mutation boundary.
func (s *Service) mutate(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, op)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return fn(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "begin transaction", err)
	}
	if err := fn(txcontext.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.ErrorContext(ctx, "rollback failed", "op", op, "error", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "commit transaction", err)
	}
	return nil
}

// PurchasePolicy issues a new policy for caller, custodying the full paid
// value (any excess over the computed premium is retained, never refunded).
func (s *Service) PurchasePolicy(ctx context.Context, caller domain.Address, coverage, paid domain.Amount) (policy.Policy, error) {
	if caller.IsNil() {
		return policy.Policy{}, dErrors.New(dErrors.CodeUnauthorized, "missing caller identity")
	}

	var issued policy.Policy
	err := s.mutate(ctx, "ledger.PurchasePolicy", func(ctx context.Context) error {
		now := s.now()
		p, err := s.policies.Purchase(ctx, caller, coverage, paid, now)
		if err != nil {
			return err
		}
		if err := s.treasury.Deposit(ctx, caller, paid, now); err != nil {
			return err
		}
		if err := s.events.Emit(ctx, event.Event{
			Type:     event.TypePolicyPurchased,
			Actor:    caller,
			PolicyID: p.ID,
			Amount:   p.CoverageAmount,
			Premium:  p.Premium,
			Device:   device.GetDevice(ctx),
		}); err != nil {
			return err
		}
		issued = p
		return nil
	})
	if err != nil {
		return policy.Policy{}, err
	}

	s.logger.InfoContext(ctx, "policy purchased",
		"policy_id", issued.ID.String(),
		"holder", caller.String(),
		"coverage", issued.CoverageAmount.String(),
		"premium", issued.Premium.String(),
	)
	if s.metrics != nil {
		s.metrics.PoliciesPurchased.Inc()
		s.refreshCustodyGauge(ctx)
	}
	return issued, nil
}

// SubmitClaim records a new pending claim by caller against one of its
// active policies.
func (s *Service) SubmitClaim(ctx context.Context, caller domain.Address, policyID domain.PolicyID, amount domain.Amount, documents string) (claim.Claim, error) {
	if caller.IsNil() {
		return claim.Claim{}, dErrors.New(dErrors.CodeUnauthorized, "missing caller identity")
	}

	var submitted claim.Claim
	err := s.mutate(ctx, "ledger.SubmitClaim", func(ctx context.Context) error {
		c, err := s.claims.Submit(ctx, caller, policyID, amount, documents, s.now())
		if err != nil {
			return err
		}
		if err := s.events.Emit(ctx, event.Event{
			Type:     event.TypeClaimSubmitted,
			Actor:    caller,
			PolicyID: policyID,
			ClaimID:  c.ID,
			Amount:   c.ClaimAmount,
			Device:   device.GetDevice(ctx),
		}); err != nil {
			return err
		}
		submitted = c
		return nil
	})
	if err != nil {
		return claim.Claim{}, err
	}

	s.logger.InfoContext(ctx, "claim submitted",
		"claim_id", submitted.ID.String(),
		"policy_id", policyID.String(),
		"claimant", caller.String(),
		"amount", submitted.ClaimAmount.String(),
	)
	if s.metrics != nil {
		s.metrics.ClaimsSubmitted.Inc()
	}
	return submitted, nil
}

// ProcessClaim adjudicates a pending claim. Administrator only. Both outcomes
// deactivate the referenced policy; approval additionally pays the claim
// amount out of custody, and a payout custody cannot cover fails the whole
// operation with no state change.
func (s *Service) ProcessClaim(ctx context.Context, caller domain.Address, claimID domain.ClaimID, approve bool) (claim.Claim, error) {
	if err := s.access.Require(caller); err != nil {
		return claim.Claim{}, err
	}

	var decided claim.Claim
	err := s.mutate(ctx, "ledger.ProcessClaim", func(ctx context.Context) error {
		// Pre-read so the payout check runs before any mutation; without a
		// SQL transaction there is nothing to roll back.
		c, err := s.claims.Get(ctx, claimID)
		if err != nil {
			return err
		}
		if c.Status != claim.StatusPending {
			return dErrors.New(dErrors.CodeClaimAlreadyProcessed, "claim already processed")
		}
		if approve {
			if err := s.treasury.Pay(ctx, c.Claimant, c.ClaimAmount, s.now()); err != nil {
				return err
			}
		}
		c, err = s.claims.Decide(ctx, claimID, approve)
		if err != nil {
			return err
		}
		if err := s.events.Emit(ctx, event.Event{
			Type:    event.TypeClaimProcessed,
			Actor:   caller,
			ClaimID: c.ID,
			Status:  string(c.Status),
			Device:  device.GetDevice(ctx),
		}); err != nil {
			return err
		}
		decided = c
		return nil
	})
	if err != nil {
		return claim.Claim{}, err
	}

	s.logger.InfoContext(ctx, "claim processed",
		"claim_id", decided.ID.String(),
		"status", string(decided.Status),
	)
	if s.metrics != nil {
		s.metrics.ClaimsProcessed.WithLabelValues(string(decided.Status)).Inc()
		s.refreshCustodyGauge(ctx)
	}
	return decided, nil
}

// Withdraw drains the entire custody balance to the administrator's account.
// Administrator only. A zero balance is a quiet no-op.
func (s *Service) Withdraw(ctx context.Context, caller domain.Address) (domain.Amount, error) {
	if err := s.access.Require(caller); err != nil {
		return 0, err
	}

	var amount domain.Amount
	err := s.mutate(ctx, "ledger.Withdraw", func(ctx context.Context) error {
		moved, err := s.treasury.WithdrawAll(ctx, caller, s.now())
		if err != nil {
			return err
		}
		amount = moved
		if moved.IsZero() {
			return nil
		}
		return s.events.Emit(ctx, event.Event{
			Type:   event.TypeTreasuryWithdrawn,
			Actor:  caller,
			Amount: moved,
			Device: device.GetDevice(ctx),
		})
	})
	if err != nil {
		return 0, err
	}

	if !amount.IsZero() {
		s.logger.InfoContext(ctx, "treasury withdrawn", "amount", amount.String())
	}
	if s.metrics != nil {
		s.refreshCustodyGauge(ctx)
	}
	return amount, nil
}

// GetUserPolicies returns every policy held by holder.
func (s *Service) GetUserPolicies(ctx context.Context, holder domain.Address) ([]policy.Policy, error) {
	return s.policies.ListByHolder(ctx, holder)
}

// GetUserClaims returns every claim filed by claimant.
func (s *Service) GetUserClaims(ctx context.Context, claimant domain.Address) ([]claim.Claim, error) {
	return s.claims.ListByClaimant(ctx, claimant)
}

// GetPolicyDetails returns a policy by id.
func (s *Service) GetPolicyDetails(ctx context.Context, id domain.PolicyID) (policy.Policy, error) {
	return s.policies.Get(ctx, id)
}

// GetClaimDetails returns a claim by id.
func (s *Service) GetClaimDetails(ctx context.Context, id domain.ClaimID) (claim.Claim, error) {
	return s.claims.Get(ctx, id)
}

// Stats are the ledger-wide counters plus the administrator identity.
type Stats struct {
	TotalPolicies  uint64
	TotalClaims    uint64
	Administrator  domain.Address
	CustodyBalance domain.Amount
}

// GetStats returns committed ledger-wide totals.
func (s *Service) GetStats(ctx context.Context) (Stats, error) {
	policies, err := s.policies.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count policies: %w", err)
	}
	claims, err := s.claims.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count claims: %w", err)
	}
	balance, err := s.treasury.Balance(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("read custody balance: %w", err)
	}
	return Stats{
		TotalPolicies:  policies,
		TotalClaims:    claims,
		Administrator:  s.access.Administrator(),
		CustodyBalance: balance,
	}, nil
}

// TreasuryBalance returns the custody balance. Administrator only.
func (s *Service) TreasuryBalance(ctx context.Context, caller domain.Address) (domain.Amount, error) {
	if err := s.access.Require(caller); err != nil {
		return 0, err
	}
	return s.treasury.Balance(ctx)
}

// AccountBalance returns the caller's settled account balance.
func (s *Service) AccountBalance(ctx context.Context, caller domain.Address) (domain.Amount, error) {
	if caller.IsNil() {
		return 0, dErrors.New(dErrors.CodeUnauthorized, "missing caller identity")
	}
	return s.treasury.AccountBalance(ctx, caller)
}

// RecentEvents returns the newest notification events.
func (s *Service) RecentEvents(ctx context.Context, limit int) ([]event.Event, error) {
	return s.events.Recent(ctx, limit)
}

func (s *Service) refreshCustodyGauge(ctx context.Context) {
	balance, err := s.treasury.Balance(ctx)
	if err != nil {
		return
	}
	s.metrics.CustodyBalance.Set(float64(balance))
}
