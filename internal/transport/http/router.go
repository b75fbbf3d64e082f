package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"healthledger/internal/claim"
	"healthledger/internal/event"
	"healthledger/internal/ledger"
	"healthledger/internal/platform/metrics"
	"healthledger/internal/platform/middleware"
	"healthledger/internal/policy"
	"healthledger/pkg/domain"
)

//go:generate mockgen -source=router.go -destination=mocks/mock_service.go -package=mocks Service

// Service is the slice of the ledger facade the transport needs. Handlers
// delegate to it without embedding business logic so transport concerns
// remain isolated.
type Service interface {
	PurchasePolicy(ctx context.Context, caller domain.Address, coverage, paid domain.Amount) (policy.Policy, error)
	SubmitClaim(ctx context.Context, caller domain.Address, policyID domain.PolicyID, amount domain.Amount, documents string) (claim.Claim, error)
	ProcessClaim(ctx context.Context, caller domain.Address, claimID domain.ClaimID, approve bool) (claim.Claim, error)
	Withdraw(ctx context.Context, caller domain.Address) (domain.Amount, error)
	GetUserPolicies(ctx context.Context, holder domain.Address) ([]policy.Policy, error)
	GetUserClaims(ctx context.Context, claimant domain.Address) ([]claim.Claim, error)
	GetPolicyDetails(ctx context.Context, id domain.PolicyID) (policy.Policy, error)
	GetClaimDetails(ctx context.Context, id domain.ClaimID) (claim.Claim, error)
	GetStats(ctx context.Context) (ledger.Stats, error)
	TreasuryBalance(ctx context.Context, caller domain.Address) (domain.Amount, error)
	AccountBalance(ctx context.Context, caller domain.Address) (domain.Amount, error)
	RecentEvents(ctx context.Context, limit int) ([]event.Event, error)
}

// Handler is the thin HTTP layer over the ledger facade.
type Handler struct {
	logger  *slog.Logger
	ledger  Service
	metrics *metrics.Metrics
}

func NewHandler(ledger Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{logger: logger, ledger: ledger, metrics: m}
}

// NewRouter wires all public endpoints. Everything except health and metrics
// requires an authenticated caller identity; administrative endpoints
// additionally present the admin API key when one is configured.
func NewRouter(h *Handler, validator middleware.TokenValidator, adminKeys middleware.AdminKeyVerifier) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Latency(h.metrics))

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(validator, h.logger))
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.Device)

		r.Post("/policies", h.handlePurchasePolicy)
		r.Get("/policies", h.handleListPolicies)
		r.Get("/policies/{policyID}", h.handleGetPolicy)

		r.Post("/claims", h.handleSubmitClaim)
		r.Get("/claims", h.handleListClaims)
		r.Get("/claims/{claimID}", h.handleGetClaim)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdminKey(adminKeys, h.logger))

			r.Post("/claims/{claimID}/process", h.handleProcessClaim)
			r.Post("/treasury/withdraw", h.handleWithdraw)
			r.Get("/treasury", h.handleTreasuryBalance)
		})

		r.Get("/accounts/balance", h.handleAccountBalance)

		r.Get("/events", h.handleEvents)
		r.Get("/stats", h.handleStats)
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
