package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"healthledger/internal/platform/middleware"
	"healthledger/pkg/domain"
	dErrors "healthledger/pkg/domain-errors"
)

// handlePurchasePolicy issues a new policy for the authenticated caller. The
// paid_value field stands in for the attached value transfer the identity
// layer authorized.
func (h *Handler) handlePurchasePolicy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := middleware.GetCaller(ctx)

	var req purchasePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.PaidValue < 0 {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "paid_value must not be negative"))
		return
	}

	p, err := h.ledger.PurchasePolicy(ctx, caller, domain.Amount(req.CoverageAmount), domain.Amount(req.PaidValue))
	if err != nil {
		h.logger.WarnContext(ctx, "purchase rejected",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPolicyResponse(p))
}

func (h *Handler) handleListPolicies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	policies, err := h.ledger.GetUserPolicies(ctx, middleware.GetCaller(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPolicyResponses(policies))
}

func (h *Handler) handleGetPolicy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := domain.ParsePolicyID(chi.URLParam(r, "policyID"))
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid policy id"))
		return
	}
	p, err := h.ledger.GetPolicyDetails(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPolicyResponse(p))
}
