package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"healthledger/internal/platform/middleware"
	"healthledger/pkg/domain"
	dErrors "healthledger/pkg/domain-errors"
)

func (h *Handler) handleSubmitClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := middleware.GetCaller(ctx)

	var req submitClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.ClaimAmount < 0 {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "claim_amount must not be negative"))
		return
	}

	c, err := h.ledger.SubmitClaim(ctx, caller, domain.PolicyID(req.PolicyID), domain.Amount(req.ClaimAmount), req.MedicalDocuments)
	if err != nil {
		h.logger.WarnContext(ctx, "claim rejected",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toClaimResponse(c))
}

func (h *Handler) handleListClaims(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, err := h.ledger.GetUserClaims(ctx, middleware.GetCaller(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toClaimResponses(claims))
}

func (h *Handler) handleGetClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := domain.ParseClaimID(chi.URLParam(r, "claimID"))
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid claim id"))
		return
	}
	c, err := h.ledger.GetClaimDetails(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toClaimResponse(c))
}

// handleProcessClaim adjudicates a pending claim. The facade enforces the
// administrator gate; the handler only shapes the request.
func (h *Handler) handleProcessClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := middleware.GetCaller(ctx)

	id, err := domain.ParseClaimID(chi.URLParam(r, "claimID"))
	if err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid claim id"))
		return
	}
	var req processClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	c, err := h.ledger.ProcessClaim(ctx, caller, id, req.Approve)
	if err != nil {
		h.logger.WarnContext(ctx, "claim processing failed",
			"request_id", middleware.GetRequestID(ctx),
			"claim_id", id.String(),
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toClaimResponse(c))
}
