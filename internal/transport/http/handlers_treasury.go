package httptransport

import (
	"net/http"
	"strconv"

	"healthledger/internal/platform/middleware"
)

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	amount, err := h.ledger.Withdraw(ctx, middleware.GetCaller(ctx))
	if err != nil {
		h.logger.WarnContext(ctx, "withdrawal failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, withdrawResponse{Amount: int64(amount)})
}

func (h *Handler) handleTreasuryBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	balance, err := h.ledger.TreasuryBalance(ctx, middleware.GetCaller(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Balance: int64(balance)})
}

func (h *Handler) handleAccountBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	balance, err := h.ledger.AccountBalance(ctx, middleware.GetCaller(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Balance: int64(balance)})
}

func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_request"})
			return
		}
		limit = n
	}
	events, err := h.ledger.RecentEvents(ctx, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eventsResponse{Events: events})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledger.GetStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}
