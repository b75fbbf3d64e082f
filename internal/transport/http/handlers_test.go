package httptransport

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"healthledger/internal/accesscontrol"
	"healthledger/internal/claim"
	"healthledger/internal/ledger"
	"healthledger/internal/policy"
	"healthledger/internal/transport/http/mocks"
	"healthledger/pkg/domain"
	dErrors "healthledger/pkg/domain-errors"
	"healthledger/pkg/platform/secrets"
)

type staticValidator struct {
	caller domain.Address
}

func (v staticValidator) ValidateToken(token string) (domain.Address, error) {
	if token != "valid-token" {
		return "", dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	return v.caller, nil
}

func newTestRouter(t *testing.T, caller domain.Address) (*mocks.MockService, http.Handler) {
	t.Helper()
	return newTestRouterWithAccess(t, caller, accesscontrol.New("admin"))
}

func newTestRouterWithAccess(t *testing.T, caller domain.Address, access *accesscontrol.AccessControl) (*mocks.MockService, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(NewHandler(svc, logger, nil), staticValidator{caller: caller}, access)
	return svc, router
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer valid-token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		var v any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
		decoded, _ = v.(map[string]any)
	}
	return rec.Code, decoded
}

func TestAuthGate(t *testing.T) {
	_, router := newTestRouter(t, "alice")

	t.Run("missing bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/policies", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/policies", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("health endpoint is open", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-JSON content type is refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/policies", strings.NewReader("coverage=1"))
		req.Header.Set("Authorization", "Bearer valid-token")
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestHandlePurchasePolicy(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		issued := policy.Policy{
			ID:             7,
			Holder:         "alice",
			CoverageAmount: domain.Units(10),
			Premium:        domain.Amount(10),
			StartDate:      time.Now(),
			EndDate:        time.Now().Add(24 * time.Hour),
			IsActive:       true,
		}
		svc.EXPECT().
			PurchasePolicy(gomock.Any(), domain.Address("alice"), domain.Units(10), domain.Units(10)).
			Return(issued, nil)

		status, body := doJSON(t, router, http.MethodPost, "/policies",
			`{"coverage_amount":10000000,"paid_value":10000000}`)
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, float64(7), body["id"])
		assert.Equal(t, "alice", body["holder"])
		assert.Equal(t, true, body["is_active"])
	})

	t.Run("invalid body", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		svc.EXPECT().PurchasePolicy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		status, body := doJSON(t, router, http.MethodPost, "/policies", "{bad-json")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, string(dErrors.CodeBadRequest), body["error"])
	})

	t.Run("negative payment", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		svc.EXPECT().PurchasePolicy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		status, body := doJSON(t, router, http.MethodPost, "/policies",
			`{"coverage_amount":10000000,"paid_value":-1}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, string(dErrors.CodeBadRequest), body["error"])
	})

	t.Run("domain errors map to statuses", func(t *testing.T) {
		cases := map[string]struct {
			code dErrors.Code
			want int
		}{
			"invalid coverage":     {dErrors.CodeInvalidCoverageAmount, http.StatusBadRequest},
			"insufficient premium": {dErrors.CodeInsufficientPremium, http.StatusBadRequest},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				svc, router := newTestRouter(t, "alice")
				svc.EXPECT().
					PurchasePolicy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(policy.Policy{}, dErrors.New(tc.code, "rejected"))

				status, body := doJSON(t, router, http.MethodPost, "/policies",
					`{"coverage_amount":1,"paid_value":1}`)
				assert.Equal(t, tc.want, status)
				assert.Equal(t, string(tc.code), body["error"])
			})
		}
	})
}

func TestHandleSubmitClaim(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		submitted := claim.Claim{
			ID:               3,
			PolicyID:         7,
			Claimant:         "alice",
			ClaimAmount:      domain.Units(5),
			SubmissionDate:   time.Now(),
			Status:           claim.StatusPending,
			MedicalDocuments: "cid:docs",
		}
		svc.EXPECT().
			SubmitClaim(gomock.Any(), domain.Address("alice"), domain.PolicyID(7), domain.Units(5), "cid:docs").
			Return(submitted, nil)

		status, body := doJSON(t, router, http.MethodPost, "/claims",
			`{"policy_id":7,"claim_amount":5000000,"medical_documents":"cid:docs"}`)
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, float64(3), body["id"])
		assert.Equal(t, "pending", body["status"])
	})

	t.Run("inactive policy maps to 409", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		svc.EXPECT().
			SubmitClaim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(claim.Claim{}, dErrors.New(dErrors.CodePolicyNotActive, "policy is not active"))

		status, body := doJSON(t, router, http.MethodPost, "/claims",
			`{"policy_id":7,"claim_amount":1}`)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, string(dErrors.CodePolicyNotActive), body["error"])
	})

	t.Run("excess claim maps to 400", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		svc.EXPECT().
			SubmitClaim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(claim.Claim{}, dErrors.New(dErrors.CodeClaimExceedsCoverage, "claim amount exceeds coverage"))

		status, body := doJSON(t, router, http.MethodPost, "/claims",
			`{"policy_id":7,"claim_amount":1}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, string(dErrors.CodeClaimExceedsCoverage), body["error"])
	})
}

func TestHandleProcessClaim(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		svc, router := newTestRouter(t, "admin")
		decided := claim.Claim{ID: 3, PolicyID: 7, Claimant: "alice", Status: claim.StatusApproved}
		svc.EXPECT().
			ProcessClaim(gomock.Any(), domain.Address("admin"), domain.ClaimID(3), true).
			Return(decided, nil)

		status, body := doJSON(t, router, http.MethodPost, "/claims/3/process", `{"approve":true}`)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "approved", body["status"])
	})

	t.Run("non-administrator maps to 403", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		svc.EXPECT().
			ProcessClaim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(claim.Claim{}, dErrors.New(dErrors.CodeNotAuthorized, "caller is not the administrator"))

		status, body := doJSON(t, router, http.MethodPost, "/claims/3/process", `{"approve":true}`)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, string(dErrors.CodeNotAuthorized), body["error"])
	})

	t.Run("already processed maps to 409", func(t *testing.T) {
		svc, router := newTestRouter(t, "admin")
		svc.EXPECT().
			ProcessClaim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(claim.Claim{}, dErrors.New(dErrors.CodeClaimAlreadyProcessed, "claim already processed"))

		status, body := doJSON(t, router, http.MethodPost, "/claims/3/process", `{"approve":false}`)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, string(dErrors.CodeClaimAlreadyProcessed), body["error"])
	})

	t.Run("invalid claim id in path", func(t *testing.T) {
		svc, router := newTestRouter(t, "admin")
		svc.EXPECT().ProcessClaim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		status, body := doJSON(t, router, http.MethodPost, "/claims/abc/process", `{"approve":true}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, string(dErrors.CodeBadRequest), body["error"])
	})
}

func TestHandleGetDetails(t *testing.T) {
	t.Run("unknown policy maps to 404", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		svc.EXPECT().
			GetPolicyDetails(gomock.Any(), domain.PolicyID(42)).
			Return(policy.Policy{}, dErrors.New(dErrors.CodeNotFound, "policy does not exist"))

		status, body := doJSON(t, router, http.MethodGet, "/policies/42", "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, string(dErrors.CodeNotFound), body["error"])
	})

	t.Run("list policies for caller", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		svc.EXPECT().
			GetUserPolicies(gomock.Any(), domain.Address("alice")).
			Return([]policy.Policy{{ID: 0, Holder: "alice"}, {ID: 2, Holder: "alice"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/policies", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})
}

func TestHandleTreasury(t *testing.T) {
	t.Run("withdraw returns the moved amount", func(t *testing.T) {
		svc, router := newTestRouter(t, "admin")
		svc.EXPECT().
			Withdraw(gomock.Any(), domain.Address("admin")).
			Return(domain.Units(7), nil)

		status, body := doJSON(t, router, http.MethodPost, "/treasury/withdraw", "")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(domain.Units(7)), body["amount"])
	})

	t.Run("treasury balance for non-administrator maps to 403", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		svc.EXPECT().
			TreasuryBalance(gomock.Any(), domain.Address("alice")).
			Return(domain.Amount(0), dErrors.New(dErrors.CodeNotAuthorized, "caller is not the administrator"))

		status, body := doJSON(t, router, http.MethodGet, "/treasury", "")
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, string(dErrors.CodeNotAuthorized), body["error"])
	})

	t.Run("stats", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		svc.EXPECT().
			GetStats(gomock.Any()).
			Return(ledger.Stats{TotalPolicies: 2, TotalClaims: 1, Administrator: "admin", CustodyBalance: domain.Units(9)}, nil)

		status, body := doJSON(t, router, http.MethodGet, "/stats", "")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(2), body["total_policies"])
		assert.Equal(t, "admin", body["administrator"])
	})
}

func TestAdminKeyGate(t *testing.T) {
	hash, err := secrets.Hash("letmein")
	require.NoError(t, err)
	keyed := func(t *testing.T) (*mocks.MockService, http.Handler) {
		t.Helper()
		return newTestRouterWithAccess(t, "admin", accesscontrol.New("admin").WithAPIKeyHash(hash))
	}
	withdraw := func(router http.Handler, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/treasury/withdraw", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		req.Header.Set("Content-Type", "application/json")
		if key != "" {
			req.Header.Set("X-Admin-Key", key)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid key reaches the handler", func(t *testing.T) {
		svc, router := keyed(t)
		svc.EXPECT().
			Withdraw(gomock.Any(), domain.Address("admin")).
			Return(domain.Units(7), nil)

		rec := withdraw(router, "letmein")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing key is refused before the handler", func(t *testing.T) {
		_, router := keyed(t)
		rec := withdraw(router, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"not_authorized"}`, rec.Body.String())
	})

	t.Run("wrong key is refused", func(t *testing.T) {
		_, router := keyed(t)
		rec := withdraw(router, "guess")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("non-administrative endpoints do not require the key", func(t *testing.T) {
		svc, router := keyed(t)
		svc.EXPECT().GetUserPolicies(gomock.Any(), domain.Address("admin")).Return(nil, nil)

		status, _ := doJSON(t, router, http.MethodGet, "/policies", "")
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("no configured hash skips the check", func(t *testing.T) {
		svc, router := newTestRouter(t, "admin")
		svc.EXPECT().
			Withdraw(gomock.Any(), domain.Address("admin")).
			Return(domain.Amount(0), nil)

		rec := withdraw(router, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandleEvents(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		svc.EXPECT().RecentEvents(gomock.Any(), 50).Return(nil, nil)

		status, _ := doJSON(t, router, http.MethodGet, "/events", "")
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("explicit limit", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		svc.EXPECT().RecentEvents(gomock.Any(), 10).Return(nil, nil)

		status, _ := doJSON(t, router, http.MethodGet, "/events?limit=10", "")
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("out-of-range limit", func(t *testing.T) {
		svc, router := newTestRouter(t, "alice")
		svc.EXPECT().RecentEvents(gomock.Any(), gomock.Any()).Times(0)

		status, _ := doJSON(t, router, http.MethodGet, "/events?limit=10000", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})
}
