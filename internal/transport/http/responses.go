package httptransport

import (
	"time"

	"healthledger/internal/claim"
	"healthledger/internal/event"
	"healthledger/internal/ledger"
	"healthledger/internal/policy"
)

type policyResponse struct {
	ID             uint64    `json:"id"`
	Holder         string    `json:"holder"`
	CoverageAmount int64     `json:"coverage_amount"`
	Premium        int64     `json:"premium"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	IsActive       bool      `json:"is_active"`
}

func toPolicyResponse(p policy.Policy) policyResponse {
	return policyResponse{
		ID:             uint64(p.ID),
		Holder:         string(p.Holder),
		CoverageAmount: int64(p.CoverageAmount),
		Premium:        int64(p.Premium),
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		IsActive:       p.IsActive,
	}
}

func toPolicyResponses(policies []policy.Policy) []policyResponse {
	out := make([]policyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, toPolicyResponse(p))
	}
	return out
}

type claimResponse struct {
	ID               uint64    `json:"id"`
	PolicyID         uint64    `json:"policy_id"`
	Claimant         string    `json:"claimant"`
	ClaimAmount      int64     `json:"claim_amount"`
	SubmissionDate   time.Time `json:"submission_date"`
	Status           string    `json:"status"`
	MedicalDocuments string    `json:"medical_documents"`
}

func toClaimResponse(c claim.Claim) claimResponse {
	return claimResponse{
		ID:               uint64(c.ID),
		PolicyID:         uint64(c.PolicyID),
		Claimant:         string(c.Claimant),
		ClaimAmount:      int64(c.ClaimAmount),
		SubmissionDate:   c.SubmissionDate,
		Status:           string(c.Status),
		MedicalDocuments: c.MedicalDocuments,
	}
}

func toClaimResponses(claims []claim.Claim) []claimResponse {
	out := make([]claimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, toClaimResponse(c))
	}
	return out
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

type withdrawResponse struct {
	Amount int64 `json:"amount"`
}

type eventsResponse struct {
	Events []event.Event `json:"events"`
}

type statsResponse struct {
	TotalPolicies  uint64 `json:"total_policies"`
	TotalClaims    uint64 `json:"total_claims"`
	Administrator  string `json:"administrator"`
	CustodyBalance int64  `json:"custody_balance"`
}

func toStatsResponse(s ledger.Stats) statsResponse {
	return statsResponse{
		TotalPolicies:  s.TotalPolicies,
		TotalClaims:    s.TotalClaims,
		Administrator:  string(s.Administrator),
		CustodyBalance: int64(s.CustodyBalance),
	}
}
