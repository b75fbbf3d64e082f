package httptransport

// Monetary fields are micro-units (1e6 per unit), matching the ledger's
// internal representation so clients never round.

type purchasePolicyRequest struct {
	CoverageAmount int64 `json:"coverage_amount"`
	PaidValue      int64 `json:"paid_value"`
}

type submitClaimRequest struct {
	PolicyID         uint64 `json:"policy_id"`
	ClaimAmount      int64  `json:"claim_amount"`
	MedicalDocuments string `json:"medical_documents"`
}

type processClaimRequest struct {
	Approve bool `json:"approve"`
}
