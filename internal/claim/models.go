package claim

import (
	"time"

	"healthledger/pkg/domain"
)

// Status is the adjudication state of a claim. A claim starts Pending and
// transitions exactly once to Approved or Rejected; both are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Claim is a request to draw against a policy's coverage. Everything except
// Status is immutable after submission.
type Claim struct {
	ID             domain.ClaimID
	PolicyID       domain.PolicyID
	Claimant       domain.Address
	ClaimAmount    domain.Amount
	SubmissionDate time.Time
	Status         Status
	// MedicalDocuments is an opaque content reference supplied by the caller
	// (e.g. an IPFS CID). The ledger never validates or dereferences it.
	MedicalDocuments string
}
