package event

import (
	"time"

	"github.com/google/uuid"

	"healthledger/pkg/domain"
)

// Type names a ledger notification.
type Type string

const (
	TypePolicyPurchased   Type = "policy_purchased"
	TypeClaimSubmitted    Type = "claim_submitted"
	TypeClaimProcessed    Type = "claim_processed"
	TypeTreasuryWithdrawn Type = "treasury_withdrawn"
)

// Event is emitted by the ledger facade after a mutating operation commits.
// It is transport-agnostic so the store and the optional feed/stream sinks
// can fan out the same record. Fields beyond ID/Type/Timestamp/Actor are
// populated per type and zero otherwise.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Type      Type            `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Actor     domain.Address  `json:"actor"`
	PolicyID  domain.PolicyID `json:"policy_id,omitempty"`
	ClaimID   domain.ClaimID  `json:"claim_id,omitempty"`
	Amount    domain.Amount   `json:"amount,omitempty"`
	Premium   domain.Amount   `json:"premium,omitempty"`
	Status    string          `json:"status,omitempty"`
	// Device is the parsed browser/OS of the originating request, when the
	// transport captured one.
	Device string `json:"device,omitempty"`
}
