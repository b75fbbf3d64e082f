package policy

import (
	"time"

	"healthledger/pkg/domain"
)

// Policy is an issued insurance contract record. Everything except IsActive
// is immutable after issuance; IsActive flips to false exactly once, when the
// first claim against the policy is adjudicated.
type Policy struct {
	ID             domain.PolicyID
	Holder         domain.Address
	CoverageAmount domain.Amount
	Premium        domain.Amount
	StartDate      time.Time
	EndDate        time.Time
	IsActive       bool
}
