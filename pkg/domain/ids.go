package domain

import "strconv"

// PolicyID identifies an issued policy. IDs are assigned monotonically from
// zero by the policy registry and are never reused.
type PolicyID uint64

func (id PolicyID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParsePolicyID parses a decimal policy id as produced by PolicyID.String.
func ParsePolicyID(s string) (PolicyID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	return PolicyID(n), err
}

// ClaimID identifies a submitted claim. Same allocation rules as PolicyID.
type ClaimID uint64

func (id ClaimID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseClaimID parses a decimal claim id as produced by ClaimID.String.
func ParseClaimID(s string) (ClaimID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	return ClaimID(n), err
}

// Address is the opaque caller identity supplied by the external identity
// layer. The ledger trusts it as authentic and never inspects its shape.
type Address string

func (a Address) String() string { return string(a) }

// IsNil reports whether no identity was supplied.
func (a Address) IsNil() bool { return a == "" }
