// Package domainerrors carries the ledger's error taxonomy. Every failed
// precondition surfaces as a code-tagged error so callers (and the HTTP
// layer) can match on a stable reason rather than on message text.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code is a stable, matchable reason for a failed operation.
type Code string

const (
	// Ledger precondition failures. All of these are ordinary outcomes the
	// caller can recover from by correcting its input.
	CodeInvalidCoverageAmount       Code = "invalid_coverage_amount"
	CodeInsufficientPremium         Code = "insufficient_premium"
	CodePolicyNotActive             Code = "policy_not_active"
	CodeClaimExceedsCoverage        Code = "claim_exceeds_coverage"
	CodeClaimAlreadyProcessed       Code = "claim_already_processed"
	CodeNotAuthorized               Code = "not_authorized"
	CodeNotFound                    Code = "not_found"
	CodeInsufficientTreasuryBalance Code = "insufficient_treasury_balance"

	// Transport / infrastructure level codes.
	CodeBadRequest   Code = "bad_request"
	CodeUnauthorized Code = "unauthorized"
	CodeInternal     Code = "internal"
)

// Error is a code-tagged domain error.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a domain error with the given code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap tags an underlying error with a domain code, preserving the cause for
// errors.Is / errors.As chains.
func Wrap(code Code, message string, cause error) error {
	return &Error{Code: code, Message: message, cause: cause}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for untagged
// errors so infrastructure faults never masquerade as domain outcomes.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
