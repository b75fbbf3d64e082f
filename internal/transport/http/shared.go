package httptransport

import (
	"encoding/json"
	"net/http"

	dErrors "healthledger/pkg/domain-errors"
)

// statusFor maps domain error codes to HTTP status codes. Untagged errors
// surface as 500 without leaking their message.
func statusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeInvalidCoverageAmount,
		dErrors.CodeInsufficientPremium,
		dErrors.CodeClaimExceedsCoverage,
		dErrors.CodeBadRequest:
		return http.StatusBadRequest
	case dErrors.CodePolicyNotActive,
		dErrors.CodeClaimAlreadyProcessed,
		dErrors.CodeInsufficientTreasuryBalance:
		return http.StatusConflict
	case dErrors.CodeNotAuthorized:
		return http.StatusForbidden
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	writeJSON(w, statusFor(code), map[string]string{"error": string(code)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
