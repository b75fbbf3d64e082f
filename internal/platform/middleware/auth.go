package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"healthledger/pkg/domain"
)

// TokenValidator validates a bearer token and returns the caller identity
// it asserts.
type TokenValidator interface {
	ValidateToken(tokenString string) (domain.Address, error)
}

type contextKeyCaller struct{}

// GetCaller retrieves the authenticated caller identity from the context.
func GetCaller(ctx context.Context) domain.Address {
	if addr, ok := ctx.Value(contextKeyCaller{}).(domain.Address); ok {
		return addr
	}
	return ""
}

// WithCaller injects a caller identity into a context.
// Useful for service unit tests that don't run the full HTTP middleware chain.
func WithCaller(ctx context.Context, caller domain.Address) context.Context {
	return context.WithValue(ctx, contextKeyCaller{}, caller)
}

// RequireAuth extracts and validates the bearer token and stores the caller
// identity in the request context. The ledger trusts this identity as
// authentic; authorization beyond identity (the administrator gate) is the
// ledger's own concern.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				unauthorized(w)
				return
			}
			caller, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(r.Context(), "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

// AdminKeyVerifier checks a plaintext admin API key supplied out of band.
type AdminKeyVerifier interface {
	APIKeyConfigured() bool
	VerifyAPIKey(key string) error
}

// RequireAdminKey gates administrative endpoints behind the X-Admin-Key
// header when a key hash is configured. Without one the identity check in
// the ledger remains the only gate.
func RequireAdminKey(verifier AdminKeyVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !verifier.APIKeyConfigured() {
				next.ServeHTTP(w, r)
				return
			}
			if err := verifier.VerifyAPIKey(r.Header.Get("X-Admin-Key")); err != nil {
				logger.WarnContext(r.Context(), "admin key rejected",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"not_authorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
