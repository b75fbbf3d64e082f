// Package accesscontrol gates privileged ledger operations behind the single
// administrator identity. It is an explicit value shared by the claim
// adjudication and treasury withdrawal paths rather than behavior inherited
// by them.
package accesscontrol

import (
	"healthledger/pkg/domain"
	dErrors "healthledger/pkg/domain-errors"
	"healthledger/pkg/platform/secrets"
)

// AccessControl holds the administrator identity and, optionally, a bcrypt
// hash of the admin API key for transports that authenticate the
// administrator out of band.
type AccessControl struct {
	admin      domain.Address
	apiKeyHash string
}

func New(admin domain.Address) *AccessControl {
	return &AccessControl{admin: admin}
}

// WithAPIKeyHash attaches a bcrypt hash the transport can verify admin API
// keys against. The ledger core itself only ever checks identities.
func (a *AccessControl) WithAPIKeyHash(hash string) *AccessControl {
	a.apiKeyHash = hash
	return a
}

// APIKeyConfigured reports whether an admin API key hash is set. Transports
// use it to decide whether the out-of-band key check applies at all.
func (a *AccessControl) APIKeyConfigured() bool {
	return a.apiKeyHash != ""
}

// Administrator returns the administrator identity.
func (a *AccessControl) Administrator() domain.Address {
	return a.admin
}

// Require returns a NotAuthorized error unless caller is the administrator.
func (a *AccessControl) Require(caller domain.Address) error {
	if caller.IsNil() || caller != a.admin {
		return dErrors.New(dErrors.CodeNotAuthorized, "caller is not the administrator")
	}
	return nil
}

// VerifyAPIKey checks a plaintext admin API key against the configured hash.
// Fails closed when no hash is configured.
func (a *AccessControl) VerifyAPIKey(key string) error {
	if a.apiKeyHash == "" {
		return dErrors.New(dErrors.CodeNotAuthorized, "admin API key not configured")
	}
	if err := secrets.Verify(key, a.apiKeyHash); err != nil {
		return dErrors.New(dErrors.CodeNotAuthorized, "invalid admin API key")
	}
	return nil
}
