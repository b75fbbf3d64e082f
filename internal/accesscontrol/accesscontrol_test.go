package accesscontrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "healthledger/pkg/domain-errors"
	"healthledger/pkg/platform/secrets"
)

func TestRequire(t *testing.T) {
	ac := New("admin")

	assert.NoError(t, ac.Require("admin"))
	assert.Equal(t, "admin", ac.Administrator().String())

	err := ac.Require("alice")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotAuthorized))

	// An empty identity never matches, even if the administrator address
	// were misconfigured as empty.
	err = New("").Require("")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotAuthorized))
}

func TestVerifyAPIKey(t *testing.T) {
	t.Run("fails closed without a configured hash", func(t *testing.T) {
		ac := New("admin")
		assert.False(t, ac.APIKeyConfigured())
		err := ac.VerifyAPIKey("anything")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotAuthorized))
	})

	t.Run("verifies against the configured hash", func(t *testing.T) {
		key, err := secrets.Generate()
		require.NoError(t, err)
		hash, err := secrets.Hash(key)
		require.NoError(t, err)

		ac := New("admin").WithAPIKeyHash(hash)
		assert.True(t, ac.APIKeyConfigured())
		assert.NoError(t, ac.VerifyAPIKey(key))

		err = ac.VerifyAPIKey("wrong-key")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotAuthorized))
	})
}
