package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	t.Run("hashes with configured cost", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("secret")
		require.NoError(t, err)
		require.NotEmpty(t, hash)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcryptCost, cost)
	})

	t.Run("distinct salts for same input", func(t *testing.T) {
		t.Parallel()
		first, err := hasher.Hash("secret")
		require.NoError(t, err)
		second, err := hasher.Hash("secret")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("rejects passwords over the bcrypt limit", func(t *testing.T) {
		t.Parallel()
		_, err := hasher.Hash(strings.Repeat("a", 73))
		assert.Error(t, err)
	})
}

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()
	verifier := NewBcryptVerifier()

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	t.Run("matching password", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, verifier.Compare(hash, "secret"))
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, verifier.Compare(hash, "not-the-password"))
	})

	t.Run("malformed hash", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, verifier.Compare("not-a-bcrypt-hash", "secret"))
	})
}
