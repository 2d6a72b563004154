package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hearthhq/hearthd/pkg/password"
)

func TestHash(t *testing.T) {
	t.Parallel()

	t.Run("produces verifiable hash", func(t *testing.T) {
		t.Parallel()
		hash, err := password.Hash("moneyprintergobrrr")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.True(t, password.Verify("moneyprintergobrrr", hash))
	})

	t.Run("same input yields different hashes", func(t *testing.T) {
		t.Parallel()
		first, err := password.Hash("correct horse battery staple")
		require.NoError(t, err)
		second, err := password.Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
		assert.True(t, password.Verify("correct horse battery staple", first))
		assert.True(t, password.Verify("correct horse battery staple", second))
	})

	t.Run("empty password rejected", func(t *testing.T) {
		t.Parallel()
		_, err := password.Hash("")
		require.ErrorIs(t, err, password.ErrEmptyPassword)
	})

	t.Run("over-long password rejected", func(t *testing.T) {
		t.Parallel()
		_, err := password.Hash(strings.Repeat("a", password.MaxLength+1))
		require.ErrorIs(t, err, password.ErrPasswordTooLong)
	})

	t.Run("max length password accepted", func(t *testing.T) {
		t.Parallel()
		longest := strings.Repeat("a", password.MaxLength)
		hash, err := password.HashWithCost(longest, bcrypt.MinCost)
		require.NoError(t, err)
		assert.True(t, password.Verify(longest, hash))
	})
}

func TestHashWithCost(t *testing.T) {
	t.Parallel()

	t.Run("custom cost", func(t *testing.T) {
		t.Parallel()
		hash, err := password.HashWithCost("secret-passphrase", bcrypt.MinCost)
		require.NoError(t, err)
		assert.True(t, password.Verify("secret-passphrase", hash))
	})

	t.Run("out of range cost falls back to default", func(t *testing.T) {
		t.Parallel()
		hash, err := password.HashWithCost("secret-passphrase", 99)
		require.NoError(t, err)
		assert.True(t, password.Verify("secret-passphrase", hash))
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	hash, err := password.HashWithCost("usdtothemoon", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
		hash      string
		want      bool
	}{
		{name: "correct password", plaintext: "usdtothemoon", hash: hash, want: true},
		{name: "wrong password", plaintext: "fiat4lyfe", hash: hash, want: false},
		{name: "empty password", plaintext: "", hash: hash, want: false},
		{name: "malformed hash", plaintext: "usdtothemoon", hash: "not-a-bcrypt-hash", want: false},
		{name: "empty hash", plaintext: "usdtothemoon", hash: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, password.Verify(tt.plaintext, tt.hash))
		})
	}
}
