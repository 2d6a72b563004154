package secrets_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthhq/hearthd/pkg/secrets"
)

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	key, err := secrets.GenerateKey()
	require.NoError(t, err)
	assert.Len(t, key, secrets.KeySize)

	other, err := secrets.GenerateKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestLoadOrGenerateKey(t *testing.T) {
	t.Parallel()

	t.Run("generates on first run", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "hearthd", "jwt.key")

		key, err := secrets.LoadOrGenerateKey(path)
		require.NoError(t, err)
		assert.Len(t, key, secrets.KeySize)

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		}
	})

	t.Run("loads same key on subsequent runs", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "jwt.key")

		first, err := secrets.LoadOrGenerateKey(path)
		require.NoError(t, err)
		second, err := secrets.LoadOrGenerateKey(path)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.LoadOrGenerateKey("")
		require.ErrorIs(t, err, secrets.ErrMissingKeyPath)
	})

	t.Run("malformed key file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "jwt.key")
		require.NoError(t, os.WriteFile(path, []byte("not base64 at all!"), 0o600))

		_, err := secrets.LoadOrGenerateKey(path)
		require.ErrorIs(t, err, secrets.ErrMalformedKeyFile)
	})

	t.Run("wrong key length", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "jwt.key")
		require.NoError(t, os.WriteFile(path, []byte("c2hvcnQ=\n"), 0o600))

		_, err := secrets.LoadOrGenerateKey(path)
		require.ErrorIs(t, err, secrets.ErrMalformedKeyFile)
	})
}
