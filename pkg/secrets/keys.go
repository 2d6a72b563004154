package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KeySize is the signing key length in bytes: 256 bits, the full strength
// of HMAC-SHA256.
const KeySize = 32

// GenerateKey creates a new random 32-byte key suitable for token signing.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrFailedToGenerateKey, err)
	}
	return key, nil
}

// LoadOrGenerateKey returns the signing key persisted at path, generating
// and storing a fresh one on first run. The key file is written with 0600
// permissions. Deleting the file rotates the key on next start, which
// invalidates every outstanding token; clients recover by logging in again.
func LoadOrGenerateKey(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrMissingKeyPath
	}

	data, err := os.ReadFile(path)
	if err == nil {
		key, decodeErr := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if decodeErr != nil || len(key) != KeySize {
			return nil, ErrMalformedKeyFile
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	key, err := GenerateKey()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create key directory: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(key)
	if err := os.WriteFile(path, []byte(encoded+"\n"), 0o600); err != nil {
		return nil, fmt.Errorf("failed to persist key file: %w", err)
	}

	return key, nil
}
