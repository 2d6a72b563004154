package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when no explicit cost is given.
// bcrypt.DefaultCost keeps hashing slow enough to resist offline brute force
// while staying responsive for interactive login.
const DefaultCost = bcrypt.DefaultCost

// MaxLength is the longest password bcrypt can hash. Input beyond 72 bytes
// is rejected up front rather than silently truncated.
const MaxLength = 72

// Hash derives a salted bcrypt hash from the plaintext password. Repeated
// calls with the same input produce different hashes because the salt is
// embedded in the output; Verify accepts all of them.
func Hash(plaintext string) (string, error) {
	return HashWithCost(plaintext, DefaultCost)
}

// HashWithCost is Hash with an explicit bcrypt cost. Costs outside the bcrypt
// range fall back to DefaultCost rather than failing.
func HashWithCost(plaintext string, cost int) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if len(plaintext) > MaxLength {
		return "", ErrPasswordTooLong
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", errors.Join(ErrFailedToHashPassword, err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the given bcrypt hash. It never
// returns an error: a malformed or truncated hash simply yields false, so
// callers can collapse "no such hash" and "wrong password" into one result.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
