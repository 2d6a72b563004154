package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// signingMethod is pinned to HS256. Verification rejects any other
// algorithm to prevent algorithm confusion attacks.
var signingMethod = jwt.SigningMethodHS256

// MinKeySize is the minimum accepted signing key length in bytes.
// HMAC-SHA256 needs at least a 256-bit key for full strength.
const MinKeySize = 32

// Service issues and verifies the signed bearer tokens that authorize API
// access after login. Tokens are self-contained: subject and absolute expiry
// travel inside the token, so verification is stateless and there is no
// server-side revocation list. Revocation is "let it expire", which is why
// the TTL should stay short.
type Service struct {
	signingKey []byte
	ttl        time.Duration
}

// New creates a token service with the given signing key and token lifetime.
// The key is process-wide state: losing it invalidates every outstanding
// token and clients simply log in again.
func New(signingKey []byte, ttl time.Duration) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	if len(signingKey) < MinKeySize {
		return nil, ErrSigningKeyTooShort
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	return &Service{signingKey: signingKey, ttl: ttl}, nil
}

// Issue creates a signed token for the subject, expiring one TTL from now.
func (s *Service) Issue(subject string) (string, error) {
	if subject == "" {
		return "", ErrMissingSubject
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	return jwt.NewWithClaims(signingMethod, claims).SignedString(s.signingKey)
}

// Verify checks the token's signature and expiry and returns its subject.
// Malformed, tampered, expired, and wrong-algorithm tokens all fail with
// ErrInvalidToken; callers get no hint as to which check failed.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.signingKey, nil },
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Renew verifies the token and issues a fresh one for the same subject with
// a new expiry window. This is the sliding-session pattern: an active client
// keeps its session alive without re-entering credentials.
func (s *Service) Renew(tokenString string) (string, error) {
	subject, err := s.Verify(tokenString)
	if err != nil {
		return "", err
	}
	return s.Issue(subject)
}
