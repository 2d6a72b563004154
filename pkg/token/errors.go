package token

import "errors"

var (
	ErrMissingSigningKey  = errors.New("token: missing signing key")
	ErrSigningKeyTooShort = errors.New("token: signing key shorter than 32 bytes")
	ErrInvalidTTL         = errors.New("token: ttl must be positive")
	ErrMissingSubject     = errors.New("token: missing subject")
	ErrInvalidToken       = errors.New("token: invalid token")
)
