package auth

import "errors"

// Operation errors, the full taxonomy exposed to the transport layer.
var (
	// ErrValidation marks malformed or out-of-policy input. Wrapped
	// instances carry the specific reason.
	ErrValidation = errors.New("auth: validation error")
	// ErrAlreadyRegistered guards the single-account invariant.
	ErrAlreadyRegistered = errors.New("auth: attempted to register when user is already registered")
	// ErrInvalidLogin covers both "no account" and "wrong password" so
	// login failures cannot be used to probe registration state.
	ErrInvalidLogin = errors.New("auth: invalid login")
	// ErrMissingTotpToken tells clients to prompt for a 2FA code; it is
	// deliberately distinct from ErrInvalidTotpToken.
	ErrMissingTotpToken = errors.New("auth: missing 2FA token")
	ErrInvalidTotpToken = errors.New("auth: invalid 2FA token")
	// ErrInvalidToken covers absent, malformed, expired, and forged
	// session tokens without distinction.
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Construction errors.
var (
	ErrMissingStore        = errors.New("auth: missing user store")
	ErrMissingTokenService = errors.New("auth: missing token service")
)
