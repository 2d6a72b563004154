package password

import "errors"

var (
	ErrEmptyPassword        = errors.New("password cannot be empty")
	ErrPasswordTooLong      = errors.New("password exceeds 72 bytes")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)
