package userstore

import "errors"

var (
	ErrMissingStorePath  = errors.New("userstore: missing store file path")
	ErrCorruptStore      = errors.New("userstore: corrupt store file")
	ErrAlreadyRegistered = errors.New("userstore: user already registered")
	ErrNotRegistered     = errors.New("userstore: no user registered")
	ErrInvalidRecord     = errors.New("userstore: record missing name or password hash")
)
