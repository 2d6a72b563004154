package secrets

import "errors"

var (
	ErrFailedToGenerateKey = errors.New("failed to generate key")
	ErrMissingKeyPath      = errors.New("missing key file path")
	ErrMalformedKeyFile    = errors.New("malformed key file")
)
