package logger

import "errors"

var ErrInvalidFormat = errors.New("logger: invalid log format")
