package chat_errors

import (
	"errors"
)

// Common errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrUnsupportedDriver  = errors.New("unsupported database driver")
)
