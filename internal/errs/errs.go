// Package errs defines the error kinds the service layer raises and the API
// layer translates into HTTP status codes.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that a referenced resource does not exist.
	ErrNotFound = errors.New("resource was not found")

	// ErrValidation signals that request input failed a boundary constraint.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized signals that no authenticated caller was attributed to
	// a request that requires one.
	ErrUnauthorized = errors.New("access denied")
)

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// Unauthorizedf wraps ErrUnauthorized with a formatted message.
func Unauthorizedf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrUnauthorized)...)
}
