// errors/validation_errors.go
package errors

import "errors"

// ValidationError pairs an invalid-data sentinel with a fixed message that is
// safe to show to clients.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string { return e.Err.Error() + ": " + e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

func Invalid(sentinel error, message string) error {
	return &ValidationError{Err: sentinel, Message: message}
}

// PublicMessage returns the client-facing message carried by err, or
// fallback when err is not a validation error.
func PublicMessage(err error, fallback string) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return fallback
}
