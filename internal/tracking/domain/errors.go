package domain

import "errors"

// ErrEventNotFound signals that no matching event row exists.
var ErrEventNotFound = errors.New("event not found")

// ValidationError reports a payload that failed a required-field, length,
// security, or timestamp check. The message names the failing check and is
// safe to return to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given client-facing
// message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// RateLimitError reports a request rejected by the ingestion rate limiter.
// The message includes a human-readable remaining-wait hint when the client
// is inside a block period.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string { return e.Message }
