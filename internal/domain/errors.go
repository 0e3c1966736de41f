package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a task payload fails validation.
	// Structured details are carried by ValidationError, which wraps this.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidStatus is returned when a status is not one of the
	// allowed values.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when a priority is not one of the
	// allowed values.
	ErrInvalidPriority = errors.New("invalid priority")
)

// ValidationError describes the first validation failure encountered while
// parsing a task payload. Its message is safe to surface to clients: it
// names the offending field and, where applicable, the allowed value set.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap allows errors.Is(err, ErrValidation) checks.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
