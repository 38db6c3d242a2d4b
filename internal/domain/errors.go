package domain

import "fmt"

// ValidationError represents an input validation error for a single
// request parameter.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}

// RecordParseError signals that supplied data could not be parsed into a
// person or relationship record. It is deliberately distinct from every
// business Outcome: callers map it to a generic cannot-process response,
// never to a named validation code.
type RecordParseError struct {
	Resource string
	Err      error
}

// Error implements the error interface
func (e *RecordParseError) Error() string {
	return fmt.Sprintf("cannot parse %s record: %v", e.Resource, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *RecordParseError) Unwrap() error {
	return e.Err
}

// NewRecordParseError creates a new RecordParseError
func NewRecordParseError(resource string, err error) *RecordParseError {
	return &RecordParseError{Resource: resource, Err: err}
}
