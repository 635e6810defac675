// Package apperrors defines the error taxonomy shared by services and
// controllers. Controllers translate these into HTTP statuses in one place.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthenticated means the bearer credential is missing or invalid.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden means the caller is valid but does not own the resource.
	ErrForbidden = errors.New("not authorized")
	// ErrNotFound means the id does not resolve to a live record.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a storage-level uniqueness rule rejected the write.
	ErrConflict = errors.New("conflict")
)

// FieldError describes a single failed constraint on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of field-level failures for a
// request body. It is returned before storage is touched.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
