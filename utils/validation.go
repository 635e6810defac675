package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/firmdir-simple/apperrors"
	"github.com/go-playground/validator/v10"
)

// TranslateBindingError converts a gin binding failure into the shared
// validation error type, with one entry per failed field. Non-validator
// failures (malformed JSON, wrong types) become a single body-level entry.
func TranslateBindingError(err error) *apperrors.ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError("body", "invalid request body")
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:   lowerFirst(fe.Field()),
			Message: constraintMessage(fe),
		})
	}
	return &apperrors.ValidationError{Fields: fields}
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
