package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/barrovivo/backend/internal/interfaces/http/dto"
	"github.com/go-playground/validator/v10"
)

// FormatBindingError turns a gin binding error into field-level details.
// Non-validator errors (malformed JSON and friends) come back as a single
// body-level detail.
func FormatBindingError(err error) []dto.FieldDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]dto.FieldDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, dto.FieldDetail{
				Field:   strings.ToLower(fieldErr.Field()),
				Message: messageForTag(fieldErr),
			})
		}
		return details
	}
	return []dto.FieldDetail{{Field: "body", Message: err.Error()}}
}

// messageForTag writes a readable message for a failed validation tag
func messageForTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fieldErr.Param())
	case "uuid":
		return "Must be a valid UUID"
	case "numeric":
		return "Must contain only digits"
	default:
		return fmt.Sprintf("Failed %s validation", fieldErr.Tag())
	}
}
