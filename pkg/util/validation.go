package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks `validate` tags and returns per-field messages
// suitable for DomainError details. A nil map means the input is valid.
func ValidateStruct(data interface{}) map[string]any {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	details := make(map[string]any)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validationErrors {
			details[fieldErr.Field()] = fieldMessage(fieldErr)
		}
	}
	return details
}

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("minimum length is %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	default:
		return fmt.Sprintf("invalid %s field", err.Field())
	}
}
