package exceptions

import (
	"errors"
	"giya-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	first := validationErrors[0]
	if first.Tag() == "not_past_day" {
		return constvars.CustomValidationErrorMessages[first.Tag()]
	}
	return fieldName(first) + " " + messageFor(first)
}

// FieldMessages keys every failed field by its form/json name.
func FieldMessages(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		name := fieldName(fieldErr)
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = messageFor(fieldErr)
	}
	return fields
}

func fieldName(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return strings.ToLower(fieldErr.Field())
}

func messageFor(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	message, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		param := fieldErr.Param()
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		message = strings.Replace(message, "%s", param, 1)
	}
	return message
}
