package utils

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"atomichabits/internal/shared/errors"
)

// BindingErrorToFieldErrors converts a gin binding error into the field map
// shape used across the API, so malformed requests and business-rule failures
// render the same way.
func BindingErrorToFieldErrors(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		fields := make(errors.FieldErrors, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields[fieldError.Field()] = getFieldErrorMessage(fieldError)
		}
		return errors.NewFieldValidationError(fields)
	}
	return errors.NewBadRequestError("Invalid request body", err.Error())
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}
