package utils

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct runs tag-based validation on an input struct and wraps any
// failure in ErrorValidation so callers can errors.Is on one sentinel.
func ValidateStruct(input any) error {
	if err := getValidator().Struct(input); err != nil {
		fields := ProcessValidationErrors(err)
		parts := make([]string, 0, len(fields))
		for field, msg := range fields {
			parts = append(parts, field+" "+msg)
		}
		return fmt.Errorf("%w: %s", ErrorValidation, strings.Join(parts, "; "))
	}
	return nil
}

func ProcessValidationErrors(err error) map[string]string {

	errorResponse := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorResponse["input"] = err.Error()
		return errorResponse
	}

	for _, fieldError := range validationErrors {
		switch fieldError.Tag() {
		case "required":
			errorResponse[fieldError.Field()] = "is required"
		case "gt":
			errorResponse[fieldError.Field()] = "must be greater than " + fieldError.Param()
		case "email":
			errorResponse[fieldError.Field()] = "must be a valid email"
		case "min":
			errorResponse[fieldError.Field()] = "must have at least " + fieldError.Param()
		case "oneof":
			errorResponse[fieldError.Field()] = "must be one of " + fieldError.Param()
		default:
			errorResponse[fieldError.Field()] = "failed " + fieldError.Tag() + " validation"
		}
	}

	return errorResponse
}
