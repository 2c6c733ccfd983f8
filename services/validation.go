package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateInput runs struct-tag validation and reports the first failing
// field as a ValidationError.
func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return validationError(err.Error())
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return validationError(fmt.Sprintf("%s is required", fe.Field()))
	case "email":
		return validationError(fmt.Sprintf("%s must be a valid email address", fe.Field()))
	case "gt":
		return validationError(fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
	case "max":
		return validationError(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	case "datetime":
		return validationError(fmt.Sprintf("%s must be a date formatted as YYYY-MM-DD", fe.Field()))
	default:
		return validationError(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}
