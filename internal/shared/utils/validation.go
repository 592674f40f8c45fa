package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"privstore/internal/domain/pricing"
	apperrors "privstore/internal/shared/errors"
)

// RegisterBindingValidators installs the privstore tags on gin's validator:
// `tier` and `duration` accept the catalog values, and field names in
// messages follow the json tags.
func RegisterBindingValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return registerValidators(v)
}

func registerValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("tier", func(fl validator.FieldLevel) bool {
		return pricing.Tier(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		return pricing.Duration(fl.Field().String()).IsValid()
	})
}

// BindingError turns a request binding failure into a validation AppError
// with one message per offending field.
func BindingError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.NewBadRequestError("malformed request body")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldErrorMessage(fe))
	}
	return apperrors.NewValidationError("validation failed", strings.Join(messages, "; "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "tier":
		return fmt.Sprintf("%s must be one of [Low Nice Escape]", field)
	case "duration":
		return fmt.Sprintf("%s must be one of [2weeks 1month forever]", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
