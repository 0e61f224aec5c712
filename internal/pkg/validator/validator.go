// Package validator wraps go-playground/validator with standardized error
// formatting for struct tag validation.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed heads the error chain returned when one or more struct
// fields fail validation, so callers can detect the failure with errors.Is.
var ErrValidationFailed = errors.New("struct validation failed")

var validate *gvalidator.Validate

func init() {
	validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// Validate checks v against its `validate` struct tags. On failure it returns
// ErrValidationFailed joined with one descriptive error per offending field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs gvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, fieldErr := range fieldErrs {
		errs = append(errs, fmt.Errorf("'%s': value '%v' fails the '%s' constraint",
			fieldErr.Field(),
			fieldErr.Value(),
			fieldErr.Tag(),
		))
	}

	return errors.Join(errs...)
}
