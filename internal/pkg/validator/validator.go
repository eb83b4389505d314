// Package validator wraps go-playground/validator for declarative struct
// validation via `validate` tags, returning a joined error chain with one
// formatted message per failing field.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the root of the error chain returned when a struct
// fails validation, so callers can detect validation failures with errors.Is
// even when several fields are reported.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError converts raw validator errors into a joined chain rooted at
// ErrValidationFailed. Non-validation errors pass through unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, fieldErr := range validationErrors {
		errs = append(errs, fmt.Errorf("'%s': value '%v' does not meet the requirements for the '%s' validation",
			fieldErr.Field(),
			fieldErr.Value(),
			fieldErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks the given struct against its `validate` tags. It returns
// nil when all fields pass, or an error chain rooted at ErrValidationFailed
// otherwise.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
