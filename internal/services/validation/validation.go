// Package validation wraps go-playground/validator for the service layer.
package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with required-on-struct semantics enabled
func New() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Check validates req and maps the first failing field to its sentinel in
// fieldErrs. Fields without a sentinel return the validator error unchanged.
func Check(v *validator.Validate, req any, fieldErrs map[string]error) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if sentinel, ok := fieldErrs[fe.Field()]; ok {
			return sentinel
		}
	}
	return err
}
