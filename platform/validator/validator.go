// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// usPhonePattern accepts 555-123-4567, (555) 123-4567, 555.123.4567 and 5551234567.
var usPhonePattern = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)

// Validator wraps the go-playground validator for structured validation.
type Validator struct {
	v *validator.Validate
}

// FieldError is a single failed rule, keyed by the JSON field name.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// New creates a new Validator with the shared custom rules registered.
// Field names in errors follow the json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("usphone", validateUSPhone)
	return &Validator{v: v}
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s any) error {
	return val.v.Struct(s)
}

// Fields flattens a validation error into per-field failures.
// The first failure per field wins. Non-validation errors yield nil.
func Fields(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	seen := make(map[string]bool, len(verrs))
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		if seen[fe.Field()] {
			continue
		}
		seen[fe.Field()] = true
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out
}

// IsUSPhone reports whether s is a 10 digit US phone number in a common layout.
func IsUSPhone(s string) bool {
	return usPhonePattern.MatchString(strings.TrimSpace(s))
}

func validateUSPhone(fl validator.FieldLevel) bool {
	return IsUSPhone(fl.Field().String())
}
