// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/dtroode/tasktracker-server/internal/model"
)

// Validator validates request DTOs by their `validate` struct tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("password", validatePassword)

	return &Validator{validate: v}
}

// Validate implements echo.Validator. Failures are returned as a bad request
// APIError describing every failed field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, describe(fe))
	}

	return model.NewErrInvalidInput(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s should not be empty", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be longer than or equal to %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be shorter than or equal to %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of the following values: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "password":
		return fmt.Sprintf("%s is too weak", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// validatePassword requires an upper-case letter, a lower-case letter and a
// digit or special character.
func validatePassword(fl validator.FieldLevel) bool {
	var hasUpper, hasLower, hasDigitOrSpecial bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r), !unicode.IsLetter(r) && r != '_':
			hasDigitOrSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigitOrSpecial
}
