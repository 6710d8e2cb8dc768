// Package validation wraps go-playground/validator with the service's custom rules.
package validation

import (
	"reflect"
	"strings"
	"unicode"

	"usersvc/config"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const passwordTag = "password"

// Validator validates tagged structs. It serves both as the echo request
// validator and as service.CommandValidator for the use cases.
type Validator struct {
	validate *validator.Validate
	strength config.PasswordStrengthConfig
}

// New builds a Validator with the password rule bound to the configured strength policy.
func New(cfg *config.Config) (*Validator, error) {
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
	if cfg.PasswordStrength != nil {
		v.strength = *cfg.PasswordStrength
	}

	v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return field.Name
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	if err := v.validate.RegisterValidation(passwordTag, v.validatePassword); err != nil {
		return nil, errors.Wrap(err, "register password validation")
	}

	return v, nil
}

// Validate checks i against its validate tags. Failures are flattened into a
// single readable error.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "e164":
		return fe.Field() + " must be an E.164 phone number"
	case "oneof":
		return fe.Field() + " must be one of [" + fe.Param() + "]"
	case passwordTag:
		return fe.Field() + " does not meet the password strength policy"
	case "min", "gte":
		return fe.Field() + " must be at least " + fe.Param()
	case "max", "lte":
		return fe.Field() + " must be at most " + fe.Param()
	default:
		return fe.Field() + " failed on '" + fe.Tag() + "'"
	}
}

func (v *Validator) validatePassword(fl validator.FieldLevel) bool {
	return v.CheckPassword(fl.Field().String()) == nil
}

// CheckPassword reports the first strength rule password violates.
func (v *Validator) CheckPassword(password string) error {
	s := v.strength
	if s.MinLength > 0 && len(password) < s.MinLength {
		return errors.Errorf("password must be at least %d characters", s.MinLength)
	}
	if s.MaxLength > 0 && len(password) > s.MaxLength {
		return errors.Errorf("password must be at most %d bytes", s.MaxLength)
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	switch {
	case s.RequireUppercase && !upper:
		return errors.New("password must contain an uppercase letter")
	case s.RequireLowercase && !lower:
		return errors.New("password must contain a lowercase letter")
	case s.RequireNumbers && !digit:
		return errors.New("password must contain a digit")
	case s.RequireSpecial && !special:
		return errors.New("password must contain a special character")
	}

	return nil
}
