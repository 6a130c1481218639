package services

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// validateForm checks required fields first, then the email format
func validateForm(in interface{}, missing error) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Internal(err, "validation failed")
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return missing
		}
	}
	return domain.ErrInvalidEmail
}
