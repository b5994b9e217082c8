package utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of a 422 response body.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// RegisterValidators installs the custom binding rules on gin's validator:
// "sortdir" (ASC or DESC, any case), "phone" (digits and the usual
// separators, at least 4 digits) and "password" (at least passwordMinLength
// runes, at most MaxPasswordBytes bytes).
func RegisterValidators(passwordMinLength int) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	if err := v.RegisterValidation("sortdir", func(fl validator.FieldLevel) bool {
		switch strings.ToUpper(fl.Field().String()) {
		case "ASC", "DESC":
			return true
		}
		return false
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return validPhone(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		password := fl.Field().String()
		return utf8.RuneCountInString(password) >= passwordMinLength && len(password) <= MaxPasswordBytes
	})
}

func validPhone(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune(" +-().", r):
		default:
			return false
		}
	}
	return digits >= 4
}

func ValidationDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "password":
		return fmt.Sprintf("Password must be long enough and at most %d bytes.", MaxPasswordBytes)
	case "min":
		return fmt.Sprintf("Must contain at least %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Must contain at most %s.", fe.Param())
	case "eqfield":
		return "Passwords must match."
	case "sortdir":
		return "Must be ASC or DESC."
	case "phone":
		return "Must be a phone number."
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}
