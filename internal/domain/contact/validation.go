package contact

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

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
	if err := v.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		email := fl.Field().String()
		return emailPattern.MatchString(email) && strings.IndexFunc(email, unicode.IsSpace) < 0
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks a normalized submission. Missing fields are reported before
// a malformed email.
func Validate(s Submission) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var missing, malformed []Issue
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, Issue{Field: fe.Field(), Reason: "is required"})
		case "contactemail":
			malformed = append(malformed, Issue{Field: fe.Field(), Reason: "must look like name@domain.tld"})
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Err: ErrMissingFields, Issues: missing}
	}
	return &ValidationError{Err: ErrInvalidEmail, Issues: malformed}
}
