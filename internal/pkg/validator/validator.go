package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"onpauling/internal/pkg/phone"
)

// Patterns accepted by the public forms.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{10,20}$`)
)

var messages = map[string]string{
	"required":      "is required",
	"shallow_email": "must be a valid email address",
	"loose_phone":   "must be a valid phone number",
	"dial_code":     "must be a supported country dialing code",
	"notblank":      "must not be blank",
	"min":           "is too small",
	"max":           "is too large",
	"oneof":         "is not an allowed value",
	"dive":          "contains an invalid value",
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = validate.RegisterValidation("shallow_email", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	_ = validate.RegisterValidation("loose_phone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	_ = validate.RegisterValidation("dial_code", func(fl validator.FieldLevel) bool {
		return phone.IsSupportedDialCode(fl.Field().String())
	})
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// Validate checks struct tags and returns json field name -> message,
// or nil when the struct is valid.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := errors[field]; seen {
			continue
		}
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		errors[field] = msg
	}
	return errors
}
