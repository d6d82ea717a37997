package utils

import (
	"doctor-appointment-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate   *validator.Validate
	emailRegex = regexp.MustCompile(constvars.RegexEmail)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("email_address", validateEmailAddress)
	validate.RegisterValidation("date_yyyy_mm_dd", validateDate)
	validate.RegisterValidation("slot_label", validateSlotLabel)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateEmailAddress(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func validateDate(fl validator.FieldLevel) bool {
	return IsValidDate(fl.Field().String())
}

func validateSlotLabel(fl validator.FieldLevel) bool {
	return IsValidSlotLabel(fl.Field().String())
}
