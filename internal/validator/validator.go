// Package validator provides the shared validation instance and custom
// rules for mutation inputs.
package validator

import (
	"regexp"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

var (
	validate *validator.Validate
	once     sync.Once
)

// Get returns the shared validator with all custom rules registered.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("hex_color", validateHexColor)
		_ = validate.RegisterValidation("weekday", validateWeekday)
		_ = validate.RegisterValidation("emoji", validateEmoji)
	})
	return validate
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

// validateWeekday accepts the persisted Sunday=1..Saturday=7 encoding.
func validateWeekday(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 1 && day <= 7
}

// validateEmoji accepts a single rune. The app's emoji picker only ever
// produces one code point per tracker.
func validateEmoji(fl validator.FieldLevel) bool {
	return utf8.RuneCountInString(fl.Field().String()) == 1
}
