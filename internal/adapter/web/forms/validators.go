package forms

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", validateCurrencyCode)
	}
}

// validateCurrencyCode backs the "currencycode" binding tag.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return ValidCurrency(NormalizeCurrency(fl.Field().String()))
}

// NormalizeCurrency uppercases and trims a currency code the way the
// backend expects it.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidCurrency reports whether code is a three-letter uppercase code.
func ValidCurrency(code string) bool {
	return currencyRe.MatchString(code)
}
