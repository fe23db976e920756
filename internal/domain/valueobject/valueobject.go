// Package valueobject holds immutable, self-validating wrappers around the
// primitives used by the marketplace domain. Each wrapper is built through a
// New* factory that rejects invalid input with domain.ErrValidation.
package valueobject

import (
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/go-course-marketplace/internal/domain"
)

// ULIDLength is the length of every identifier in the domain.
const ULIDLength = 26

// Crockford base32, upper case, no I L O U.
var ulidPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

var validate = validator.New()

func parseULID[T ~string](field, v string) (T, error) {
	if len(v) != ULIDLength {
		return "", domain.Validationf("%s must be exactly %d characters long, got %d", field, ULIDLength, len(v))
	}
	if !ulidPattern.MatchString(v) {
		return "", domain.Validationf("%s must contain only characters 0-9, A-Z excluding I, L, O, U, got: %s", field, v)
	}
	return T(v), nil
}

func maxLength(field, v string, max int) error {
	if len(v) > max {
		return domain.Validationf("%s cannot exceed %d characters, got %d", field, max, len(v))
	}
	return nil
}

func notBlank(field, v string) error {
	if v == "" {
		return domain.Validationf("%s cannot be empty", field)
	}
	return nil
}

func nonNegativeInt(field string, v int) error {
	if v < 0 {
		return domain.Validationf("%s cannot be negative, got: %d", field, v)
	}
	return nil
}

// finite rejects NaN and infinities, which slip through every range comparison.
func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.Validationf("%s must be a finite number, got: %f", field, v)
	}
	return nil
}

func nonNegativeFloat(field string, v float64) error {
	if err := finite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return domain.Validationf("%s cannot be negative, got: %f", field, v)
	}
	return nil
}
