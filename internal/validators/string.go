package validators

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/BruksfildServices01/estate-agency/internal/apperr"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{12}$`)

func validationErr(field, reason string) error {
	return apperr.Validation(field, reason)
}

func NotEmpty(field, value string) error {
	if value == "" {
		return validationErr(field, "must not be empty")
	}
	return nil
}

// MaxSize bounds the value length in runes.
func MaxSize(limit int) Check[string] {
	return func(field, value string) error {
		if utf8.RuneCountInString(value) > limit {
			return validationErr(field, fmt.Sprintf("must be at most %d characters long", limit))
		}
		return nil
	}
}

func PhoneNumber(field, value string) error {
	if !phonePattern.MatchString(value) {
		return validationErr(field, "must match the pattern '+380980307445'")
	}
	return nil
}
