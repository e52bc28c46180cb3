package validators

import (
	"time"

	"github.com/BruksfildServices01/estate-agency/internal/clock"
)

func NotZero(field string, value time.Time) error {
	if value.IsZero() {
		return validationErr(field, "must not be null")
	}
	return nil
}

// Past accepts only values strictly earlier than the validation instant.
func Past(field string, value time.Time) error {
	if !value.Before(clock.Now()) {
		return validationErr(field, "must be in the past")
	}
	return nil
}

// Future accepts only values strictly later than the validation instant.
func Future(field string, value time.Time) error {
	if !value.After(clock.Now()) {
		return validationErr(field, "must be in the future")
	}
	return nil
}
