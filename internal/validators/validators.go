package validators

// Check verifies one named field value against a single rule.
type Check[T any] func(field string, value T) error

// Validate runs the checks left to right and stops at the first failure.
// Each field gets its own chain; validating an entity is a series of
// independent per-field Validate calls.
func Validate[T any](field string, value T, checks ...Check[T]) error {
	for _, check := range checks {
		if err := check(field, value); err != nil {
			return err
		}
	}
	return nil
}

// NotNil rejects nil pointers.
func NotNil[T any](field string, value *T) error {
	if value == nil {
		return validationErr(field, "must not be null")
	}
	return nil
}
