package apperr

import (
	"errors"
	"fmt"
)

// Conflict codes raised by the uniqueness and lifecycle guards.
const (
	CodeEmailAlreadyExists   = "email_already_exists"
	CodePhoneAlreadyExists   = "phone_already_exists"
	CodeAgreementAlreadyOpen = "agreement_already_open"
	CodeRealEstateOrdered    = "real_estate_already_ordered"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ValidationError reports a malformed field value. It never leaves
// persisted state behind; the caller may re-prompt and retry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// NotFoundError reports a reference that does not resolve to a live row.
// ID is zero when the lookup was by a unique field rather than by id.
type NotFoundError struct {
	Kind string
	ID   uint
}

func (e NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

func NotFound(kind string) error {
	return NotFoundError{Kind: kind}
}

func NotFoundByID(kind string, id uint) error {
	return NotFoundError{Kind: kind, ID: id}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
