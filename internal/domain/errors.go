package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services and controllers.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrRateLimited         = errors.New("too many submissions, please try again later")
	ErrDuplicateSubmission = errors.New("a matching submission already exists")
	ErrPeriodClosed        = errors.New("submissions are not currently open")
	ErrAlreadyRolledOver   = errors.New("a rollover has already been performed this year")
	ErrLastAdmin           = errors.New("cannot delete the last admin user")
	ErrDuplicateEmail      = errors.New("email already in use")
	ErrUserNotFound        = errors.New("user not found")
	// ErrAttendeePartialInsert reports that the registration row was created
	// but one or more attendee rows were not. The registration is not rolled
	// back; the caller is informed instead.
	ErrAttendeePartialInsert = errors.New("registration saved but attendee insertion failed")
)

// FieldError names a single invalid field in a submission payload.
// swagger:model FieldError
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field violation found in a payload so the
// caller can report them all at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a ValidationError from field errors.
func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// AlreadyRolledOverError reports which year's rollover was already performed.
type AlreadyRolledOverError struct {
	Year int
}

func (e *AlreadyRolledOverError) Error() string {
	return fmt.Sprintf("rollover already performed for %d", e.Year)
}

func (e *AlreadyRolledOverError) Unwrap() error { return ErrAlreadyRolledOver }
