package domain

import (
	"errors"
	"fmt"
)

// ValidationError covers locally rejected input (blank fields, password
// mismatch, unknown status value). It never implies a storage round-trip.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// AuthError means username/password did not match any active account.
// The message must not reveal which part was wrong.
type AuthError struct {
	Err error
}

func (e AuthError) Error() string { return "invalid username or password" }

func (e AuthError) Unwrap() error { return e.Err }

// ConflictError maps unique-constraint violations (username/email taken).
type ConflictError struct {
	Resource string
	Err      error
}

func (e ConflictError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s already exists", e.Resource)
	}
	return "conflict"
}

func (e ConflictError) Unwrap() error { return e.Err }

// UnavailableError means storage itself could not be reached or rejected the
// connection credentials. Kept distinct from AuthError so the caller can tell
// "wrong login" apart from "database down".
type UnavailableError struct {
	Err error
}

func (e UnavailableError) Error() string { return "storage unavailable" }

func (e UnavailableError) Unwrap() error { return e.Err }

// EmptyReferenceError is the add-trip precondition failure: one of the
// route/vehicle/driver tables has no rows to borrow a foreign key from.
type EmptyReferenceError struct {
	Table string
}

func (e EmptyReferenceError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("no %s records available", e.Table)
	}
	return "reference data is empty"
}

// InternalError wraps any other storage or query failure.
type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsAuth(err error) bool {
	var target AuthError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}

func IsEmptyReference(err error) bool {
	var target EmptyReferenceError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
