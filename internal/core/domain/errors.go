// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a domain error
type Kind string

// Error kinds
const (
	KindValidation Kind = "validation"
	KindInvalidID  Kind = "invalid_id"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// Error is the classified error returned by services
type Error struct {
	Kind    Kind
	Message string
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError aggregates violations into one error
func NewValidationError(violations ...string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: strings.Join(violations, ", "),
		Details: violations,
	}
}

// ErrInvalidID reports a malformed identifier
func ErrInvalidID(id string) *Error {
	return &Error{
		Kind:    KindInvalidID,
		Message: "Invalid ID",
		Details: []string{fmt.Sprintf("%q is not a valid id", id)},
	}
}

// ErrNotFound reports a missing phone
func ErrNotFound(id ID) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: "Phone not found",
		Details: []string{fmt.Sprintf("no phone with id %s", id)},
	}
}

// Internal wraps an unexpected failure
func Internal(err error, msg string) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: msg,
		Err:     err,
	}
}

// KindOf returns the kind of err, KindInternal for unclassified errors
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a not found error
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return err != nil && KindOf(err) == KindValidation
}

// IsInvalidID reports whether err is an invalid id error
func IsInvalidID(err error) bool {
	return err != nil && KindOf(err) == KindInvalidID
}
