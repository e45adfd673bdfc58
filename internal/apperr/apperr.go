// Package apperr defines the error taxonomy surfaced by the service layer.
// Handlers translate these into HTTP statuses; anything else is a 500.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	// Unauthenticated covers missing/invalid/expired tokens and bad
	// login credentials.
	Unauthenticated Kind = iota
	// Invalid carries joined field-level validation messages.
	Invalid
	// NotFound means absent or not owned by the caller. Ownership
	// failures are deliberately indistinguishable from absence.
	NotFound
	// Conflict means a duplicate registration.
	Conflict
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Unauthenticatedf(message string) *Error { return New(Unauthenticated, message) }
func Invalidf(message string) *Error         { return New(Invalid, message) }
func NotFoundf(message string) *Error        { return New(NotFound, message) }
func Conflictf(message string) *Error        { return New(Conflict, message) }

// Status maps an error to its HTTP status code.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case Unauthenticated:
		return http.StatusUnauthorized
	case Invalid:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
