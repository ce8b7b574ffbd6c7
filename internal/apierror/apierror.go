// Package apierror provides standardized error response structures for the API
// and the typed error kinds raised by the service layer. All errors returned to
// clients go through this package to ensure consistency and to prevent leaking
// internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}

// Kind classifies a service-layer failure. Services only classify; the
// handler layer maps each kind onto an HTTP status.
type Kind int

const (
	KindUnauthenticated Kind = iota + 1
	KindInactive
	KindForbidden
	KindNotFound
	KindConflict
	KindValidation
)

// Error is the typed error returned by services and repositories upward.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func newError(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Unauthenticated(detail string) *Error { return newError(KindUnauthenticated, detail) }
func Inactive(detail string) *Error        { return newError(KindInactive, detail) }
func Forbidden(detail string) *Error       { return newError(KindForbidden, detail) }
func NotFound(detail string) *Error        { return newError(KindNotFound, detail) }
func Conflict(detail string) *Error        { return newError(KindConflict, detail) }
func Validation(detail string) *Error      { return newError(KindValidation, detail) }

// IsKind reports whether err is a typed *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// StatusOf maps a typed error onto its HTTP status. Untyped errors map to 500
// so internals never leak through a status by accident.
func StatusOf(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindInactive:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
