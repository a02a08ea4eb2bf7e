package errorutil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned by the domain core. The calling layer decides how
// to present them; the core only guarantees the classification.
const (
	CodeUnauthenticated       = "UNAUTHENTICATED"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeNotFound              = "NOT_FOUND"
	CodeForbidden             = "FORBIDDEN"
	CodeInvalidTransition     = "INVALID_TRANSITION"
	CodeConflict              = "CONFLICT"
	CodeDependencyUnavailable = "DEPENDENCY_UNAVAILABLE"
	CodeInternal              = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewUnauthenticated signals that no valid principal was supplied.
func NewUnauthenticated(message string) error {
	if message == "" {
		message = "authentication required"
	}
	return NewDomainError(CodeUnauthenticated, message, http.StatusUnauthorized, nil)
}

// NewValidationError names the offending field and the rule it broke.
func NewValidationError(field, reason string) error {
	return NewDomainError(CodeValidationFailed, fmt.Sprintf("%s: %s", field, reason), http.StatusBadRequest, map[string]any{
		"field":  field,
		"reason": reason,
	})
}

// NewNotFound signals an absent entity of the given kind.
func NewNotFound(kind, id string) error {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", kind), http.StatusNotFound, map[string]any{
		"kind": kind,
		"id":   id,
	})
}

// NewForbidden signals an authenticated but unauthorized caller.
func NewForbidden(reason string) error {
	return NewDomainError(CodeForbidden, reason, http.StatusForbidden, nil)
}

// NewInvalidTransition signals an illegal status change.
func NewInvalidTransition(from, to string) error {
	return NewDomainError(CodeInvalidTransition,
		fmt.Sprintf("cannot transition from %s to %s", from, to),
		http.StatusConflict, map[string]any{
			"from": from,
			"to":   to,
		})
}

// NewConflict signals a uniqueness or state conflict.
func NewConflict(message string, details map[string]any) error {
	return NewDomainError(CodeConflict, message, http.StatusConflict, details)
}

// NewDependencyUnavailable wraps a transient collaborator failure. Safe
// to retry at the caller's discretion; never conflated with authorization.
func NewDependencyUnavailable(dependency string, err error) error {
	return &DomainError{
		Code:       CodeDependencyUnavailable,
		Message:    fmt.Sprintf("%s unavailable", dependency),
		HTTPStatus: http.StatusServiceUnavailable,
		Details:    map[string]any{"dependency": dependency},
		Err:        err,
	}
}

// NewInternalError wraps unexpected failures.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		if de, ok := NewDependencyUnavailable("storage", err).(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// HasCode reports whether err carries the given domain error code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == code
}
