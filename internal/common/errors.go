package common

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

var (
	// store errors
	ErrNotFound            = errors.New("not found")
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrMembershipDowngrade = errors.New("membership cannot be revoked")

	// service errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAnonymous          = errors.New("authentication required")
	ErrForbidden          = errors.New("members only")
	ErrUnavailable        = errors.New("feature not configured")
	ErrValidation         = errors.New("validation failed")
)

// ValidationError carries one message per offending form field.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil returns e as an error when it holds at least one field.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrAnonymous):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateUsername), errors.Is(err, ErrMembershipDowngrade):
		return http.StatusConflict
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
