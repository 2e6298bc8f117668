// Package errors defines the structured errors the service reports to API
// clients and CLI users. Only not-found and method errors ever reach an HTTP
// caller; malformed query input is clamped upstream and never becomes an
// error.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeMethod      ErrorType = "method"
	ErrorTypeConfig      ErrorType = "config"
	ErrorTypeUnavailable ErrorType = "unavailable"
	ErrorTypeInternal    ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeUserNotFound     = "USER_NOT_FOUND"
	ErrCodeRouteNotFound    = "ROUTE_NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeConfigInvalid    = "CONFIG_INVALID"
	ErrCodeUnavailable      = "UNAVAILABLE"
	ErrCodeInternalError    = "INTERNAL"
)

// APIError is a structured error type with context.
type APIError struct {
	Type    ErrorType
	Code    string
	Message string
	Status  int
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}
	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// Is matches any APIError with the same type and code.
func (e *APIError) Is(target error) bool {
	var t *APIError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *APIError) WithContext(key string, value interface{}) *APIError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(code, message string) *APIError {
	return &APIError{
		Type:    ErrorTypeNotFound,
		Code:    code,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewMethodError creates a method-not-allowed error.
func NewMethodError(code, message string) *APIError {
	return &APIError{
		Type:    ErrorTypeMethod,
		Code:    code,
		Message: message,
		Status:  http.StatusMethodNotAllowed,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string, cause error) *APIError {
	return &APIError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
		Cause:   cause,
		Status:  http.StatusInternalServerError,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *APIError {
	return &APIError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
		Status:  http.StatusInternalServerError,
	}
}

// ErrUserNotFound reports an id outside [1, total].
func ErrUserNotFound(id string, total int) *APIError {
	return NewNotFoundError(ErrCodeUserNotFound, "user not found: "+id).
		WithContext("id", id).
		WithContext("total", total)
}

// ErrRouteNotFound reports a path no handler serves.
func ErrRouteNotFound(path string) *APIError {
	return NewNotFoundError(ErrCodeRouteNotFound, "no route for "+path)
}

// ErrMethodNotAllowed reports a method other than the allowed ones.
func ErrMethodNotAllowed(method string, allowed ...string) *APIError {
	return NewMethodError(ErrCodeMethodNotAllowed, "method not allowed: "+method).
		WithContext("allowed", allowed)
}

// ErrUnavailable reports a request abandoned before it was served, such as
// one whose artificial delay was cut short by shutdown.
func ErrUnavailable(reason string) *APIError {
	return &APIError{
		Type:    ErrorTypeUnavailable,
		Code:    ErrCodeUnavailable,
		Message: reason,
		Status:  http.StatusServiceUnavailable,
	}
}

// StatusOf maps err to an HTTP status. Errors that are not APIErrors are
// internal.
func StatusOf(err error) int {
	var ae *APIError
	if errors.As(err, &ae) && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Type == ErrorTypeNotFound
	}

	return false
}
