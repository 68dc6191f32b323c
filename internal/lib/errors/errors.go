package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies failures for the response envelope. The set mirrors
// the workflow taxonomy: reads fail terminally (NOT_FOUND), user input
// fails with VALIDATION_ERROR, disallowed transitions with CONFLICT, and a
// mutation the ERP itself refuses with EXTERNAL_REJECTED.
type ErrorCode string

const (
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeBadRequest   ErrorCode = "BAD_REQUEST"

	ErrCodeExternalRejected ErrorCode = "EXTERNAL_REJECTED"
	ErrCodeGatewayError     ErrorCode = "GATEWAY_ERROR"
	ErrCodeInternalError    ErrorCode = "INTERNAL_ERROR"
	ErrCodeTimeout          ErrorCode = "TIMEOUT"
)

// APIError is a structured error carrying a stable code, a user-facing
// message and the HTTP status it maps to.
type APIError struct {
	Code       ErrorCode         `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	HTTPStatus int               `json:"-"`
}

func (e *APIError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s (details: %v)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetail adds a single detail to the error.
func (e *APIError) WithDetail(key, value string) *APIError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

func NewValidationError(message string) *APIError {
	return &APIError{
		Code:       ErrCodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewBadRequestError(message string) *APIError {
	return &APIError{
		Code:       ErrCodeBadRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Code:       ErrCodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string) *APIError {
	return &APIError{
		Code:       ErrCodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string) *APIError {
	return &APIError{
		Code:       ErrCodeForbidden,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

// NewConflictError reports a transition attempted from a disallowed state.
func NewConflictError(message string) *APIError {
	return &APIError{
		Code:       ErrCodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewExternalRejectedError reports a mutation the remote system refused.
// Partial writes applied before the rejection stay applied.
func NewExternalRejectedError(message string) *APIError {
	return &APIError{
		Code:       ErrCodeExternalRejected,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func NewGatewayError(operation string) *APIError {
	return &APIError{
		Code:    ErrCodeGatewayError,
		Message: "Record store request failed",
		Details: map[string]string{
			"operation": operation,
		},
		HTTPStatus: http.StatusBadGateway,
	}
}

func NewInternalError(message string) *APIError {
	if message == "" {
		message = "An internal error occurred"
	}
	return &APIError{
		Code:       ErrCodeInternalError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func NewTimeoutError(operation string) *APIError {
	return &APIError{
		Code:    ErrCodeTimeout,
		Message: "Operation timed out",
		Details: map[string]string{
			"operation": operation,
		},
		HTTPStatus: http.StatusGatewayTimeout,
	}
}

func code(err error) (ErrorCode, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	return "", false
}

func IsNotFoundError(err error) bool {
	c, ok := code(err)
	return ok && c == ErrCodeNotFound
}

func IsConflictError(err error) bool {
	c, ok := code(err)
	return ok && c == ErrCodeConflict
}

func IsExternalRejectedError(err error) bool {
	c, ok := code(err)
	return ok && c == ErrCodeExternalRejected
}

func IsUnauthorizedError(err error) bool {
	c, ok := code(err)
	return ok && c == ErrCodeUnauthorized
}

// WrapError wraps a plain error into an internal APIError, passing through
// errors that are already structured.
func WrapError(err error, message string) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalError(message).WithDetail("original_error", err.Error())
}
