package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"hrms-backend/internal/platform/storeerr"
)

// ===== Error model (employees/attendance/dashboard で共通) =====
type Code string

const (
	CodeValidation Code = "VALIDATION_ERROR"
	CodeNotFound   Code = "NOT_FOUND"
	CodeConflict   Code = "CONFLICT"
	CodeDatabase   Code = "DB_ERROR"
	CodeInternal   Code = "INTERNAL_ERROR"
)

const internalMessage = "An unexpected error occurred. Please try again later."

type APIError struct {
	Code      Code              `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	Retryable bool              `json:"retryable,omitempty"`

	cause error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.cause }

func ErrValidation(msg string) *APIError { return &APIError{Code: CodeValidation, Message: msg} }
func ErrNotFound(msg string) *APIError   { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrConflict(msg string) *APIError   { return &APIError{Code: CodeConflict, Message: msg} }
func ErrInternal(msg string) *APIError   { return &APIError{Code: CodeInternal, Message: msg} }

// ErrFields builds a validation error carrying per-field messages.
func ErrFields(fields map[string]string) *APIError {
	return &APIError{Code: CodeValidation, Message: "invalid request payload", Fields: fields}
}

// ErrDatabase wraps a store failure. Timeouts are flagged retryable.
func ErrDatabase(msg string, cause error) *APIError {
	e := &APIError{Code: CodeDatabase, Message: msg, cause: cause}
	if errors.Is(cause, context.DeadlineExceeded) || errors.Is(cause, storeerr.ErrUnavailable) {
		e.Message = msg + ": store timed out, please retry"
		e.Retryable = true
	}
	return e
}

// FromStore maps a store-level failure onto the taxonomy. notFound is used
// when the store reports storeerr.ErrNotFound.
func FromStore(err error, msg string, notFound string) *APIError {
	var api *APIError
	if errors.As(err, &api) {
		return api
	}
	var dup *storeerr.DuplicateKeyError
	switch {
	case errors.As(err, &dup):
		return &APIError{Code: CodeConflict, Message: dup.Key + " already exists", Fields: map[string]string{dup.Key: "already exists"}, cause: err}
	case errors.Is(err, storeerr.ErrDuplicate):
		return &APIError{Code: CodeConflict, Message: "duplicate entry", cause: err}
	case errors.Is(err, storeerr.ErrNotFound) && notFound != "":
		return &APIError{Code: CodeNotFound, Message: notFound, cause: err}
	}
	return ErrDatabase(msg, err)
}

func HTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeValidation:
			return http.StatusBadRequest
		case CodeNotFound:
			return http.StatusNotFound
		case CodeConflict:
			return http.StatusConflict
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether err was caused by the caller (4xx).
func IsClientError(err error) bool {
	status := HTTPStatus(err)
	return status >= 400 && status < 500
}

// Public returns the error as it may be shown to a caller. Anything that is
// not an *APIError collapses to a generic INTERNAL_ERROR.
func Public(err error) *APIError {
	var api *APIError
	if !errors.As(err, &api) {
		return &APIError{Code: CodeInternal, Message: internalMessage}
	}
	if api.Code == CodeInternal {
		return &APIError{Code: CodeInternal, Message: internalMessage}
	}
	return &APIError{Code: api.Code, Message: api.Message, Fields: api.Fields, Retryable: api.Retryable}
}
