package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/recipebox/internal/common"
	"github.com/dmitrijs2005/recipebox/internal/server/validation"
)

// APIError is the body of every failed request.
type APIError struct {
	Code       string                  `json:"error"`
	Message    string                  `json:"message"`
	Fields     []validation.FieldError `json:"fields,omitempty"`
	StatusCode int                     `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

// WithFields returns a copy carrying per-field violations.
func (e *APIError) WithFields(fields []validation.FieldError) *APIError {
	return &APIError{Code: e.Code, Message: e.Message, StatusCode: e.StatusCode, Fields: fields}
}

// WithMessage returns a copy with a different message.
func (e *APIError) WithMessage(msg string) *APIError {
	return &APIError{Code: e.Code, Message: msg, StatusCode: e.StatusCode, Fields: e.Fields}
}

func newAPIError(code string, status int, msg string) *APIError {
	return &APIError{Code: code, Message: msg, StatusCode: status}
}

var (
	ErrValidation         = newAPIError("validation_error", http.StatusBadRequest, "Validation failed")
	ErrBadRequest         = newAPIError("bad_request", http.StatusBadRequest, "Malformed request body")
	ErrEmailExists        = newAPIError("email_exists", http.StatusBadRequest, "An account with this email already exists")
	ErrUnauthorized       = newAPIError("unauthorized", http.StatusUnauthorized, "Authentication required")
	ErrInvalidCredentials = newAPIError("invalid_credentials", http.StatusUnauthorized, "Invalid email or password")
	ErrNotFound           = newAPIError("not_found", http.StatusNotFound, "Not found")
	ErrInternal           = newAPIError("internal_error", http.StatusInternalServerError, "Something went wrong, please try again")
)

// toAPIError maps service errors to their HTTP form. Unknown errors become
// ErrInternal; ok is false for those so the caller can log the cause.
func toAPIError(err error) (apiErr *APIError, ok bool) {
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return ErrInvalidCredentials, true
	case errors.Is(err, common.ErrorUnauthorized):
		return ErrUnauthorized, true
	case errors.Is(err, common.ErrorNotFound):
		return ErrNotFound, true
	case errors.Is(err, common.ErrAlreadyExists):
		return ErrEmailExists, true
	case errors.Is(err, common.ErrorValidation):
		return ErrValidation.WithMessage(err.Error()), true
	}

	return ErrInternal, false
}
