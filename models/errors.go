package models

import (
	"net/http"
)

// APIError carries an HTTP status alongside a client-safe message. Handlers
// convert any other error into a generic 500 so internals never leak.
type APIError struct {
	Status     int    `json:"-"`
	Message    string `json:"error"`
	Constraint string `json:"constraint,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewValidationError reports missing or malformed input.
func NewValidationError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NewAuthError reports a missing, invalid or expired credential. The same
// message is used for unknown users and wrong passwords so responses do not
// reveal which accounts exist.
func NewAuthError(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

// NewForbiddenError reports an authenticated but unauthorized request.
func NewForbiddenError(message string) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: message}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

// NewConflictError reports a uniqueness violation.
func NewConflictError(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: message}
}

// NewForeignKeyError reports a delete blocked by a referencing row,
// including the offending constraint name.
func NewForeignKeyError(message, constraint string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: message, Constraint: constraint}
}

// NewInternalError reports an unexpected failure with a generic message.
func NewInternalError(message string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: message}
}
