package model

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores on a unique constraint violation.
	ErrAlreadyExists = errors.New("already exists")
)

// Error codes carried by APIError.
const (
	CodeConflict     = "CONFLICT"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeBadRequest   = "BAD_REQUEST"
	CodeInternal     = "INTERNAL"
)

// APIError is a domain error that is safe to show to the client.
type APIError struct {
	HTTPCode int
	Code     string
	Message  string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is matches another APIError with the same code, so callers can use
// errors.Is(err, &APIError{Code: CodeNotFound}).
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func newAPIError(httpCode int, code, message string) *APIError {
	return &APIError{HTTPCode: httpCode, Code: code, Message: message}
}

func NewErrUsernameTaken() *APIError {
	return newAPIError(http.StatusConflict, CodeConflict, "username already exists")
}

func NewErrTaskNotFound(id uuid.UUID) *APIError {
	return newAPIError(http.StatusNotFound, CodeNotFound, fmt.Sprintf("task with id: %s not found", id))
}

func NewErrInvalidCredentials() *APIError {
	return newAPIError(http.StatusUnauthorized, CodeUnauthorized, "invalid credentials")
}

func NewErrMissingAuthorizationToken() *APIError {
	return newAPIError(http.StatusUnauthorized, CodeUnauthorized, "missing authorization token")
}

func NewErrInvalidAuthorizationToken() *APIError {
	return newAPIError(http.StatusUnauthorized, CodeUnauthorized, "invalid authorization token")
}

func NewErrUnauthorized() *APIError {
	return newAPIError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
}

func NewErrEmptyTaskStatus() *APIError {
	return newAPIError(http.StatusBadRequest, CodeBadRequest, "status should not be empty")
}

func NewErrInvalidTaskStatus(value string) *APIError {
	return newAPIError(http.StatusBadRequest, CodeBadRequest, fmt.Sprintf("%s is not a valid status.", value))
}

func NewErrInvalidTaskID(value string) *APIError {
	return newAPIError(http.StatusBadRequest, CodeBadRequest, fmt.Sprintf("%s is not a valid task id", value))
}

func NewErrInvalidInput(message string) *APIError {
	return newAPIError(http.StatusBadRequest, CodeBadRequest, message)
}

func NewErrInternal() *APIError {
	return newAPIError(http.StatusInternalServerError, CodeInternal, "internal server error")
}
