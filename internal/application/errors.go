package application

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError is what the orchestration layer hands to the boundary.
// Message is safe to show the caller; Err keeps the original detail for
// server-side logs only.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidRequest      = "INVALID_REQUEST"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeAcquirerUnavailable = "ACQUIRER_UNAVAILABLE"
	ErrCodeAcquirerUnreachable = "ACQUIRER_UNREACHABLE"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// internalMessage is the only text callers ever see for server-side faults.
const internalMessage = "Internal server error. Please try again later"

func NewInvalidRequestError(message string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewNotFoundError(id string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeNotFound,
		Message:    "Page not found",
		HTTPStatus: http.StatusNotFound,
		Err:        fmt.Errorf("payment %s not found", id),
	}
}

func NewAcquirerUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeAcquirerUnavailable,
		Message:    internalMessage,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewAcquirerUnreachableError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeAcquirerUnreachable,
		Message:    internalMessage,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    internalMessage,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
