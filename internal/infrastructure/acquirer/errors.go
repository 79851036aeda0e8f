package acquirer

import (
	"errors"
	"fmt"
)

// Kind classifies why a round trip to the acquiring bank failed.
type Kind string

const (
	// KindUnavailable means the bank answered with a server-side fault.
	KindUnavailable Kind = "UNAVAILABLE"
	// KindUnreachable covers every other transport failure: connection
	// errors, timeouts, unexpected statuses and bodies that do not parse.
	KindUnreachable Kind = "UNREACHABLE"
)

// Error describes a failed authorization round trip. A declined payment is
// not an Error; it is a successful call with authorized=false.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int // 0 when no response arrived
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("acquirer error [%s]: %s (status: %d)", e.Kind, e.Message, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("acquirer error [%s]: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("acquirer error [%s]: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func IsAcquirerError(err error) (*Error, bool) {
	var acqErr *Error
	ok := errors.As(err, &acqErr)
	return acqErr, ok
}
