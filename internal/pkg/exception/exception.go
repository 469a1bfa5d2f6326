package exception

import (
	"errors"
	"fmt"
)

// ApplicationError handles application level errors.
// Code is a stable machine readable identifier so callers can branch on the
// failure kind without parsing Message.
type ApplicationError struct {
	Code       string
	Message    string
	StatusCode int
	Cause      error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}

	return e.Cause
}

// Is reports whether target is the same application error. Errors carrying a
// code match on the code alone so a sentinel still matches after a cause has
// been attached with WithCause.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	if e.Code != "" || targetErr.Code != "" {
		return e.Code == targetErr.Code
	}

	return e.Cause == targetErr.Cause &&
		e.Message == targetErr.Message
}

// ErrorCode returns the HTTP status code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// WithCause returns a copy of the error wrapping cause.
func (e ApplicationError) WithCause(cause error) ApplicationError {
	e.Cause = cause

	return e
}

// WithMessage returns a copy of the error with a more specific message.
func (e ApplicationError) WithMessage(message string) ApplicationError {
	e.Message = message

	return e
}
