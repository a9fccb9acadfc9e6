package common

import "errors"

type ErrorKind string

const (
	ErrKindValidation  ErrorKind = "validation"
	ErrKindNotFound    ErrorKind = "not_found"
	ErrKindUnavailable ErrorKind = "unavailable"
	ErrKindInternal    ErrorKind = "internal"
)

// Error is the result type every service operation returns on failure. The
// HTTP layer maps Kind to a status code instead of inspecting error strings.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ValidationError(message string) *Error {
	return &Error{Kind: ErrKindValidation, Message: message}
}

func NotFoundError(message string) *Error {
	return &Error{Kind: ErrKindNotFound, Message: message}
}

func UnavailableError(message string, err error) *Error {
	return &Error{Kind: ErrKindUnavailable, Message: message, Err: err}
}

func InternalError(message string, err error) *Error {
	return &Error{Kind: ErrKindInternal, Message: message, Err: err}
}

// KindOf reports the kind carried by err, defaulting to internal for plain
// errors coming from gorm or the stdlib.
func KindOf(err error) ErrorKind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ErrKindInternal
}
