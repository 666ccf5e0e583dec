// Package apperr defines the application error type
package apperr

import "fmt"

// Error is an application error. Message may be a plain string or a
// format string completed later with Fmt.
type Error struct {
	Cause   error
	base    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is this error or the sentinel a formatted
// copy was derived from, so errors.Is keeps working after Fmt.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.base == t
}

// Fmt returns a copy of the error with its message format specifiers
// filled in.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		base:    e,
	}
}

// Wrap returns a copy of the error with an underlying cause attached.
func (e *Error) Wrap(cause error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   cause,
		base:    e,
	}
}
