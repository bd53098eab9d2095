package uracheck

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and map well to transport-level error
// reporting. Any non-application error is treated as EINTERNAL.
const (
	EEXTERNAL       = "external"        // malformed response from an external collaborator
	EINTERNAL       = "internal"        // internal error
	EINVALID        = "invalid"         // validation failed
	ENOTFOUND       = "not_found"       // entity does not exist
	ENOTIMPLEMENTED = "not_implemented" // feature not implemented
	EUNSUPPORTED    = "unsupported"     // unknown vendor code
)

// Error represents an application-specific error.
//
// Application errors carry a machine-readable code and a human-readable
// message. Any error without a code is reported as EINTERNAL.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("uracheck error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
