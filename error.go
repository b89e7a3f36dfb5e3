package fluentdoc

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// Every failure mode of the retrieval path maps to one of these codes so
// callers can tell "the page does not exist" apart from "the session never
// came up" without string matching.
const (
	EINTERNAL = "internal"  // unexpected internal error
	EINVALID  = "invalid"   // validation failed (unknown key, unknown guide)
	ENOINDEX  = "noindex"   // TOC index build produced zero entries
	ENOMATCH  = "nomatch"   // no TOC entry scored above zero for the query
	ENOTFOUND = "not_found" // navigation succeeded but the page is missing
	ESESSION  = "session"   // landing navigation or frame discovery failed
)

// Error represents an application-specific error. Application errors carry a
// machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("fluentdoc error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
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
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
