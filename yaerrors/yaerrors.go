// Package yaerrors provides the coded error type returned by every public
// function of this module.
//
// An Error carries an HTTP-like status code, the original cause and a
// human-readable traceback built from the messages added on the way up the
// call stack:
//
//	err := yaerrors.FromError(http.StatusBadRequest, cause, "[DECODER] failed to parse input")
//	return err.Wrap("decode update")
//
// The result prints as "400 | decode update -> [DECODER] failed to parse input: <cause>"
// and still unwraps to cause, so errors.Is and errors.As keep working.
package yaerrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaTgBotAPI/yalogger"
)

// Error is an error with a status code and an accumulated traceback.
type Error interface {
	error
	Wrap(msg string) Error
	WrapWithLog(msg string, log yalogger.Logger) Error
	Code() int
	Unwrap() error
	UnwrapLastError() string
}

const (
	codeSeparate  = " | "
	errorSeparate = " -> "
)

type yaError struct {
	code      int
	cause     error
	traceback string
}

// FromError wraps cause with a code and a context message.
func FromError(code int, cause error, wrap string) Error {
	return &yaError{
		code:      code,
		cause:     cause,
		traceback: fmt.Sprintf("%s: %v", wrap, cause),
	}
}

// FromErrorWithLog is FromError that also reports the message at the Error level.
func FromErrorWithLog(code int, cause error, wrap string, log yalogger.Logger) Error {
	err := FromError(code, cause, wrap)

	if log != nil {
		log.Error(err.(*yaError).traceback)
	}

	return err
}

// FromString creates an Error whose cause is a fresh error with msg as its text.
func FromString(code int, msg string) Error {
	return &yaError{
		code:      code,
		cause:     errors.New(msg), //nolint:err113
		traceback: msg,
	}
}

// FromStringWithLog is FromString that also reports the message at the Error level.
func FromStringWithLog(code int, msg string, log yalogger.Logger) Error {
	if log != nil {
		log.Error(msg)
	}

	return FromString(code, msg)
}

// CodeOf returns the code of the first Error found in err's chain, or
// http.StatusInternalServerError when err carries none.
func CodeOf(err error) int {
	var yaErr Error
	if errors.As(err, &yaErr) {
		return yaErr.Code()
	}

	return http.StatusInternalServerError
}

func (e *yaError) Error() string {
	safetyCheck(&e)

	return fmt.Sprintf("%d%s%s", e.code, codeSeparate, e.traceback)
}

func (e *yaError) Unwrap() error {
	safetyCheck(&e)

	return e.cause
}

// UnwrapLastError returns the outermost message of the traceback.
func (e *yaError) UnwrapLastError() string {
	safetyCheck(&e)

	last, _, _ := strings.Cut(e.traceback, errorSeparate)

	return last
}

// Wrap prepends msg to the traceback. Call it every time the error crosses
// a function boundary.
func (e *yaError) Wrap(msg string) Error {
	safetyCheck(&e)
	e.traceback = msg + errorSeparate + e.traceback

	return e
}

func (e *yaError) WrapWithLog(msg string, log yalogger.Logger) Error {
	if log != nil {
		log.Error(msg)
	}

	return e.Wrap(msg)
}

func (e *yaError) Code() int {
	safetyCheck(&e)

	return e.code
}

// safetyCheck replaces a nil receiver with the teapot error.
func safetyCheck(err **yaError) {
	if *err == nil {
		*err = &yaError{
			code:      http.StatusTeapot,
			cause:     ErrTeapot,
			traceback: ErrTeapot.Error(),
		}
	}
}
