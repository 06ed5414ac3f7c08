package yatgdecoder

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrMissingField = errors.New("missing field")
	ErrInvalidType  = errors.New("invalid type")

	ErrUnsupportedInput = errors.New("unsupported input type")
	ErrTrailingData     = errors.New("trailing data after value")
	ErrUnknownFormat    = errors.New("unknown decoder format")
)

type ErrorKind uint8

const (
	KindInvalidInput ErrorKind = iota + 1
	KindMissingField
	KindInvalidType
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindMissingField:
		return "MissingField"
	case KindInvalidType:
		return "InvalidType"
	default:
		return "Unknown"
	}
}

// DecodeError describes why a payload was rejected. Field is the dotted
// path from the decoded root, with list indexes in brackets, e.g.
// "message.entities[2].offset".
type DecodeError struct {
	Kind     ErrorKind
	Field    string
	Expected string
	Cause    error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("missing field `%s`", e.Field)
	case KindInvalidType:
		return fmt.Sprintf("field `%s` must be %s", e.Field, e.Expected)
	default:
		if e.Cause != nil {
			return fmt.Sprintf("invalid input: %v", e.Cause)
		}

		return "invalid input"
	}
}

// Unwrap exposes the kind sentinel and the cause, so errors.Is works with
// both ErrMissingField and, say, a json.SyntaxError.
func (e *DecodeError) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}

	return errs
}

func (e *DecodeError) sentinel() error {
	switch e.Kind {
	case KindMissingField:
		return ErrMissingField
	case KindInvalidType:
		return ErrInvalidType
	default:
		return ErrInvalidInput
	}
}

func (e *DecodeError) code() int {
	if e.Kind == KindInvalidInput {
		return http.StatusBadRequest
	}

	return http.StatusUnprocessableEntity
}

func missingField(path string) error {
	return &DecodeError{Kind: KindMissingField, Field: path}
}

func invalidType(path string, expected string) error {
	return &DecodeError{Kind: KindInvalidType, Field: path, Expected: expected}
}

func invalidInput(cause error) error {
	return &DecodeError{Kind: KindInvalidInput, Cause: cause}
}

// toYaError converts any decode failure into the module error type.
func toYaError(err error, msg string) yaerrors.Error {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return yaerrors.FromError(decodeErr.code(), err, msg)
	}

	return yaerrors.FromError(http.StatusInternalServerError, err, msg)
}
