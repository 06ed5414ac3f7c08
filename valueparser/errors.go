package valueparser

import (
	"errors"
)

var (
	ErrInvalidValue    = errors.New("invalid value")
	ErrUnsupportedType = errors.New("unsupported type")
	ErrInvalidEntry    = errors.New("invalid entry")
)
