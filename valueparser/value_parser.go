package valueparser

import (
	"encoding"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
)

// ParseValue converts a string into T.
//
// Types implementing encoding.TextUnmarshaler or Unmarshalable parse
// themselves; time.Duration accepts time.ParseDuration syntax; everything
// else is parsed according to its underlying kind.
//
// Example usage:
//
//	level, err := valueparser.ParseValue[yalogger.Level]("warn")
//	if err != nil {
//		// Handle error
//	}
func ParseValue[T ParsableType](value string) (T, yaerrors.Error) {
	var zero T

	if parsed, handled, err := tryUnmarshal[T](value); handled {
		return parsed, err
	}

	if duration, ok := any(&zero).(*time.Duration); ok {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return zero, yaerrors.FromError(
				http.StatusInternalServerError,
				fmt.Errorf("%w: %w", ErrInvalidValue, err),
				"parse value: bad duration "+strconv.Quote(value),
			)
		}

		*duration = parsed

		return zero, nil
	}

	target := reflect.ValueOf(&zero).Elem()

	var err error

	switch target.Kind() {
	case reflect.String:
		target.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var parsed int64
		if parsed, err = strconv.ParseInt(value, 10, target.Type().Bits()); err == nil {
			target.SetInt(parsed)
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var parsed uint64
		if parsed, err = strconv.ParseUint(value, 10, target.Type().Bits()); err == nil {
			target.SetUint(parsed)
		}

	case reflect.Float32, reflect.Float64:
		var parsed float64
		if parsed, err = strconv.ParseFloat(value, target.Type().Bits()); err == nil {
			target.SetFloat(parsed)
		}

	case reflect.Bool:
		var parsed bool
		if parsed, err = strconv.ParseBool(value); err == nil {
			target.SetBool(parsed)
		}

	case reflect.Slice:
		target.SetBytes([]byte(value))

	default:
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrUnsupportedType,
			"parse value: unsupported type "+target.Type().String(),
		)
	}

	if err != nil {
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			fmt.Errorf("%w: %w", ErrInvalidValue, err),
			fmt.Sprintf("parse value: %q is not a valid %s", value, target.Type()),
		)
	}

	return zero, nil
}

// tryUnmarshal reports handled=true when T parses itself.
func tryUnmarshal[T ParsableType](value string) (T, bool, yaerrors.Error) {
	var zero T

	var err error

	switch unmarshaler := any(&zero).(type) {
	case encoding.TextUnmarshaler:
		err = unmarshaler.UnmarshalText([]byte(value))
	case Unmarshalable:
		err = unmarshaler.Unmarshal(value)
	default:
		return zero, false, nil
	}

	if err != nil {
		var empty T

		return empty, true, yaerrors.FromError(
			http.StatusInternalServerError,
			fmt.Errorf("%w: %w", ErrInvalidValue, err),
			fmt.Sprintf("parse value: failed to unmarshal %q", value),
		)
	}

	return zero, true, nil
}
