package yatgdecoder

import (
	"encoding/json"
	"math"
	"strconv"
)

// converter turns the raw value found at path into T.
type converter[T any] = func(path string, raw any) (T, error)

func toString(path string, raw any) (string, error) {
	if s, ok := raw.(string); ok {
		return s, nil
	}

	return "", invalidType(path, "string")
}

func toNamedString[S ~string](path string, raw any) (S, error) {
	s, err := toString(path, raw)

	return S(s), err
}

func toBool(path string, raw any) (bool, error) {
	if b, ok := raw.(bool); ok {
		return b, nil
	}

	return false, invalidType(path, "boolean")
}

// toInt64 accepts every integer representation produced by encoding/json
// (json.Number, float64) and msgpack (sized ints). Floats must be integral.
func toInt64(path string, raw any) (int64, error) {
	switch v := raw.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return n, nil
		}

		if f, err := v.Float64(); err == nil {
			return floatToInt64(path, f)
		}
	case float64:
		return floatToInt64(path, v)
	case float32:
		return floatToInt64(path, float64(v))
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return uintToInt64(path, uint64(v))
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return uintToInt64(path, v)
	}

	return 0, invalidType(path, "integer")
}

func floatToInt64(path string, f float64) (int64, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, invalidType(path, "integer")
	}

	return int64(f), nil
}

func uintToInt64(path string, u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, invalidType(path, "integer")
	}

	return int64(u), nil
}

func toInt(path string, raw any) (int, error) {
	n, err := toInt64(path, raw)
	if err != nil {
		return 0, err
	}

	if n < math.MinInt || n > math.MaxInt {
		return 0, invalidType(path, "integer")
	}

	return int(n), nil
}

func toFloat64(path string, raw any) (float64, error) {
	switch v := raw.(type) {
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, nil
		}
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	default:
		if n, err := toInt64(path, raw); err == nil {
			return float64(n), nil
		}
	}

	return 0, invalidType(path, "number")
}

func toRawObject(path string, raw any) (map[string]any, error) {
	if m, ok := raw.(map[string]any); ok {
		return m, nil
	}

	return nil, invalidType(path, "object")
}

func toAny(_ string, raw any) (any, error) {
	return raw, nil
}

// nested decodes an object value with decode, giving it path as its root.
func nested[T any](decode func(object) (T, error)) converter[T] {
	return func(path string, raw any) (T, error) {
		fields, ok := raw.(map[string]any)
		if !ok {
			var zero T

			return zero, invalidType(path, "object")
		}

		return decode(object{path: path, fields: fields})
	}
}

// listOf decodes an array element-wise, preserving order.
func listOf[T any](element converter[T]) converter[[]T] {
	return func(path string, raw any) ([]T, error) {
		items, ok := raw.([]any)
		if !ok {
			return nil, invalidType(path, "array")
		}

		out := make([]T, 0, len(items))

		for i, item := range items {
			value, err := element(path+"["+strconv.Itoa(i)+"]", item)
			if err != nil {
				return nil, err
			}

			out = append(out, value)
		}

		return out, nil
	}
}
