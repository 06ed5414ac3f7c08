package valueparser

import (
	"fmt"
	"strings"

	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
)

// ParseArray splits str by separator (DefaultEntrySeparator when nil) and
// parses every trimmed part into T. An empty string yields an empty slice.
//
// Example usage:
//
//	updates, err := valueparser.ParseArray[string]("message,callback_query", nil)
//	if err != nil {
//		// Handle error
//	}
func ParseArray[T ParsableType](
	str string,
	separator *string,
) ([]T, yaerrors.Error) {
	if str == "" {
		return []T{}, nil
	}

	sep := DefaultEntrySeparator
	if separator != nil {
		sep = *separator
	}

	parts := strings.Split(str, sep)
	result := make([]T, 0, len(parts))

	for i, part := range parts {
		parsed, err := ParseValue[T](strings.TrimSpace(part))
		if err != nil {
			return nil, err.Wrap(fmt.Sprintf("parse array: element %d", i))
		}

		result = append(result, parsed)
	}

	return result, nil
}
