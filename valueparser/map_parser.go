package valueparser

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
)

// ParseMap parses "k1:v1,k2:v2" style strings into a map.
//
// Each entry is split on the first kvSeparator only, so values may contain
// the separator themselves:
//
//	templates, err := valueparser.ParseMap[string, string](
//		`url=<a href="{url}">{text}</a>;bold=<strong>{text}</strong>`,
//		&semicolon, &equals,
//	)
//
// Nil separators fall back to DefaultEntrySeparator and DefaultKVSeparator.
// Empty entries are skipped.
func ParseMap[K ParsableComparableType, V ParsableType](
	str string,
	entrySeparator *string,
	kvSeparator *string,
) (map[K]V, yaerrors.Error) {
	result := make(map[K]V)

	entrySep := DefaultEntrySeparator
	if entrySeparator != nil {
		entrySep = *entrySeparator
	}

	kvSep := DefaultKVSeparator
	if kvSeparator != nil {
		kvSep = *kvSeparator
	}

	for entry := range strings.SplitSeq(str, entrySep) {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		rawKey, rawValue, found := strings.Cut(entry, kvSep)
		if !found {
			return nil, yaerrors.FromError(
				http.StatusInternalServerError,
				ErrInvalidEntry,
				fmt.Sprintf("parse map: entry %q has no %q separator", entry, kvSep),
			)
		}

		key, err := ParseValue[K](strings.TrimSpace(rawKey))
		if err != nil {
			return nil, err.Wrap(fmt.Sprintf("parse map: key %q", rawKey))
		}

		value, err := ParseValue[V](strings.TrimSpace(rawValue))
		if err != nil {
			return nil, err.Wrap(fmt.Sprintf("parse map: value of %q", rawKey))
		}

		result[key] = value
	}

	return result, nil
}
