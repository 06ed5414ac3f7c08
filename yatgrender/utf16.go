package yatgrender

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// utf16Text is message text as UTF-16LE bytes, the unit Telegram counts
// entity offsets in. Invalid UTF-8 becomes U+FFFD.
type utf16Text []byte

func toUTF16(text string) utf16Text {
	encoded, err := utf16le.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil
	}

	return encoded
}

// Len is the length in code units.
func (u utf16Text) Len() int {
	return len(u) / 2
}

func (u utf16Text) unit(i int) uint16 {
	return binary.LittleEndian.Uint16(u[i*2:])
}

// slice decodes units [from, to). A lone surrogate left by a bad boundary
// decodes to U+FFFD.
func (u utf16Text) slice(from, to int) string {
	if from >= to {
		return ""
	}

	decoded, err := utf16le.NewDecoder().Bytes(u[from*2 : to*2])
	if err != nil {
		return ""
	}

	return string(decoded)
}

// splitsPair reports whether offset i falls between a high and a low
// surrogate.
func (u utf16Text) splitsPair(i int) bool {
	if i <= 0 || i >= u.Len() {
		return false
	}

	return isHighSurrogate(u.unit(i-1)) && isLowSurrogate(u.unit(i))
}

func isHighSurrogate(unit uint16) bool {
	return unit >= 0xD800 && unit <= 0xDBFF
}

func isLowSurrogate(unit uint16) bool {
	return unit >= 0xDC00 && unit <= 0xDFFF
}
