// Package yaencoding wraps MessagePack encoding with yaerrors reporting.
//
// The decoder accepts MessagePack-serialized updates and the render cache
// fingerprints entity lists with it:
//
//	packed, err := yaencoding.EncodeMessagePack(entities)
//	if err != nil {
//	    return err.Wrap("fingerprint entities")
//	}
//
//	tree, err := yaencoding.DecodeMessagePackTree(payload)
package yaencoding

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/YaCodeDev/GoYaTgBotAPI/yaerrors"
)

// EncodeMessagePack serializes value as MessagePack. Struct fields are
// written in declaration order, so equal values give equal bytes.
func EncodeMessagePack(value any) ([]byte, yaerrors.Error) {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return nil, yaerrors.FromError(
			http.StatusInternalServerError,
			err,
			fmt.Sprintf("[ENCODING] failed to marshal `%T` using message pack format", value),
		)
	}

	return data, nil
}

// DecodeMessagePack decodes data into a new T.
func DecodeMessagePack[T any](data []byte) (*T, yaerrors.Error) {
	var res T

	if err := msgpack.Unmarshal(data, &res); err != nil {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			err,
			fmt.Sprintf("[ENCODING] failed to unmarshal message pack into `%T`", res),
		)
	}

	return &res, nil
}

// DecodeMessagePackTree decodes data into a generic tree: maps become
// map[string]any, arrays []any, integers keep their MessagePack width.
// Trailing bytes after the first value are rejected.
func DecodeMessagePackTree(data []byte) (any, yaerrors.Error) {
	reader := bytes.NewReader(data)
	dec := msgpack.NewDecoder(reader)

	tree, err := dec.DecodeInterface()
	if err != nil {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			err,
			"[ENCODING] failed to decode message pack tree",
		)
	}

	if reader.Len() != 0 {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrTrailingData,
			fmt.Sprintf("[ENCODING] %d bytes after message pack value", reader.Len()),
		)
	}

	return tree, nil
}
