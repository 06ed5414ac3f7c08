// Package yahash provides FNV-64a fingerprints used to build cache keys.
package yahash

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// FNV64 hashes parts with FNV-64a. Every part is length-prefixed, so
// ("ab", "c") and ("a", "bc") hash differently.
func FNV64(parts ...[]byte) uint64 {
	hasher := fnv.New64a()

	var size [binary.MaxVarintLen64]byte

	for _, part := range parts {
		n := binary.PutUvarint(size[:], uint64(len(part)))

		hasher.Write(size[:n])
		hasher.Write(part)
	}

	return hasher.Sum64()
}

// FNV64Hex is FNV64 formatted as 16 lowercase hex digits.
func FNV64Hex(parts ...[]byte) string {
	return fmt.Sprintf("%016x", FNV64(parts...))
}

// FNV64Strings is FNV64 over the bytes of each string.
func FNV64Strings(parts ...string) uint64 {
	raw := make([][]byte, len(parts))
	for i, part := range parts {
		raw[i] = []byte(part)
	}

	return FNV64(raw...)
}
