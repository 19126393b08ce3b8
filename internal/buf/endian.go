// Package buf contains helpers for endian-safe link-word codecs and
// bounds-checked slicing over a pool's backing region.
package buf

import "encoding/binary"

// I64LE reads a little-endian int64 from b. Returns 0 when b is too short.
func I64LE(b []byte) int64 {
	if len(b) < 8 {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(b))
}

// PutI64LE writes v to b as little-endian. No-op when b is too short.
func PutI64LE(b []byte, v int64) {
	if len(b) < 8 {
		return
	}
	binary.LittleEndian.PutUint64(b, uint64(v))
}

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// PutU64LE writes v to b as little-endian. No-op when b is too short.
func PutU64LE(b []byte, v uint64) {
	if len(b) < 8 {
		return
	}
	binary.LittleEndian.PutUint64(b, v)
}
