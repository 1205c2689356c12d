// Package cursor provides big-endian integer decoding at an arbitrary
// offset within a borrowed byte slice. It is the sole source of
// byte-level extraction used by every upper layer of the rcc parser,
// which keeps bounds-check policy in one place.
package cursor

import (
	"encoding/binary"
	"math"

	"github.com/scigolib/rcc/rccerr"
)

// Uint8 reads one byte at offset off in buf.
func Uint8(buf []byte, off uint64) (uint8, error) {
	if err := checkBounds(buf, off, 1); err != nil {
		return 0, err
	}
	return buf[off], nil
}

// Uint16 reads a big-endian uint16 at offset off in buf.
func Uint16(buf []byte, off uint64) (uint16, error) {
	if err := checkBounds(buf, off, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[off : off+2]), nil
}

// Uint32 reads a big-endian uint32 at offset off in buf.
func Uint32(buf []byte, off uint64) (uint32, error) {
	if err := checkBounds(buf, off, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[off : off+4]), nil
}

// Uint64 reads a big-endian uint64 at offset off in buf.
func Uint64(buf []byte, off uint64) (uint64, error) {
	if err := checkBounds(buf, off, 8); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[off : off+8]), nil
}

// Slice returns the n bytes of buf starting at off, without copying.
func Slice(buf []byte, off uint64, n uint64) ([]byte, error) {
	if err := checkBounds(buf, off, n); err != nil {
		return nil, err
	}
	return buf[off : off+n], nil
}

func checkBounds(buf []byte, off, width uint64) error {
	// off+width must not wrap around; an adversarial offset near
	// math.MaxUint64 would otherwise pass the length check below.
	if off > math.MaxUint64-width {
		return rccerr.New(rccerr.KindOutOfBounds,
			"read offset overflows")
	}
	if off+width > uint64(len(buf)) {
		return rccerr.New(rccerr.KindOutOfBounds,
			"read past end of image")
	}
	return nil
}
