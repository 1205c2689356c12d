package codec

import (
	"encoding/binary"

	"github.com/klauspost/compress/zstd"

	"github.com/scigolib/rcc/rccerr"
)

// DecompressZstd reverses Qt's zstd storage format: a raw zstd frame with
// no size prefix of its own (unlike the zlib variant, the frame header
// already carries the declared content size).
func DecompressZstd(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, rccerr.Wrap(rccerr.KindIO, "failed to create zstd decoder", err)
	}
	defer decoder.Close()

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, rccerr.Wrap(rccerr.KindIO, "zstd decompression failed", err)
	}
	return out, nil
}

// zstdFrameMagic is the 4-byte little-endian magic at the start of every
// zstd frame.
const zstdFrameMagic = 0xFD2FB528

// FrameContentSize parses just enough of a zstd frame header to recover
// the declared decompressed size, without decoding the frame. It reports
// false if the size is not present in the header (a legal, if unusual,
// zstd frame - klauspost's public API has no direct accessor for this).
func FrameContentSize(data []byte) (uint64, bool) {
	if len(data) < 5 {
		return 0, false
	}
	if binary.LittleEndian.Uint32(data[:4]) != zstdFrameMagic {
		return 0, false
	}

	descriptor := data[4]
	fcsFlag := descriptor >> 6
	singleSegment := descriptor&0x20 != 0
	dictIDFlag := descriptor & 0x03

	pos := 5
	if singleSegment {
		// Window descriptor byte is absent when single-segment is set.
	} else {
		pos++
	}

	dictIDSize := map[byte]int{0: 0, 1: 1, 2: 2, 3: 4}[dictIDFlag]
	pos += dictIDSize

	var fcsFieldSize int
	switch fcsFlag {
	case 0:
		if singleSegment {
			fcsFieldSize = 1
		} else {
			return 0, false
		}
	case 1:
		fcsFieldSize = 2
	case 2:
		fcsFieldSize = 4
	case 3:
		fcsFieldSize = 8
	}
	if fcsFieldSize == 0 {
		return 0, false
	}
	if len(data) < pos+fcsFieldSize {
		return 0, false
	}

	switch fcsFieldSize {
	case 1:
		return uint64(data[pos]), true
	case 2:
		return uint64(binary.LittleEndian.Uint16(data[pos:])) + 256, true
	case 4:
		return uint64(binary.LittleEndian.Uint32(data[pos:])), true
	case 8:
		return binary.LittleEndian.Uint64(data[pos:]), true
	}
	return 0, false
}
