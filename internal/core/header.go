// Package core provides the low-level RCC container decoders: the
// standalone file header and the fixed-stride record table. Neither
// decoder copies the underlying image; both borrow it for the lifetime
// of the returned value.
package core

import (
	"fmt"

	"github.com/scigolib/rcc/internal/cursor"
	"github.com/scigolib/rcc/rccerr"
)

// Magic is the four-byte signature at the start of a standalone .rcc file.
var Magic = [4]byte{0x71, 0x72, 0x65, 0x73} // "qres"

// MaxSupportedVersion is the highest format version this decoder understands.
const MaxSupportedVersion = 3

// Header holds the three structural offsets and format version recovered
// from a standalone container's fixed prefix.
type Header struct {
	FormatVersion uint32
	StructOffset  uint64
	DataOffset    uint64
	NameOffset    uint64
	// OverallFlags is present only for FormatVersion >= 3.
	OverallFlags *uint32
}

// ParseHeader decodes the 20- or 24-byte header at the start of image.
func ParseHeader(image []byte) (*Header, error) {
	var magic [4]byte
	for i := range magic {
		b, err := cursor.Uint8(image, uint64(i))
		if err != nil {
			return nil, rccerr.WrapAt(rccerr.KindIO, "failed to read magic bytes", uint64(i), err)
		}
		magic[i] = b
	}
	if magic != Magic {
		return nil, &rccerr.Error{
			Kind:    rccerr.KindInvalidHeaderMagic,
			Context: "header magic mismatch",
			Cause:   &MagicMismatch{Received: magic, Expected: Magic},
		}
	}

	version, err := cursor.Uint32(image, 4)
	if err != nil {
		return nil, rccerr.WrapAt(rccerr.KindIO, "failed to read format version", 4, err)
	}
	if version > MaxSupportedVersion {
		return nil, rccerr.New(rccerr.KindUnsupportedVersion,
			formatVersionMessage(version))
	}

	structOffset, err := cursor.Uint32(image, 8)
	if err != nil {
		return nil, rccerr.WrapAt(rccerr.KindIO, "failed to read struct offset", 8, err)
	}
	dataOffset, err := cursor.Uint32(image, 12)
	if err != nil {
		return nil, rccerr.WrapAt(rccerr.KindIO, "failed to read data offset", 12, err)
	}
	nameOffset, err := cursor.Uint32(image, 16)
	if err != nil {
		return nil, rccerr.WrapAt(rccerr.KindIO, "failed to read name offset", 16, err)
	}

	h := &Header{
		FormatVersion: version,
		StructOffset:  uint64(structOffset),
		DataOffset:    uint64(dataOffset),
		NameOffset:    uint64(nameOffset),
	}

	if version >= 3 {
		flags, err := cursor.Uint32(image, 20)
		if err != nil {
			return nil, rccerr.WrapAt(rccerr.KindIO, "failed to read overall flags", 20, err)
		}
		h.OverallFlags = &flags
	}

	return h, nil
}

// MagicMismatch describes the received vs. expected header magic bytes.
type MagicMismatch struct {
	Received, Expected [4]byte
}

func (m *MagicMismatch) Error() string {
	return fmt.Sprintf("received %#02x, expected %#02x", m.Received, m.Expected)
}

func formatVersionMessage(received uint32) string {
	return fmt.Sprintf("unsupported format version %d, maximum supported is %d", received, MaxSupportedVersion)
}
