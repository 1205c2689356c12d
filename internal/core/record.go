package core

import (
	"unicode/utf16"

	"github.com/scigolib/rcc/internal/cursor"
	"github.com/scigolib/rcc/rccerr"
)

// Flag bits carried in a record's 16-bit flags field.
const (
	FlagZlib      uint16 = 0x01
	FlagDirectory uint16 = 0x02
	FlagZstd      uint16 = 0x04
)

// Compression identifies how a file's payload bytes are stored.
type Compression uint8

// Compression values, in the precedence order the writer uses when both
// the zlib and zstd bits are set (zlib wins).
const (
	CompressionNone Compression = iota
	CompressionZlib
	CompressionZstd
)

// String returns the human-readable compression name.
func (c Compression) String() string {
	switch c {
	case CompressionZlib:
		return "zlib"
	case CompressionZstd:
		return "zstd"
	default:
		return "none"
	}
}

// Kind discriminates a record as a directory or a file.
type Kind uint8

const (
	KindFile Kind = iota
	KindDirectory
)

// stride returns the fixed byte width of one record slot for the given
// format version: 14 bytes for v0/v1, 22 bytes for v2 and up.
func stride(formatVersion uint32) uint64 {
	if formatVersion >= 2 {
		return 22
	}
	return 14
}

// Record is a decoded view of one fixed-stride slot in the record table.
// It borrows the underlying image; it is never copied or mutated.
type Record struct {
	Image         []byte
	StructOffset  uint64
	NameOffset    uint64
	DataOffset    uint64
	FormatVersion uint32
	Index         uint32
}

// Base returns the byte offset of this record's slot within Image.
func (r Record) Base() uint64 {
	return r.StructOffset + uint64(r.Index)*stride(r.FormatVersion)
}

func (r Record) flags() (uint16, error) {
	base := r.Base()
	v, err := cursor.Uint16(r.Image, base+4)
	if err != nil {
		return 0, rccerr.WrapAt(rccerr.KindOutOfBounds, "failed to read record flags", base+4, err)
	}
	return v, nil
}

// Kind reports whether this record is a directory or a file.
func (r Record) Kind() (Kind, error) {
	flags, err := r.flags()
	if err != nil {
		return 0, err
	}
	if flags&FlagDirectory != 0 {
		return KindDirectory, nil
	}
	return KindFile, nil
}

func (r Record) nameTableOffset() (uint32, error) {
	base := r.Base()
	v, err := cursor.Uint32(r.Image, base)
	if err != nil {
		return 0, rccerr.WrapAt(rccerr.KindOutOfBounds, "failed to read name-table offset", base, err)
	}
	return v, nil
}

// Name decodes this record's UTF-16BE name from the name table.
func (r Record) Name() (string, error) {
	nameTableOffset, err := r.nameTableOffset()
	if err != nil {
		return "", err
	}
	entryStart := r.NameOffset + uint64(nameTableOffset)

	length, err := cursor.Uint16(r.Image, entryStart)
	if err != nil {
		return "", rccerr.WrapAt(rccerr.KindOutOfBounds, "failed to read name length", entryStart, err)
	}

	unitsStart := entryStart + 2 + 4 // length field + hash field
	raw, err := cursor.Slice(r.Image, unitsStart, uint64(length)*2)
	if err != nil {
		return "", rccerr.WrapAt(rccerr.KindOutOfBounds, "failed to read name bytes", unitsStart, err)
	}

	units := make([]uint16, length)
	for i := range units {
		units[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
	}

	if hasUnpairedSurrogate(units) {
		return "", rccerr.WrapAt(rccerr.KindInvalidData, "invalid UTF-16 in resource name", unitsStart,
			rccerr.New(rccerr.KindInvalidData, "unpaired surrogate"))
	}
	return string(utf16.Decode(units)), nil
}

// hasUnpairedSurrogate reports whether decoding units would silently
// substitute a replacement character for an unpaired surrogate.
func hasUnpairedSurrogate(units []uint16) bool {
	for i := 0; i < len(units); i++ {
		r := units[i]
		switch {
		case r >= 0xD800 && r <= 0xDBFF: // high surrogate
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return true
			}
			i++
		case r >= 0xDC00 && r <= 0xDFFF: // stray low surrogate
			return true
		}
	}
	return false
}

// Hash reads this record's precomputed name hash from the name table.
// This is the value the resolver's binary search compares against.
func (r Record) Hash() (uint32, error) {
	nameTableOffset, err := r.nameTableOffset()
	if err != nil {
		return 0, err
	}
	offset := r.NameOffset + uint64(nameTableOffset) + 2
	v, err := cursor.Uint32(r.Image, offset)
	if err != nil {
		return 0, rccerr.WrapAt(rccerr.KindOutOfBounds, "failed to read name hash", offset, err)
	}
	return v, nil
}

// ChildCount returns the number of children of this directory record.
func (r Record) ChildCount() (uint32, error) {
	base := r.Base()
	v, err := cursor.Uint32(r.Image, base+6)
	if err != nil {
		return 0, rccerr.WrapAt(rccerr.KindOutOfBounds, "failed to read child count", base+6, err)
	}
	return v, nil
}

// ChildOffset returns the record-table index of this directory's first child.
func (r Record) ChildOffset() (uint32, error) {
	base := r.Base()
	v, err := cursor.Uint32(r.Image, base+10)
	if err != nil {
		return 0, rccerr.WrapAt(rccerr.KindOutOfBounds, "failed to read child offset", base+10, err)
	}
	return v, nil
}

// Territory returns the raw 16-bit territory code of this file record.
func (r Record) Territory() (uint16, error) {
	base := r.Base()
	v, err := cursor.Uint16(r.Image, base+6)
	if err != nil {
		return 0, rccerr.WrapAt(rccerr.KindOutOfBounds, "failed to read territory", base+6, err)
	}
	return v, nil
}

// Language returns the raw 16-bit language code of this file record.
func (r Record) Language() (uint16, error) {
	base := r.Base()
	v, err := cursor.Uint16(r.Image, base+8)
	if err != nil {
		return 0, rccerr.WrapAt(rccerr.KindOutOfBounds, "failed to read language", base+8, err)
	}
	return v, nil
}

// DataTableOffset returns this file's relative offset into the payload table.
func (r Record) DataTableOffset() (uint32, error) {
	base := r.Base()
	v, err := cursor.Uint32(r.Image, base+10)
	if err != nil {
		return 0, rccerr.WrapAt(rccerr.KindOutOfBounds, "failed to read data offset", base+10, err)
	}
	return v, nil
}

// LastModified returns the raw milliseconds-since-epoch timestamp and true,
// or (0, false) if the format version predates timestamps (v < 2).
func (r Record) LastModified() (int64, bool, error) {
	if r.FormatVersion < 2 {
		return 0, false, nil
	}
	base := r.Base()
	v, err := cursor.Uint64(r.Image, base+14)
	if err != nil {
		return 0, false, rccerr.WrapAt(rccerr.KindOutOfBounds, "failed to read last-modified timestamp", base+14, err)
	}
	return int64(v), true, nil
}

// CompressionOf derives the compression tag from a record's raw flags.
// When both the zlib and zstd bits are set, zlib wins (matches writer
// semantics).
func CompressionOf(flags uint16) Compression {
	switch {
	case flags&FlagZlib != 0:
		return CompressionZlib
	case flags&FlagZstd != 0:
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// Compression returns this file record's compression tag.
func (r Record) Compression() (Compression, error) {
	flags, err := r.flags()
	if err != nil {
		return CompressionNone, err
	}
	return CompressionOf(flags), nil
}

// RawPayload returns the length-prefixed payload bytes for this file
// record, borrowed in place from Image (no copy). An empty payload (N=0)
// is valid and yields a zero-length, non-nil slice.
func (r Record) RawPayload() ([]byte, error) {
	dataTableOffset, err := r.DataTableOffset()
	if err != nil {
		return nil, err
	}
	sizeOffset := r.DataOffset + uint64(dataTableOffset)
	size, err := cursor.Uint32(r.Image, sizeOffset)
	if err != nil {
		return nil, rccerr.WrapAt(rccerr.KindOutOfBounds, "failed to read payload size", sizeOffset, err)
	}

	payloadOffset := sizeOffset + 4
	payload, err := cursor.Slice(r.Image, payloadOffset, uint64(size))
	if err != nil {
		return nil, rccerr.WrapAt(rccerr.KindOutOfBounds, "failed to read payload bytes", payloadOffset, err)
	}
	return payload, nil
}
