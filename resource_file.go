package rcc

import (
	"fmt"
	"time"

	"github.com/scigolib/rcc/internal/codec"
	"github.com/scigolib/rcc/internal/core"
	"github.com/scigolib/rcc/internal/locale"
	"github.com/scigolib/rcc/rccerr"
)

// File is a resolved file resource. It borrows its Session's image for
// the lifetime of the value.
type File struct {
	session *Session
	record  core.Record
	path    string
}

// Name decodes the file's own name from the name table.
func (f *File) Name() (string, error) {
	return f.record.Name()
}

// Hash returns the file's precomputed name hash.
func (f *File) Hash() (uint32, error) {
	return f.record.Hash()
}

// Path returns the absolute path this file was resolved at.
func (f *File) Path() string {
	return f.path
}

// Compression reports how this file's payload is stored.
func (f *File) Compression() (core.Compression, error) {
	return f.record.Compression()
}

// Territory returns the file's locale territory.
func (f *File) Territory() (locale.Territory, error) {
	raw, err := f.record.Territory()
	if err != nil {
		return 0, err
	}
	territory, ok := locale.LookupTerritory(raw)
	if !ok {
		return 0, rccerr.New(rccerr.KindInvalidData, fmt.Sprintf("unrecognized territory code %d", raw))
	}
	return territory, nil
}

// Language returns the file's locale language.
func (f *File) Language() (locale.Language, error) {
	raw, err := f.record.Language()
	if err != nil {
		return 0, err
	}
	language, ok := locale.LookupLanguage(raw)
	if !ok {
		return 0, rccerr.New(rccerr.KindInvalidData, fmt.Sprintf("unrecognized language code %d", raw))
	}
	return language, nil
}

// LastModified returns the file's last-modified time and true, or
// (zero, false) when the format version predates timestamps, or when
// the stored milliseconds value lies outside ±8,640,000,000,000,000
// (100,000,000 days either side of the Unix epoch).
func (f *File) LastModified() (time.Time, bool, error) {
	millis, ok, err := f.record.LastModified()
	if err != nil {
		return time.Time{}, false, err
	}
	if !ok {
		return time.Time{}, false, nil
	}

	const minMillis, maxMillis = -8_640_000_000_000_000, 8_640_000_000_000_000
	if millis < minMillis || millis > maxMillis {
		return time.Time{}, false, nil
	}
	return time.UnixMilli(millis).UTC(), true, nil
}

// Size reports the declared uncompressed byte size of the file's
// payload without fully decompressing it: for an uncompressed file this
// is the stored length, for zlib the 4-byte size prefix, for zstd the
// frame header's declared content size.
func (f *File) Size() (uint64, error) {
	payload, err := f.record.RawPayload()
	if err != nil {
		return 0, err
	}
	if len(payload) == 0 {
		return 0, nil
	}

	compression, err := f.record.Compression()
	if err != nil {
		return 0, err
	}

	switch compression {
	case core.CompressionNone:
		return uint64(len(payload)), nil
	case core.CompressionZlib:
		if len(payload) < 4 {
			return 0, rccerr.New(rccerr.KindInvalidData, "zlib payload shorter than size prefix")
		}
		return uint64(payload[0])<<24 | uint64(payload[1])<<16 | uint64(payload[2])<<8 | uint64(payload[3]), nil
	case core.CompressionZstd:
		size, ok := codec.FrameContentSize(payload)
		if !ok {
			return 0, rccerr.New(rccerr.KindInvalidData, "zstd frame does not declare a content size")
		}
		return size, nil
	default:
		return 0, rccerr.New(rccerr.KindInvalidData, "unrecognized compression tag")
	}
}

// Data returns the file's decompressed payload. For an uncompressed
// file this borrows directly from the backing image; for zlib and zstd
// it returns a freshly allocated buffer.
func (f *File) Data() ([]byte, error) {
	payload, err := f.record.RawPayload()
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return payload, nil
	}

	compression, err := f.record.Compression()
	if err != nil {
		return nil, err
	}

	switch compression {
	case core.CompressionNone:
		return payload, nil
	case core.CompressionZlib:
		return codec.DecompressZlib(payload)
	case core.CompressionZstd:
		return codec.DecompressZstd(payload)
	default:
		return nil, rccerr.New(rccerr.KindInvalidData, "unrecognized compression tag")
	}
}

// String implements fmt.Stringer with the file's path and the decoded
// base offset of its own record, for debug printing.
func (f *File) String() string {
	return fmt.Sprintf("File{path=%q, base=%#x}", f.path, f.record.Base())
}
