// Package codec decompresses payload bytes recovered from a file record.
// It is a thin, read-only counterpart to the container format itself:
// decoding never inspects a resource's compression tag on its own, the
// caller always supplies it.
package codec

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"

	"github.com/scigolib/rcc/internal/bufpool"
	"github.com/scigolib/rcc/rccerr"
)

// DecompressZlib reverses Qt's zlib storage format: a 4-byte big-endian
// uncompressed-size prefix followed by a raw zlib stream.
func DecompressZlib(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, rccerr.New(rccerr.KindInvalidData, "zlib payload shorter than size prefix")
	}
	uncompressedSize := binary.BigEndian.Uint32(data[:4])

	r, err := zlib.NewReader(bytes.NewReader(data[4:]))
	if err != nil {
		return nil, rccerr.Wrap(rccerr.KindIO, "failed to open zlib stream", err)
	}
	defer func() { _ = r.Close() }()

	out := make([]byte, 0, uncompressedSize)
	buf := bytes.NewBuffer(out)

	scratch := bufpool.Get(32 * 1024)
	defer bufpool.Release(scratch)

	if _, err := io.CopyBuffer(buf, r, scratch); err != nil {
		return nil, rccerr.Wrap(rccerr.KindIO, "zlib decompression failed", err)
	}
	return buf.Bytes(), nil
}
