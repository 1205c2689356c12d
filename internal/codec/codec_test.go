package codec

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"

	kzstd "github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompressZlibRoundTrip(t *testing.T) {
	original := []byte("the quick brown fox jumps over the lazy dog")

	var compressed bytes.Buffer
	w := zlib.NewWriter(&compressed)
	_, err := w.Write(original)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	payload := make([]byte, 4+compressed.Len())
	binary.BigEndian.PutUint32(payload, uint32(len(original)))
	copy(payload[4:], compressed.Bytes())

	out, err := DecompressZlib(payload)
	require.NoError(t, err)
	assert.Equal(t, original, out)
}

func TestDecompressZlibRejectsShortPayload(t *testing.T) {
	_, err := DecompressZlib([]byte{0x01, 0x02})
	require.Error(t, err)
}

func TestDecompressZstdRoundTrip(t *testing.T) {
	original := []byte("the quick brown fox jumps over the lazy dog")

	encoder, err := kzstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := encoder.EncodeAll(original, nil)
	require.NoError(t, encoder.Close())

	out, err := DecompressZstd(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, out)

	size, ok := FrameContentSize(compressed)
	require.True(t, ok)
	assert.Equal(t, uint64(len(original)), size)
}

func TestFrameContentSizeRejectsGarbage(t *testing.T) {
	_, ok := FrameContentSize([]byte{0x00, 0x01, 0x02})
	assert.False(t, ok)
}
