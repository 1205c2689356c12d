package rcc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nameEntry encodes one name-table entry: a 2-byte length, a 4-byte
// precomputed hash, and the UTF-16BE name bytes.
func nameEntry(name string) []byte {
	units := make([]byte, 0, len(name)*2)
	for _, r := range name {
		units = append(units, byte(r>>8), byte(r))
	}
	entry := make([]byte, 2, 6+len(units))
	binary.BigEndian.PutUint16(entry, uint16(len(name)))
	entry = append(entry, 0, 0, 0, 0) // hash placeholder, patched below
	binary.BigEndian.PutUint32(entry[2:], hashName(name))
	entry = append(entry, units...)
	return entry
}

// fixtureImage builds a tiny three-record tree: root directory "/" with
// one child directory "images", which has one child file "small.jpg".
func fixtureImage(t *testing.T) (image []byte, structOffset, nameOffset, dataOffset uint64) {
	t.Helper()

	const stride = 22 // format version 3

	rootEntry := nameEntry("")
	imagesEntry := nameEntry("images")
	fileEntry := nameEntry("small.jpg")

	nameTable := append(append(append([]byte{}, rootEntry...), imagesEntry...), fileEntry...)
	rootNameOff := uint32(0)
	imagesNameOff := uint32(len(rootEntry))
	fileNameOff := uint32(len(rootEntry) + len(imagesEntry))

	payload := []byte("hello world!")
	dataEntry := make([]byte, 4+len(payload))
	binary.BigEndian.PutUint32(dataEntry, uint32(len(payload)))
	copy(dataEntry[4:], payload)
	dataTable := dataEntry
	fileDataOff := uint32(0)

	structTable := make([]byte, 3*stride)

	// record 0: root directory, child at index 1, count 1
	binary.BigEndian.PutUint32(structTable[0:], rootNameOff)
	binary.BigEndian.PutUint16(structTable[4:], 0x0002) // directory flag
	binary.BigEndian.PutUint32(structTable[6:], 1)      // child count
	binary.BigEndian.PutUint32(structTable[10:], 1)     // child offset

	// record 1: "images" directory, child at index 2, count 1
	base1 := stride
	binary.BigEndian.PutUint32(structTable[base1:], imagesNameOff)
	binary.BigEndian.PutUint16(structTable[base1+4:], 0x0002)
	binary.BigEndian.PutUint32(structTable[base1+6:], 1)
	binary.BigEndian.PutUint32(structTable[base1+10:], 2)

	// record 2: "small.jpg" file, territory Albania, language Japanese
	base2 := 2 * stride
	binary.BigEndian.PutUint32(structTable[base2:], fileNameOff)
	binary.BigEndian.PutUint16(structTable[base2+4:], 0x0000) // no compression
	binary.BigEndian.PutUint16(structTable[base2+6:], 0x0002) // territory
	binary.BigEndian.PutUint16(structTable[base2+8:], 0x003B) // language
	binary.BigEndian.PutUint32(structTable[base2+10:], fileDataOff)
	binary.BigEndian.PutUint64(structTable[base2+14:], 1_173_311_852)

	structOffset = 0
	nameOffset = uint64(len(structTable))
	dataOffset = nameOffset + uint64(len(nameTable))

	image = append(append(append([]byte{}, structTable...), nameTable...), dataTable...)
	return image, structOffset, nameOffset, dataOffset
}

func openFixture(t *testing.T) *Session {
	t.Helper()
	image, structOffset, nameOffset, dataOffset := fixtureImage(t)
	s, err := OpenAt(image, structOffset, nameOffset, dataOffset, 3)
	require.NoError(t, err)
	return s
}

func TestFindResolvesNestedFile(t *testing.T) {
	s := openFixture(t)

	res, err := s.Find("/images/small.jpg")
	require.NoError(t, err)
	require.NotNil(t, res)

	file, ok := res.(*File)
	require.True(t, ok)
	assert.Equal(t, "/images/small.jpg", file.Path())

	name, err := file.Name()
	require.NoError(t, err)
	assert.Equal(t, "small.jpg", name)

	data, err := file.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world!"), data)
}

func TestFindAcceptsWindowsDialectPaths(t *testing.T) {
	s := openFixture(t)

	viaUnix, err := s.Find("/images/small.jpg")
	require.NoError(t, err)
	viaRelative, err := s.Find(`images\small.jpg`)
	require.NoError(t, err)
	viaDrive, err := s.Find(`C:\images\small.jpg`)
	require.NoError(t, err)

	require.NotNil(t, viaUnix)
	require.NotNil(t, viaRelative)
	require.NotNil(t, viaDrive)
	assert.Equal(t, viaUnix.Path(), viaRelative.Path())
	assert.Equal(t, viaUnix.Path(), viaDrive.Path())
}

func TestFindResolvesDirectory(t *testing.T) {
	s := openFixture(t)

	res, err := s.Find("/images")
	require.NoError(t, err)
	require.NotNil(t, res)

	dir, ok := res.(*Directory)
	require.True(t, ok)
	assert.Equal(t, "/images", dir.Path())
}

func TestFindReportsNotFound(t *testing.T) {
	s := openFixture(t)

	res, err := s.Find("/nope")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestFindDescendingThroughFileIsNotFound(t *testing.T) {
	s := openFixture(t)

	res, err := s.Find("/images/small.jpg/extra")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestDirectoryChildren(t *testing.T) {
	s := openFixture(t)

	root, err := s.Root()
	require.NoError(t, err)

	children, err := root.Children()
	require.NoError(t, err)
	require.Len(t, children, 1)

	childDir, ok := children[0].(*Directory)
	require.True(t, ok)
	assert.Equal(t, "/images", childDir.Path())

	grandchildren, err := childDir.Children()
	require.NoError(t, err)
	require.Len(t, grandchildren, 1)
	assert.Equal(t, "/images/small.jpg", grandchildren[0].Path())
}

func TestFileTerritoryAndLanguage(t *testing.T) {
	s := openFixture(t)

	res, err := s.Find("/images/small.jpg")
	require.NoError(t, err)
	file := res.(*File)

	territory, err := file.Territory()
	require.NoError(t, err)
	assert.Equal(t, "Albania", territory.String())

	language, err := file.Language()
	require.NoError(t, err)
	assert.Equal(t, "Japanese", language.String())

	lastModified, ok, err := file.LastModified()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1_173_311_852), lastModified.UnixMilli())
}

func TestOpenAtRejectsOffsetsBeyondImage(t *testing.T) {
	_, err := OpenAt(make([]byte, 4), 10, 0, 0, 3)
	assert.Error(t, err)
}

func TestOpenAtRejectsUnsupportedVersion(t *testing.T) {
	_, err := OpenAt(make([]byte, 16), 0, 0, 0, 4)
	assert.Error(t, err)
}
