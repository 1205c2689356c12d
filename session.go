// Package rcc provides a pure Go, read-only reader for Qt's binary .rcc
// resource container format (up to format version 3). It exposes a
// zero-copy view over an in-memory image: resources borrow the backing
// byte slice for their entire lifetime, nothing is buffered or owned.
package rcc

import (
	"github.com/scigolib/rcc/internal/core"
	"github.com/scigolib/rcc/internal/pathnorm"
	"github.com/scigolib/rcc/rccerr"
)

// Session is an opened resource container. It borrows image for its
// entire lifetime; callers must not mutate image while a Session built
// from it is in use.
type Session struct {
	image         []byte
	structOffset  uint64
	nameOffset    uint64
	dataOffset    uint64
	formatVersion uint32
}

// Open parses the standalone-file header at the start of image and
// returns a ready-to-query Session.
func Open(image []byte) (*Session, error) {
	h, err := core.ParseHeader(image)
	if err != nil {
		return nil, err
	}
	return OpenAt(image, h.StructOffset, h.NameOffset, h.DataOffset, h.FormatVersion)
}

// OpenAt builds a Session directly from the three structural offsets
// and the format version, bypassing the standalone-file header. This is how resources embedded
// in a host binary (no "qres" prefix of their own) are opened: the host
// supplies the offsets it already knows.
func OpenAt(image []byte, structOffset, nameOffset, dataOffset uint64, formatVersion uint32) (*Session, error) {
	length := uint64(len(image))
	if structOffset >= length {
		return nil, rccerr.New(rccerr.KindInvalidOffset, "struct_offset beyond image length")
	}
	if nameOffset >= length {
		return nil, rccerr.New(rccerr.KindInvalidOffset, "name_offset beyond image length")
	}
	if dataOffset >= length {
		return nil, rccerr.New(rccerr.KindInvalidOffset, "data_offset beyond image length")
	}
	if formatVersion > core.MaxSupportedVersion {
		return nil, rccerr.New(rccerr.KindUnsupportedVersion, "format version exceeds maximum supported")
	}

	return &Session{
		image:         image,
		structOffset:  structOffset,
		nameOffset:    nameOffset,
		dataOffset:    dataOffset,
		formatVersion: formatVersion,
	}, nil
}

func (s *Session) recordAt(index uint32) core.Record {
	return core.Record{
		Image:         s.image,
		StructOffset:  s.structOffset,
		NameOffset:    s.nameOffset,
		DataOffset:    s.dataOffset,
		FormatVersion: s.formatVersion,
		Index:         index,
	}
}

func (s *Session) resourceAt(index uint32, absolutePath string) (Resource, error) {
	record := s.recordAt(index)
	kind, err := record.Kind()
	if err != nil {
		return nil, err
	}
	if kind == core.KindDirectory {
		return &Directory{session: s, record: record, path: absolutePath}, nil
	}
	return &File{session: s, record: record, path: absolutePath}, nil
}

// Root returns the container's root directory, always record index 0.
func (s *Session) Root() (*Directory, error) {
	res, err := s.resourceAt(0, "/")
	if err != nil {
		return nil, err
	}
	dir, ok := res.(*Directory)
	if !ok {
		return nil, rccerr.New(rccerr.KindInvalidData, "record 0 is not a directory")
	}
	return dir, nil
}

// Find resolves path against the container's directory tree. It returns
// (nil, nil) when no resource exists at path; it returns an error only
// when the container itself is malformed.
//
// Windows-dialect paths ("C:\images\small.jpg") are accepted and folded
// to POSIX form before resolution.
func (s *Session) Find(path string) (Resource, error) {
	root, err := s.Root()
	if err != nil {
		return nil, err
	}

	segments := pathnorm.Segments(path)
	if len(segments) == 0 {
		return root, nil
	}

	childCount, err := root.record.ChildCount()
	if err != nil {
		return nil, err
	}
	childOffset, err := root.record.ChildOffset()
	if err != nil {
		return nil, err
	}

	currentPath := ""
	for i, segment := range segments {
		index, found, err := binarySearchChild(s, segment, childCount, childOffset)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		currentPath += "/" + segment

		last := i == len(segments)-1
		res, err := s.resourceAt(index, currentPath)
		if err != nil {
			return nil, err
		}

		if last {
			return res, nil
		}

		dir, ok := res.(*Directory)
		if !ok {
			// Path descends through a file; there is nothing left to resolve.
			return nil, nil
		}
		childCount, err = dir.record.ChildCount()
		if err != nil {
			return nil, err
		}
		childOffset, err = dir.record.ChildOffset()
		if err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// binarySearchChild performs the hash-ordered binary search over a
// directory's [childOffset, childOffset+childCount) record range. On a
// hash collision between distinct names, the first record the search
// lands on wins; this mirrors the container's own ambiguity and is not
// second-guessed with a linear sweep.
func binarySearchChild(s *Session, name string, childCount, childOffset uint32) (uint32, bool, error) {
	target := hashName(name)

	left, right := uint32(0), childCount
	for left < right {
		mid := left + (right-left)/2
		record := s.recordAt(childOffset + mid)
		h, err := record.Hash()
		if err != nil {
			return 0, false, err
		}
		switch {
		case h == target:
			return childOffset + mid, true, nil
		case h < target:
			left = mid + 1
		default:
			right = mid
		}
	}
	return 0, false, nil
}
