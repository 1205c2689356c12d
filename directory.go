package rcc

import (
	"fmt"

	"github.com/scigolib/rcc/internal/core"
)

// Directory is a resolved directory resource. It borrows its Session's
// image for the lifetime of the value.
type Directory struct {
	session *Session
	record  core.Record
	path    string
}

// Name decodes the directory's own name from the name table. The root
// directory has an empty name; its Path is "/".
func (d *Directory) Name() (string, error) {
	return d.record.Name()
}

// Hash returns the directory's precomputed name hash.
func (d *Directory) Hash() (uint32, error) {
	return d.record.Hash()
}

// Path returns the absolute path this directory was resolved at.
func (d *Directory) Path() string {
	return d.path
}

// ChildCount returns the number of direct children.
func (d *Directory) ChildCount() (uint32, error) {
	return d.record.ChildCount()
}

// Children materializes every direct child of this directory, each
// stamped with its absolute path.
func (d *Directory) Children() ([]Resource, error) {
	childCount, err := d.record.ChildCount()
	if err != nil {
		return nil, err
	}
	childOffset, err := d.record.ChildOffset()
	if err != nil {
		return nil, err
	}

	children := make([]Resource, 0, childCount)
	for i := uint32(0); i < childCount; i++ {
		index := childOffset + i
		record := d.session.recordAt(index)

		name, err := record.Name()
		if err != nil {
			return nil, err
		}

		childPath := d.path
		if childPath != "/" {
			childPath += "/"
		}
		childPath += name

		res, err := d.session.resourceAt(index, childPath)
		if err != nil {
			return nil, err
		}
		children = append(children, res)
	}
	return children, nil
}

// String implements fmt.Stringer with the directory's path and the
// decoded base offset of its own record, for debug printing.
func (d *Directory) String() string {
	return fmt.Sprintf("Directory{path=%q, base=%#x}", d.path, d.record.Base())
}
