package rcc

import "github.com/scigolib/rcc/internal/hash"

// Resource is either a Directory or a File resolved from a Session.
type Resource interface {
	// Name returns the resource's own name, decoded from the name table.
	Name() (string, error)
	// Hash returns the resource's precomputed name hash.
	Hash() (uint32, error)
	// Path returns the absolute, slash-separated path this resource was
	// resolved at.
	Path() string
}

func hashName(name string) uint32 {
	return hash.Hash(name, 0)
}
