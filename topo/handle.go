// Package topo implements the topological object graph of the kernel:
// identity handles, canonical per-kind stores, the ordered object set,
// the object kinds themselves (vertex through solid), and the
// replacement engine that propagates local edits through enclosing
// objects.
//
// All objects are immutable once constructed. Edits never mutate in
// place; they build new objects that share unchanged substructure with
// the old ones by handle reference.
package topo

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// ID is the stable identity of an object. Two objects with identical
// content constructed independently have distinct IDs and are not
// equal.
type ID uuid.UUID

// NewID returns a fresh unique ID.
func NewID() ID {
	return ID(uuid.New())
}

// String returns the canonical textual form of the ID.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// Compare orders two IDs lexicographically by their bytes. The order
// is arbitrary but stable for the lifetime of the IDs.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// Handle is a shared reference to an immutable object of kind T.
// Equality, ordering, and hashing use the ID only, never the payload.
// Handles are cheap to copy; the payload is shared between the
// canonical store and every holder.
//
// The zero Handle references nothing and reports IsNil.
type Handle[T any] struct {
	id  ID
	obj *T
}

// ID returns the object's stable identity.
func (h Handle[T]) ID() ID {
	return h.id
}

// Get returns the referenced object. Panics on a nil handle.
func (h Handle[T]) Get() *T {
	if h.obj == nil {
		panic("accessed object behind nil handle")
	}
	return h.obj
}

// IsNil reports whether the handle references nothing.
func (h Handle[T]) IsNil() bool {
	return h.obj == nil
}

// Same reports whether two handles reference the same object, by ID.
func (h Handle[T]) Same(other Handle[T]) bool {
	return h.id == other.id
}

func (h Handle[T]) String() string {
	var kind T
	return fmt.Sprintf("%T@%s", kind, h.id)
}
