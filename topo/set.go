package topo

import (
	"fmt"
	"iter"
)

// Set is an ordered set of object handles.
//
// This is the container used by every object that references multiple
// objects of the same kind. It holds no duplicates (by ID) and
// preserves insertion order, which encodes loop and winding order.
// Like the objects it lives in, a Set is immutable after construction.
type Set[T any] struct {
	inner []Handle[T]
}

// NewSet creates a Set from the given handles.
//
// Panics if the handles contain a duplicate ID. That is a caller
// invariant violation, not a runtime condition.
func NewSet[T any](handles ...Handle[T]) Set[T] {
	added := make(map[ID]struct{}, len(handles))
	inner := make([]Handle[T], 0, len(handles))

	for _, handle := range handles {
		if _, ok := added[handle.ID()]; ok {
			panic(fmt.Sprintf("constructing set with duplicate handle: %s", handle))
		}
		added[handle.ID()] = struct{}{}
		inner = append(inner, handle)
	}

	return Set[T]{inner: inner}
}

// Len returns the number of objects in the set.
func (s Set[T]) Len() int {
	return len(s.inner)
}

// IsEmpty reports whether the set is empty.
func (s Set[T]) IsEmpty() bool {
	return len(s.inner) == 0
}

// Contains reports whether the set contains the given object, by ID.
func (s Set[T]) Contains(handle Handle[T]) bool {
	_, ok := s.IndexOf(handle)
	return ok
}

// Only returns the only item.
//
// Panics unless the set contains exactly one item.
func (s Set[T]) Only() Handle[T] {
	if len(s.inner) == 0 {
		panic("requested only item, but no items available")
	}
	if len(s.inner) > 1 {
		panic("requested only item, but more than one available")
	}
	return s.inner[0]
}

// First returns the first item.
//
// Panics if the set is empty.
func (s Set[T]) First() Handle[T] {
	if len(s.inner) == 0 {
		panic("requested first item, but no items available")
	}
	return s.inner[0]
}

// Nth returns the n-th item, or false if the index is out of bounds.
func (s Set[T]) Nth(index int) (Handle[T], bool) {
	if index < 0 || index >= len(s.inner) {
		return Handle[T]{}, false
	}
	return s.inner[index], true
}

// NthCircular returns the n-th item, treating the index space as
// circular: for a set of length n, index i and index i+n refer to the
// same item. Negative indices wrap backwards.
//
// Panics if the set is empty.
func (s Set[T]) NthCircular(index int) Handle[T] {
	if len(s.inner) == 0 {
		panic("circular indexing into empty set")
	}
	n := len(s.inner)
	index = ((index % n) + n) % n
	return s.inner[index]
}

// IndexOf returns the index of the item, or false if it is absent.
// Lookup compares by ID.
func (s Set[T]) IndexOf(handle Handle[T]) (int, bool) {
	for i, h := range s.inner {
		if h.Same(handle) {
			return i, true
		}
	}
	return 0, false
}

// After returns the item after the provided one, wrapping around at
// the end of the set. Returns false if the provided item is absent.
func (s Set[T]) After(handle Handle[T]) (Handle[T], bool) {
	index, ok := s.IndexOf(handle)
	if !ok {
		return Handle[T]{}, false
	}
	return s.NthCircular(index + 1), true
}

// All returns an iterator over the objects in insertion order.
func (s Set[T]) All() iter.Seq[Handle[T]] {
	return func(yield func(Handle[T]) bool) {
		for _, handle := range s.inner {
			if !yield(handle) {
				return
			}
		}
	}
}

// Pairs returns an iterator over the circularly adjacent pairs of the
// set: (e0,e1), (e1,e2), ..., (e_{n-1},e0). A non-empty set of length
// n yields exactly n pairs, the last one closing the loop back to the
// first element. An empty set yields nothing.
func (s Set[T]) Pairs() iter.Seq2[Handle[T], Handle[T]] {
	return func(yield func(Handle[T], Handle[T]) bool) {
		n := len(s.inner)
		for i := 0; i < n; i++ {
			if !yield(s.inner[i], s.inner[(i+1)%n]) {
				return
			}
		}
	}
}

// Handles returns a copy of the handles in insertion order.
func (s Set[T]) Handles() []Handle[T] {
	out := make([]Handle[T], len(s.inner))
	copy(out, s.inner)
	return out
}

// Replace returns a new set in which original has been excised and
// the replacements spliced in at its position, preserving the relative
// order of everything before and after. The receiver is untouched.
//
// Returns false if original is not present.
//
// Panics if the result would contain a duplicate ID.
func (s Set[T]) Replace(original Handle[T], replacements []Handle[T]) (Set[T], bool) {
	index, ok := s.IndexOf(original)
	if !ok {
		return Set[T]{}, false
	}

	spliced := make([]Handle[T], 0, len(s.inner)-1+len(replacements))
	spliced = append(spliced, s.inner[:index]...)
	spliced = append(spliced, replacements...)
	spliced = append(spliced, s.inner[index+1:]...)

	return NewSet(spliced...), true
}
