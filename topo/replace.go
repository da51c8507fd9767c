package topo

// Outcome is the result of a replacement operation on one object.
//
// Unchanged means the target was not found anywhere in the object (or
// its descendants); the original object is carried through and no new
// identity is needed. Updated carries a new bare object with the
// substitution applied; the caller is responsible for inserting it
// into the canonical store. Deferring the insertion lets a caller
// composing several replacements avoid redundant store churn.
type Outcome[T any] struct {
	object  T
	updated bool
}

// Unchanged wraps the original object of a replacement that found
// nothing to replace.
func Unchanged[T any](original T) Outcome[T] {
	return Outcome[T]{object: original}
}

// Updated wraps a newly constructed, not yet inserted object.
func Updated[T any](object T) Outcome[T] {
	return Outcome[T]{object: object, updated: true}
}

// WasUpdated reports whether a replacement happened.
func (o Outcome[T]) WasUpdated() bool {
	return o.updated
}

// Object returns the resulting bare object: the new object if a
// replacement happened, the original otherwise.
func (o Outcome[T]) Object() T {
	return o.object
}

// InsertUpdated resolves an outcome to a handle: an updated object is
// inserted into the store, an unchanged one keeps the original handle
// and its identity. The bool reports whether an insertion happened.
func InsertUpdated[T any](outcome Outcome[T], original Handle[T], store *Store[T]) (Handle[T], bool) {
	if outcome.WasUpdated() {
		return store.Insert(outcome.Object()), true
	}
	return original, false
}
