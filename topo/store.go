package topo

import (
	"math"
	"strconv"

	"github.com/gocad/brep/geom"
)

// Store owns the canonical objects of one kind and hands out handles.
//
// Insert is infallible and there is no update operation: once
// inserted, an object is immutable for the lifetime of the store.
// For kinds where content-based deduplication is meaningful (vertices
// by position, surfaces by plane content) the store returns the
// existing canonical handle instead of minting a new identity; callers
// must not rely on deduplication happening for any particular kind.
type Store[T any] struct {
	objects []Handle[T]
	key     func(*T) (string, bool)
	dedup   map[string]Handle[T]
}

// NewStore creates a store without content-based deduplication.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// NewDedupStore creates a store that deduplicates by the given content
// key. The key function may decline (return false) for objects that
// should always get a fresh identity.
func NewDedupStore[T any](key func(*T) (string, bool)) *Store[T] {
	return &Store[T]{
		key:   key,
		dedup: make(map[string]Handle[T]),
	}
}

// Insert adds an object to the store and returns its handle. If the
// store deduplicates this kind and an object with identical content
// was inserted before, the existing handle is returned.
func (s *Store[T]) Insert(object T) Handle[T] {
	var contentKey string
	if s.key != nil {
		if k, ok := s.key(&object); ok {
			if existing, ok := s.dedup[k]; ok {
				return existing
			}
			contentKey = k
		}
	}

	handle := Handle[T]{id: NewID(), obj: &object}
	s.objects = append(s.objects, handle)
	if contentKey != "" {
		s.dedup[contentKey] = handle
	}
	return handle
}

// Len returns the number of canonical objects in the store.
func (s *Store[T]) Len() int {
	return len(s.objects)
}

// Stores aggregates the per-kind canonical stores of one modeling
// session. It is not safe for concurrent use; wrap it externally if
// multiple goroutines insert.
type Stores struct {
	Vertices  *Store[Vertex]
	HalfEdges *Store[HalfEdge]
	Cycles    *Store[Cycle]
	Regions   *Store[Region]
	Faces     *Store[Face]
	Sketches  *Store[Sketch]
	Shells    *Store[Shell]
	Solids    *Store[Solid]
	Surfaces  *Store[Surface]
}

// NewStores creates the stores of a fresh modeling session.
func NewStores() *Stores {
	return &Stores{
		Vertices:  NewDedupStore(vertexKey),
		HalfEdges: NewStore[HalfEdge](),
		Cycles:    NewStore[Cycle](),
		Regions:   NewStore[Region](),
		Faces:     NewStore[Face](),
		Sketches:  NewStore[Sketch](),
		Shells:    NewStore[Shell](),
		Solids:    NewStore[Solid](),
		Surfaces:  NewDedupStore(surfaceKey),
	}
}

// vertexKey deduplicates vertices by exact position. Positions that
// differ in any bit are distinct vertices.
func vertexKey(v *Vertex) (string, bool) {
	return vecKey(v.position), true
}

// surfaceKey deduplicates surfaces by exact plane content.
func surfaceKey(s *Surface) (string, bool) {
	p := s.plane
	return vecKey(p.Origin) + "|" + vecKey(p.U) + "|" + vecKey(p.V), true
}

func vecKey(v geom.Vec3) string {
	return strconv.FormatUint(math.Float64bits(v.X), 16) + "," +
		strconv.FormatUint(math.Float64bits(v.Y), 16) + "," +
		strconv.FormatUint(math.Float64bits(v.Z), 16)
}
