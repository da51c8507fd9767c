package approx

import (
	"github.com/gocad/brep/cache"
	"github.com/gocad/brep/geom"
	"github.com/gocad/brep/topo"
)

// key identifies a memoized approximation: the object's identity plus
// the tolerance it was approximated under.
type key struct {
	id        topo.ID
	tolerance float64
}

func keyFor(id topo.ID, tolerance geom.Tolerance) key {
	return key{id: id, tolerance: tolerance.Value()}
}

// Cache memoizes approximation results per kind. Entries live until
// they are evicted least-recently-used or the cache is reset; a
// session that wants unbounded memoization can construct the cache
// with capacity 0.
type Cache struct {
	edges *cache.LRU[key, EdgeApprox]
	faces *cache.LRU[key, FaceApprox]
}

// NewCache creates an approximation cache. Capacity is the maximum
// number of entries per kind; 0 means unbounded, negative means the
// default.
func NewCache(capacity int) *Cache {
	return &Cache{
		edges: cache.New[key, EdgeApprox](capacity),
		faces: cache.New[key, FaceApprox](capacity),
	}
}

// Stats reports the cache statistics for edge and face memoization,
// in that order.
func (c *Cache) Stats() (edges, faces cache.Stats) {
	return c.edges.Stats(), c.faces.Stats()
}

// Reset drops all memoized results.
func (c *Cache) Reset() {
	c.edges.Clear()
	c.faces.Clear()
}
