// Package approx turns exact topology into tolerance-bounded
// tessellated approximations.
//
// Approximation is compositional: a solid's approximation is the
// union of its shells' approximations, a shell's the union of its
// faces', a face's the polylines of its boundary cycles, a cycle's
// the concatenation of its half-edge polylines, and a half-edge's the
// discretization of its curve under the tolerance.
//
// Results are memoized in a Cache keyed by object identity and
// tolerance, so an object shared by multiple parents (a half-edge
// shared by two faces, say) is approximated once per distinct
// tolerance, not once per occurrence. Given a warm or cold cache,
// approximation is a pure function of (identity, tolerance).
package approx

import (
	"github.com/gocad/brep/geom"
	"github.com/gocad/brep/topo"
)

// EdgeApprox is the polyline approximation of a half-edge: its start
// point plus any intermediate curve points, excluding the end point
// (which is the next edge's start point).
type EdgeApprox struct {
	Points []geom.Vec3
}

// CycleApprox is the closed polyline approximation of a cycle. The
// last point connects back to the first.
type CycleApprox struct {
	Points []geom.Vec3
}

// FaceApprox is the approximation of a face: its exterior boundary
// polygon, any interior boundary polygons (holes), and the region
// color.
type FaceApprox struct {
	Exterior  CycleApprox
	Interiors []CycleApprox
	Color     topo.Color
}

// SolidApprox is the union of the face approximations of all shells
// of a solid.
type SolidApprox struct {
	Faces []FaceApprox
}

// Edge approximates a half-edge, memoized by (identity, tolerance).
func Edge(halfEdge topo.Handle[topo.HalfEdge], tolerance geom.Tolerance, cache *Cache) EdgeApprox {
	return cache.edges.GetOrCreate(keyFor(halfEdge.ID(), tolerance), func() EdgeApprox {
		return EdgeApprox{Points: halfEdge.Get().Curve().Approx(tolerance)}
	})
}

// Cycle approximates a cycle by concatenating the polylines of its
// half-edges in loop order.
func Cycle(cycle topo.Handle[topo.Cycle], tolerance geom.Tolerance, cache *Cache) CycleApprox {
	var points []geom.Vec3
	for halfEdge := range cycle.Get().HalfEdges().All() {
		points = append(points, Edge(halfEdge, tolerance, cache).Points...)
	}
	return CycleApprox{Points: points}
}

// Face approximates a face, memoized by (identity, tolerance).
func Face(face topo.Handle[topo.Face], tolerance geom.Tolerance, cache *Cache) FaceApprox {
	return cache.faces.GetOrCreate(keyFor(face.ID(), tolerance), func() FaceApprox {
		region := face.Get().Region().Get()

		var interiors []CycleApprox
		for interior := range region.Interiors().All() {
			interiors = append(interiors, Cycle(interior, tolerance, cache))
		}

		return FaceApprox{
			Exterior:  Cycle(region.Exterior(), tolerance, cache),
			Interiors: interiors,
			Color:     region.Color(),
		}
	})
}

// Shell approximates a shell as the union of its faces'
// approximations.
func Shell(shell topo.Handle[topo.Shell], tolerance geom.Tolerance, cache *Cache) []FaceApprox {
	var faces []FaceApprox
	for face := range shell.Get().Faces().All() {
		faces = append(faces, Face(face, tolerance, cache))
	}
	return faces
}

// Solid approximates a solid as the union of its shells'
// approximations.
func Solid(solid topo.Handle[topo.Solid], tolerance geom.Tolerance, cache *Cache) SolidApprox {
	var faces []FaceApprox
	for shell := range solid.Get().Shells().All() {
		faces = append(faces, Shell(shell, tolerance, cache)...)
	}
	return SolidApprox{Faces: faces}
}
