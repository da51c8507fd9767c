// Package mesh converts approximated topology into triangle meshes
// and serializes them for external consumers (STL files, debug PNG
// previews). This is the boundary the viewer-side pipeline consumes:
// plain vertex and index buffers, no handles or topology.
package mesh

import (
	"math"

	"github.com/gocad/brep/approx"
	"github.com/gocad/brep/geom"
	"github.com/gocad/brep/topo"
)

// Mesh is an indexed triangle mesh. Indices holds three entries per
// triangle; Colors holds one color per triangle.
type Mesh struct {
	Vertices []geom.Vec3
	Indices  []uint32
	Colors   []topo.Color

	lookup map[[3]uint64]uint32
}

// New creates an empty mesh.
func New() *Mesh {
	return &Mesh{lookup: make(map[[3]uint64]uint32)}
}

// AddTriangle appends a triangle, deduplicating vertices by exact
// position.
func (m *Mesh) AddTriangle(a, b, c geom.Vec3, color topo.Color) {
	m.Indices = append(m.Indices, m.vertexIndex(a), m.vertexIndex(b), m.vertexIndex(c))
	m.Colors = append(m.Colors, color)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the corner positions of the i-th triangle.
func (m *Mesh) Triangle(i int) [3]geom.Vec3 {
	return [3]geom.Vec3{
		m.Vertices[m.Indices[i*3]],
		m.Vertices[m.Indices[i*3+1]],
		m.Vertices[m.Indices[i*3+2]],
	}
}

// Normal returns the unit normal of the i-th triangle.
func (m *Mesh) Normal(i int) geom.Vec3 {
	t := m.Triangle(i)
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Normalize()
}

func (m *Mesh) vertexIndex(v geom.Vec3) uint32 {
	key := [3]uint64{
		math.Float64bits(v.X),
		math.Float64bits(v.Y),
		math.Float64bits(v.Z),
	}
	if i, ok := m.lookup[key]; ok {
		return i
	}
	i := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, v)
	m.lookup[key] = i
	return i
}

// FromSolid approximates a solid under the given tolerance and
// triangulates every face into one mesh.
func FromSolid(solid topo.Handle[topo.Solid], tolerance geom.Tolerance, cache *approx.Cache) *Mesh {
	m := New()
	solidApprox := approx.Solid(solid, tolerance, cache)
	for _, face := range solidApprox.Faces {
		for _, tri := range TriangulateFace(face) {
			m.AddTriangle(tri[0], tri[1], tri[2], face.Color)
		}
	}
	return m
}
