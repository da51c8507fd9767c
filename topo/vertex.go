package topo

import "github.com/gocad/brep/geom"

// Vertex is a point in space, the 0-dimensional boundary of a
// half-edge.
type Vertex struct {
	position geom.Vec3
}

// NewVertex creates a vertex at the given position.
func NewVertex(position geom.Vec3) Vertex {
	return Vertex{position: position}
}

// Position returns the vertex position.
func (v *Vertex) Position() geom.Vec3 {
	return v.position
}
