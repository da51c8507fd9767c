package topo

import "github.com/gocad/brep/geom"

// HalfEdge is a directed edge within a cycle. It owns the curve
// geometry it follows and the vertex it starts at; its end point is
// the start of the next half-edge in the cycle.
type HalfEdge struct {
	curve geom.Curve
	start Handle[Vertex]
}

// NewHalfEdge creates a half-edge following the given curve from the
// given start vertex.
func NewHalfEdge(curve geom.Curve, start Handle[Vertex]) HalfEdge {
	if curve == nil {
		panic("half-edge requires a curve")
	}
	if start.IsNil() {
		panic("half-edge requires a start vertex")
	}
	return HalfEdge{curve: curve, start: start}
}

// Curve returns the curve geometry of the half-edge.
func (e *HalfEdge) Curve() geom.Curve {
	return e.curve
}

// StartVertex returns the vertex the half-edge starts at.
func (e *HalfEdge) StartVertex() Handle[Vertex] {
	return e.start
}

// StartPosition returns the position of the start vertex.
func (e *HalfEdge) StartPosition() geom.Vec3 {
	return e.start.Get().Position()
}
