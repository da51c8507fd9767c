package topo

// Cycle is a closed loop of half-edges. The order of the half-edges
// defines the winding of the loop.
type Cycle struct {
	halfEdges Set[HalfEdge]
}

// NewCycle creates a cycle from the given half-edges.
func NewCycle(halfEdges Set[HalfEdge]) Cycle {
	return Cycle{halfEdges: halfEdges}
}

// HalfEdges returns the half-edges of the cycle.
func (c *Cycle) HalfEdges() Set[HalfEdge] {
	return c.halfEdges
}
