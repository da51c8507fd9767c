package topo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocad/brep/geom"
)

// fixture is a solid with one shell of two square faces sharing a
// half-edge, plus direct access to the pieces the tests poke at.
type fixture struct {
	stores *Stores

	vertices [6]Handle[Vertex]
	edges    map[string]Handle[HalfEdge]
	faces    [2]Handle[Face]
	shell    Handle[Shell]
	solid    Handle[Solid]
}

// buildFixture constructs two unit squares side by side in the XY
// plane. The seam edge is shared by handle between both cycles.
//
//	v3 --- v2 --- v5
//	|       |      |
//	v0 --- v1 --- v4
func buildFixture(t *testing.T) *fixture {
	t.Helper()
	stores := NewStores()
	f := &fixture{stores: stores, edges: make(map[string]Handle[HalfEdge])}

	positions := [6]geom.Vec3{
		geom.V3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(1, 1, 0),
		geom.V3(0, 1, 0), geom.V3(2, 0, 0), geom.V3(2, 1, 0),
	}
	for i, p := range positions {
		f.vertices[i] = stores.Vertices.Insert(NewVertex(p))
	}

	edge := func(name string, from, to int) Handle[HalfEdge] {
		h := stores.HalfEdges.Insert(NewHalfEdge(
			geom.NewLine(positions[from], positions[to]), f.vertices[from],
		))
		f.edges[name] = h
		return h
	}

	// Left square, counter-clockwise.
	e01 := edge("e01", 0, 1)
	e12 := edge("e12", 1, 2)
	e23 := edge("e23", 2, 3)
	e30 := edge("e30", 3, 0)
	left := stores.Cycles.Insert(NewCycle(NewSet(e01, e12, e23, e30)))

	// Right square, sharing e12 (traversed in the left square's
	// direction; orientation is not under test here).
	e14 := edge("e14", 1, 4)
	e45 := edge("e45", 4, 5)
	e52 := edge("e52", 5, 2)
	right := stores.Cycles.Insert(NewCycle(NewSet(e14, e45, e52, e12)))

	surface := stores.Surfaces.Insert(NewSurface(geom.XY()))
	for i, cycle := range []Handle[Cycle]{left, right} {
		region := stores.Regions.Insert(NewRegion(cycle, NewSet[Cycle](), DefaultColor))
		f.faces[i] = stores.Faces.Insert(NewFace(surface, region))
	}

	f.shell = stores.Shells.Insert(NewShell(NewSet(f.faces[0], f.faces[1])))
	f.solid = stores.Solids.Insert(NewSolid(NewSet(f.shell)))
	return f
}

// splitEdge builds two half-edges subdividing the given one at its
// midpoint.
func splitEdge(f *fixture, original Handle[HalfEdge], end geom.Vec3) []Handle[HalfEdge] {
	start := original.Get().StartPosition()
	mid := original.Get().Curve().Eval(0.5)
	midVertex := f.stores.Vertices.Insert(NewVertex(mid))

	return []Handle[HalfEdge]{
		f.stores.HalfEdges.Insert(NewHalfEdge(geom.NewLine(start, mid), original.Get().StartVertex())),
		f.stores.HalfEdges.Insert(NewHalfEdge(geom.NewLine(mid, end), midVertex)),
	}
}

func TestReplaceHalfEdgeAbsent(t *testing.T) {
	f := buildFixture(t)

	absent := f.stores.HalfEdges.Insert(NewHalfEdge(
		geom.NewLine(geom.V3(9, 9, 9), geom.V3(9, 9, 8)), f.vertices[0],
	))

	outcome := f.solid.Get().ReplaceHalfEdge(absent, nil, f.stores)
	assert.False(t, outcome.WasUpdated())

	// The unchanged result keeps its identity and nothing is
	// inserted.
	solids := f.stores.Solids.Len()
	handle, inserted := InsertUpdated(outcome, f.solid, f.stores.Solids)
	assert.False(t, inserted)
	assert.True(t, handle.Same(f.solid))
	assert.Equal(t, solids, f.stores.Solids.Len())
}

func TestReplaceHalfEdgeInOneFace(t *testing.T) {
	f := buildFixture(t)

	// e30 only occurs in the left square.
	replacements := splitEdge(f, f.edges["e30"], geom.V3(0, 0, 0))
	outcome := f.shell.Get().ReplaceHalfEdge(f.edges["e30"], replacements, f.stores)
	require.True(t, outcome.WasUpdated())

	shell := outcome.Object()
	newLeft, ok := shell.Faces().Nth(0)
	require.True(t, ok)
	newRight, ok := shell.Faces().Nth(1)
	require.True(t, ok)

	// The untouched face keeps its identity; the touched one does
	// not.
	assert.True(t, newRight.Same(f.faces[1]))
	assert.False(t, newLeft.Same(f.faces[0]))

	cycle := newLeft.Get().Region().Get().Exterior().Get()
	assert.Equal(t, 5, cycle.HalfEdges().Len())
	assert.False(t, cycle.HalfEdges().Contains(f.edges["e30"]))
}

func TestReplaceHalfEdgeShared(t *testing.T) {
	f := buildFixture(t)

	// e12 is shared by both faces; both get the same replacements.
	replacements := splitEdge(f, f.edges["e12"], geom.V3(1, 1, 0))
	outcome := f.solid.Get().ReplaceHalfEdge(f.edges["e12"], replacements, f.stores)
	require.True(t, outcome.WasUpdated())

	solid := outcome.Object()
	shell := solid.Shells().Only()
	for face := range shell.Get().Faces().All() {
		cycle := face.Get().Region().Get().Exterior().Get()
		assert.Equal(t, 5, cycle.HalfEdges().Len())
		assert.False(t, cycle.HalfEdges().Contains(f.edges["e12"]))
		for _, replacement := range replacements {
			assert.True(t, cycle.HalfEdges().Contains(replacement))
		}
	}
}

func TestReplaceHalfEdgeDelete(t *testing.T) {
	f := buildFixture(t)

	outcome := f.solid.Get().ReplaceHalfEdge(f.edges["e45"], nil, f.stores)
	require.True(t, outcome.WasUpdated())

	solid := outcome.Object()
	shell := solid.Shells().Only()
	right, ok := shell.Get().Faces().Nth(1)
	require.True(t, ok)
	assert.Equal(t, 3, right.Get().Region().Get().Exterior().Get().HalfEdges().Len())

	left, ok := shell.Get().Faces().Nth(0)
	require.True(t, ok)
	assert.True(t, left.Same(f.faces[0]))
}

func TestReplaceVertex(t *testing.T) {
	f := buildFixture(t)

	moved := f.stores.Vertices.Insert(NewVertex(geom.V3(0, -0.5, 0)))
	outcome := f.solid.Get().ReplaceVertex(
		f.vertices[0], []Handle[Vertex]{moved}, f.stores,
	)
	require.True(t, outcome.WasUpdated())

	solid := outcome.Object()
	shell := solid.Shells().Only()

	// v0 only occurs in the left square; the right face keeps its
	// identity.
	newLeft, ok := shell.Get().Faces().Nth(0)
	require.True(t, ok)
	newRight, ok := shell.Get().Faces().Nth(1)
	require.True(t, ok)
	assert.True(t, newRight.Same(f.faces[1]))
	assert.False(t, newLeft.Same(f.faces[0]))

	cycle := newLeft.Get().Region().Get().Exterior().Get()
	first := cycle.HalfEdges().First()
	assert.True(t, first.Get().StartVertex().Same(moved))
}

func TestReplaceVertexCardinality(t *testing.T) {
	f := buildFixture(t)
	halfEdge := f.edges["e01"].Get()

	assert.Panics(t, func() {
		halfEdge.ReplaceVertex(f.vertices[0], nil, f.stores)
	})
	assert.Panics(t, func() {
		halfEdge.ReplaceVertex(f.vertices[0], []Handle[Vertex]{f.vertices[2], f.vertices[3]}, f.stores)
	})

	// Cardinality only matters where the vertex is actually
	// present.
	outcome := halfEdge.ReplaceVertex(f.vertices[5], nil, f.stores)
	assert.False(t, outcome.WasUpdated())
}
