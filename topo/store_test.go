package topo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocad/brep/geom"
)

func TestHandleIdentity(t *testing.T) {
	stores := NewStores()

	// Structurally identical half-edges constructed independently
	// have distinct identities.
	curve := geom.NewLine(geom.V3(0, 0, 0), geom.V3(1, 0, 0))
	start := stores.Vertices.Insert(NewVertex(geom.V3(0, 0, 0)))
	a := stores.HalfEdges.Insert(NewHalfEdge(curve, start))
	b := stores.HalfEdges.Insert(NewHalfEdge(curve, start))

	assert.False(t, a.Same(b))
	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotZero(t, a.ID().Compare(b.ID()))
	assert.Zero(t, a.ID().Compare(a.ID()))
}

func TestVertexDeduplication(t *testing.T) {
	stores := NewStores()

	a := stores.Vertices.Insert(NewVertex(geom.V3(1, 2, 3)))
	b := stores.Vertices.Insert(NewVertex(geom.V3(1, 2, 3)))
	c := stores.Vertices.Insert(NewVertex(geom.V3(1, 2, 4)))

	assert.True(t, a.Same(b))
	assert.False(t, a.Same(c))
	assert.Equal(t, 2, stores.Vertices.Len())
}

func TestSurfaceDeduplication(t *testing.T) {
	stores := NewStores()

	a := stores.Surfaces.Insert(NewSurface(geom.XY()))
	b := stores.Surfaces.Insert(NewSurface(geom.XY()))
	c := stores.Surfaces.Insert(NewSurface(geom.XY().Translated(geom.V3(0, 0, 1))))

	assert.True(t, a.Same(b))
	assert.False(t, a.Same(c))
	assert.Equal(t, 2, stores.Surfaces.Len())
}

func TestNilHandle(t *testing.T) {
	var handle Handle[Vertex]
	assert.True(t, handle.IsNil())
	assert.Panics(t, func() { handle.Get() })

	stores := NewStores()
	inserted := stores.Vertices.Insert(NewVertex(geom.V3(0, 0, 0)))
	require.False(t, inserted.IsNil())
	assert.Equal(t, geom.V3(0, 0, 0), inserted.Get().Position())
}
