package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocad/brep/geom"
	"github.com/gocad/brep/topo"
)

func polygonRegion(t *testing.T, stores *topo.Stores, positions []geom.Vec3) topo.Handle[topo.Region] {
	t.Helper()

	halfEdges := make([]topo.Handle[topo.HalfEdge], len(positions))
	for i, p := range positions {
		next := positions[(i+1)%len(positions)]
		start := stores.Vertices.Insert(topo.NewVertex(p))
		halfEdges[i] = stores.HalfEdges.Insert(topo.NewHalfEdge(geom.NewLine(p, next), start))
	}
	cycle := stores.Cycles.Insert(topo.NewCycle(topo.NewSet(halfEdges...)))
	return stores.Regions.Insert(topo.NewRegion(cycle, topo.NewSet[topo.Cycle](), topo.DefaultColor))
}

func squarePositions(size float64) []geom.Vec3 {
	return []geom.Vec3{
		geom.V3(0, 0, 0), geom.V3(size, 0, 0),
		geom.V3(size, size, 0), geom.V3(0, size, 0),
	}
}

func TestSweepFaceCount(t *testing.T) {
	tests := []struct {
		name      string
		positions []geom.Vec3
		wantFaces int
	}{
		{
			name:      "triangle",
			positions: squarePositions(1)[:3],
			wantFaces: 2 + 3,
		},
		{
			name:      "square",
			positions: squarePositions(1),
			wantFaces: 2 + 4,
		},
		{
			name: "pentagon",
			positions: []geom.Vec3{
				geom.V3(0, 0, 0), geom.V3(2, 0, 0), geom.V3(3, 2, 0),
				geom.V3(1, 3, 0), geom.V3(-1, 2, 0),
			},
			wantFaces: 2 + 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores := topo.NewStores()
			region := polygonRegion(t, stores, tt.positions)
			sketch := stores.Sketches.Insert(topo.NewSketch(topo.NewSet(region)))

			solid := Sketch(sketch, geom.V3(0, 0, 1), stores)

			shell := solid.Get().Shells().Only()
			assert.Equal(t, tt.wantFaces, shell.Get().Faces().Len())
		})
	}
}

func TestSweepOneShellPerRegion(t *testing.T) {
	stores := topo.NewStores()

	left := polygonRegion(t, stores, squarePositions(1))
	right := polygonRegion(t, stores, []geom.Vec3{
		geom.V3(3, 0, 0), geom.V3(4, 0, 0), geom.V3(4, 1, 0), geom.V3(3, 1, 0),
	})
	sketch := stores.Sketches.Insert(topo.NewSketch(topo.NewSet(left, right)))

	solid := Sketch(sketch, geom.V3(0, 0, 1), stores)
	assert.Equal(t, 2, solid.Get().Shells().Len())
}

func TestSweepBottomSharesSourceTopology(t *testing.T) {
	stores := topo.NewStores()
	region := polygonRegion(t, stores, squarePositions(1))
	sketch := stores.Sketches.Insert(topo.NewSketch(topo.NewSet(region)))

	solid := Sketch(sketch, geom.V3(0, 0, 1), stores)

	shell := solid.Get().Shells().Only()
	bottom := shell.Get().Faces().First()

	// The bottom face reuses the sketch's region by handle, and the
	// side faces reuse the bottom cycle's half-edges.
	assert.True(t, bottom.Get().Region().Same(region))

	bottomEdges := region.Get().Exterior().Get().HalfEdges()
	sideFaces := 0
	for face := range shell.Get().Faces().All() {
		cycle := face.Get().Region().Get().Exterior().Get()
		for halfEdge := range cycle.HalfEdges().All() {
			if bottomEdges.Contains(halfEdge) {
				if !face.Same(bottom) {
					sideFaces++
				}
				break
			}
		}
	}
	assert.Equal(t, 4, sideFaces)
}

func TestSweepTopFaceTranslated(t *testing.T) {
	stores := topo.NewStores()
	path := geom.V3(0, 0, 2)
	region := polygonRegion(t, stores, squarePositions(1))
	sketch := stores.Sketches.Insert(topo.NewSketch(topo.NewSet(region)))

	solid := Sketch(sketch, path, stores)

	shell := solid.Get().Shells().Only()
	top, ok := shell.Get().Faces().Nth(1)
	require.True(t, ok)

	bottomCycle := region.Get().Exterior().Get().HalfEdges()
	topCycle := top.Get().Region().Get().Exterior().Get().HalfEdges()
	require.Equal(t, bottomCycle.Len(), topCycle.Len())

	for i := 0; i < bottomCycle.Len(); i++ {
		bottomEdge := bottomCycle.NthCircular(i)
		topEdge := topCycle.NthCircular(i)
		want := bottomEdge.Get().StartPosition().Add(path)
		assert.Equal(t, want, topEdge.Get().StartPosition())
	}
}

func TestSweepVertexSharing(t *testing.T) {
	stores := topo.NewStores()
	region := polygonRegion(t, stores, squarePositions(1))
	sketch := stores.Sketches.Insert(topo.NewSketch(topo.NewSet(region)))

	before := stores.Vertices.Len()
	Sketch(sketch, geom.V3(0, 0, 1), stores)

	// A swept cube has 8 corners. The 4 bottom vertices exist
	// already; sweeping adds exactly the 4 top ones, with the store
	// deduplicating the corners shared between top and side faces.
	assert.Equal(t, before+4, stores.Vertices.Len())
}

func TestSweepRegionWithHole(t *testing.T) {
	stores := topo.NewStores()

	outer := squarePositions(4)
	hole := []geom.Vec3{
		geom.V3(1, 1, 0), geom.V3(3, 1, 0), geom.V3(3, 3, 0), geom.V3(1, 3, 0),
	}

	outerEdges := make([]topo.Handle[topo.HalfEdge], len(outer))
	for i, p := range outer {
		next := outer[(i+1)%len(outer)]
		start := stores.Vertices.Insert(topo.NewVertex(p))
		outerEdges[i] = stores.HalfEdges.Insert(topo.NewHalfEdge(geom.NewLine(p, next), start))
	}
	holeEdges := make([]topo.Handle[topo.HalfEdge], len(hole))
	for i, p := range hole {
		next := hole[(i+1)%len(hole)]
		start := stores.Vertices.Insert(topo.NewVertex(p))
		holeEdges[i] = stores.HalfEdges.Insert(topo.NewHalfEdge(geom.NewLine(p, next), start))
	}

	exterior := stores.Cycles.Insert(topo.NewCycle(topo.NewSet(outerEdges...)))
	interior := stores.Cycles.Insert(topo.NewCycle(topo.NewSet(holeEdges...)))
	region := stores.Regions.Insert(topo.NewRegion(exterior, topo.NewSet(interior), topo.DefaultColor))

	shell := Region(region, geom.V3(0, 0, 1), stores)

	// Bottom, top, four outer walls, four hole walls.
	assert.Equal(t, 10, shell.Get().Faces().Len())
}
