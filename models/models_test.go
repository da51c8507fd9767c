package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocad/brep"
	"github.com/gocad/brep/geom"
	"github.com/gocad/brep/topo"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"cube", "split"}, Names())
}

func TestBuildUnknown(t *testing.T) {
	_, err := Build("teapot", 1, brep.NewServices())
	assert.ErrorContains(t, err, "unknown model")
}

func TestCube(t *testing.T) {
	sv := brep.NewServices()
	solid, err := Build("cube", 2, sv)
	require.NoError(t, err)

	shell := solid.Get().Shells().Only()
	assert.Equal(t, 6, shell.Get().Faces().Len())

	// Eight corner vertices, deduplicated across faces.
	assert.Equal(t, 8, sv.Stores.Vertices.Len())

	// Every face of a cube of size 2 stays within [0, 2]^3.
	tolerance := geom.MustTolerance(0.01)
	for _, face := range sv.Approx(solid, tolerance).Faces {
		for _, p := range face.Exterior.Points {
			for _, c := range []float64{p.X, p.Y, p.Z} {
				assert.GreaterOrEqual(t, c, 0.0)
				assert.LessOrEqual(t, c, 2.0)
			}
		}
	}
}

func TestSplit(t *testing.T) {
	sv := brep.NewServices()
	solid, err := Build("split", 1, sv)
	require.NoError(t, err)

	shell := solid.Get().Shells().Only()
	require.Equal(t, 6, shell.Get().Faces().Len())

	// The split edge borders the bottom face and one side face: both
	// now carry five exterior edges, the rest keep four.
	fiveEdged := 0
	for face := range shell.Get().Faces().All() {
		n := face.Get().Region().Get().Exterior().Get().HalfEdges().Len()
		switch n {
		case 5:
			fiveEdged++
		case 4:
		default:
			t.Fatalf("face has %d exterior edges, want 4 or 5", n)
		}
	}
	assert.Equal(t, 2, fiveEdged)
}

func TestPolygonSketchValidation(t *testing.T) {
	sv := brep.NewServices()
	assert.Panics(t, func() {
		PolygonSketch(geom.XY(), []geom.Vec2{geom.V2(0, 0), geom.V2(1, 0)}, topo.DefaultColor, sv.Stores)
	})
}
