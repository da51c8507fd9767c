package models

import (
	"github.com/gocad/brep"
	"github.com/gocad/brep/geom"
	"github.com/gocad/brep/topo"
)

// Cube builds an axis-aligned cube of the given edge length, corner
// at the origin: a square sketch in the XY plane swept along +Z.
func Cube(size float64, sv *brep.Services) topo.Handle[topo.Solid] {
	sketch := PolygonSketch(geom.XY(), []geom.Vec2{
		{X: 0, Y: 0},
		{X: size, Y: 0},
		{X: size, Y: size},
		{X: 0, Y: size},
	}, topo.DefaultColor, sv.Stores)

	return sv.Sweep(sketch, geom.V3(0, 0, size))
}
