package models

import (
	"github.com/gocad/brep"
	"github.com/gocad/brep/geom"
	"github.com/gocad/brep/topo"
)

// Split builds a cube and then splits one of its bottom edges at the
// midpoint, exercising the replacement engine end to end: the split
// propagates through every face sharing the edge up to the solid,
// while all untouched faces keep their identity.
func Split(size float64, sv *brep.Services) topo.Handle[topo.Solid] {
	cube := Cube(size, sv)
	stores := sv.Stores

	// The bottom face is the first face of the only shell; its
	// exterior's first half-edge is the edge to split.
	shell := cube.Get().Shells().Only()
	bottom := shell.Get().Faces().First()
	exterior := bottom.Get().Region().Get().Exterior()
	target := exterior.Get().HalfEdges().First()
	successor, _ := exterior.Get().HalfEdges().After(target)

	start := target.Get().StartVertex()
	end := successor.Get().StartVertex()
	midPosition := target.Get().Curve().Eval(0.5)
	mid := stores.Vertices.Insert(topo.NewVertex(midPosition))

	first := stores.HalfEdges.Insert(topo.NewHalfEdge(
		geom.NewLine(start.Get().Position(), midPosition), start,
	))
	second := stores.HalfEdges.Insert(topo.NewHalfEdge(
		geom.NewLine(midPosition, end.Get().Position()), mid,
	))

	outcome := cube.Get().ReplaceHalfEdge(target, []topo.Handle[topo.HalfEdge]{first, second}, stores)
	split, _ := topo.InsertUpdated(outcome, cube, stores.Solids)
	return split
}
