// Package models provides the built-in demo models the brep command
// exports. Each model builds its topology through a Services
// aggregate and returns the final solid.
package models

import (
	"fmt"
	"sort"

	"github.com/gocad/brep"
	"github.com/gocad/brep/geom"
	"github.com/gocad/brep/topo"
)

// BuildFunc constructs a model of the given size within a session.
type BuildFunc func(size float64, sv *brep.Services) topo.Handle[topo.Solid]

var registry = map[string]BuildFunc{
	"cube":  Cube,
	"split": Split,
}

// Build constructs the named model. Returns an error for unknown
// names.
func Build(name string, size float64, sv *brep.Services) (topo.Handle[topo.Solid], error) {
	build, ok := registry[name]
	if !ok {
		return topo.Handle[topo.Solid]{}, fmt.Errorf("unknown model %q (available: %v)", name, Names())
	}
	return build(size, sv), nil
}

// Names returns the available model names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PolygonSketch builds a single-region sketch whose exterior is the
// polygon through the given plane coordinates, and inserts all
// topology into the stores.
func PolygonSketch(plane geom.Plane, points []geom.Vec2, color topo.Color, stores *topo.Stores) topo.Handle[topo.Sketch] {
	if len(points) < 3 {
		panic("polygon sketch requires at least three points")
	}

	vertices := make([]topo.Handle[topo.Vertex], len(points))
	positions := make([]geom.Vec3, len(points))
	for i, uv := range points {
		positions[i] = plane.PointAt(uv)
		vertices[i] = stores.Vertices.Insert(topo.NewVertex(positions[i]))
	}

	halfEdges := make([]topo.Handle[topo.HalfEdge], len(points))
	for i := range points {
		next := (i + 1) % len(points)
		halfEdges[i] = stores.HalfEdges.Insert(topo.NewHalfEdge(
			geom.NewLine(positions[i], positions[next]), vertices[i],
		))
	}

	cycle := stores.Cycles.Insert(topo.NewCycle(topo.NewSet(halfEdges...)))
	region := stores.Regions.Insert(topo.NewRegion(cycle, topo.NewSet[topo.Cycle](), color))
	return stores.Sketches.Insert(topo.NewSketch(topo.NewSet(region)))
}
