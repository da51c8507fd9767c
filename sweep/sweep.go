// Package sweep constructs new solids by extruding 2D topology along
// a path.
//
// Sweeping is purely constructive: it reads the source sketch and
// inserts every object it builds into the canonical stores, so the
// returned solid is immediately usable by further graph operations.
// Bottom faces share the sketch's cycles and half-edges by handle;
// top and side topology is newly built, with vertex and surface
// deduplication in the stores joining coincident corners.
package sweep

import (
	"github.com/gocad/brep/geom"
	"github.com/gocad/brep/topo"
)

// Sketch sweeps a sketch along a path vector, producing one shell per
// region. Each region's shell consists of a bottom face (the region
// itself), a top face (the region translated to the end of the path),
// and one side face per half-edge of the region's boundaries.
func Sketch(sketch topo.Handle[topo.Sketch], path geom.Vec3, stores *topo.Stores) topo.Handle[topo.Solid] {
	shells := make([]topo.Handle[topo.Shell], 0, sketch.Get().Regions().Len())
	for region := range sketch.Get().Regions().All() {
		shells = append(shells, Region(region, path, stores))
	}
	return stores.Solids.Insert(topo.NewSolid(topo.NewSet(shells...)))
}

// Region sweeps a single region along a path vector into a shell.
func Region(region topo.Handle[topo.Region], path geom.Vec3, stores *topo.Stores) topo.Handle[topo.Shell] {
	bottomPlane := planeOfCycle(region.Get().Exterior())
	color := region.Get().Color()

	var faces []topo.Handle[topo.Face]

	bottomSurface := stores.Surfaces.Insert(topo.NewSurface(bottomPlane))
	faces = append(faces, stores.Faces.Insert(topo.NewFace(bottomSurface, region)))

	topSurface := stores.Surfaces.Insert(topo.NewSurface(bottomPlane.Translated(path)))
	topRegion := translateRegion(region, path, stores)
	faces = append(faces, stores.Faces.Insert(topo.NewFace(topSurface, topRegion)))

	faces = append(faces, sweepCycleSides(region.Get().Exterior(), path, color, stores)...)
	for interior := range region.Get().Interiors().All() {
		faces = append(faces, sweepCycleSides(interior, path, color, stores)...)
	}

	return stores.Shells.Insert(topo.NewShell(topo.NewSet(faces...)))
}

// sweepCycleSides builds one side face per half-edge of the cycle.
// The bottom half-edge of each side face is the cycle's own half-edge,
// shared by handle with the bottom face.
func sweepCycleSides(cycle topo.Handle[topo.Cycle], path geom.Vec3, color topo.Color, stores *topo.Stores) []topo.Handle[topo.Face] {
	var faces []topo.Handle[topo.Face]

	for bottom, next := range cycle.Get().HalfEdges().Pairs() {
		p0 := bottom.Get().StartPosition()
		p1 := next.Get().StartPosition()

		topStart := stores.Vertices.Insert(topo.NewVertex(p1.Add(path)))
		topEnd := stores.Vertices.Insert(topo.NewVertex(p0.Add(path)))

		up := stores.HalfEdges.Insert(topo.NewHalfEdge(
			geom.NewLine(p1, p1.Add(path)), next.Get().StartVertex(),
		))
		top := stores.HalfEdges.Insert(topo.NewHalfEdge(
			bottom.Get().Curve().Translated(path).Reversed(), topStart,
		))
		down := stores.HalfEdges.Insert(topo.NewHalfEdge(
			geom.NewLine(p0.Add(path), p0), topEnd,
		))

		sideCycle := stores.Cycles.Insert(topo.NewCycle(topo.NewSet(bottom, up, top, down)))
		sideRegion := stores.Regions.Insert(topo.NewRegion(sideCycle, topo.NewSet[topo.Cycle](), color))
		sideSurface := stores.Surfaces.Insert(topo.NewSurface(
			geom.PlaneAt(p0, p1.Sub(p0), path),
		))

		faces = append(faces, stores.Faces.Insert(topo.NewFace(sideSurface, sideRegion)))
	}

	return faces
}

// translateRegion builds a copy of the region moved by the given
// vector, bottom-up: vertices first, then half-edges, cycles, and the
// region itself. Vertex deduplication in the store joins corners
// shared with side faces.
func translateRegion(region topo.Handle[topo.Region], path geom.Vec3, stores *topo.Stores) topo.Handle[topo.Region] {
	exterior := translateCycle(region.Get().Exterior(), path, stores)

	interiors := make([]topo.Handle[topo.Cycle], 0, region.Get().Interiors().Len())
	for interior := range region.Get().Interiors().All() {
		interiors = append(interiors, translateCycle(interior, path, stores))
	}

	return stores.Regions.Insert(topo.NewRegion(exterior, topo.NewSet(interiors...), region.Get().Color()))
}

func translateCycle(cycle topo.Handle[topo.Cycle], path geom.Vec3, stores *topo.Stores) topo.Handle[topo.Cycle] {
	halfEdges := make([]topo.Handle[topo.HalfEdge], 0, cycle.Get().HalfEdges().Len())
	for halfEdge := range cycle.Get().HalfEdges().All() {
		start := stores.Vertices.Insert(topo.NewVertex(
			halfEdge.Get().StartPosition().Add(path),
		))
		halfEdges = append(halfEdges, stores.HalfEdges.Insert(topo.NewHalfEdge(
			halfEdge.Get().Curve().Translated(path), start,
		)))
	}
	return stores.Cycles.Insert(topo.NewCycle(topo.NewSet(halfEdges...)))
}

// planeOfCycle derives the plane a cycle lies in from its vertex
// positions, using Newell's method for the normal. The plane origin
// is the first vertex; U is the first edge direction.
func planeOfCycle(cycle topo.Handle[topo.Cycle]) geom.Plane {
	halfEdges := cycle.Get().HalfEdges()
	points := make([]geom.Vec3, 0, halfEdges.Len())
	for halfEdge := range halfEdges.All() {
		points = append(points, halfEdge.Get().StartPosition())
	}
	return geom.PlaneFromPoints(points)
}
