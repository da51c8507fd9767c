// Package brep is the topological core of a boundary-representation
// solid-modeling kernel.
//
// # Overview
//
// brep maintains an immutable, content-identified graph of topological
// objects (vertices, half-edges, cycles, regions, faces, sketches,
// shells, solids). No object is ever mutated in place: every edit
// produces new objects that share unchanged substructure with the old
// ones. On top of the graph it provides structural replacement of
// sub-objects with propagation through all enclosing objects, and
// tolerance-bounded approximation and sweeping to turn exact topology
// into meshable geometry.
//
// # Quick Start
//
//	import (
//		"github.com/gocad/brep"
//		"github.com/gocad/brep/geom"
//	)
//
//	sv := brep.NewServices()
//	sketch := buildSketch(sv.Stores) // construct and insert topology
//	solid := sv.Sweep(sketch, geom.V3(0, 0, 1))
//	m := sv.Mesh(solid, geom.MustTolerance(0.01))
//
// # Architecture
//
// The library is organized into:
//   - topo: identity handles, canonical stores, ordered object sets,
//     the object graph, and the replacement engine
//   - geom: vectors, transforms, planes, curves, tolerances
//   - approx, sweep: the approximation and sweep engines
//   - mesh: triangulation and export (STL, PNG preview)
//   - cache: the LRU memoization backing approximation
//
// The interactive viewer, authoring DSL, and GPU pipeline are external
// collaborators; this core hands them a Services aggregate and plain
// vertex/index buffers.
package brep
