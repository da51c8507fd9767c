package brep

import (
	"github.com/gocad/brep/approx"
	"github.com/gocad/brep/geom"
	"github.com/gocad/brep/mesh"
	"github.com/gocad/brep/sweep"
	"github.com/gocad/brep/topo"
)

// Services aggregates the state of one modeling session: the
// canonical per-kind object stores and the approximation cache. Model
// hosts create one Services per session and hand it to the viewer
// together with the final solid.
//
// Services is designed for single-writer, cooperative use. Wrap it in
// external mutual exclusion if concurrent access is required.
type Services struct {
	Stores *topo.Stores
	Cache  *approx.Cache
}

// NewServices creates the services of a fresh modeling session.
func NewServices() *Services {
	return &Services{
		Stores: topo.NewStores(),
		Cache:  approx.NewCache(0),
	}
}

// Sweep extrudes a sketch along a path vector into a solid. All
// constructed objects are inserted into the session stores.
func (s *Services) Sweep(sketch topo.Handle[topo.Sketch], path geom.Vec3) topo.Handle[topo.Solid] {
	solid := sweep.Sketch(sketch, path, s.Stores)
	Logger().Info("swept sketch into solid",
		"sketch", sketch.ID(), "solid", solid.ID(),
		"shells", solid.Get().Shells().Len())
	return solid
}

// Approx produces the tessellated approximation of a solid under the
// given tolerance, memoized in the session cache.
func (s *Services) Approx(solid topo.Handle[topo.Solid], tolerance geom.Tolerance) approx.SolidApprox {
	result := approx.Solid(solid, tolerance, s.Cache)
	edges, faces := s.Cache.Stats()
	Logger().Debug("approximated solid",
		"solid", solid.ID(), "tolerance", tolerance.Value(),
		"faces", len(result.Faces),
		"edgeCacheHits", edges.Hits, "faceCacheHits", faces.Hits)
	return result
}

// Mesh approximates and triangulates a solid into an indexed triangle
// mesh.
func (s *Services) Mesh(solid topo.Handle[topo.Solid], tolerance geom.Tolerance) *mesh.Mesh {
	m := mesh.FromSolid(solid, tolerance, s.Cache)
	Logger().Info("meshed solid",
		"solid", solid.ID(),
		"triangles", m.TriangleCount(), "vertices", len(m.Vertices))
	return m
}
