package topo

import "github.com/gocad/brep/geom"

// Surface is the geometry a face lies on. This kernel models planar
// surfaces.
type Surface struct {
	plane geom.Plane
}

// NewSurface creates a surface from a plane.
func NewSurface(plane geom.Plane) Surface {
	return Surface{plane: plane}
}

// Plane returns the plane geometry of the surface.
func (s *Surface) Plane() geom.Plane {
	return s.plane
}
