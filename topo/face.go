package topo

// Face is a bounded area on a surface: the surface it lies on plus
// the region that bounds it.
type Face struct {
	surface Handle[Surface]
	region  Handle[Region]
}

// NewFace creates a face from a surface and a region on it.
func NewFace(surface Handle[Surface], region Handle[Region]) Face {
	if surface.IsNil() {
		panic("face requires a surface")
	}
	if region.IsNil() {
		panic("face requires a region")
	}
	return Face{surface: surface, region: region}
}

// Surface returns the surface the face lies on.
func (f *Face) Surface() Handle[Surface] {
	return f.surface
}

// Region returns the region bounding the face.
func (f *Face) Region() Handle[Region] {
	return f.region
}
