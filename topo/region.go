package topo

// Color is the display color of a region, RGBA with 8 bits per
// channel.
type Color struct {
	R, G, B, A uint8
}

// DefaultColor is the color regions are drawn in unless a model sets
// one.
var DefaultColor = Color{R: 255, A: 255}

// Region is a face-equivalent area bounded by one exterior cycle and
// any number of interior cycles (holes).
type Region struct {
	exterior  Handle[Cycle]
	interiors Set[Cycle]
	color     Color
}

// NewRegion creates a region from its exterior boundary, interior
// boundaries, and color.
func NewRegion(exterior Handle[Cycle], interiors Set[Cycle], color Color) Region {
	if exterior.IsNil() {
		panic("region requires an exterior cycle")
	}
	return Region{exterior: exterior, interiors: interiors, color: color}
}

// Exterior returns the exterior boundary of the region.
func (r *Region) Exterior() Handle[Cycle] {
	return r.exterior
}

// Interiors returns the interior boundaries (holes) of the region.
func (r *Region) Interiors() Set[Cycle] {
	return r.interiors
}

// Color returns the region color.
func (r *Region) Color() Color {
	return r.color
}
