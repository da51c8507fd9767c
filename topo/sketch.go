package topo

// Sketch is a collection of regions in a shared 2D space, the input
// topology for sweeps.
type Sketch struct {
	regions Set[Region]
}

// NewSketch creates a sketch from the given regions.
func NewSketch(regions Set[Region]) Sketch {
	return Sketch{regions: regions}
}

// Regions returns the regions of the sketch.
func (s *Sketch) Regions() Set[Region] {
	return s.regions
}
