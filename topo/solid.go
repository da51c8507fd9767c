package topo

// Solid is a volume bounded by one or more shells.
type Solid struct {
	shells Set[Shell]
}

// NewSolid creates a solid from the given shells.
func NewSolid(shells Set[Shell]) Solid {
	return Solid{shells: shells}
}

// Shells returns the shells bounding the solid.
func (s *Solid) Shells() Set[Shell] {
	return s.shells
}
