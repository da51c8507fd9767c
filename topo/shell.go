package topo

// Shell is a connected set of faces bounding a volume. Neighboring
// faces may share half-edges and vertices.
type Shell struct {
	faces Set[Face]
}

// NewShell creates a shell from the given faces.
func NewShell(faces Set[Face]) Shell {
	return Shell{faces: faces}
}

// Faces returns the faces of the shell.
func (s *Shell) Faces() Set[Face] {
	return s.faces
}
