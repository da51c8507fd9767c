package topo

// Replacement of a half-edge, propagated through every enclosing
// object kind.
//
// Each method substitutes the original half-edge with the given
// replacements at every point it occurs in the receiver's subtree.
// Objects whose content did not change are carried through with their
// identity intact; objects on the path from a changed child up to the
// receiver are rebuilt. Intermediate rebuilt children are inserted
// into the stores; the top-level result is returned uninserted (see
// Outcome).
//
// The replacements slice may be empty (deleting the half-edge) or
// hold several half-edges (splitting it). Splicing panics if it would
// produce a duplicate ID inside a cycle.

// ReplaceHalfEdge replaces a half-edge within the cycle. This is
// where the recursion bottoms out: the set splice signals presence or
// absence directly.
func (c *Cycle) ReplaceHalfEdge(original Handle[HalfEdge], replacements []Handle[HalfEdge], _ *Stores) Outcome[Cycle] {
	if halfEdges, ok := c.halfEdges.Replace(original, replacements); ok {
		return Updated(NewCycle(halfEdges))
	}
	return Unchanged(*c)
}

// ReplaceHalfEdge replaces a half-edge within the region's exterior
// or interior cycles.
func (r *Region) ReplaceHalfEdge(original Handle[HalfEdge], replacements []Handle[HalfEdge], stores *Stores) Outcome[Region] {
	replacementHappened := false

	exteriorOutcome := r.exterior.Get().ReplaceHalfEdge(original, replacements, stores)
	exterior, updated := InsertUpdated(exteriorOutcome, r.exterior, stores.Cycles)
	replacementHappened = replacementHappened || updated

	interiors := make([]Handle[Cycle], 0, r.interiors.Len())
	for interior := range r.interiors.All() {
		outcome := interior.Get().ReplaceHalfEdge(original, replacements, stores)
		cycle, updated := InsertUpdated(outcome, interior, stores.Cycles)
		replacementHappened = replacementHappened || updated
		interiors = append(interiors, cycle)
	}

	if replacementHappened {
		return Updated(NewRegion(exterior, NewSet(interiors...), r.color))
	}
	return Unchanged(*r)
}

// ReplaceHalfEdge replaces a half-edge within any region of the
// sketch.
func (s *Sketch) ReplaceHalfEdge(original Handle[HalfEdge], replacements []Handle[HalfEdge], stores *Stores) Outcome[Sketch] {
	replacementHappened := false

	regions := make([]Handle[Region], 0, s.regions.Len())
	for region := range s.regions.All() {
		outcome := region.Get().ReplaceHalfEdge(original, replacements, stores)
		handle, updated := InsertUpdated(outcome, region, stores.Regions)
		replacementHappened = replacementHappened || updated
		regions = append(regions, handle)
	}

	if replacementHappened {
		return Updated(NewSketch(NewSet(regions...)))
	}
	return Unchanged(*s)
}

// ReplaceHalfEdge replaces a half-edge within the face's region.
func (f *Face) ReplaceHalfEdge(original Handle[HalfEdge], replacements []Handle[HalfEdge], stores *Stores) Outcome[Face] {
	outcome := f.region.Get().ReplaceHalfEdge(original, replacements, stores)
	if !outcome.WasUpdated() {
		return Unchanged(*f)
	}

	region, _ := InsertUpdated(outcome, f.region, stores.Regions)
	return Updated(NewFace(f.surface, region))
}

// ReplaceHalfEdge replaces a half-edge within any face of the shell.
// A half-edge shared by several faces is replaced in each of them.
func (s *Shell) ReplaceHalfEdge(original Handle[HalfEdge], replacements []Handle[HalfEdge], stores *Stores) Outcome[Shell] {
	replacementHappened := false

	faces := make([]Handle[Face], 0, s.faces.Len())
	for face := range s.faces.All() {
		outcome := face.Get().ReplaceHalfEdge(original, replacements, stores)
		handle, updated := InsertUpdated(outcome, face, stores.Faces)
		replacementHappened = replacementHappened || updated
		faces = append(faces, handle)
	}

	if replacementHappened {
		return Updated(NewShell(NewSet(faces...)))
	}
	return Unchanged(*s)
}

// ReplaceHalfEdge replaces a half-edge within any shell of the solid.
func (s *Solid) ReplaceHalfEdge(original Handle[HalfEdge], replacements []Handle[HalfEdge], stores *Stores) Outcome[Solid] {
	replacementHappened := false

	shells := make([]Handle[Shell], 0, s.shells.Len())
	for shell := range s.shells.All() {
		outcome := shell.Get().ReplaceHalfEdge(original, replacements, stores)
		handle, updated := InsertUpdated(outcome, shell, stores.Shells)
		replacementHappened = replacementHappened || updated
		shells = append(shells, handle)
	}

	if replacementHappened {
		return Updated(NewSolid(NewSet(shells...)))
	}
	return Unchanged(*s)
}
