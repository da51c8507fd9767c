package topo

// Replacement of a vertex, propagated through every enclosing object
// kind. Follows the same scheme as half-edge replacement; see
// replace_halfedge.go.
//
// A half-edge has exactly one vertex slot, so the target vertex must
// be replaced by exactly one vertex. Passing any other number of
// replacements where the vertex is present is a caller error.

// ReplaceVertex replaces the start vertex of the half-edge. This is
// where the recursion bottoms out.
func (e *HalfEdge) ReplaceVertex(original Handle[Vertex], replacements []Handle[Vertex], _ *Stores) Outcome[HalfEdge] {
	if !e.start.Same(original) {
		return Unchanged(*e)
	}
	if len(replacements) != 1 {
		panic("replacing the start vertex of a half-edge requires exactly one replacement")
	}
	return Updated(NewHalfEdge(e.curve, replacements[0]))
}

// ReplaceVertex replaces a vertex within any half-edge of the cycle.
func (c *Cycle) ReplaceVertex(original Handle[Vertex], replacements []Handle[Vertex], stores *Stores) Outcome[Cycle] {
	replacementHappened := false

	halfEdges := make([]Handle[HalfEdge], 0, c.halfEdges.Len())
	for halfEdge := range c.halfEdges.All() {
		outcome := halfEdge.Get().ReplaceVertex(original, replacements, stores)
		handle, updated := InsertUpdated(outcome, halfEdge, stores.HalfEdges)
		replacementHappened = replacementHappened || updated
		halfEdges = append(halfEdges, handle)
	}

	if replacementHappened {
		return Updated(NewCycle(NewSet(halfEdges...)))
	}
	return Unchanged(*c)
}

// ReplaceVertex replaces a vertex within the region's cycles.
func (r *Region) ReplaceVertex(original Handle[Vertex], replacements []Handle[Vertex], stores *Stores) Outcome[Region] {
	replacementHappened := false

	exteriorOutcome := r.exterior.Get().ReplaceVertex(original, replacements, stores)
	exterior, updated := InsertUpdated(exteriorOutcome, r.exterior, stores.Cycles)
	replacementHappened = replacementHappened || updated

	interiors := make([]Handle[Cycle], 0, r.interiors.Len())
	for interior := range r.interiors.All() {
		outcome := interior.Get().ReplaceVertex(original, replacements, stores)
		cycle, updated := InsertUpdated(outcome, interior, stores.Cycles)
		replacementHappened = replacementHappened || updated
		interiors = append(interiors, cycle)
	}

	if replacementHappened {
		return Updated(NewRegion(exterior, NewSet(interiors...), r.color))
	}
	return Unchanged(*r)
}

// ReplaceVertex replaces a vertex within any region of the sketch.
func (s *Sketch) ReplaceVertex(original Handle[Vertex], replacements []Handle[Vertex], stores *Stores) Outcome[Sketch] {
	replacementHappened := false

	regions := make([]Handle[Region], 0, s.regions.Len())
	for region := range s.regions.All() {
		outcome := region.Get().ReplaceVertex(original, replacements, stores)
		handle, updated := InsertUpdated(outcome, region, stores.Regions)
		replacementHappened = replacementHappened || updated
		regions = append(regions, handle)
	}

	if replacementHappened {
		return Updated(NewSketch(NewSet(regions...)))
	}
	return Unchanged(*s)
}

// ReplaceVertex replaces a vertex within the face's region.
func (f *Face) ReplaceVertex(original Handle[Vertex], replacements []Handle[Vertex], stores *Stores) Outcome[Face] {
	outcome := f.region.Get().ReplaceVertex(original, replacements, stores)
	if !outcome.WasUpdated() {
		return Unchanged(*f)
	}

	region, _ := InsertUpdated(outcome, f.region, stores.Regions)
	return Updated(NewFace(f.surface, region))
}

// ReplaceVertex replaces a vertex within any face of the shell. A
// vertex shared by several faces is replaced in each of them.
func (s *Shell) ReplaceVertex(original Handle[Vertex], replacements []Handle[Vertex], stores *Stores) Outcome[Shell] {
	replacementHappened := false

	faces := make([]Handle[Face], 0, s.faces.Len())
	for face := range s.faces.All() {
		outcome := face.Get().ReplaceVertex(original, replacements, stores)
		handle, updated := InsertUpdated(outcome, face, stores.Faces)
		replacementHappened = replacementHappened || updated
		faces = append(faces, handle)
	}

	if replacementHappened {
		return Updated(NewShell(NewSet(faces...)))
	}
	return Unchanged(*s)
}

// ReplaceVertex replaces a vertex within any shell of the solid.
func (s *Solid) ReplaceVertex(original Handle[Vertex], replacements []Handle[Vertex], stores *Stores) Outcome[Solid] {
	replacementHappened := false

	shells := make([]Handle[Shell], 0, s.shells.Len())
	for shell := range s.shells.All() {
		outcome := shell.Get().ReplaceVertex(original, replacements, stores)
		handle, updated := InsertUpdated(outcome, shell, stores.Shells)
		replacementHappened = replacementHappened || updated
		shells = append(shells, handle)
	}

	if replacementHappened {
		return Updated(NewSolid(NewSet(shells...)))
	}
	return Unchanged(*s)
}
