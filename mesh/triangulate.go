package mesh

import (
	"math"

	"github.com/gocad/brep/approx"
	"github.com/gocad/brep/geom"
)

// TriangulateFace triangulates a face approximation into triangles.
//
// The boundary polygons are projected into the face's best-fit plane
// (Newell normal), interior rings are joined to the exterior with
// bridge edges, and the merged polygon is ear-clipped. Rings with
// fewer than three points produce no triangles.
func TriangulateFace(face approx.FaceApprox) [][3]geom.Vec3 {
	exterior := face.Exterior.Points
	if len(exterior) < 3 {
		return nil
	}

	plane := geom.PlaneFromPoints(exterior)

	ring := projectRing(exterior, plane)
	if signedArea(ring) < 0 {
		reverseRing(ring)
	}

	for _, interior := range face.Interiors {
		if len(interior.Points) < 3 {
			continue
		}
		hole := projectRing(interior.Points, plane)
		// Holes wind opposite to the exterior.
		if signedArea(hole) > 0 {
			reverseRing(hole)
		}
		ring = mergeHole(ring, hole)
	}

	return earClip(ring)
}

// ringPoint pairs a projected 2D coordinate with its original 3D
// position, so triangulation decisions happen in 2D but output stays
// in 3D.
type ringPoint struct {
	uv  geom.Vec2
	pos geom.Vec3
}

func projectRing(points []geom.Vec3, plane geom.Plane) []ringPoint {
	ring := make([]ringPoint, len(points))
	for i, p := range points {
		ring[i] = ringPoint{uv: plane.Project(p), pos: p}
	}
	return ring
}

func reverseRing(ring []ringPoint) {
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
}

func signedArea(ring []ringPoint) float64 {
	var area float64
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		area += p.uv.Cross(q.uv)
	}
	return area / 2
}

// mergeHole splices a hole ring into the outer ring with a bridge
// edge, producing a single polygon. The bridge runs from the hole's
// rightmost vertex to the nearest outer vertex that lies to its
// right.
func mergeHole(outer, hole []ringPoint) []ringPoint {
	holeIdx := 0
	for i, p := range hole {
		if p.uv.X > hole[holeIdx].uv.X {
			holeIdx = i
		}
	}
	holePt := hole[holeIdx]

	outerIdx := -1
	best := math.Inf(1)
	for i, p := range outer {
		if p.uv.X < holePt.uv.X {
			continue
		}
		d := p.uv.Sub(holePt.uv).Length()
		if d < best {
			best = d
			outerIdx = i
		}
	}
	if outerIdx < 0 {
		// Hole extends past the outer ring; the input is malformed.
		// Drop the hole rather than corrupt the polygon.
		return outer
	}

	merged := make([]ringPoint, 0, len(outer)+len(hole)+2)
	merged = append(merged, outer[:outerIdx+1]...)
	for i := 0; i <= len(hole); i++ {
		merged = append(merged, hole[(holeIdx+i)%len(hole)])
	}
	merged = append(merged, outer[outerIdx:]...)
	return merged
}

// earClip triangulates a simple polygon (counter-clockwise) by ear
// clipping. Falls back to fan triangulation if no ear can be found,
// which keeps degenerate input from looping forever.
func earClip(ring []ringPoint) [][3]geom.Vec3 {
	var triangles [][3]geom.Vec3

	remaining := make([]ringPoint, len(ring))
	copy(remaining, ring)

	for len(remaining) > 3 {
		clipped := false
		for i := range remaining {
			prev := remaining[(i+len(remaining)-1)%len(remaining)]
			curr := remaining[i]
			next := remaining[(i+1)%len(remaining)]

			if !isEar(remaining, prev, curr, next) {
				continue
			}

			triangles = append(triangles, [3]geom.Vec3{prev.pos, curr.pos, next.pos})
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}

		if !clipped {
			for i := 1; i < len(remaining)-1; i++ {
				triangles = append(triangles, [3]geom.Vec3{
					remaining[0].pos, remaining[i].pos, remaining[i+1].pos,
				})
			}
			return triangles
		}
	}

	if len(remaining) == 3 {
		triangles = append(triangles, [3]geom.Vec3{
			remaining[0].pos, remaining[1].pos, remaining[2].pos,
		})
	}

	return triangles
}

func isEar(ring []ringPoint, prev, curr, next ringPoint) bool {
	// Reflex and collinear corners cannot be ears. For a
	// counter-clockwise ring the corner is convex when this cross
	// product is positive.
	if next.uv.Sub(curr.uv).Cross(prev.uv.Sub(curr.uv)) <= 0 {
		return false
	}
	for _, p := range ring {
		if p.uv == prev.uv || p.uv == curr.uv || p.uv == next.uv {
			continue
		}
		if pointInTriangle(p.uv, prev.uv, curr.uv, next.uv) {
			return false
		}
	}
	return true
}

func pointInTriangle(p, a, b, c geom.Vec2) bool {
	d1 := p.Sub(a).Cross(b.Sub(a))
	d2 := p.Sub(b).Cross(c.Sub(b))
	d3 := p.Sub(c).Cross(a.Sub(c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
