package geom

import "math"

// Curve is the geometry a half-edge follows between its endpoints.
// Implementations are immutable value types.
type Curve interface {
	// Eval evaluates the curve at parameter t in [0, 1].
	// t=0 is the start point, t=1 the end point.
	Eval(t float64) Vec3

	// Approx returns the polyline approximation of the curve under
	// the given tolerance: the start point plus any intermediate
	// points, excluding the end point. Consecutive curve
	// approximations therefore concatenate without duplicates.
	Approx(tol Tolerance) []Vec3

	// Translated returns the curve moved by the given vector.
	Translated(v Vec3) Curve

	// Reversed returns the curve traversed in the opposite
	// direction.
	Reversed() Curve
}

// Line is a straight segment from A to B.
type Line struct {
	A, B Vec3
}

// NewLine creates a straight segment between two points.
func NewLine(a, b Vec3) Line {
	return Line{A: a, B: b}
}

// Eval evaluates the line at parameter t.
func (l Line) Eval(t float64) Vec3 {
	return l.A.Lerp(l.B, t)
}

// Approx returns the start point. A line deviates nowhere from
// itself, so no intermediate points are needed at any tolerance.
func (l Line) Approx(Tolerance) []Vec3 {
	return []Vec3{l.A}
}

// Translated returns the line moved by the given vector.
func (l Line) Translated(v Vec3) Curve {
	return Line{A: l.A.Add(v), B: l.B.Add(v)}
}

// Reversed returns the line with endpoints swapped.
func (l Line) Reversed() Curve {
	return Line{A: l.B, B: l.A}
}

// Arc is a circular arc lying in a plane. The arc starts at angle
// StartAngle (radians, measured in the plane's U/V coordinates from
// the center) and sweeps by SweepAngle (positive = counter-clockwise
// in plane coordinates).
type Arc struct {
	Plane      Plane
	Center     Vec2
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// Eval evaluates the arc at parameter t.
func (a Arc) Eval(t float64) Vec3 {
	angle := a.StartAngle + a.SweepAngle*t
	uv := Vec2{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
	return a.Plane.PointAt(uv)
}

// Approx discretizes the arc so that the sagitta of each segment stays
// within the tolerance. The returned points include the start point
// and exclude the end point.
func (a Arc) Approx(tol Tolerance) []Vec3 {
	n := arcSegments(a.Radius, a.SweepAngle, tol)
	points := make([]Vec3, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, a.Eval(float64(i)/float64(n)))
	}
	return points
}

// Translated returns the arc moved by the given vector.
func (a Arc) Translated(v Vec3) Curve {
	moved := a
	moved.Plane = a.Plane.Translated(v)
	return moved
}

// Reversed returns the arc swept in the opposite direction.
func (a Arc) Reversed() Curve {
	reversed := a
	reversed.StartAngle = a.StartAngle + a.SweepAngle
	reversed.SweepAngle = -a.SweepAngle
	return reversed
}

// arcSegments returns the number of segments needed to keep the
// sagitta of each chord within the tolerance. The sagitta of a chord
// subtending angle θ on a circle of radius r is r*(1-cos(θ/2)).
func arcSegments(radius, sweep float64, tol Tolerance) int {
	sweep = math.Abs(sweep)
	if sweep == 0 || radius <= 0 {
		return 1
	}
	if tol.Value() >= radius {
		// Any chord is within tolerance; still split the sweep so
		// full circles do not degenerate.
		return int(math.Max(1, math.Ceil(sweep/math.Pi)))
	}
	maxAngle := 2 * math.Acos(1-tol.Value()/radius)
	n := int(math.Ceil(sweep / maxAngle))
	if n < 1 {
		n = 1
	}
	return n
}
