package geom

// Plane is a parametric plane in 3D space: origin plus two axis
// vectors spanning the surface. The axes need not be unit length or
// orthogonal, but most constructions use an orthonormal pair.
type Plane struct {
	Origin Vec3
	U, V   Vec3
}

// XY returns the plane spanned by the world X and Y axes at z=0.
func XY() Plane {
	return Plane{U: V3(1, 0, 0), V: V3(0, 1, 0)}
}

// PlaneAt returns a plane with the given origin and axes.
func PlaneAt(origin, u, v Vec3) Plane {
	return Plane{Origin: origin, U: u, V: v}
}

// Normal returns the plane normal (cross product of the axes),
// normalized.
func (p Plane) Normal() Vec3 {
	return p.U.Cross(p.V).Normalize()
}

// PointAt maps plane coordinates (u, v) to a point in 3D space.
func (p Plane) PointAt(uv Vec2) Vec3 {
	return p.Origin.Add(p.U.Mul(uv.X)).Add(p.V.Mul(uv.Y))
}

// Project maps a 3D point to plane coordinates. For points off the
// plane this is the projection along the normal.
func (p Plane) Project(pt Vec3) Vec2 {
	d := pt.Sub(p.Origin)
	uu := p.U.Dot(p.U)
	vv := p.V.Dot(p.V)
	if uu == 0 || vv == 0 {
		return Vec2{}
	}
	return Vec2{X: d.Dot(p.U) / uu, Y: d.Dot(p.V) / vv}
}

// PlaneFromPoints derives the plane a closed polygon lies in. The
// normal comes from Newell's method, which tolerates slightly
// non-planar rings; the origin is the first point and U the first
// non-degenerate edge direction.
//
// Panics with fewer than three points, which cannot span a plane.
func PlaneFromPoints(points []Vec3) Plane {
	if len(points) < 3 {
		panic("deriving a plane requires at least three points")
	}

	var normal Vec3
	for i, p := range points {
		q := points[(i+1)%len(points)]
		normal.X += (p.Y - q.Y) * (p.Z + q.Z)
		normal.Y += (p.Z - q.Z) * (p.X + q.X)
		normal.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	normal = normal.Normalize()

	u := Vec3{}
	for i := 1; i < len(points); i++ {
		edge := points[i].Sub(points[0])
		if edge.Length() > 0 {
			u = edge.Normalize()
			break
		}
	}

	return Plane{Origin: points[0], U: u, V: normal.Cross(u)}
}

// Translated returns the plane moved by the given vector.
func (p Plane) Translated(v Vec3) Plane {
	return Plane{Origin: p.Origin.Add(v), U: p.U, V: p.V}
}

// Transformed returns the plane with the transform applied to its
// origin and axes.
func (p Plane) Transformed(t Transform) Plane {
	return Plane{
		Origin: t.TransformPoint(p.Origin),
		U:      t.TransformVector(p.U),
		V:      t.TransformVector(p.V),
	}
}
