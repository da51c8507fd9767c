package geom

// Transform represents a 3D affine transformation.
// It uses a 3x4 matrix in row-major order:
//
//	| A  B  C  Tx |
//	| D  E  F  Ty |
//	| G  H  I  Tz |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C*z + Tx
//	y' = D*x + E*y + F*z + Ty
//	z' = G*x + H*y + I*z + Tz
type Transform struct {
	A, B, C, Tx float64
	D, E, F, Ty float64
	G, H, I, Tz float64
}

// Identity returns the identity transformation.
func Identity() Transform {
	return Transform{
		A: 1, E: 1, I: 1,
	}
}

// Translation creates a translation by the given vector.
func Translation(v Vec3) Transform {
	return Transform{
		A: 1, Tx: v.X,
		E: 1, Ty: v.Y,
		I: 1, Tz: v.Z,
	}
}

// Scaling creates a uniform scaling about the origin.
func Scaling(s float64) Transform {
	return Transform{A: s, E: s, I: s}
}

// Multiply composes two transforms (t applied after other).
func (t Transform) Multiply(other Transform) Transform {
	return Transform{
		A:  t.A*other.A + t.B*other.D + t.C*other.G,
		B:  t.A*other.B + t.B*other.E + t.C*other.H,
		C:  t.A*other.C + t.B*other.F + t.C*other.I,
		Tx: t.A*other.Tx + t.B*other.Ty + t.C*other.Tz + t.Tx,
		D:  t.D*other.A + t.E*other.D + t.F*other.G,
		E:  t.D*other.B + t.E*other.E + t.F*other.H,
		F:  t.D*other.C + t.E*other.F + t.F*other.I,
		Ty: t.D*other.Tx + t.E*other.Ty + t.F*other.Tz + t.Ty,
		G:  t.G*other.A + t.H*other.D + t.I*other.G,
		H:  t.G*other.B + t.H*other.E + t.I*other.H,
		I:  t.G*other.C + t.H*other.F + t.I*other.I,
		Tz: t.G*other.Tx + t.H*other.Ty + t.I*other.Tz + t.Tz,
	}
}

// TransformPoint applies the transformation to a point.
func (t Transform) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: t.A*p.X + t.B*p.Y + t.C*p.Z + t.Tx,
		Y: t.D*p.X + t.E*p.Y + t.F*p.Z + t.Ty,
		Z: t.G*p.X + t.H*p.Y + t.I*p.Z + t.Tz,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (t Transform) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: t.A*v.X + t.B*v.Y + t.C*v.Z,
		Y: t.D*v.X + t.E*v.Y + t.F*v.Z,
		Z: t.G*v.X + t.H*v.Y + t.I*v.Z,
	}
}
