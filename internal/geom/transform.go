package geom

import "math"

// Transform is a 2D affine transform: a linear map (rotation, scale,
// shear) plus a translation, stored as the top two rows of a 3x3 matrix.
//
// The zero value is NOT usable; start from Identity or one of the
// constructors. The chainable methods post-multiply, so in
//
//	t := Translation(10, 0).Rotate(math.Pi / 2)
//
// the rotation is applied to a point first and the translation last,
// matching the usual matrix-product reading T * R * p.
type Transform struct {
	m00, m01, m02 float64
	m10, m11, m12 float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		m00: 1, m01: 0, m02: 0,
		m10: 0, m11: 1, m12: 0,
	}
}

// Translation returns a transform that moves points by (dx, dy).
func Translation(dx, dy float64) Transform {
	return Transform{
		m00: 1, m01: 0, m02: dx,
		m10: 0, m11: 1, m12: dy,
	}
}

// Rotation returns a counter-clockwise rotation about the origin.
// The angle is in radians.
func Rotation(rad float64) Transform {
	sin, cos := math.Sincos(rad)
	return Transform{
		m00: cos, m01: -sin, m02: 0,
		m10: sin, m11: cos, m12: 0,
	}
}

// RotationAround returns a rotation about the point (cx, cy).
func RotationAround(rad, cx, cy float64) Transform {
	return Translation(cx, cy).Rotate(rad).Translate(-cx, -cy)
}

// Scaling returns a transform that scales by (sx, sy) about the origin.
func Scaling(sx, sy float64) Transform {
	return Transform{
		m00: sx, m01: 0, m02: 0,
		m10: 0, m11: sy, m12: 0,
	}
}

// Shearing returns a transform that shears x by sx*y and y by sy*x.
func Shearing(sx, sy float64) Transform {
	return Transform{
		m00: 1, m01: sx, m02: 0,
		m10: sy, m11: 1, m12: 0,
	}
}

// Combine returns the matrix product t * o. Applying the result to a
// point is equivalent to applying o first, then t.
func (t Transform) Combine(o Transform) Transform {
	return Transform{
		m00: t.m00*o.m00 + t.m01*o.m10,
		m01: t.m00*o.m01 + t.m01*o.m11,
		m02: t.m00*o.m02 + t.m01*o.m12 + t.m02,
		m10: t.m10*o.m00 + t.m11*o.m10,
		m11: t.m10*o.m01 + t.m11*o.m11,
		m12: t.m10*o.m02 + t.m11*o.m12 + t.m12,
	}
}

// Translate post-multiplies t with a translation by (dx, dy).
func (t Transform) Translate(dx, dy float64) Transform {
	return t.Combine(Translation(dx, dy))
}

// Rotate post-multiplies t with a rotation (radians, counter-clockwise).
func (t Transform) Rotate(rad float64) Transform {
	return t.Combine(Rotation(rad))
}

// Scale post-multiplies t with a scaling by (sx, sy).
func (t Transform) Scale(sx, sy float64) Transform {
	return t.Combine(Scaling(sx, sy))
}

// Shear post-multiplies t with a shear.
func (t Transform) Shear(sx, sy float64) Transform {
	return t.Combine(Shearing(sx, sy))
}

// Apply maps the point p through the transform.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.m00*p.X + t.m01*p.Y + t.m02,
		Y: t.m10*p.X + t.m11*p.Y + t.m12,
	}
}
