package hypermath

// Matrix3x2 is a 2D affine transformation matrix stored as three rows of
// two components:
//
//	| Row0.X  Row0.Y |
//	| Row1.X  Row1.Y |
//	| Row2.X  Row2.Y |
//
// Row0 and Row1 carry the linear part, Row2 the translation. Unlike the
// 3D matrices this type transforms with the point on the LEFT, as an
// implicit row vector (x, y, 1):
//
//	x' = x*Row0.X + y*Row1.X + Row2.X
//	y' = x*Row0.Y + y*Row1.Y + Row2.Y
//
// The geometric convention is shared with the rest of the package:
// positive angles rotate counterclockwise, so rotating (1, 0) by +90°
// yields (0, 1).
type Matrix3x2 struct {
	Row0, Row1, Row2 Vector2
}

// Named Matrix3x2 values, derived from the vector constants so they
// cannot drift from the row semantics.
var (
	Matrix3x2Zero     = NewMatrix3x2Rows(Vector2Zero, Vector2Zero, Vector2Zero)
	Matrix3x2One      = NewMatrix3x2Rows(Vector2One, Vector2One, Vector2One)
	Matrix3x2Identity = NewMatrix3x2Rows(Vector2UnitX, Vector2UnitY, Vector2Zero)
)

// NewMatrix3x2 returns the matrix with the given cells in row-major
// order.
func NewMatrix3x2(m00, m01, m10, m11, m20, m21 float32) Matrix3x2 {
	return Matrix3x2{
		Row0: Vector2{X: m00, Y: m01},
		Row1: Vector2{X: m10, Y: m11},
		Row2: Vector2{X: m20, Y: m21},
	}
}

// NewMatrix3x2Rows returns the matrix with the given rows.
func NewMatrix3x2Rows(row0, row1, row2 Vector2) Matrix3x2 {
	return Matrix3x2{Row0: row0, Row1: row1, Row2: row2}
}

// NewMatrix3x2Splat returns the matrix with every cell set to s.
func NewMatrix3x2Splat(s float32) Matrix3x2 {
	return Matrix3x2{
		Row0: NewVector2Splat(s),
		Row1: NewVector2Splat(s),
		Row2: NewVector2Splat(s),
	}
}

// NewMatrix3x2Translation returns the transform that moves points by
// offset.
func NewMatrix3x2Translation(offset Vector2) Matrix3x2 {
	return Matrix3x2{Row0: Vector2UnitX, Row1: Vector2UnitY, Row2: offset}
}

// NewMatrix3x2Scale returns the transform that scales points by the
// given factors around the origin.
func NewMatrix3x2Scale(x, y float32) Matrix3x2 {
	return Matrix3x2{
		Row0: Vector2{X: x},
		Row1: Vector2{Y: y},
	}
}

// NewMatrix3x2Rotation returns the counterclockwise rotation by angle
// around the origin. The cells are laid out for the point-on-left
// convention, so the sine terms sit transposed relative to the 3D
// rotation matrices.
func NewMatrix3x2Rotation(angle Angle) Matrix3x2 {
	sin, cos := sincos32(float32(angle))
	return Matrix3x2{
		Row0: Vector2{X: cos, Y: sin},
		Row1: Vector2{X: -sin, Y: cos},
	}
}

// NewMatrix3x2Transform composes scale, then rotation, then translation
// into a single transform.
func NewMatrix3x2Transform(position Vector2, rotation Angle, scale Vector2) Matrix3x2 {
	sin, cos := sincos32(float32(rotation))
	return Matrix3x2{
		Row0: Vector2{X: scale.X * cos, Y: scale.X * sin},
		Row1: Vector2{X: -scale.Y * sin, Y: scale.Y * cos},
		Row2: position,
	}
}

// Row returns row i. It panics with an error wrapping
// ErrIndexOutOfRange for indices outside [0, 3).
func (m Matrix3x2) Row(i int) Vector2 {
	switch i {
	case 0:
		return m.Row0
	case 1:
		return m.Row1
	case 2:
		return m.Row2
	}
	panic(indexError(i, 3))
}

// Column returns column i as the three stacked row components. It panics
// with an error wrapping ErrIndexOutOfRange for indices outside [0, 2).
func (m Matrix3x2) Column(i int) Vector3 {
	switch i {
	case 0:
		return Vector3{X: m.Row0.X, Y: m.Row1.X, Z: m.Row2.X}
	case 1:
		return Vector3{X: m.Row0.Y, Y: m.Row1.Y, Z: m.Row2.Y}
	}
	panic(indexError(i, 2))
}

// At returns the cell at (row, col). It panics with an error wrapping
// ErrIndexOutOfRange when either index is outside its range.
func (m Matrix3x2) At(row, col int) float32 {
	return m.Row(row).At(col)
}

// Translation returns the translation row.
func (m Matrix3x2) Translation() Vector2 {
	return m.Row2
}

// IsIdentity reports whether the matrix is exactly the identity.
func (m Matrix3x2) IsIdentity() bool {
	return m == Matrix3x2Identity
}

// Equals reports cell-wise approximate equality via AboutEqual.
func (m Matrix3x2) Equals(other Matrix3x2, tolerance ...float32) bool {
	return m.Row0.Equals(other.Row0, tolerance...) &&
		m.Row1.Equals(other.Row1, tolerance...) &&
		m.Row2.Equals(other.Row2, tolerance...)
}

// Add returns the cell-wise sum of m and other.
func (m Matrix3x2) Add(other Matrix3x2) Matrix3x2 {
	return Matrix3x2{
		Row0: m.Row0.Add(other.Row0),
		Row1: m.Row1.Add(other.Row1),
		Row2: m.Row2.Add(other.Row2),
	}
}

// MulScalar returns the matrix with every cell multiplied by s.
func (m Matrix3x2) MulScalar(s float32) Matrix3x2 {
	return Matrix3x2{
		Row0: m.Row0.MulScalar(s),
		Row1: m.Row1.MulScalar(s),
		Row2: m.Row2.MulScalar(s),
	}
}

// Multiply composes the two transforms as homogeneous 2D matrices with
// an implicit (0, 0, 1) third column. With the point-on-left convention
// m.Multiply(other) applies m first and other second: m's translation
// row passes through other's linear part before other's translation is
// added.
func (m Matrix3x2) Multiply(other Matrix3x2) Matrix3x2 {
	return Matrix3x2{
		Row0: Vector2{
			X: m.Row0.X*other.Row0.X + m.Row0.Y*other.Row1.X,
			Y: m.Row0.X*other.Row0.Y + m.Row0.Y*other.Row1.Y,
		},
		Row1: Vector2{
			X: m.Row1.X*other.Row0.X + m.Row1.Y*other.Row1.X,
			Y: m.Row1.X*other.Row0.Y + m.Row1.Y*other.Row1.Y,
		},
		Row2: Vector2{
			X: m.Row2.X*other.Row0.X + m.Row2.Y*other.Row1.X + other.Row2.X,
			Y: m.Row2.X*other.Row0.Y + m.Row2.Y*other.Row1.Y + other.Row2.Y,
		},
	}
}

// TransformPoint applies the full transform to p, including translation.
func (m Matrix3x2) TransformPoint(p Vector2) Vector2 {
	return Vector2{
		X: p.X*m.Row0.X + p.Y*m.Row1.X + m.Row2.X,
		Y: p.X*m.Row0.Y + p.Y*m.Row1.Y + m.Row2.Y,
	}
}

// TransformVector applies only the linear part to v, ignoring
// translation. Use it for directions and extents.
func (m Matrix3x2) TransformVector(v Vector2) Vector2 {
	return Vector2{
		X: v.X*m.Row0.X + v.Y*m.Row1.X,
		Y: v.X*m.Row0.Y + v.Y*m.Row1.Y,
	}
}

// TransformRect transforms the four corners of r and returns the
// axis-aligned bounding box of the result. Under a rotating transform
// the output covers the rotated quad rather than being the quad itself.
func (m Matrix3x2) TransformRect(r Rect2) Rect2 {
	p0 := m.TransformPoint(r.Position)
	p1 := m.TransformPoint(Vector2{X: r.Position.X + r.Size.X, Y: r.Position.Y})
	p2 := m.TransformPoint(Vector2{X: r.Position.X, Y: r.Position.Y + r.Size.Y})
	p3 := m.TransformPoint(r.Position.Add(r.Size))
	lo := p0.Min(p1).Min(p2).Min(p3)
	hi := p0.Max(p1).Max(p2).Max(p3)
	return NewRect2Between(lo, hi)
}
