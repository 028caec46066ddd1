package hypermath

// Matrix3x3 is a 3x3 matrix stored as three rows of three components:
//
//	| Row0.X  Row0.Y  Row0.Z |
//	| Row1.X  Row1.Y  Row1.Z |
//	| Row2.X  Row2.Y  Row2.Z |
//
// It transforms with the matrix on the left and the vector on the right
// as a column: each output component is the dot product of a row with
// the input. When used as a 2D homogeneous transform the translation
// lives in the last column and Row2 stays (0, 0, 1); this is the
// transposed layout of Matrix3x2, which keeps the point on the left.
type Matrix3x3 struct {
	Row0, Row1, Row2 Vector3
}

// Named Matrix3x3 values, derived from the vector constants.
var (
	Matrix3x3Zero     = NewMatrix3x3Rows(Vector3Zero, Vector3Zero, Vector3Zero)
	Matrix3x3One      = NewMatrix3x3Rows(Vector3One, Vector3One, Vector3One)
	Matrix3x3Identity = NewMatrix3x3Rows(Vector3UnitX, Vector3UnitY, Vector3UnitZ)
)

// NewMatrix3x3 returns the matrix with the given cells in row-major
// order.
func NewMatrix3x3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float32) Matrix3x3 {
	return Matrix3x3{
		Row0: Vector3{X: m00, Y: m01, Z: m02},
		Row1: Vector3{X: m10, Y: m11, Z: m12},
		Row2: Vector3{X: m20, Y: m21, Z: m22},
	}
}

// NewMatrix3x3Rows returns the matrix with the given rows.
func NewMatrix3x3Rows(row0, row1, row2 Vector3) Matrix3x3 {
	return Matrix3x3{Row0: row0, Row1: row1, Row2: row2}
}

// NewMatrix3x3Splat returns the matrix with every cell set to s.
func NewMatrix3x3Splat(s float32) Matrix3x3 {
	return Matrix3x3{
		Row0: NewVector3Splat(s),
		Row1: NewVector3Splat(s),
		Row2: NewVector3Splat(s),
	}
}

// NewMatrix3x3Translation returns the homogeneous 2D transform that
// moves points by offset, with the offset in the last column.
func NewMatrix3x3Translation(offset Vector2) Matrix3x3 {
	return Matrix3x3{
		Row0: Vector3{X: 1, Z: offset.X},
		Row1: Vector3{Y: 1, Z: offset.Y},
		Row2: Vector3UnitZ,
	}
}

// NewMatrix3x3Scale returns the homogeneous 2D transform that scales
// points by the given factors around the origin.
func NewMatrix3x3Scale(x, y float32) Matrix3x3 {
	return Matrix3x3{
		Row0: Vector3{X: x},
		Row1: Vector3{Y: y},
		Row2: Vector3UnitZ,
	}
}

// NewMatrix3x3Rotation returns the homogeneous 2D counterclockwise
// rotation by angle around the origin.
func NewMatrix3x3Rotation(angle Angle) Matrix3x3 {
	sin, cos := sincos32(float32(angle))
	return Matrix3x3{
		Row0: Vector3{X: cos, Y: -sin},
		Row1: Vector3{X: sin, Y: cos},
		Row2: Vector3UnitZ,
	}
}

// Row returns row i. It panics with an error wrapping
// ErrIndexOutOfRange for indices outside [0, 3).
func (m Matrix3x3) Row(i int) Vector3 {
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
// with an error wrapping ErrIndexOutOfRange for indices outside [0, 3).
func (m Matrix3x3) Column(i int) Vector3 {
	return Vector3{X: m.Row0.At(i), Y: m.Row1.At(i), Z: m.Row2.At(i)}
}

// At returns the cell at (row, col). It panics with an error wrapping
// ErrIndexOutOfRange when either index is outside its range.
func (m Matrix3x3) At(row, col int) float32 {
	return m.Row(row).At(col)
}

// Translation returns the 2D translation column (Row0.Z, Row1.Z).
func (m Matrix3x3) Translation() Vector2 {
	return Vector2{X: m.Row0.Z, Y: m.Row1.Z}
}

// IsIdentity reports whether the matrix is exactly the identity.
func (m Matrix3x3) IsIdentity() bool {
	return m == Matrix3x3Identity
}

// Equals reports cell-wise approximate equality via AboutEqual.
func (m Matrix3x3) Equals(other Matrix3x3, tolerance ...float32) bool {
	return m.Row0.Equals(other.Row0, tolerance...) &&
		m.Row1.Equals(other.Row1, tolerance...) &&
		m.Row2.Equals(other.Row2, tolerance...)
}

// Add returns the cell-wise sum of m and other.
func (m Matrix3x3) Add(other Matrix3x3) Matrix3x3 {
	return Matrix3x3{
		Row0: m.Row0.Add(other.Row0),
		Row1: m.Row1.Add(other.Row1),
		Row2: m.Row2.Add(other.Row2),
	}
}

// MulScalar returns the matrix with every cell multiplied by s.
func (m Matrix3x3) MulScalar(s float32) Matrix3x3 {
	return Matrix3x3{
		Row0: m.Row0.MulScalar(s),
		Row1: m.Row1.MulScalar(s),
		Row2: m.Row2.MulScalar(s),
	}
}

// Multiply returns the matrix product m·other. With the matrix-on-left
// convention the product applies other first and m second. Homogeneous
// translation columns compose correctly through the full product.
func (m Matrix3x3) Multiply(other Matrix3x3) Matrix3x3 {
	return Matrix3x3{
		Row0: Vector3{
			X: m.Row0.X*other.Row0.X + m.Row0.Y*other.Row1.X + m.Row0.Z*other.Row2.X,
			Y: m.Row0.X*other.Row0.Y + m.Row0.Y*other.Row1.Y + m.Row0.Z*other.Row2.Y,
			Z: m.Row0.X*other.Row0.Z + m.Row0.Y*other.Row1.Z + m.Row0.Z*other.Row2.Z,
		},
		Row1: Vector3{
			X: m.Row1.X*other.Row0.X + m.Row1.Y*other.Row1.X + m.Row1.Z*other.Row2.X,
			Y: m.Row1.X*other.Row0.Y + m.Row1.Y*other.Row1.Y + m.Row1.Z*other.Row2.Y,
			Z: m.Row1.X*other.Row0.Z + m.Row1.Y*other.Row1.Z + m.Row1.Z*other.Row2.Z,
		},
		Row2: Vector3{
			X: m.Row2.X*other.Row0.X + m.Row2.Y*other.Row1.X + m.Row2.Z*other.Row2.X,
			Y: m.Row2.X*other.Row0.Y + m.Row2.Y*other.Row1.Y + m.Row2.Z*other.Row2.Y,
			Z: m.Row2.X*other.Row0.Z + m.Row2.Y*other.Row1.Z + m.Row2.Z*other.Row2.Z,
		},
	}
}

// Transform applies the matrix to a full 3-vector.
func (m Matrix3x3) Transform(v Vector3) Vector3 {
	return Vector3{
		X: m.Row0.Dot(v),
		Y: m.Row1.Dot(v),
		Z: m.Row2.Dot(v),
	}
}

// TransformPoint lifts p to homogeneous (x, y, 1), applies the matrix,
// and drops back to 2D. Translation applies.
func (m Matrix3x3) TransformPoint(p Vector2) Vector2 {
	return Vector2{
		X: m.Row0.X*p.X + m.Row0.Y*p.Y + m.Row0.Z,
		Y: m.Row1.X*p.X + m.Row1.Y*p.Y + m.Row1.Z,
	}
}

// TransformVector lifts v to homogeneous (x, y, 0) and applies the
// matrix. Translation does not apply.
func (m Matrix3x3) TransformVector(v Vector2) Vector2 {
	return Vector2{
		X: m.Row0.X*v.X + m.Row0.Y*v.Y,
		Y: m.Row1.X*v.X + m.Row1.Y*v.Y,
	}
}

// TransformRect transforms the four corners of r and returns the
// axis-aligned bounding box of the result; see Matrix3x2.TransformRect.
func (m Matrix3x3) TransformRect(r Rect2) Rect2 {
	p0 := m.TransformPoint(r.Position)
	p1 := m.TransformPoint(Vector2{X: r.Position.X + r.Size.X, Y: r.Position.Y})
	p2 := m.TransformPoint(Vector2{X: r.Position.X, Y: r.Position.Y + r.Size.Y})
	p3 := m.TransformPoint(r.Position.Add(r.Size))
	lo := p0.Min(p1).Min(p2).Min(p3)
	hi := p0.Max(p1).Max(p2).Max(p3)
	return NewRect2Between(lo, hi)
}
