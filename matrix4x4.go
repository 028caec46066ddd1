package hypermath

import "math"

// Matrix4x4 is a 4x4 matrix stored as four rows of four components:
//
//	| Row0.X  Row0.Y  Row0.Z  Row0.W |
//	| Row1.X  Row1.Y  Row1.Z  Row1.W |
//	| Row2.X  Row2.Y  Row2.Z  Row2.W |
//	| Row3.X  Row3.Y  Row3.Z  Row3.W |
//
// It transforms with the matrix on the left and the vector on the right
// as a column: each output component is the dot product of a row with
// the input. Affine transforms keep the translation in the last column
// and Row3 at (0, 0, 0, 1).
//
// The package convention is right-handed with counterclockwise positive
// rotation; cameras look down negative Z.
type Matrix4x4 struct {
	Row0, Row1, Row2, Row3 Vector4
}

// Named Matrix4x4 values, derived from the vector constants.
var (
	Matrix4x4Zero     = NewMatrix4x4Rows(Vector4Zero, Vector4Zero, Vector4Zero, Vector4Zero)
	Matrix4x4One      = NewMatrix4x4Rows(Vector4One, Vector4One, Vector4One, Vector4One)
	Matrix4x4Identity = NewMatrix4x4Rows(Vector4UnitX, Vector4UnitY, Vector4UnitZ, Vector4UnitW)
)

// NewMatrix4x4 returns the matrix with the given cells in row-major
// order.
func NewMatrix4x4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) Matrix4x4 {
	return Matrix4x4{
		Row0: Vector4{X: m00, Y: m01, Z: m02, W: m03},
		Row1: Vector4{X: m10, Y: m11, Z: m12, W: m13},
		Row2: Vector4{X: m20, Y: m21, Z: m22, W: m23},
		Row3: Vector4{X: m30, Y: m31, Z: m32, W: m33},
	}
}

// NewMatrix4x4Rows returns the matrix with the given rows.
func NewMatrix4x4Rows(row0, row1, row2, row3 Vector4) Matrix4x4 {
	return Matrix4x4{Row0: row0, Row1: row1, Row2: row2, Row3: row3}
}

// NewMatrix4x4Splat returns the matrix with every cell set to s.
func NewMatrix4x4Splat(s float32) Matrix4x4 {
	return Matrix4x4{
		Row0: NewVector4Splat(s),
		Row1: NewVector4Splat(s),
		Row2: NewVector4Splat(s),
		Row3: NewVector4Splat(s),
	}
}

// NewMatrix4x4From3x3 embeds m in the upper-left 3x3 block. The new last
// column and row are zero except the homogeneous corner, which is 1.
func NewMatrix4x4From3x3(m Matrix3x3) Matrix4x4 {
	return Matrix4x4{
		Row0: NewVector4From3(m.Row0, 0),
		Row1: NewVector4From3(m.Row1, 0),
		Row2: NewVector4From3(m.Row2, 0),
		Row3: Vector4UnitW,
	}
}

// NewMatrix4x4Translation returns the transform that moves points by
// offset, with the offset in the last column.
func NewMatrix4x4Translation(offset Vector3) Matrix4x4 {
	return Matrix4x4{
		Row0: Vector4{X: 1, W: offset.X},
		Row1: Vector4{Y: 1, W: offset.Y},
		Row2: Vector4{Z: 1, W: offset.Z},
		Row3: Vector4UnitW,
	}
}

// NewMatrix4x4Scale returns the transform that scales points by the
// given factors around the origin.
func NewMatrix4x4Scale(scale Vector3) Matrix4x4 {
	return Matrix4x4{
		Row0: Vector4{X: scale.X},
		Row1: Vector4{Y: scale.Y},
		Row2: Vector4{Z: scale.Z},
		Row3: Vector4UnitW,
	}
}

// NewMatrix4x4RotationX returns the rotation by angle around the X axis,
// counterclockwise looking from +X toward the origin.
func NewMatrix4x4RotationX(angle Angle) Matrix4x4 {
	sin, cos := sincos32(float32(angle))
	return Matrix4x4{
		Row0: Vector4UnitX,
		Row1: Vector4{Y: cos, Z: -sin},
		Row2: Vector4{Y: sin, Z: cos},
		Row3: Vector4UnitW,
	}
}

// NewMatrix4x4RotationY returns the rotation by angle around the Y axis,
// counterclockwise looking from +Y toward the origin.
func NewMatrix4x4RotationY(angle Angle) Matrix4x4 {
	sin, cos := sincos32(float32(angle))
	return Matrix4x4{
		Row0: Vector4{X: cos, Z: sin},
		Row1: Vector4UnitY,
		Row2: Vector4{X: -sin, Z: cos},
		Row3: Vector4UnitW,
	}
}

// NewMatrix4x4RotationZ returns the rotation by angle around the Z axis,
// counterclockwise looking from +Z toward the origin. Its upper-left
// block matches NewMatrix3x3Rotation.
func NewMatrix4x4RotationZ(angle Angle) Matrix4x4 {
	sin, cos := sincos32(float32(angle))
	return Matrix4x4{
		Row0: Vector4{X: cos, Y: -sin},
		Row1: Vector4{X: sin, Y: cos},
		Row2: Vector4UnitZ,
		Row3: Vector4UnitW,
	}
}

// NewMatrix4x4Rotation returns the rotation encoded by q using the
// standard formula for a unit quaternion. A non-unit quaternion skews;
// normalize first if in doubt.
func NewMatrix4x4Rotation(q Quaternion) Matrix4x4 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z
	return Matrix4x4{
		Row0: Vector4{X: 1 - 2*(yy+zz), Y: 2 * (xy - wz), Z: 2 * (xz + wy)},
		Row1: Vector4{X: 2 * (xy + wz), Y: 1 - 2*(xx+zz), Z: 2 * (yz - wx)},
		Row2: Vector4{X: 2 * (xz - wy), Y: 2 * (yz + wx), Z: 1 - 2*(xx+yy)},
		Row3: Vector4UnitW,
	}
}

// NewMatrix4x4Orthographic returns the orthographic projection of a
// frustum centered on the view axis, width by height in view units,
// mapping depth to [-1, 1] with the camera looking down negative Z.
func NewMatrix4x4Orthographic(width, height, zNear, zFar float32) Matrix4x4 {
	return NewMatrix4x4OrthographicOffCenter(
		-width/2, width/2, -height/2, height/2, zNear, zFar)
}

// NewMatrix4x4OrthographicOffCenter returns the orthographic projection
// of the box spanning [left, right] x [bottom, top] x [-zFar, -zNear]
// in view space, mapping it to the [-1, 1] cube. Degenerate extents
// produce Inf or NaN cells and are not guarded.
func NewMatrix4x4OrthographicOffCenter(left, right, bottom, top, zNear, zFar float32) Matrix4x4 {
	return Matrix4x4{
		Row0: Vector4{X: 2 / (right - left), W: -(right + left) / (right - left)},
		Row1: Vector4{Y: 2 / (top - bottom), W: -(top + bottom) / (top - bottom)},
		Row2: Vector4{Z: -2 / (zFar - zNear), W: -(zFar + zNear) / (zFar - zNear)},
		Row3: Vector4UnitW,
	}
}

// NewMatrix4x4Perspective returns the perspective projection with the
// given vertical field of view and width/height aspect ratio, mapping
// depth to [0, 1] with the camera looking down negative Z.
//
// zFar may be positive infinity, which fixes the depth range factor at
// -1 instead of evaluating Inf arithmetic. Out-of-range arguments panic
// with an error wrapping ErrInvalidProjection: fov must lie in (0, π),
// zNear must be positive, and zFar must exceed zNear.
func NewMatrix4x4Perspective(fov Angle, aspect, zNear, zFar float32) Matrix4x4 {
	if fov <= 0 || fov >= AnglePi {
		panic(projectionError("fov %v out of (0, π)", float64(fov)))
	}
	if zNear <= 0 {
		panic(projectionError("zNear %v must be positive", zNear))
	}
	if zFar <= zNear {
		panic(projectionError("zFar %v must exceed zNear %v", zFar, zNear))
	}

	height := 1 / tan32(float32(fov)/2)
	width := height / aspect
	rng := float32(-1)
	if !math.IsInf(float64(zFar), 1) {
		rng = zFar / (zNear - zFar)
	}
	return Matrix4x4{
		Row0: Vector4{X: width},
		Row1: Vector4{Y: height},
		Row2: Vector4{Z: rng, W: rng * zNear},
		Row3: Vector4{Z: -1},
	}
}

// NewMatrix4x4Transform composes scale, then rotation, then translation
// into a single transform. The result equals
// NewMatrix4x4Translation(position).Multiply(NewMatrix4x4Rotation(rotation)).
// Multiply(NewMatrix4x4Scale(scale)) without the intermediate products:
// the rotation columns are scaled in place and the position drops into
// the last column.
func NewMatrix4x4Transform(position Vector3, rotation Quaternion, scale Vector3) Matrix4x4 {
	r := NewMatrix4x4Rotation(rotation)
	return Matrix4x4{
		Row0: Vector4{X: r.Row0.X * scale.X, Y: r.Row0.Y * scale.Y, Z: r.Row0.Z * scale.Z, W: position.X},
		Row1: Vector4{X: r.Row1.X * scale.X, Y: r.Row1.Y * scale.Y, Z: r.Row1.Z * scale.Z, W: position.Y},
		Row2: Vector4{X: r.Row2.X * scale.X, Y: r.Row2.Y * scale.Y, Z: r.Row2.Z * scale.Z, W: position.Z},
		Row3: Vector4UnitW,
	}
}

// Row returns row i. It panics with an error wrapping
// ErrIndexOutOfRange for indices outside [0, 4).
func (m Matrix4x4) Row(i int) Vector4 {
	switch i {
	case 0:
		return m.Row0
	case 1:
		return m.Row1
	case 2:
		return m.Row2
	case 3:
		return m.Row3
	}
	panic(indexError(i, 4))
}

// Column returns column i as the four stacked row components. It panics
// with an error wrapping ErrIndexOutOfRange for indices outside [0, 4).
func (m Matrix4x4) Column(i int) Vector4 {
	return Vector4{X: m.Row0.At(i), Y: m.Row1.At(i), Z: m.Row2.At(i), W: m.Row3.At(i)}
}

// At returns the cell at (row, col). It panics with an error wrapping
// ErrIndexOutOfRange when either index is outside its range.
func (m Matrix4x4) At(row, col int) float32 {
	return m.Row(row).At(col)
}

// Translation returns the 3D translation column (Row0.W, Row1.W,
// Row2.W).
func (m Matrix4x4) Translation() Vector3 {
	return Vector3{X: m.Row0.W, Y: m.Row1.W, Z: m.Row2.W}
}

// IsIdentity reports whether the matrix is exactly the identity.
func (m Matrix4x4) IsIdentity() bool {
	return m == Matrix4x4Identity
}

// Equals reports cell-wise approximate equality via AboutEqual.
func (m Matrix4x4) Equals(other Matrix4x4, tolerance ...float32) bool {
	return m.Row0.Equals(other.Row0, tolerance...) &&
		m.Row1.Equals(other.Row1, tolerance...) &&
		m.Row2.Equals(other.Row2, tolerance...) &&
		m.Row3.Equals(other.Row3, tolerance...)
}

// Add returns the cell-wise sum of m and other.
func (m Matrix4x4) Add(other Matrix4x4) Matrix4x4 {
	return Matrix4x4{
		Row0: m.Row0.Add(other.Row0),
		Row1: m.Row1.Add(other.Row1),
		Row2: m.Row2.Add(other.Row2),
		Row3: m.Row3.Add(other.Row3),
	}
}

// MulScalar returns the matrix with every cell multiplied by s.
func (m Matrix4x4) MulScalar(s float32) Matrix4x4 {
	return Matrix4x4{
		Row0: m.Row0.MulScalar(s),
		Row1: m.Row1.MulScalar(s),
		Row2: m.Row2.MulScalar(s),
		Row3: m.Row3.MulScalar(s),
	}
}

// Multiply returns the matrix product m·other. With the matrix-on-left
// convention the product applies other first and m second.
func (m Matrix4x4) Multiply(other Matrix4x4) Matrix4x4 {
	return Matrix4x4{
		Row0: Vector4{
			X: m.Row0.X*other.Row0.X + m.Row0.Y*other.Row1.X + m.Row0.Z*other.Row2.X + m.Row0.W*other.Row3.X,
			Y: m.Row0.X*other.Row0.Y + m.Row0.Y*other.Row1.Y + m.Row0.Z*other.Row2.Y + m.Row0.W*other.Row3.Y,
			Z: m.Row0.X*other.Row0.Z + m.Row0.Y*other.Row1.Z + m.Row0.Z*other.Row2.Z + m.Row0.W*other.Row3.Z,
			W: m.Row0.X*other.Row0.W + m.Row0.Y*other.Row1.W + m.Row0.Z*other.Row2.W + m.Row0.W*other.Row3.W,
		},
		Row1: Vector4{
			X: m.Row1.X*other.Row0.X + m.Row1.Y*other.Row1.X + m.Row1.Z*other.Row2.X + m.Row1.W*other.Row3.X,
			Y: m.Row1.X*other.Row0.Y + m.Row1.Y*other.Row1.Y + m.Row1.Z*other.Row2.Y + m.Row1.W*other.Row3.Y,
			Z: m.Row1.X*other.Row0.Z + m.Row1.Y*other.Row1.Z + m.Row1.Z*other.Row2.Z + m.Row1.W*other.Row3.Z,
			W: m.Row1.X*other.Row0.W + m.Row1.Y*other.Row1.W + m.Row1.Z*other.Row2.W + m.Row1.W*other.Row3.W,
		},
		Row2: Vector4{
			X: m.Row2.X*other.Row0.X + m.Row2.Y*other.Row1.X + m.Row2.Z*other.Row2.X + m.Row2.W*other.Row3.X,
			Y: m.Row2.X*other.Row0.Y + m.Row2.Y*other.Row1.Y + m.Row2.Z*other.Row2.Y + m.Row2.W*other.Row3.Y,
			Z: m.Row2.X*other.Row0.Z + m.Row2.Y*other.Row1.Z + m.Row2.Z*other.Row2.Z + m.Row2.W*other.Row3.Z,
			W: m.Row2.X*other.Row0.W + m.Row2.Y*other.Row1.W + m.Row2.Z*other.Row2.W + m.Row2.W*other.Row3.W,
		},
		Row3: Vector4{
			X: m.Row3.X*other.Row0.X + m.Row3.Y*other.Row1.X + m.Row3.Z*other.Row2.X + m.Row3.W*other.Row3.X,
			Y: m.Row3.X*other.Row0.Y + m.Row3.Y*other.Row1.Y + m.Row3.Z*other.Row2.Y + m.Row3.W*other.Row3.Y,
			Z: m.Row3.X*other.Row0.Z + m.Row3.Y*other.Row1.Z + m.Row3.Z*other.Row2.Z + m.Row3.W*other.Row3.Z,
			W: m.Row3.X*other.Row0.W + m.Row3.Y*other.Row1.W + m.Row3.Z*other.Row2.W + m.Row3.W*other.Row3.W,
		},
	}
}

// Transform applies the matrix to a full 4-vector. Projective results
// carry their homogeneous coordinate in W; divide by it to reach
// normalized device coordinates.
func (m Matrix4x4) Transform(v Vector4) Vector4 {
	return Vector4{
		X: m.Row0.Dot(v),
		Y: m.Row1.Dot(v),
		Z: m.Row2.Dot(v),
		W: m.Row3.Dot(v),
	}
}

// TransformPoint lifts p to homogeneous (x, y, z, 1), applies the
// matrix, and drops W without dividing by it. That is exact for affine
// transforms; for projection matrices use Transform and divide by W.
func (m Matrix4x4) TransformPoint(p Vector3) Vector3 {
	return Vector3{
		X: m.Row0.X*p.X + m.Row0.Y*p.Y + m.Row0.Z*p.Z + m.Row0.W,
		Y: m.Row1.X*p.X + m.Row1.Y*p.Y + m.Row1.Z*p.Z + m.Row1.W,
		Z: m.Row2.X*p.X + m.Row2.Y*p.Y + m.Row2.Z*p.Z + m.Row2.W,
	}
}

// TransformVector lifts v to homogeneous (x, y, z, 0) and applies the
// matrix. Translation does not apply.
func (m Matrix4x4) TransformVector(v Vector3) Vector3 {
	return Vector3{
		X: m.Row0.X*v.X + m.Row0.Y*v.Y + m.Row0.Z*v.Z,
		Y: m.Row1.X*v.X + m.Row1.Y*v.Y + m.Row1.Z*v.Z,
		Z: m.Row2.X*v.X + m.Row2.Y*v.Y + m.Row2.Z*v.Z,
	}
}
