package hypermath

import (
	"image"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Conversions to and from the golang.org/x/image math types and the
// stdlib image types, for handing values across rendering-API
// boundaries. All array forms are row-major, matching the package's
// row storage, so flattening is a straight copy.

// F32 returns the vector as an x/image vector.
func (v Vector2) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// Vector2FromF32 is the inverse of Vector2.F32.
func Vector2FromF32(v f32.Vec2) Vector2 {
	return Vector2{X: v[0], Y: v[1]}
}

// F32 returns the vector as an x/image vector.
func (v Vector3) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// Vector3FromF32 is the inverse of Vector3.F32.
func Vector3FromF32(v f32.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// F32 returns the vector as an x/image vector.
func (v Vector4) F32() f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

// Vector4FromF32 is the inverse of Vector4.F32.
func Vector4FromF32(v f32.Vec4) Vector4 {
	return Vector4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// F64 returns the vector as an x/image vector.
func (v Vector2d) F64() f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}

// Vector2dFromF64 is the inverse of Vector2d.F64.
func Vector2dFromF64(v f64.Vec2) Vector2d {
	return Vector2d{X: v[0], Y: v[1]}
}

// F32 returns the matrix flattened row-major.
func (m Matrix3x3) F32() f32.Mat3 {
	return f32.Mat3{
		m.Row0.X, m.Row0.Y, m.Row0.Z,
		m.Row1.X, m.Row1.Y, m.Row1.Z,
		m.Row2.X, m.Row2.Y, m.Row2.Z,
	}
}

// Matrix3x3FromF32 is the inverse of Matrix3x3.F32.
func Matrix3x3FromF32(m f32.Mat3) Matrix3x3 {
	return Matrix3x3{
		Row0: Vector3{X: m[0], Y: m[1], Z: m[2]},
		Row1: Vector3{X: m[3], Y: m[4], Z: m[5]},
		Row2: Vector3{X: m[6], Y: m[7], Z: m[8]},
	}
}

// F32 returns the matrix flattened row-major.
func (m Matrix4x4) F32() f32.Mat4 {
	return f32.Mat4{
		m.Row0.X, m.Row0.Y, m.Row0.Z, m.Row0.W,
		m.Row1.X, m.Row1.Y, m.Row1.Z, m.Row1.W,
		m.Row2.X, m.Row2.Y, m.Row2.Z, m.Row2.W,
		m.Row3.X, m.Row3.Y, m.Row3.Z, m.Row3.W,
	}
}

// Matrix4x4FromF32 is the inverse of Matrix4x4.F32.
func Matrix4x4FromF32(m f32.Mat4) Matrix4x4 {
	return Matrix4x4{
		Row0: Vector4{X: m[0], Y: m[1], Z: m[2], W: m[3]},
		Row1: Vector4{X: m[4], Y: m[5], Z: m[6], W: m[7]},
		Row2: Vector4{X: m[8], Y: m[9], Z: m[10], W: m[11]},
		Row3: Vector4{X: m[12], Y: m[13], Z: m[14], W: m[15]},
	}
}

// Aff3 returns the transform as an x/image affine matrix, which is
// column-vector form with an implicit (0, 0, 1) bottom row. Because
// Matrix3x2 keeps the point on the left, the linear part transposes on
// the way out; both sides move points identically.
func (m Matrix3x2) Aff3() f64.Aff3 {
	return f64.Aff3{
		float64(m.Row0.X), float64(m.Row1.X), float64(m.Row2.X),
		float64(m.Row0.Y), float64(m.Row1.Y), float64(m.Row2.Y),
	}
}

// Matrix3x2FromAff3 is the inverse of Matrix3x2.Aff3.
func Matrix3x2FromAff3(a f64.Aff3) Matrix3x2 {
	return Matrix3x2{
		Row0: Vector2{X: float32(a[0]), Y: float32(a[3])},
		Row1: Vector2{X: float32(a[1]), Y: float32(a[4])},
		Row2: Vector2{X: float32(a[2]), Y: float32(a[5])},
	}
}

// Aff3 returns the homogeneous 2D transform as an x/image affine
// matrix, dropping the bottom row. The matrix is assumed affine (Row2
// equal to (0, 0, 1)); that is not checked.
func (m Matrix3x3) Aff3() f64.Aff3 {
	return f64.Aff3{
		float64(m.Row0.X), float64(m.Row0.Y), float64(m.Row0.Z),
		float64(m.Row1.X), float64(m.Row1.Y), float64(m.Row1.Z),
	}
}

// Aff4 returns the transform as an x/image affine matrix, dropping the
// bottom row. The matrix is assumed affine (Row3 equal to (0, 0, 0,
// 1)); that is not checked, and projection matrices lose their last
// row.
func (m Matrix4x4) Aff4() f64.Aff4 {
	return f64.Aff4{
		float64(m.Row0.X), float64(m.Row0.Y), float64(m.Row0.Z), float64(m.Row0.W),
		float64(m.Row1.X), float64(m.Row1.Y), float64(m.Row1.Z), float64(m.Row1.W),
		float64(m.Row2.X), float64(m.Row2.Y), float64(m.Row2.Z), float64(m.Row2.W),
	}
}

// Fixed returns the vector in 26.6 fixed-point font units, rounding
// each component to the nearest 1/64.
func (v Vector2) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(v.X) * 64)),
		Y: fixed.Int26_6(math.Round(float64(v.Y) * 64)),
	}
}

// Vector2FromFixed converts a 26.6 fixed-point point back to float
// components.
func Vector2FromFixed(p fixed.Point26_6) Vector2 {
	return Vector2{
		X: float32(p.X) / 64,
		Y: float32(p.Y) / 64,
	}
}

// Point returns the vector as a stdlib image point.
func (v Vector2i) Point() image.Point {
	return image.Point{X: v.X, Y: v.Y}
}

// Vector2iFromPoint is the inverse of Vector2i.Point.
func Vector2iFromPoint(p image.Point) Vector2i {
	return Vector2i{X: p.X, Y: p.Y}
}

// Rectangle returns the box as a stdlib image rectangle. Both types are
// min-inclusive, max-exclusive, so the corners map directly.
func (b Box2i) Rectangle() image.Rectangle {
	return image.Rectangle{Min: b.Min.Point(), Max: b.Max.Point()}
}

// Box2iFromRectangle is the inverse of Box2i.Rectangle.
func Box2iFromRectangle(r image.Rectangle) Box2i {
	return Box2i{
		Min: Vector2iFromPoint(r.Min),
		Max: Vector2iFromPoint(r.Max),
	}
}
