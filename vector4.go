package hypermath

import "iter"

// Vector4 is a four-component single-precision vector: homogeneous 3D
// coordinates, RGBA channels, or a plain quadruple.
//
// Like Vector2 it is an immutable value type; see that type for the
// conventions shared across the vector family.
type Vector4 struct {
	X, Y, Z, W float32
}

// Named Vector4 values.
var (
	Vector4Zero  = NewVector4Splat(0)
	Vector4One   = NewVector4Splat(1)
	Vector4UnitX = NewVector4(1, 0, 0, 0)
	Vector4UnitY = NewVector4(0, 1, 0, 0)
	Vector4UnitZ = NewVector4(0, 0, 1, 0)
	Vector4UnitW = NewVector4(0, 0, 0, 1)
)

// NewVector4 returns the vector (x, y, z, w).
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// NewVector4Splat returns the vector (s, s, s, s).
func NewVector4Splat(s float32) Vector4 {
	return Vector4{X: s, Y: s, Z: s, W: s}
}

// NewVector4From3 widens xyz with the given w component. Passing w=1
// makes a position, w=0 a direction, in homogeneous coordinates.
func NewVector4From3(xyz Vector3, w float32) Vector4 {
	return Vector4{X: xyz.X, Y: xyz.Y, Z: xyz.Z, W: w}
}

// At returns component i in declaration order (0 = X through 3 = W).
// It panics with an error wrapping ErrIndexOutOfRange for any other
// index.
func (v Vector4) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(indexError(i, 4))
}

// Components yields the components in declaration order.
func (v Vector4) Components() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		_ = yield(v.X) && yield(v.Y) && yield(v.Z) && yield(v.W)
	}
}

// LengthSquared returns X² + Y² + Z² + W².
func (v Vector4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Length returns the vector magnitude, computed through the reciprocal
// square root estimate. The zero vector reports exactly 0.
func (v Vector4) Length() float32 {
	ls := v.LengthSquared()
	return ls * FastInverseSqrt(ls)
}

// Normalized returns the unit-length copy v / v.Length(). A zero-length
// vector produces NaN components; see Vector2.Normalized.
func (v Vector4) Normalized() Vector4 {
	return v.DivScalar(v.Length())
}

// Summation returns X + Y + Z + W.
func (v Vector4) Summation() float32 {
	return v.X + v.Y + v.Z + v.W
}

// Production returns X * Y * Z * W.
func (v Vector4) Production() float32 {
	return v.X * v.Y * v.Z * v.W
}

// Add returns v + other component-wise.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

// AddScalar returns the vector with s added to every component.
func (v Vector4) AddScalar(s float32) Vector4 {
	return Vector4{X: v.X + s, Y: v.Y + s, Z: v.Z + s, W: v.W + s}
}

// Sub returns v - other component-wise.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

// SubScalar returns the vector with s subtracted from every component.
func (v Vector4) SubScalar(s float32) Vector4 {
	return Vector4{X: v.X - s, Y: v.Y - s, Z: v.Z - s, W: v.W - s}
}

// Mul returns the component-wise product of v and other.
func (v Vector4) Mul(other Vector4) Vector4 {
	return Vector4{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
		W: v.W * other.W,
	}
}

// MulScalar returns the vector scaled by s.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Div returns the component-wise quotient of v and other.
func (v Vector4) Div(other Vector4) Vector4 {
	return Vector4{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
		W: v.W / other.W,
	}
}

// DivScalar returns the vector divided by s.
func (v Vector4) DivScalar(s float32) Vector4 {
	return Vector4{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// Neg returns the vector with every component negated.
func (v Vector4) Neg() Vector4 {
	return Vector4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Less reports magnitude ordering; see Vector2.Less.
func (v Vector4) Less(other Vector4) bool {
	return v.LengthSquared() < other.LengthSquared()
}

// LessOrEqual reports magnitude ordering; see Vector2.Less.
func (v Vector4) LessOrEqual(other Vector4) bool {
	return v.LengthSquared() <= other.LengthSquared()
}

// Greater reports magnitude ordering; see Vector2.Less.
func (v Vector4) Greater(other Vector4) bool {
	return v.LengthSquared() > other.LengthSquared()
}

// GreaterOrEqual reports magnitude ordering; see Vector2.Less.
func (v Vector4) GreaterOrEqual(other Vector4) bool {
	return v.LengthSquared() >= other.LengthSquared()
}

// Equals reports component-wise approximate equality via AboutEqual.
func (v Vector4) Equals(other Vector4, tolerance ...float32) bool {
	return AboutEqual(v.X, other.X, tolerance...) &&
		AboutEqual(v.Y, other.Y, tolerance...) &&
		AboutEqual(v.Z, other.Z, tolerance...) &&
		AboutEqual(v.W, other.W, tolerance...)
}

// Dot returns the dot product of v and other.
func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Distance returns the Euclidean distance between v and other.
func (v Vector4) Distance(other Vector4) float32 {
	return other.Sub(v).Length()
}

// DistanceSquared returns the squared Euclidean distance.
func (v Vector4) DistanceSquared(other Vector4) float32 {
	return other.Sub(v).LengthSquared()
}

// Reflect returns v reflected off the hyperplane with the given unit
// normal.
func (v Vector4) Reflect(normal Vector4) Vector4 {
	return v.Sub(normal.MulScalar(2 * v.Dot(normal)))
}

// Lerp linearly interpolates from v to target by t, component-wise.
func (v Vector4) Lerp(target Vector4, t float32) Vector4 {
	return Vector4{
		X: Lerp(v.X, target.X, t),
		Y: Lerp(v.Y, target.Y, t),
		Z: Lerp(v.Z, target.Z, t),
		W: Lerp(v.W, target.W, t),
	}
}

// Clamp restricts each component to the inclusive range described by the
// matching components of lo and hi.
func (v Vector4) Clamp(lo, hi Vector4) Vector4 {
	return Vector4{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
		Z: Clamp(v.Z, lo.Z, hi.Z),
		W: Clamp(v.W, lo.W, hi.W),
	}
}

// ClampScalar restricts every component to the inclusive range [lo, hi].
func (v Vector4) ClampScalar(lo, hi float32) Vector4 {
	return Vector4{
		X: Clamp(v.X, lo, hi),
		Y: Clamp(v.Y, lo, hi),
		Z: Clamp(v.Z, lo, hi),
		W: Clamp(v.W, lo, hi),
	}
}

// Min returns the component-wise minimum of v and other.
func (v Vector4) Min(other Vector4) Vector4 {
	return Vector4{
		X: min(v.X, other.X),
		Y: min(v.Y, other.Y),
		Z: min(v.Z, other.Z),
		W: min(v.W, other.W),
	}
}

// Max returns the component-wise maximum of v and other.
func (v Vector4) Max(other Vector4) Vector4 {
	return Vector4{
		X: max(v.X, other.X),
		Y: max(v.Y, other.Y),
		Z: max(v.Z, other.Z),
		W: max(v.W, other.W),
	}
}

// Abs returns the component-wise absolute value.
func (v Vector4) Abs() Vector4 {
	return Vector4{X: Abs(v.X), Y: Abs(v.Y), Z: Abs(v.Z), W: Abs(v.W)}
}

// Sign returns the component-wise sign (-1, 0, or 1).
func (v Vector4) Sign() Vector4 {
	return Vector4{X: Sign(v.X), Y: Sign(v.Y), Z: Sign(v.Z), W: Sign(v.W)}
}

// Round rounds every component to the nearest integer, or to the given
// number of decimal digits when one is passed.
func (v Vector4) Round(digits ...int) Vector4 {
	return Vector4{
		X: Round(v.X, digits...),
		Y: Round(v.Y, digits...),
		Z: Round(v.Z, digits...),
		W: Round(v.W, digits...),
	}
}

// Ceil returns the component-wise ceiling.
func (v Vector4) Ceil() Vector4 {
	return Vector4{
		X: ceil32(v.X),
		Y: ceil32(v.Y),
		Z: ceil32(v.Z),
		W: ceil32(v.W),
	}
}

// Floor returns the component-wise floor.
func (v Vector4) Floor() Vector4 {
	return Vector4{
		X: floor32(v.X),
		Y: floor32(v.Y),
		Z: floor32(v.Z),
		W: floor32(v.W),
	}
}

// MoveTowards steps each component toward the matching component of
// target by at most distance without overshooting. Distance is not
// validated; a negative value moves away from target.
func (v Vector4) MoveTowards(target Vector4, distance float32) Vector4 {
	return Vector4{
		X: MoveTowards(v.X, target.X, distance),
		Y: MoveTowards(v.Y, target.Y, distance),
		Z: MoveTowards(v.Z, target.Z, distance),
		W: MoveTowards(v.W, target.W, distance),
	}
}

// Vector2 drops the Z and W components.
func (v Vector4) Vector2() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// Vector3 drops the W component.
func (v Vector4) Vector3() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}
