package hypermath

import "iter"

// Vector3 is a three-component single-precision vector.
//
// Like Vector2 it is an immutable value type; see that type for the
// conventions shared across the vector family.
type Vector3 struct {
	X, Y, Z float32
}

// Named Vector3 values.
var (
	Vector3Zero  = NewVector3Splat(0)
	Vector3One   = NewVector3Splat(1)
	Vector3UnitX = NewVector3(1, 0, 0)
	Vector3UnitY = NewVector3(0, 1, 0)
	Vector3UnitZ = NewVector3(0, 0, 1)
)

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewVector3Splat returns the vector (s, s, s).
func NewVector3Splat(s float32) Vector3 {
	return Vector3{X: s, Y: s, Z: s}
}

// NewVector3From2 widens xy with the given z component.
func NewVector3From2(xy Vector2, z float32) Vector3 {
	return Vector3{X: xy.X, Y: xy.Y, Z: z}
}

// At returns component i in declaration order (0 = X, 1 = Y, 2 = Z).
// It panics with an error wrapping ErrIndexOutOfRange for any other
// index.
func (v Vector3) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(indexError(i, 3))
}

// Components yields the components in declaration order.
func (v Vector3) Components() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		_ = yield(v.X) && yield(v.Y) && yield(v.Z)
	}
}

// LengthSquared returns X² + Y² + Z².
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the vector magnitude, computed through the reciprocal
// square root estimate. The zero vector reports exactly 0.
func (v Vector3) Length() float32 {
	ls := v.LengthSquared()
	return ls * FastInverseSqrt(ls)
}

// Normalized returns the unit-length copy v / v.Length(). A zero-length
// vector produces NaN components; see Vector2.Normalized.
func (v Vector3) Normalized() Vector3 {
	return v.DivScalar(v.Length())
}

// Summation returns X + Y + Z.
func (v Vector3) Summation() float32 {
	return v.X + v.Y + v.Z
}

// Production returns X * Y * Z.
func (v Vector3) Production() float32 {
	return v.X * v.Y * v.Z
}

// Add returns v + other component-wise.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// AddScalar returns the vector with s added to every component.
func (v Vector3) AddScalar(s float32) Vector3 {
	return Vector3{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// Sub returns v - other component-wise.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// SubScalar returns the vector with s subtracted from every component.
func (v Vector3) SubScalar(s float32) Vector3 {
	return Vector3{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// Mul returns the component-wise product of v and other.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

// MulScalar returns the vector scaled by s.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the component-wise quotient of v and other.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{X: v.X / other.X, Y: v.Y / other.Y, Z: v.Z / other.Z}
}

// DivScalar returns the vector divided by s.
func (v Vector3) DivScalar(s float32) Vector3 {
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Neg returns the vector with every component negated.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Less reports magnitude ordering; see Vector2.Less.
func (v Vector3) Less(other Vector3) bool {
	return v.LengthSquared() < other.LengthSquared()
}

// LessOrEqual reports magnitude ordering; see Vector2.Less.
func (v Vector3) LessOrEqual(other Vector3) bool {
	return v.LengthSquared() <= other.LengthSquared()
}

// Greater reports magnitude ordering; see Vector2.Less.
func (v Vector3) Greater(other Vector3) bool {
	return v.LengthSquared() > other.LengthSquared()
}

// GreaterOrEqual reports magnitude ordering; see Vector2.Less.
func (v Vector3) GreaterOrEqual(other Vector3) bool {
	return v.LengthSquared() >= other.LengthSquared()
}

// Equals reports component-wise approximate equality via AboutEqual.
func (v Vector3) Equals(other Vector3, tolerance ...float32) bool {
	return AboutEqual(v.X, other.X, tolerance...) &&
		AboutEqual(v.Y, other.Y, tolerance...) &&
		AboutEqual(v.Z, other.Z, tolerance...)
}

// Dot returns the dot product of v and other.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the vector cross product of v and other, following the
// right-hand rule: UnitX.Cross(UnitY) == UnitZ.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Distance returns the Euclidean distance between v and other.
func (v Vector3) Distance(other Vector3) float32 {
	return other.Sub(v).Length()
}

// DistanceSquared returns the squared Euclidean distance.
func (v Vector3) DistanceSquared(other Vector3) float32 {
	return other.Sub(v).LengthSquared()
}

// Reflect returns v reflected off the plane with the given unit normal.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.MulScalar(2 * v.Dot(normal)))
}

// Lerp linearly interpolates from v to target by t, component-wise.
func (v Vector3) Lerp(target Vector3, t float32) Vector3 {
	return Vector3{
		X: Lerp(v.X, target.X, t),
		Y: Lerp(v.Y, target.Y, t),
		Z: Lerp(v.Z, target.Z, t),
	}
}

// Clamp restricts each component to the inclusive range described by the
// matching components of lo and hi.
func (v Vector3) Clamp(lo, hi Vector3) Vector3 {
	return Vector3{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
		Z: Clamp(v.Z, lo.Z, hi.Z),
	}
}

// ClampScalar restricts every component to the inclusive range [lo, hi].
func (v Vector3) ClampScalar(lo, hi float32) Vector3 {
	return Vector3{
		X: Clamp(v.X, lo, hi),
		Y: Clamp(v.Y, lo, hi),
		Z: Clamp(v.Z, lo, hi),
	}
}

// Min returns the component-wise minimum of v and other.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{
		X: min(v.X, other.X),
		Y: min(v.Y, other.Y),
		Z: min(v.Z, other.Z),
	}
}

// Max returns the component-wise maximum of v and other.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{
		X: max(v.X, other.X),
		Y: max(v.Y, other.Y),
		Z: max(v.Z, other.Z),
	}
}

// Abs returns the component-wise absolute value.
func (v Vector3) Abs() Vector3 {
	return Vector3{X: Abs(v.X), Y: Abs(v.Y), Z: Abs(v.Z)}
}

// Sign returns the component-wise sign (-1, 0, or 1).
func (v Vector3) Sign() Vector3 {
	return Vector3{X: Sign(v.X), Y: Sign(v.Y), Z: Sign(v.Z)}
}

// Round rounds every component to the nearest integer, or to the given
// number of decimal digits when one is passed.
func (v Vector3) Round(digits ...int) Vector3 {
	return Vector3{
		X: Round(v.X, digits...),
		Y: Round(v.Y, digits...),
		Z: Round(v.Z, digits...),
	}
}

// Ceil returns the component-wise ceiling.
func (v Vector3) Ceil() Vector3 {
	return Vector3{X: ceil32(v.X), Y: ceil32(v.Y), Z: ceil32(v.Z)}
}

// Floor returns the component-wise floor.
func (v Vector3) Floor() Vector3 {
	return Vector3{X: floor32(v.X), Y: floor32(v.Y), Z: floor32(v.Z)}
}

// MoveTowards steps each component toward the matching component of
// target by at most distance without overshooting. Distance is not
// validated; a negative value moves away from target.
func (v Vector3) MoveTowards(target Vector3, distance float32) Vector3 {
	return Vector3{
		X: MoveTowards(v.X, target.X, distance),
		Y: MoveTowards(v.Y, target.Y, distance),
		Z: MoveTowards(v.Z, target.Z, distance),
	}
}

// Vector2 drops the Z component.
func (v Vector3) Vector2() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}

// Vector3i truncates the components toward zero.
func (v Vector3) Vector3i() Vector3i {
	return Vector3i{X: int(v.X), Y: int(v.Y), Z: int(v.Z)}
}

// Vector4 zero-pads the vector to four components.
func (v Vector3) Vector4() Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 0}
}
