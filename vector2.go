package hypermath

import (
	"iter"
	"math"
)

// Vector2 is a two-component single-precision vector.
//
// Vector2 is an immutable value type: every operation returns a new value
// and no operation mutates its receiver. Components are independent; no
// constructor enforces unit length (Normalized derives a unit-length copy).
type Vector2 struct {
	X, Y float32
}

// Named Vector2 values, derived from the constructors so the constants
// cannot drift from the component semantics.
var (
	Vector2Zero  = NewVector2Splat(0)
	Vector2One   = NewVector2Splat(1)
	Vector2UnitX = NewVector2(1, 0)
	Vector2UnitY = NewVector2(0, 1)
)

// NewVector2 returns the vector (x, y).
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// NewVector2Splat returns the vector (s, s).
func NewVector2Splat(s float32) Vector2 {
	return Vector2{X: s, Y: s}
}

// At returns component i in declaration order (0 = X, 1 = Y). It panics
// with an error wrapping ErrIndexOutOfRange for any other index.
func (v Vector2) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(indexError(i, 2))
}

// Components yields the components in declaration order. The sequence is
// finite and restartable: it can be ranged over any number of times.
func (v Vector2) Components() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		_ = yield(v.X) && yield(v.Y)
	}
}

// LengthSquared returns X² + Y².
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the vector magnitude, computed through the reciprocal
// square root estimate (lengthSquared * FastInverseSqrt(lengthSquared)).
// The zero vector reports exactly 0.
func (v Vector2) Length() float32 {
	ls := v.LengthSquared()
	return ls * FastInverseSqrt(ls)
}

// Normalized returns the unit-length copy v / v.Length(). It is not
// guarded: a zero-length vector produces NaN components, which propagate
// silently through subsequent operations. Callers that may hold a zero
// vector must check Length themselves.
func (v Vector2) Normalized() Vector2 {
	return v.DivScalar(v.Length())
}

// Summation returns X + Y.
func (v Vector2) Summation() float32 {
	return v.X + v.Y
}

// Production returns X * Y.
func (v Vector2) Production() float32 {
	return v.X * v.Y
}

// AspectRatio returns X / Y. A zero Y yields ±Inf or NaN per IEEE-754.
func (v Vector2) AspectRatio() float32 {
	return v.X / v.Y
}

// Angle returns the direction of v measured from the positive X axis
// toward positive Y.
func (v Vector2) Angle() Angle {
	return Angle(math.Atan2(float64(v.Y), float64(v.X)))
}

// Add returns v + other component-wise.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// AddScalar returns the vector with s added to every component.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vector2{X: v.X + s, Y: v.Y + s}
}

// Sub returns v - other component-wise.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// SubScalar returns the vector with s subtracted from every component.
// The scalar-minus-vector form is spelled NewVector2Splat(s).Sub(v).
func (v Vector2) SubScalar(s float32) Vector2 {
	return Vector2{X: v.X - s, Y: v.Y - s}
}

// Mul returns the component-wise product of v and other.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{X: v.X * other.X, Y: v.Y * other.Y}
}

// MulScalar returns the vector scaled by s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns the component-wise quotient of v and other. Zero divisors
// produce ±Inf or NaN per IEEE-754 and are not guarded.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vector2{X: v.X / other.X, Y: v.Y / other.Y}
}

// DivScalar returns the vector divided by s. The scalar-over-vector form
// is spelled NewVector2Splat(s).Div(v).
func (v Vector2) DivScalar(s float32) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Neg returns the vector with every component negated.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Less reports whether v has strictly smaller squared length than other.
// Ordering is by magnitude, not lexicographic: distinct vectors of equal
// length are neither Less nor Greater than each other, so this is not a
// strict total order over values.
func (v Vector2) Less(other Vector2) bool {
	return v.LengthSquared() < other.LengthSquared()
}

// LessOrEqual reports magnitude ordering; see Less.
func (v Vector2) LessOrEqual(other Vector2) bool {
	return v.LengthSquared() <= other.LengthSquared()
}

// Greater reports magnitude ordering; see Less.
func (v Vector2) Greater(other Vector2) bool {
	return v.LengthSquared() > other.LengthSquared()
}

// GreaterOrEqual reports magnitude ordering; see Less.
func (v Vector2) GreaterOrEqual(other Vector2) bool {
	return v.LengthSquared() >= other.LengthSquared()
}

// Equals reports component-wise approximate equality via AboutEqual.
// With no explicit tolerance the DefaultTolerance applies, which for
// single precision is effectively exact at ordinary magnitudes.
func (v Vector2) Equals(other Vector2, tolerance ...float32) bool {
	return AboutEqual(v.X, other.X, tolerance...) &&
		AboutEqual(v.Y, other.Y, tolerance...)
}

// Dot returns the dot product of v and other.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

/// Cross returns the scalar 2D cross product: the Z component of the 3D
// cross product with both inputs lifted to z=0.
func (v Vector2) Cross(other Vector2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// Distance returns the Euclidean distance between v and other.
func (v Vector2) Distance(other Vector2) float32 {
	return other.Sub(v).Length()
}

// DistanceSquared returns the squared Euclidean distance between v and
// other. Cheaper than Distance when only comparing.
func (v Vector2) DistanceSquared(other Vector2) float32 {
	return other.Sub(v).LengthSquared()
}

// Reflect returns v reflected off the plane with the given normal:
// v - 2·dot(v, normal)·normal. The normal is assumed unit length.
func (v Vector2) Reflect(normal Vector2) Vector2 {
	return v.Sub(normal.MulScalar(2 * v.Dot(normal)))
}

// Lerp linearly interpolates from v to target by t, component-wise.
// t is not clamped.
func (v Vector2) Lerp(target Vector2, t float32) Vector2 {
	return Vector2{
		X: Lerp(v.X, target.X, t),
		Y: Lerp(v.Y, target.Y, t),
	}
}

// Clamp restricts each component to the inclusive range described by the
// matching components of lo and hi.
func (v Vector2) Clamp(lo, hi Vector2) Vector2 {
	return Vector2{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
	}
}

// ClampScalar restricts every component to the inclusive range [lo, hi].
func (v Vector2) ClampScalar(lo, hi float32) Vector2 {
	return Vector2{
		X: Clamp(v.X, lo, hi),
		Y: Clamp(v.Y, lo, hi),
	}
}

// Min returns the component-wise minimum of v and other.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{X: min(v.X, other.X), Y: min(v.Y, other.Y)}
}

// Max returns the component-wise maximum of v and other.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{X: max(v.X, other.X), Y: max(v.Y, other.Y)}
}

// Abs returns the component-wise absolute value.
func (v Vector2) Abs() Vector2 {
	return Vector2{X: Abs(v.X), Y: Abs(v.Y)}
}

// Sign returns the component-wise sign (-1, 0, or 1).
func (v Vector2) Sign() Vector2 {
	return Vector2{X: Sign(v.X), Y: Sign(v.Y)}
}

// Round rounds every component to the nearest integer, or to the given
// number of decimal digits when one is passed.
func (v Vector2) Round(digits ...int) Vector2 {
	return Vector2{X: Round(v.X, digits...), Y: Round(v.Y, digits...)}
}

// Ceil returns the component-wise ceiling.
func (v Vector2) Ceil() Vector2 {
	return Vector2{X: ceil32(v.X), Y: ceil32(v.Y)}
}

// Floor returns the component-wise floor.
func (v Vector2) Floor() Vector2 {
	return Vector2{X: floor32(v.X), Y: floor32(v.Y)}
}

// MoveTowards steps each component toward the matching component of
// target by at most distance without overshooting. Like the generic
// scalar form, distance is not validated; a negative value moves away
// from target.
func (v Vector2) MoveTowards(target Vector2, distance float32) Vector2 {
	return Vector2{
		X: MoveTowards(v.X, target.X, distance),
		Y: MoveTowards(v.Y, target.Y, distance),
	}
}

// Rotated returns v rotated counterclockwise by angle around the origin.
func (v Vector2) Rotated(angle Angle) Vector2 {
	sin, cos := sincos32(float32(angle))
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Vector2d widens the components to double precision.
func (v Vector2) Vector2d() Vector2d {
	return Vector2d{X: float64(v.X), Y: float64(v.Y)}
}

// Vector2i truncates the components toward zero.
func (v Vector2) Vector2i() Vector2i {
	return Vector2i{X: int(v.X), Y: int(v.Y)}
}

// Vector3 zero-pads the vector to three components.
func (v Vector2) Vector3() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: 0}
}

// Vector4 zero-pads the vector to four components.
func (v Vector2) Vector4() Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: 0, W: 0}
}
