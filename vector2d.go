package hypermath

import (
	"iter"
	"math"
)

// Vector2d is a two-component double-precision vector. It mirrors the
// Vector2 surface with float64 components for accumulation-heavy work
// where single precision drifts.
type Vector2d struct {
	X, Y float64
}

// Named Vector2d values.
var (
	Vector2dZero  = NewVector2dSplat(0)
	Vector2dOne   = NewVector2dSplat(1)
	Vector2dUnitX = NewVector2d(1, 0)
	Vector2dUnitY = NewVector2d(0, 1)
)

// NewVector2d returns the vector (x, y).
func NewVector2d(x, y float64) Vector2d {
	return Vector2d{X: x, Y: y}
}

// NewVector2dSplat returns the vector (s, s).
func NewVector2dSplat(s float64) Vector2d {
	return Vector2d{X: s, Y: s}
}

// At returns component i in declaration order (0 = X, 1 = Y). It panics
// with an error wrapping ErrIndexOutOfRange for any other index.
func (v Vector2d) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(indexError(i, 2))
}

// Components yields the components in declaration order.
func (v Vector2d) Components() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		_ = yield(v.X) && yield(v.Y)
	}
}

// LengthSquared returns X² + Y².
func (v Vector2d) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the vector magnitude, computed through the reciprocal
// square root estimate. The zero vector reports exactly 0.
func (v Vector2d) Length() float64 {
	ls := v.LengthSquared()
	return ls * FastInverseSqrt64(ls)
}

// Normalized returns the unit-length copy v / v.Length(). A zero-length
// vector produces NaN components; see Vector2.Normalized.
func (v Vector2d) Normalized() Vector2d {
	return v.DivScalar(v.Length())
}

// Summation returns X + Y.
func (v Vector2d) Summation() float64 {
	return v.X + v.Y
}

// Production returns X * Y.
func (v Vector2d) Production() float64 {
	return v.X * v.Y
}

// AspectRatio returns X / Y.
func (v Vector2d) AspectRatio() float64 {
	return v.X / v.Y
}

// Angle returns the direction of v measured from the positive X axis
// toward positive Y.
func (v Vector2d) Angle() Angle {
	return Angle(math.Atan2(v.Y, v.X))
}

// Add returns v + other component-wise.
func (v Vector2d) Add(other Vector2d) Vector2d {
	return Vector2d{X: v.X + other.X, Y: v.Y + other.Y}
}

// AddScalar returns the vector with s added to every component.
func (v Vector2d) AddScalar(s float64) Vector2d {
	return Vector2d{X: v.X + s, Y: v.Y + s}
}

// Sub returns v - other component-wise.
func (v Vector2d) Sub(other Vector2d) Vector2d {
	return Vector2d{X: v.X - other.X, Y: v.Y - other.Y}
}

// SubScalar returns the vector with s subtracted from every component.
func (v Vector2d) SubScalar(s float64) Vector2d {
	return Vector2d{X: v.X - s, Y: v.Y - s}
}

// Mul returns the component-wise product of v and other.
func (v Vector2d) Mul(other Vector2d) Vector2d {
	return Vector2d{X: v.X * other.X, Y: v.Y * other.Y}
}

// MulScalar returns the vector scaled by s.
func (v Vector2d) MulScalar(s float64) Vector2d {
	return Vector2d{X: v.X * s, Y: v.Y * s}
}

// Div returns the component-wise quotient of v and other.
func (v Vector2d) Div(other Vector2d) Vector2d {
	return Vector2d{X: v.X / other.X, Y: v.Y / other.Y}
}

// DivScalar returns the vector divided by s.
func (v Vector2d) DivScalar(s float64) Vector2d {
	return Vector2d{X: v.X / s, Y: v.Y / s}
}

// Neg returns the vector with every component negated.
func (v Vector2d) Neg() Vector2d {
	return Vector2d{X: -v.X, Y: -v.Y}
}

// Less reports magnitude ordering; see Vector2.Less.
func (v Vector2d) Less(other Vector2d) bool {
	return v.LengthSquared() < other.LengthSquared()
}

// LessOrEqual reports magnitude ordering; see Vector2.Less.
func (v Vector2d) LessOrEqual(other Vector2d) bool {
	return v.LengthSquared() <= other.LengthSquared()
}

// Greater reports magnitude ordering; see Vector2.Less.
func (v Vector2d) Greater(other Vector2d) bool {
	return v.LengthSquared() > other.LengthSquared()
}

// GreaterOrEqual reports magnitude ordering; see Vector2.Less.
func (v Vector2d) GreaterOrEqual(other Vector2d) bool {
	return v.LengthSquared() >= other.LengthSquared()
}

// Equals reports component-wise approximate equality via AboutEqual64.
func (v Vector2d) Equals(other Vector2d, tolerance ...float64) bool {
	return AboutEqual64(v.X, other.X, tolerance...) &&
		AboutEqual64(v.Y, other.Y, tolerance...)
}

// Dot returns the dot product of v and other.
func (v Vector2d) Dot(other Vector2d) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar 2D cross product.
func (v Vector2d) Cross(other Vector2d) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Distance returns the Euclidean distance between v and other.
func (v Vector2d) Distance(other Vector2d) float64 {
	return other.Sub(v).Length()
}

// DistanceSquared returns the squared Euclidean distance.
func (v Vector2d) DistanceSquared(other Vector2d) float64 {
	return other.Sub(v).LengthSquared()
}

// Reflect returns v reflected off the plane with the given unit normal.
func (v Vector2d) Reflect(normal Vector2d) Vector2d {
	return v.Sub(normal.MulScalar(2 * v.Dot(normal)))
}

// Lerp linearly interpolates from v to target by t, component-wise.
func (v Vector2d) Lerp(target Vector2d, t float64) Vector2d {
	return Vector2d{
		X: Lerp(v.X, target.X, t),
		Y: Lerp(v.Y, target.Y, t),
	}
}

// Clamp restricts each component to the inclusive range described by the
// matching components of lo and hi.
func (v Vector2d) Clamp(lo, hi Vector2d) Vector2d {
	return Vector2d{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
	}
}

// ClampScalar restricts every component to the inclusive range [lo, hi].
func (v Vector2d) ClampScalar(lo, hi float64) Vector2d {
	return Vector2d{
		X: Clamp(v.X, lo, hi),
		Y: Clamp(v.Y, lo, hi),
	}
}

// Min returns the component-wise minimum of v and other.
func (v Vector2d) Min(other Vector2d) Vector2d {
	return Vector2d{X: min(v.X, other.X), Y: min(v.Y, other.Y)}
}

// Max returns the component-wise maximum of v and other.
func (v Vector2d) Max(other Vector2d) Vector2d {
	return Vector2d{X: max(v.X, other.X), Y: max(v.Y, other.Y)}
}

// Abs returns the component-wise absolute value.
func (v Vector2d) Abs() Vector2d {
	return Vector2d{X: Abs(v.X), Y: Abs(v.Y)}
}

// Sign returns the component-wise sign (-1, 0, or 1).
func (v Vector2d) Sign() Vector2d {
	return Vector2d{X: Sign(v.X), Y: Sign(v.Y)}
}

// Round rounds every component to the nearest integer, or to the given
// number of decimal digits when one is passed.
func (v Vector2d) Round(digits ...int) Vector2d {
	return Vector2d{X: Round(v.X, digits...), Y: Round(v.Y, digits...)}
}

// Ceil returns the component-wise ceiling.
func (v Vector2d) Ceil() Vector2d {
	return Vector2d{X: math.Ceil(v.X), Y: math.Ceil(v.Y)}
}

// Floor returns the component-wise floor.
func (v Vector2d) Floor() Vector2d {
	return Vector2d{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

// MoveTowards steps each component toward the matching component of
// target by at most distance without overshooting. Distance is not
// validated; a negative value moves away from target.
func (v Vector2d) MoveTowards(target Vector2d, distance float64) Vector2d {
	return Vector2d{
		X: MoveTowards(v.X, target.X, distance),
		Y: MoveTowards(v.Y, target.Y, distance),
	}
}

// Rotated returns v rotated counterclockwise by angle around the origin.
func (v Vector2d) Rotated(angle Angle) Vector2d {
	sin, cos := math.Sincos(float64(angle))
	return Vector2d{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Vector2 narrows the components to single precision.
func (v Vector2d) Vector2() Vector2 {
	return Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// Vector2i truncates the components toward zero.
func (v Vector2d) Vector2i() Vector2i {
	return Vector2i{X: int(v.X), Y: int(v.Y)}
}
