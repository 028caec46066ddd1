package hypermath

import (
	"iter"
	"math"
)

// Vector2i is a two-component integer vector, used for pixel coordinates,
// grid cells, and texture sizes. Arithmetic is exact integer arithmetic;
// Div truncates like Go integer division.
type Vector2i struct {
	X, Y int
}

// Named Vector2i values.
var (
	Vector2iZero  = NewVector2iSplat(0)
	Vector2iOne   = NewVector2iSplat(1)
	Vector2iUnitX = NewVector2i(1, 0)
	Vector2iUnitY = NewVector2i(0, 1)
)

// NewVector2i returns the vector (x, y).
func NewVector2i(x, y int) Vector2i {
	return Vector2i{X: x, Y: y}
}

// NewVector2iSplat returns the vector (s, s).
func NewVector2iSplat(s int) Vector2i {
	return Vector2i{X: s, Y: s}
}

// At returns component i in declaration order (0 = X, 1 = Y). It panics
// with an error wrapping ErrIndexOutOfRange for any other index.
func (v Vector2i) At(i int) int {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(indexError(i, 2))
}

// Components yields the components in declaration order.
func (v Vector2i) Components() iter.Seq[int] {
	return func(yield func(int) bool) {
		_ = yield(v.X) && yield(v.Y)
	}
}

// LengthSquared returns X² + Y² as an exact integer.
func (v Vector2i) LengthSquared() int {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the vector magnitude as a float.
func (v Vector2i) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// Summation returns X + Y.
func (v Vector2i) Summation() int {
	return v.X + v.Y
}

// Production returns X * Y.
func (v Vector2i) Production() int {
	return v.X * v.Y
}

// AspectRatio returns X / Y as a float ratio.
func (v Vector2i) AspectRatio() float32 {
	return float32(v.X) / float32(v.Y)
}

// Add returns v + other component-wise.
func (v Vector2i) Add(other Vector2i) Vector2i {
	return Vector2i{X: v.X + other.X, Y: v.Y + other.Y}
}

// AddScalar returns the vector with s added to every component.
func (v Vector2i) AddScalar(s int) Vector2i {
	return Vector2i{X: v.X + s, Y: v.Y + s}
}

// Sub returns v - other component-wise.
func (v Vector2i) Sub(other Vector2i) Vector2i {
	return Vector2i{X: v.X - other.X, Y: v.Y - other.Y}
}

// SubScalar returns the vector with s subtracted from every component.
func (v Vector2i) SubScalar(s int) Vector2i {
	return Vector2i{X: v.X - s, Y: v.Y - s}
}

// Mul returns the component-wise product of v and other.
func (v Vector2i) Mul(other Vector2i) Vector2i {
	return Vector2i{X: v.X * other.X, Y: v.Y * other.Y}
}

// MulScalar returns the vector scaled by s.
func (v Vector2i) MulScalar(s int) Vector2i {
	return Vector2i{X: v.X * s, Y: v.Y * s}
}

// Div returns the component-wise quotient of v and other, truncated
// toward zero like Go integer division. Zero divisors panic.
func (v Vector2i) Div(other Vector2i) Vector2i {
	return Vector2i{X: v.X / other.X, Y: v.Y / other.Y}
}

// DivScalar returns the vector divided by s, truncated toward zero.
func (v Vector2i) DivScalar(s int) Vector2i {
	return Vector2i{X: v.X / s, Y: v.Y / s}
}

// Neg returns the vector with every component negated.
func (v Vector2i) Neg() Vector2i {
	return Vector2i{X: -v.X, Y: -v.Y}
}

// Less reports magnitude ordering; see Vector2.Less.
func (v Vector2i) Less(other Vector2i) bool {
	return v.LengthSquared() < other.LengthSquared()
}

// LessOrEqual reports magnitude ordering; see Vector2.Less.
func (v Vector2i) LessOrEqual(other Vector2i) bool {
	return v.LengthSquared() <= other.LengthSquared()
}

// Greater reports magnitude ordering; see Vector2.Less.
func (v Vector2i) Greater(other Vector2i) bool {
	return v.LengthSquared() > other.LengthSquared()
}

// GreaterOrEqual reports magnitude ordering; see Vector2.Less.
func (v Vector2i) GreaterOrEqual(other Vector2i) bool {
	return v.LengthSquared() >= other.LengthSquared()
}

// Equals reports exact component equality. Integer vectors have no
// tolerance; this is the comparable-type counterpart of ==.
func (v Vector2i) Equals(other Vector2i) bool {
	return v == other
}

// Dot returns the dot product of v and other.
func (v Vector2i) Dot(other Vector2i) int {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar 2D cross product.
func (v Vector2i) Cross(other Vector2i) int {
	return v.X*other.Y - v.Y*other.X
}

// Distance returns the Euclidean distance between v and other.
func (v Vector2i) Distance(other Vector2i) float32 {
	return other.Sub(v).Length()
}

// DistanceSquared returns the squared distance as an exact integer.
func (v Vector2i) DistanceSquared(other Vector2i) int {
	return other.Sub(v).LengthSquared()
}

// Clamp restricts each component to the inclusive range described by the
// matching components of lo and hi.
func (v Vector2i) Clamp(lo, hi Vector2i) Vector2i {
	return Vector2i{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
	}
}

// ClampScalar restricts every component to the inclusive range [lo, hi].
func (v Vector2i) ClampScalar(lo, hi int) Vector2i {
	return Vector2i{
		X: Clamp(v.X, lo, hi),
		Y: Clamp(v.Y, lo, hi),
	}
}

// Min returns the component-wise minimum of v and other.
func (v Vector2i) Min(other Vector2i) Vector2i {
	return Vector2i{X: min(v.X, other.X), Y: min(v.Y, other.Y)}
}

// Max returns the component-wise maximum of v and other.
func (v Vector2i) Max(other Vector2i) Vector2i {
	return Vector2i{X: max(v.X, other.X), Y: max(v.Y, other.Y)}
}

// Abs returns the component-wise absolute value.
func (v Vector2i) Abs() Vector2i {
	return Vector2i{X: Abs(v.X), Y: Abs(v.Y)}
}

// Sign returns the component-wise sign (-1, 0, or 1).
func (v Vector2i) Sign() Vector2i {
	return Vector2i{X: Sign(v.X), Y: Sign(v.Y)}
}

// MoveTowards steps each component toward the matching component of
// target by at most distance without overshooting. Unlike the float
// vector forms it validates its input: a negative distance panics with
// an error wrapping ErrNegativeDistance.
func (v Vector2i) MoveTowards(target Vector2i, distance int) Vector2i {
	return Vector2i{
		X: MoveTowardsInt(v.X, target.X, distance),
		Y: MoveTowardsInt(v.Y, target.Y, distance),
	}
}

// Vector2 converts the components to single precision.
func (v Vector2i) Vector2() Vector2 {
	return Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// Vector2d converts the components to double precision.
func (v Vector2i) Vector2d() Vector2d {
	return Vector2d{X: float64(v.X), Y: float64(v.Y)}
}

// Vector3i zero-pads the vector to three components.
func (v Vector2i) Vector3i() Vector3i {
	return Vector3i{X: v.X, Y: v.Y, Z: 0}
}
