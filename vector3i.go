package hypermath

import (
	"iter"
	"math"
)

// Vector3i is a three-component integer vector, used for voxel and chunk
// coordinates. Arithmetic is exact integer arithmetic.
type Vector3i struct {
	X, Y, Z int
}

// Named Vector3i values.
var (
	Vector3iZero  = NewVector3iSplat(0)
	Vector3iOne   = NewVector3iSplat(1)
	Vector3iUnitX = NewVector3i(1, 0, 0)
	Vector3iUnitY = NewVector3i(0, 1, 0)
	Vector3iUnitZ = NewVector3i(0, 0, 1)
)

// NewVector3i returns the vector (x, y, z).
func NewVector3i(x, y, z int) Vector3i {
	return Vector3i{X: x, Y: y, Z: z}
}

// NewVector3iSplat returns the vector (s, s, s).
func NewVector3iSplat(s int) Vector3i {
	return Vector3i{X: s, Y: s, Z: s}
}

// At returns component i in declaration order (0 = X, 1 = Y, 2 = Z).
// It panics with an error wrapping ErrIndexOutOfRange for any other
// index.
func (v Vector3i) At(i int) int {
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
func (v Vector3i) Components() iter.Seq[int] {
	return func(yield func(int) bool) {
		_ = yield(v.X) && yield(v.Y) && yield(v.Z)
	}
}

// LengthSquared returns X² + Y² + Z² as an exact integer.
func (v Vector3i) LengthSquared() int {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the vector magnitude as a float.
func (v Vector3i) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// Summation returns X + Y + Z.
func (v Vector3i) Summation() int {
	return v.X + v.Y + v.Z
}

// Production returns X * Y * Z.
func (v Vector3i) Production() int {
	return v.X * v.Y * v.Z
}

// Add returns v + other component-wise.
func (v Vector3i) Add(other Vector3i) Vector3i {
	return Vector3i{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// AddScalar returns the vector with s added to every component.
func (v Vector3i) AddScalar(s int) Vector3i {
	return Vector3i{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// Sub returns v - other component-wise.
func (v Vector3i) Sub(other Vector3i) Vector3i {
	return Vector3i{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// SubScalar returns the vector with s subtracted from every component.
func (v Vector3i) SubScalar(s int) Vector3i {
	return Vector3i{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// Mul returns the component-wise product of v and other.
func (v Vector3i) Mul(other Vector3i) Vector3i {
	return Vector3i{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

// MulScalar returns the vector scaled by s.
func (v Vector3i) MulScalar(s int) Vector3i {
	return Vector3i{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the component-wise quotient of v and other, truncated
// toward zero like Go integer division. Zero divisors panic.
func (v Vector3i) Div(other Vector3i) Vector3i {
	return Vector3i{X: v.X / other.X, Y: v.Y / other.Y, Z: v.Z / other.Z}
}

// DivScalar returns the vector divided by s, truncated toward zero.
func (v Vector3i) DivScalar(s int) Vector3i {
	return Vector3i{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Neg returns the vector with every component negated.
func (v Vector3i) Neg() Vector3i {
	return Vector3i{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Less reports magnitude ordering; see Vector2.Less.
func (v Vector3i) Less(other Vector3i) bool {
	return v.LengthSquared() < other.LengthSquared()
}

// LessOrEqual reports magnitude ordering; see Vector2.Less.
func (v Vector3i) LessOrEqual(other Vector3i) bool {
	return v.LengthSquared() <= other.LengthSquared()
}

// Greater reports magnitude ordering; see Vector2.Less.
func (v Vector3i) Greater(other Vector3i) bool {
	return v.LengthSquared() > other.LengthSquared()
}

// GreaterOrEqual reports magnitude ordering; see Vector2.Less.
func (v Vector3i) GreaterOrEqual(other Vector3i) bool {
	return v.LengthSquared() >= other.LengthSquared()
}

// Equals reports exact component equality.
func (v Vector3i) Equals(other Vector3i) bool {
	return v == other
}

// Dot returns the dot product of v and other.
func (v Vector3i) Dot(other Vector3i) int {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the vector cross product of v and other.
func (v Vector3i) Cross(other Vector3i) Vector3i {
	return Vector3i{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Distance returns the Euclidean distance between v and other.
func (v Vector3i) Distance(other Vector3i) float32 {
	return other.Sub(v).Length()
}

// DistanceSquared returns the squared distance as an exact integer.
func (v Vector3i) DistanceSquared(other Vector3i) int {
	return other.Sub(v).LengthSquared()
}

// Clamp restricts each component to the inclusive range described by the
// matching components of lo and hi.
func (v Vector3i) Clamp(lo, hi Vector3i) Vector3i {
	return Vector3i{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
		Z: Clamp(v.Z, lo.Z, hi.Z),
	}
}

// ClampScalar restricts every component to the inclusive range [lo, hi].
func (v Vector3i) ClampScalar(lo, hi int) Vector3i {
	return Vector3i{
		X: Clamp(v.X, lo, hi),
		Y: Clamp(v.Y, lo, hi),
		Z: Clamp(v.Z, lo, hi),
	}
}

// Min returns the component-wise minimum of v and other.
func (v Vector3i) Min(other Vector3i) Vector3i {
	return Vector3i{
		X: min(v.X, other.X),
		Y: min(v.Y, other.Y),
		Z: min(v.Z, other.Z),
	}
}

// Max returns the component-wise maximum of v and other.
func (v Vector3i) Max(other Vector3i) Vector3i {
	return Vector3i{
		X: max(v.X, other.X),
		Y: max(v.Y, other.Y),
		Z: max(v.Z, other.Z),
	}
}

// Abs returns the component-wise absolute value.
func (v Vector3i) Abs() Vector3i {
	return Vector3i{X: Abs(v.X), Y: Abs(v.Y), Z: Abs(v.Z)}
}

// Sign returns the component-wise sign (-1, 0, or 1).
func (v Vector3i) Sign() Vector3i {
	return Vector3i{X: Sign(v.X), Y: Sign(v.Y), Z: Sign(v.Z)}
}

// MoveTowards steps each component toward the matching component of
// target by at most distance without overshooting. A negative distance
// panics with an error wrapping ErrNegativeDistance.
func (v Vector3i) MoveTowards(target Vector3i, distance int) Vector3i {
	return Vector3i{
		X: MoveTowardsInt(v.X, target.X, distance),
		Y: MoveTowardsInt(v.Y, target.Y, distance),
		Z: MoveTowardsInt(v.Z, target.Z, distance),
	}
}

// Vector3 converts the components to single precision.
func (v Vector3i) Vector3() Vector3 {
	return Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// Vector2i drops the Z component.
func (v Vector3i) Vector2i() Vector2i {
	return Vector2i{X: v.X, Y: v.Y}
}
