// Package hrand generates random values of the hypermath types:
// vectors in ranges, points inside shapes, angles, colors, and
// uniformly distributed rotations.
//
// All helpers draw from an explicit generator so simulations stay
// reproducible: create one with New(seed) and thread it through
// instead of reaching for package-level randomness.
package hrand

import (
	"math"
	"math/rand/v2"

	hypermath "github.com/technologists-team/hypercube-mathematics"
)

// Rand wraps a math/rand/v2 generator with hypermath-typed draws. The
// embedded *rand.Rand remains available for plain numeric use.
type Rand struct {
	*rand.Rand
}

// New returns a generator seeded deterministically from seed. A zero
// seed is replaced with 1 so the zero value of a config still produces
// a working stream.
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{Rand: rand.New(rand.NewPCG(seed, seed))}
}

// NewFrom wraps an existing generator, sharing its stream.
func NewFrom(rng *rand.Rand) *Rand {
	return &Rand{Rand: rng}
}

// Float32In returns a uniform value in [lo, hi).
func (r *Rand) Float32In(lo, hi float32) float32 {
	return lo + (hi-lo)*r.Float32()
}

// Float64In returns a uniform value in [lo, hi).
func (r *Rand) Float64In(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// IntIn returns a uniform value in the half-open range [lo, hi). It
// panics if hi does not exceed lo.
func (r *Rand) IntIn(lo, hi int) int {
	return lo + r.IntN(hi-lo)
}

// Angle returns a uniform angle in [0, 2π).
func (r *Rand) Angle() hypermath.Angle {
	return hypermath.Angle(r.Float64() * 2 * math.Pi)
}

// Vector2In returns a vector with each component uniform between the
// matching components of lo and hi.
func (r *Rand) Vector2In(lo, hi hypermath.Vector2) hypermath.Vector2 {
	return hypermath.NewVector2(
		r.Float32In(lo.X, hi.X),
		r.Float32In(lo.Y, hi.Y),
	)
}

// Vector3In returns a vector with each component uniform between the
// matching components of lo and hi.
func (r *Rand) Vector3In(lo, hi hypermath.Vector3) hypermath.Vector3 {
	return hypermath.NewVector3(
		r.Float32In(lo.X, hi.X),
		r.Float32In(lo.Y, hi.Y),
		r.Float32In(lo.Z, hi.Z),
	)
}

// Vector2iIn returns a uniform cell of the box, Min inclusive and Max
// exclusive. It panics if the box is empty.
func (r *Rand) Vector2iIn(box hypermath.Box2i) hypermath.Vector2i {
	return hypermath.NewVector2i(
		box.Min.X+r.IntN(box.Width()),
		box.Min.Y+r.IntN(box.Height()),
	)
}

// UnitVector2 returns a uniform direction on the unit circle.
func (r *Rand) UnitVector2() hypermath.Vector2 {
	return r.Angle().Vector()
}

// UnitVector3 returns a uniform direction on the unit sphere, drawn by
// the cylinder-projection method: uniform height, uniform azimuth.
func (r *Rand) UnitVector3() hypermath.Vector3 {
	z := r.Float64In(-1, 1)
	azimuth := r.Float64() * 2 * math.Pi
	ring := math.Sqrt(1 - z*z)
	return hypermath.NewVector3(
		float32(ring*math.Cos(azimuth)),
		float32(ring*math.Sin(azimuth)),
		float32(z),
	)
}

// InsideUnitCircle returns a uniform point inside the unit disc. The
// radius is the square root of a uniform draw; a plain uniform radius
// would crowd points toward the center.
func (r *Rand) InsideUnitCircle() hypermath.Vector2 {
	radius := float32(math.Sqrt(r.Float64()))
	return r.UnitVector2().MulScalar(radius)
}

// InsideCircle returns a uniform point inside c.
func (r *Rand) InsideCircle(c hypermath.Circle) hypermath.Vector2 {
	return c.Position.Add(r.InsideUnitCircle().MulScalar(c.Radius))
}

// InsideRect returns a uniform point inside rect.
func (r *Rand) InsideRect(rect hypermath.Rect2) hypermath.Vector2 {
	return r.Vector2In(rect.Position, rect.BottomRight())
}

// Color returns a random opaque color.
func (r *Rand) Color() hypermath.Color {
	return hypermath.NewColorRGB(r.Float32(), r.Float32(), r.Float32())
}

// Quaternion returns a rotation uniform over all orientations, using
// the subgroup algorithm of Shoemake.
func (r *Rand) Quaternion() hypermath.Quaternion {
	u1 := r.Float64()
	theta1 := r.Float64() * 2 * math.Pi
	theta2 := r.Float64() * 2 * math.Pi
	s1, c1 := math.Sincos(theta1)
	s2, c2 := math.Sincos(theta2)
	a := math.Sqrt(1 - u1)
	b := math.Sqrt(u1)
	return hypermath.NewQuaternion(
		float32(a*s1),
		float32(a*c1),
		float32(b*s2),
		float32(b*c2),
	)
}
