package hypermath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultTolerance is the relative tolerance applied by the approximate
// equality predicates when the caller passes none. The comparison scales
// with operand magnitude, so for single-precision values whose difference
// comes from accumulated arithmetic error an explicit, looser tolerance is
// usually wanted.
const DefaultTolerance = 1e-15

// Number constrains the scalar types accepted by the generic helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// AboutEqual reports whether a and b are equal within a relative tolerance:
// |a-b| <= max(|a|, |b|) * tolerance. The comparison is scale-sensitive;
// callers that need an absolute epsilon must pre-scale their operands.
func AboutEqual(a, b float32, tolerance ...float32) bool {
	tol := float32(DefaultTolerance)
	if len(tolerance) > 0 {
		tol = tolerance[0]
	}
	return Abs(a-b) <= max(Abs(a), Abs(b))*tol
}

// AboutEqual64 is the double-precision form of AboutEqual.
func AboutEqual64(a, b float64, tolerance ...float64) bool {
	tol := float64(DefaultTolerance)
	if len(tolerance) > 0 {
		tol = tolerance[0]
	}
	return Abs(a-b) <= max(Abs(a), Abs(b))*tol
}

// FastInverseSqrt returns an approximation of 1/sqrt(v) using the bit-level
// initial guess refined by two Newton-Raphson steps. Relative error stays
// below 5e-6 for normal positive inputs; zero and subnormal inputs produce
// large finite garbage rather than +Inf.
func FastInverseSqrt(v float32) float32 {
	half := 0.5 * v
	y := math.Float32frombits(0x5f3759df - math.Float32bits(v)>>1)
	y *= 1.5 - half*y*y
	y *= 1.5 - half*y*y
	return y
}

// FastInverseSqrt64 is the double-precision form of FastInverseSqrt.
func FastInverseSqrt64(v float64) float64 {
	half := 0.5 * v
	y := math.Float64frombits(0x5fe6eb50c7b537a9 - math.Float64bits(v)>>1)
	y *= 1.5 - half*y*y
	y *= 1.5 - half*y*y
	return y
}

// MoveTowards steps current toward target by at most distance, never
// overshooting. The step is not validated: a negative distance moves away
// from target, asymmetrically around the current<target branch. Exact
// integer callers that need validation use MoveTowardsInt.
func MoveTowards[T Number](current, target, distance T) T {
	if current < target {
		return min(current+distance, target)
	}
	return max(current-distance, target)
}

// MoveTowardsInt is the exact-integer MoveTowards. Unlike the generic form
// it panics with an error wrapping ErrNegativeDistance when distance is
// negative.
func MoveTowardsInt(current, target, distance int) int {
	if distance < 0 {
		panic(negativeDistanceError(distance))
	}
	return MoveTowards(current, target, distance)
}

// Lerp linearly interpolates from a to b by t. t is not clamped: values
// outside [0, 1] extrapolate.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of v.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0, or 1 according to the sign of v.
func Sign[T Number](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -T(1)
	}
	return 0
}

// Round rounds v to the nearest integer, halves away from zero. An
// optional digit count rounds to that many decimal places instead.
func Round[T constraints.Float](v T, digits ...int) T {
	if len(digits) == 0 || digits[0] == 0 {
		return T(math.Round(float64(v)))
	}
	p := math.Pow(10, float64(digits[0]))
	return T(math.Round(float64(v)*p) / p)
}

// DegToRad converts degrees to radians.
func DegToRad[T constraints.Float](degrees T) T {
	return degrees * (math.Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg[T constraints.Float](radians T) T {
	return radians * (180 / math.Pi)
}

// Single-precision trig helpers. The argument is truncated to float32
// before evaluation, matching the library-wide choice of single-precision
// trig on hot paths.

func sincos32(x float32) (sin, cos float32) {
	s, c := math.Sincos(float64(x))
	return float32(s), float32(c)
}

func tan32(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func acos32(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

func floor32(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

func ceil32(x float32) float32 {
	return float32(math.Ceil(float64(x)))
}
