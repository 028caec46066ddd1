package hypermath

import (
	"math"
	"strconv"
)

// Angle is a rotation expressed in radians. It is a defined type over
// float64, so raw radian values convert in and out with a visible cast
// (Angle(x), float64(a)) and the usual arithmetic operators apply.
// The scale is caller-managed: nothing distinguishes a radian value from
// a degree value accidentally passed through the cast.
//
// Angles are not normalized to any range and may exceed ±2π.
type Angle float64

// Common rotation constants.
const (
	AngleZero      Angle = 0
	AngleQuarterPi Angle = math.Pi / 4
	AngleHalfPi    Angle = math.Pi / 2
	AnglePi        Angle = math.Pi
	AngleTwoPi     Angle = 2 * math.Pi
)

// AngleFromDegrees constructs an Angle from a value in degrees.
func AngleFromDegrees(degrees float64) Angle {
	return Angle(DegToRad(degrees))
}

// Radians returns the raw radian value.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the rotation converted to degrees.
func (a Angle) Degrees() float64 { return RadToDeg(float64(a)) }

// String returns the rotation in degrees for debugging, e.g. "90°". The
// digits reflect the stored radian value, so converted angles can carry
// conversion residue.
func (a Angle) String() string {
	return strconv.FormatFloat(a.Degrees(), 'g', -1, 64) + "°"
}

// Vector returns the unit direction vector (cos a, sin a). The angle is
// truncated to float32 before the trig evaluation: direction vectors feed
// single-precision pipelines, so the extra double-precision digits would
// not survive anyway.
func (a Angle) Vector() Vector2 {
	sin, cos := sincos32(float32(a))
	return NewVector2(cos, sin)
}

// Normalized returns the angle wrapped into [0, 2π).
func (a Angle) Normalized() Angle {
	wrapped := math.Mod(float64(a), float64(AngleTwoPi))
	if wrapped < 0 {
		wrapped += float64(AngleTwoPi)
	}
	return Angle(wrapped)
}

// Equals reports approximate equality of the radian values via AboutEqual64.
func (a Angle) Equals(other Angle, tolerance ...float64) bool {
	return AboutEqual64(float64(a), float64(other), tolerance...)
}
