// Package hypermath provides the foundational numerics for 2D and 3D
// graphics code: vectors, matrices, angles, quaternions, colors, and
// shapes.
//
// # Overview
//
// hypermath is a pure Go value-type math library for game engines and
// renderers. Every type is a small immutable struct: operations return
// new values, nothing mutates in place, and everything is safe to share
// across goroutines without synchronization.
//
// # Quick Start
//
//	import hm "github.com/technologists-team/hypercube-mathematics"
//
//	// Vectors
//	v := hm.NewVector2(3, 4)
//	n := v.Normalized()
//
//	// Transforms compose right to left: scale, then rotate, then move
//	model := hm.NewMatrix4x4Transform(
//		hm.NewVector3(0, 0, -5),
//		hm.NewQuaternionAxisAngle(hm.Vector3UnitY, hm.AngleFromDegrees(45)),
//		hm.Vector3One,
//	)
//	p := model.TransformPoint(hm.NewVector3(1, 0, 0))
//
//	// Projection
//	proj := hm.NewMatrix4x4Perspective(hm.AngleFromDegrees(60), 16.0/9, 0.1, 100)
//	clip := proj.Transform(hm.NewVector4From3(p, 1))
//
// # Coordinate System
//
// One geometric convention holds across the package:
//   - Right-handed axes; cameras look down negative Z
//   - Angles in radians; positive rotation is counterclockwise, so
//     rotating (1, 0) by +90 degrees yields (0, 1)
//   - Matrix3x3 and Matrix4x4 transform column vectors with the matrix
//     on the left and carry translation in the last column
//   - Matrix3x2 is the 2D affine exception: points multiply on the left
//     as row vectors and translation sits in the last row
//
// # Equality
//
// Floating-point types compare through relative-tolerance predicates
// (AboutEqual, AboutEqual64) rather than ==. The default tolerance is
// strict; operations that accumulate rounding should pass an explicit
// tolerance to Equals.
//
// # Errors
//
// Domain errors follow three tiers: indexers and validated constructors
// panic with errors wrapping the package sentinels (programmer error),
// parsers return errors (data error), and IEEE-754 edge cases such as
// dividing by a zero length flow through silently as NaN or Inf
// (documented per operation).
package hypermath

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
