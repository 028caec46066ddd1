package hypermath

import "iter"

// Quaternion is a rotation in 3D space stored as (X, Y, Z, W) with W the
// scalar part. Rotation math assumes unit length; constructors produce
// unit quaternions but arithmetic does not re-normalize, so long chains
// of Multiply should be Normalized periodically.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuaternionIdentity is the no-rotation quaternion.
var QuaternionIdentity = NewQuaternion(0, 0, 0, 1)

// NewQuaternion returns the quaternion with the given components. No
// normalization is applied.
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// NewQuaternionAxisAngle returns the rotation of angle around axis,
// counterclockwise looking down the axis toward the origin. The axis is
// normalized internally; a zero axis yields NaN components.
func NewQuaternionAxisAngle(axis Vector3, angle Angle) Quaternion {
	sin, cos := sincos32(float32(angle) / 2)
	n := axis.Normalized()
	return Quaternion{X: n.X * sin, Y: n.Y * sin, Z: n.Z * sin, W: cos}
}

// NewQuaternionEuler returns the rotation composed from yaw around Y,
// pitch around X, and roll around Z, applied in roll, pitch, yaw order.
func NewQuaternionEuler(yaw, pitch, roll Angle) Quaternion {
	sy, cy := sincos32(float32(yaw) / 2)
	sp, cp := sincos32(float32(pitch) / 2)
	sr, cr := sincos32(float32(roll) / 2)
	return Quaternion{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// At returns component i in declaration order (0 = X through 3 = W).
// It panics with an error wrapping ErrIndexOutOfRange for any other
// index.
func (q Quaternion) At(i int) float32 {
	switch i {
	case 0:
		return q.X
	case 1:
		return q.Y
	case 2:
		return q.Z
	case 3:
		return q.W
	}
	panic(indexError(i, 4))
}

// Components yields the components in declaration order.
func (q Quaternion) Components() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		_ = yield(q.X) && yield(q.Y) && yield(q.Z) && yield(q.W)
	}
}

// LengthSquared returns X² + Y² + Z² + W².
func (q Quaternion) LengthSquared() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the quaternion magnitude through the reciprocal square
// root estimate.
func (q Quaternion) Length() float32 {
	ls := q.LengthSquared()
	return ls * FastInverseSqrt(ls)
}

// Normalized returns the unit-length copy. A zero quaternion produces
// NaN components.
func (q Quaternion) Normalized() Quaternion {
	l := q.Length()
	return Quaternion{X: q.X / l, Y: q.Y / l, Z: q.Z / l, W: q.W / l}
}

// Conjugate returns the quaternion with the vector part negated. For a
// unit quaternion the conjugate is the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the multiplicative inverse conjugate/lengthSquared.
// Prefer Conjugate when q is known to be unit length.
func (q Quaternion) Inverse() Quaternion {
	ls := q.LengthSquared()
	return Quaternion{X: -q.X / ls, Y: -q.Y / ls, Z: -q.Z / ls, W: q.W / ls}
}

// Neg returns the quaternion with every component negated. It represents
// the same rotation as q.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Multiply returns the Hamilton product q·other. As a rotation it
// applies other first and q second, so the composition order matches
// matrix multiplication with the matrix on the left.
func (q Quaternion) Multiply(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Dot returns the four-component dot product of q and other.
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Equals reports component-wise approximate equality via AboutEqual.
// Note that q and q.Neg() encode the same rotation but do not compare
// equal here; compare Abs(Dot) against 1 for rotation equality.
func (q Quaternion) Equals(other Quaternion, tolerance ...float32) bool {
	return AboutEqual(q.X, other.X, tolerance...) &&
		AboutEqual(q.Y, other.Y, tolerance...) &&
		AboutEqual(q.Z, other.Z, tolerance...) &&
		AboutEqual(q.W, other.W, tolerance...)
}

// Transform applies the rotation to v: q·v·q⁻¹ for unit q, computed
// without forming the intermediate quaternions.
func (q Quaternion) Transform(v Vector3) Vector3 {
	xyz := Vector3{X: q.X, Y: q.Y, Z: q.Z}
	t := xyz.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q.W)).Add(xyz.Cross(t))
}

// Lerp interpolates component-wise from q toward target by t and
// normalizes the result. It takes the short arc; for large rotation
// differences prefer Slerp.
func (q Quaternion) Lerp(target Quaternion, t float32) Quaternion {
	if q.Dot(target) < 0 {
		target = target.Neg()
	}
	return Quaternion{
		X: Lerp(q.X, target.X, t),
		Y: Lerp(q.Y, target.Y, t),
		Z: Lerp(q.Z, target.Z, t),
		W: Lerp(q.W, target.W, t),
	}.Normalized()
}

// Slerp interpolates along the great arc from q to target by t at
// constant angular velocity, taking the short way around. Nearly equal
// rotations fall back to Lerp to avoid dividing by a vanishing sine.
func (q Quaternion) Slerp(target Quaternion, t float32) Quaternion {
	dot := q.Dot(target)
	if dot < 0 {
		target = target.Neg()
		dot = -dot
	}
	if dot > 0.9995 {
		return q.Lerp(target, t)
	}
	theta := acos32(dot)
	sinTheta, _ := sincos32(theta)
	wa, _ := sincos32((1 - t) * theta)
	wb, _ := sincos32(t * theta)
	wa /= sinTheta
	wb /= sinTheta
	return Quaternion{
		X: q.X*wa + target.X*wb,
		Y: q.Y*wa + target.Y*wb,
		Z: q.Z*wa + target.Z*wb,
		W: q.W*wa + target.W*wb,
	}
}

// Vector4 reinterprets the components as a plain vector.
func (q Quaternion) Vector4() Vector4 {
	return Vector4{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}
