package hypermath

import "iter"

// Vector2b is a two-component boolean vector: a per-component mask for
// 2D predicates, in the manner of shader-language bvec2.
type Vector2b struct {
	X, Y bool
}

// Named Vector2b values.
var (
	Vector2bFalse = NewVector2bSplat(false)
	Vector2bTrue  = NewVector2bSplat(true)
)

// NewVector2b returns the mask (x, y).
func NewVector2b(x, y bool) Vector2b {
	return Vector2b{X: x, Y: y}
}

// NewVector2bSplat returns the mask (s, s).
func NewVector2bSplat(s bool) Vector2b {
	return Vector2b{X: s, Y: s}
}

// At returns component i in declaration order (0 = X, 1 = Y). It panics
// with an error wrapping ErrIndexOutOfRange for any other index.
func (v Vector2b) At(i int) bool {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(indexError(i, 2))
}

// Components yields the components in declaration order.
func (v Vector2b) Components() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		_ = yield(v.X) && yield(v.Y)
	}
}

// Equals reports exact component equality.
func (v Vector2b) Equals(other Vector2b) bool {
	return v == other
}

// And returns the component-wise logical AND of v and other.
func (v Vector2b) And(other Vector2b) Vector2b {
	return Vector2b{X: v.X && other.X, Y: v.Y && other.Y}
}

// Or returns the component-wise logical OR of v and other.
func (v Vector2b) Or(other Vector2b) Vector2b {
	return Vector2b{X: v.X || other.X, Y: v.Y || other.Y}
}

// Xor returns the component-wise logical XOR of v and other.
func (v Vector2b) Xor(other Vector2b) Vector2b {
	return Vector2b{X: v.X != other.X, Y: v.Y != other.Y}
}

// Not returns the mask with every component inverted.
func (v Vector2b) Not() Vector2b {
	return Vector2b{X: !v.X, Y: !v.Y}
}

// Any reports whether at least one component is true.
func (v Vector2b) Any() bool {
	return v.X || v.Y
}

// All reports whether every component is true.
func (v Vector2b) All() bool {
	return v.X && v.Y
}

// None reports whether every component is false.
func (v Vector2b) None() bool {
	return !v.X && !v.Y
}

// Select returns a vector picking per component from ifTrue where the
// mask component is set and from ifFalse where it is not.
func (v Vector2b) Select(ifTrue, ifFalse Vector2) Vector2 {
	out := ifFalse
	if v.X {
		out.X = ifTrue.X
	}
	if v.Y {
		out.Y = ifTrue.Y
	}
	return out
}

// Vector2i converts the mask to integer components, 1 for true and 0
// for false.
func (v Vector2b) Vector2i() Vector2i {
	var out Vector2i
	if v.X {
		out.X = 1
	}
	if v.Y {
		out.Y = 1
	}
	return out
}
