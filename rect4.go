package hypermath

// Rect4 holds four per-edge offsets: margins, padding, or border widths
// around a rectangle. Offsets are distances, not coordinates; Grow and
// Shrink apply them to a Rect2.
type Rect4 struct {
	Left, Top, Right, Bottom float32
}

// Rect4Zero is the all-zero offset set.
var Rect4Zero = NewRect4Splat(0)

// NewRect4 returns the offsets with the given edge values.
func NewRect4(left, top, right, bottom float32) Rect4 {
	return Rect4{Left: left, Top: top, Right: right, Bottom: bottom}
}

// NewRect4Splat returns the offsets with every edge set to s.
func NewRect4Splat(s float32) Rect4 {
	return Rect4{Left: s, Top: s, Right: s, Bottom: s}
}

// Horizontal returns Left + Right.
func (r Rect4) Horizontal() float32 {
	return r.Left + r.Right
}

// Vertical returns Top + Bottom.
func (r Rect4) Vertical() float32 {
	return r.Top + r.Bottom
}

// Size returns the total extent the offsets add to a rectangle.
func (r Rect4) Size() Vector2 {
	return Vector2{X: r.Horizontal(), Y: r.Vertical()}
}

// Add returns the edge-wise sum of r and other, stacking two offset
// sets.
func (r Rect4) Add(other Rect4) Rect4 {
	return Rect4{
		Left:   r.Left + other.Left,
		Top:    r.Top + other.Top,
		Right:  r.Right + other.Right,
		Bottom: r.Bottom + other.Bottom,
	}
}

// MulScalar returns the offsets with every edge multiplied by s.
func (r Rect4) MulScalar(s float32) Rect4 {
	return Rect4{
		Left:   r.Left * s,
		Top:    r.Top * s,
		Right:  r.Right * s,
		Bottom: r.Bottom * s,
	}
}

// Grow expands rect outward by the offsets on each edge.
func (r Rect4) Grow(rect Rect2) Rect2 {
	return Rect2{
		Position: rect.Position.Sub(Vector2{X: r.Left, Y: r.Top}),
		Size:     rect.Size.Add(r.Size()),
	}
}

// Shrink insets rect inward by the offsets on each edge. Offsets larger
// than the rectangle produce negative sizes, which IsEmpty reports.
func (r Rect4) Shrink(rect Rect2) Rect2 {
	return Rect2{
		Position: rect.Position.Add(Vector2{X: r.Left, Y: r.Top}),
		Size:     rect.Size.Sub(r.Size()),
	}
}

// Equals reports edge-wise approximate equality via AboutEqual.
func (r Rect4) Equals(other Rect4, tolerance ...float32) bool {
	return AboutEqual(r.Left, other.Left, tolerance...) &&
		AboutEqual(r.Top, other.Top, tolerance...) &&
		AboutEqual(r.Right, other.Right, tolerance...) &&
		AboutEqual(r.Bottom, other.Bottom, tolerance...)
}

// Vector4 reinterprets the offsets as (Left, Top, Right, Bottom) vector
// components.
func (r Rect4) Vector4() Vector4 {
	return Vector4{X: r.Left, Y: r.Top, Z: r.Right, W: r.Bottom}
}
