package hypermath

// Rect2 is an axis-aligned rectangle described by its origin corner and
// size. Corner names follow screen-space convention: Position is the
// top-left corner with Y growing downward. Negative sizes are
// representable but most predicates assume Size components >= 0.
type Rect2 struct {
	Position, Size Vector2
}

// NewRect2 returns the rectangle at (x, y) with the given extent.
func NewRect2(x, y, width, height float32) Rect2 {
	return Rect2{
		Position: Vector2{X: x, Y: y},
		Size:     Vector2{X: width, Y: height},
	}
}

// NewRect2Between returns the rectangle spanning the two opposite
// corners lo and hi. The corners may be given in any order.
func NewRect2Between(lo, hi Vector2) Rect2 {
	mn := lo.Min(hi)
	return Rect2{Position: mn, Size: lo.Max(hi).Sub(mn)}
}

// TopLeft returns Position.
func (r Rect2) TopLeft() Vector2 {
	return r.Position
}

// TopRight returns the corner at (Position.X + Size.X, Position.Y).
func (r Rect2) TopRight() Vector2 {
	return Vector2{X: r.Position.X + r.Size.X, Y: r.Position.Y}
}

// BottomLeft returns the corner at (Position.X, Position.Y + Size.Y).
func (r Rect2) BottomLeft() Vector2 {
	return Vector2{X: r.Position.X, Y: r.Position.Y + r.Size.Y}
}

// BottomRight returns Position + Size.
func (r Rect2) BottomRight() Vector2 {
	return r.Position.Add(r.Size)
}

// Center returns the midpoint of the rectangle.
func (r Rect2) Center() Vector2 {
	return r.Position.Add(r.Size.MulScalar(0.5))
}

// Area returns Size.X * Size.Y.
func (r Rect2) Area() float32 {
	return r.Size.Production()
}

// IsEmpty reports whether the rectangle covers no area.
func (r Rect2) IsEmpty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Vertices returns the four corners in clockwise screen order starting
// at Position.
func (r Rect2) Vertices() [4]Vector2 {
	return [4]Vector2{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

// Contains reports whether p lies inside the rectangle. All four edges
// are inclusive.
func (r Rect2) Contains(p Vector2) bool {
	return p.X >= r.Position.X && p.X <= r.Position.X+r.Size.X &&
		p.Y >= r.Position.Y && p.Y <= r.Position.Y+r.Size.Y
}

// ContainsRect reports whether other lies entirely inside r, edges
// inclusive.
func (r Rect2) ContainsRect(other Rect2) bool {
	return r.Contains(other.Position) && r.Contains(other.BottomRight())
}

// Intersects reports whether the interiors of r and other overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect2) Intersects(other Rect2) bool {
	return r.Position.X < other.Position.X+other.Size.X &&
		other.Position.X < r.Position.X+r.Size.X &&
		r.Position.Y < other.Position.Y+other.Size.Y &&
		other.Position.Y < r.Position.Y+r.Size.Y
}

// Intersection returns the overlapping region of r and other, or the
// zero Rect2 when they do not intersect.
func (r Rect2) Intersection(other Rect2) Rect2 {
	lo := r.Position.Max(other.Position)
	hi := r.BottomRight().Min(other.BottomRight())
	if hi.X <= lo.X || hi.Y <= lo.Y {
		return Rect2{}
	}
	return Rect2{Position: lo, Size: hi.Sub(lo)}
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect2) Union(other Rect2) Rect2 {
	lo := r.Position.Min(other.Position)
	hi := r.BottomRight().Max(other.BottomRight())
	return Rect2{Position: lo, Size: hi.Sub(lo)}
}

// Translated returns the rectangle moved by offset.
func (r Rect2) Translated(offset Vector2) Rect2 {
	return Rect2{Position: r.Position.Add(offset), Size: r.Size}
}

// Scaled returns the rectangle with both position and size multiplied
// by factor, scaling around the origin.
func (r Rect2) Scaled(factor float32) Rect2 {
	return Rect2{
		Position: r.Position.MulScalar(factor),
		Size:     r.Size.MulScalar(factor),
	}
}

// Equals reports component-wise approximate equality via AboutEqual.
func (r Rect2) Equals(other Rect2, tolerance ...float32) bool {
	return r.Position.Equals(other.Position, tolerance...) &&
		r.Size.Equals(other.Size, tolerance...)
}

// Box2i truncates the corners toward zero into an integer box.
func (r Rect2) Box2i() Box2i {
	return Box2i{
		Min: r.Position.Vector2i(),
		Max: r.BottomRight().Vector2i(),
	}
}
