package hypermath

// Box2i is an axis-aligned integer box spanning Min to Max, inclusive of
// Min and exclusive of Max, matching the stdlib image.Rectangle
// convention so pixel regions convert without off-by-one adjustments.
type Box2i struct {
	Min, Max Vector2i
}

// NewBox2i returns the box spanning (x0, y0) to (x1, y1). The corners
// may be given in any order; the result is canonical.
func NewBox2i(x0, y0, x1, y1 int) Box2i {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Box2i{
		Min: Vector2i{X: x0, Y: y0},
		Max: Vector2i{X: x1, Y: y1},
	}
}

// NewBox2iSized returns the box at min covering the given size.
func NewBox2iSized(min, size Vector2i) Box2i {
	return Box2i{Min: min, Max: min.Add(size)}
}

// Width returns Max.X - Min.X.
func (b Box2i) Width() int {
	return b.Max.X - b.Min.X
}

// Height returns Max.Y - Min.Y.
func (b Box2i) Height() int {
	return b.Max.Y - b.Min.Y
}

// Size returns Max - Min.
func (b Box2i) Size() Vector2i {
	return b.Max.Sub(b.Min)
}

// Area returns Width * Height.
func (b Box2i) Area() int {
	return b.Width() * b.Height()
}

// IsEmpty reports whether the box contains no points.
func (b Box2i) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// Contains reports whether p lies inside the box: Min inclusive, Max
// exclusive.
func (b Box2i) Contains(p Vector2i) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// ContainsBox reports whether other lies entirely inside b. An empty
// other is contained everywhere.
func (b Box2i) ContainsBox(other Box2i) bool {
	if other.IsEmpty() {
		return true
	}
	return other.Min.X >= b.Min.X && other.Max.X <= b.Max.X &&
		other.Min.Y >= b.Min.Y && other.Max.Y <= b.Max.Y
}

// Intersects reports whether b and other share at least one point.
func (b Box2i) Intersects(other Box2i) bool {
	return !b.Intersection(other).IsEmpty()
}

// Intersection returns the region common to both boxes, or the zero
// Box2i when they do not overlap.
func (b Box2i) Intersection(other Box2i) Box2i {
	out := Box2i{
		Min: b.Min.Max(other.Min),
		Max: b.Max.Min(other.Max),
	}
	if out.IsEmpty() {
		return Box2i{}
	}
	return out
}

// Union returns the smallest box covering both b and other. Empty
// operands are ignored.
func (b Box2i) Union(other Box2i) Box2i {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return Box2i{
		Min: b.Min.Min(other.Min),
		Max: b.Max.Max(other.Max),
	}
}

// Translated returns the box moved by offset.
func (b Box2i) Translated(offset Vector2i) Box2i {
	return Box2i{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Equals reports exact corner equality.
func (b Box2i) Equals(other Box2i) bool {
	return b == other
}

// Rect2 converts the corners to a float rectangle.
func (b Box2i) Rect2() Rect2 {
	return Rect2{
		Position: b.Min.Vector2(),
		Size:     b.Size().Vector2(),
	}
}
