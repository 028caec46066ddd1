package hypermath

import "math"

// Circle is a circle described by center and radius.
type Circle struct {
	Position Vector2
	Radius   float32
}

// NewCircle returns the circle centered at (x, y) with the given
// radius.
func NewCircle(x, y, radius float32) Circle {
	return Circle{Position: Vector2{X: x, Y: y}, Radius: radius}
}

// Diameter returns twice the radius.
func (c Circle) Diameter() float32 {
	return 2 * c.Radius
}

// Area returns π * Radius².
func (c Circle) Area() float32 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns 2π * Radius.
func (c Circle) Circumference() float32 {
	return 2 * math.Pi * c.Radius
}

// Contains reports whether p lies inside the circle, boundary
// inclusive. The test compares squared distances and takes no square
// root.
func (c Circle) Contains(p Vector2) bool {
	return c.Position.DistanceSquared(p) <= c.Radius*c.Radius
}

// Intersects reports whether the two circles share at least one point,
// boundary inclusive.
func (c Circle) Intersects(other Circle) bool {
	reach := c.Radius + other.Radius
	return c.Position.DistanceSquared(other.Position) <= reach*reach
}

// IntersectsRect reports whether the circle and rectangle share at
// least one point. The center is clamped into the rectangle and the
// clamped point tested against the radius, so the check is exact for
// all relative positions.
func (c Circle) IntersectsRect(r Rect2) bool {
	closest := c.Position.Clamp(r.Position, r.BottomRight())
	return c.Position.DistanceSquared(closest) <= c.Radius*c.Radius
}

// Translated returns the circle moved by offset.
func (c Circle) Translated(offset Vector2) Circle {
	return Circle{Position: c.Position.Add(offset), Radius: c.Radius}
}

// Scaled returns the circle with position and radius multiplied by
// factor, scaling around the origin.
func (c Circle) Scaled(factor float32) Circle {
	return Circle{
		Position: c.Position.MulScalar(factor),
		Radius:   c.Radius * factor,
	}
}

// BoundingRect returns the smallest rectangle covering the circle.
func (c Circle) BoundingRect() Rect2 {
	return Rect2{
		Position: c.Position.SubScalar(c.Radius),
		Size:     NewVector2Splat(c.Diameter()),
	}
}

// Equals reports component-wise approximate equality via AboutEqual.
func (c Circle) Equals(other Circle, tolerance ...float32) bool {
	return c.Position.Equals(other.Position, tolerance...) &&
		AboutEqual(c.Radius, other.Radius, tolerance...)
}
