package hypermath

import (
	"math"
	"testing"
)

func TestCircleMeasures(t *testing.T) {
	c := NewCircle(1, 2, 3)
	if c.Position != NewVector2(1, 2) || c.Radius != 3 {
		t.Errorf("NewCircle = %+v", c)
	}
	if got := c.Diameter(); got != 6 {
		t.Errorf("Diameter = %v, want 6", got)
	}
	if got := c.Area(); !near32(got, float32(9*math.Pi), 1e-4) {
		t.Errorf("Area = %v, want 9π", got)
	}
	if got := c.Circumference(); !near32(got, float32(6*math.Pi), 1e-4) {
		t.Errorf("Circumference = %v, want 6π", got)
	}
}

func TestCircleContains(t *testing.T) {
	c := NewCircle(0, 0, 5)
	tests := []struct {
		name string
		p    Vector2
		want bool
	}{
		{"center", NewVector2(0, 0), true},
		{"interior", NewVector2(3, 3), true},
		{"on boundary", NewVector2(3, 4), true},
		{"just outside", NewVector2(3.1, 4), false},
		{"far outside", NewVector2(10, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCircleIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want bool
	}{
		{"overlapping", NewCircle(0, 0, 2), NewCircle(3, 0, 2), true},
		{"touching externally", NewCircle(0, 0, 1), NewCircle(3, 0, 2), true},
		{"separated", NewCircle(0, 0, 1), NewCircle(4, 0, 2), false},
		{"concentric", NewCircle(0, 0, 1), NewCircle(0, 0, 5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	r := NewRect2(0, 0, 4, 4)
	tests := []struct {
		name string
		c    Circle
		want bool
	}{
		{"center inside", NewCircle(2, 2, 0.5), true},
		{"reaching over an edge", NewCircle(-1, 2, 1.5), true},
		{"reaching over a corner", NewCircle(5, 5, 1.5), true},
		{"short of the corner", NewCircle(5, 5, 1.3), false},
		{"far away", NewCircle(10, 10, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IntersectsRect(r); got != tt.want {
				t.Errorf("IntersectsRect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleTranslatedScaled(t *testing.T) {
	c := NewCircle(1, 2, 3)
	if got := c.Translated(NewVector2(4, -2)); got != NewCircle(5, 0, 3) {
		t.Errorf("Translated = %+v", got)
	}
	if got := c.Scaled(2); got != NewCircle(2, 4, 6) {
		t.Errorf("Scaled(2) = %+v", got)
	}
}

func TestCircleBoundingRect(t *testing.T) {
	got := NewCircle(2, 3, 1.5).BoundingRect()
	if got != NewRect2(0.5, 1.5, 3, 3) {
		t.Errorf("BoundingRect = %+v, want (0.5, 1.5, 3, 3)", got)
	}

	// The bounding rectangle contains every boundary point.
	c := NewCircle(0, 0, 1)
	rect := c.BoundingRect()
	for deg := 0; deg < 360; deg += 15 {
		p := AngleFromDegrees(float64(deg)).Vector()
		if !rect.Contains(p) {
			t.Errorf("boundary point at %d degrees %+v escapes %+v", deg, p, rect)
		}
	}
}

func TestCircleEquals(t *testing.T) {
	c := NewCircle(1, 2, 3)
	if !c.Equals(NewCircle(1, 2, 3)) {
		t.Error("Equals rejected an identical circle")
	}
	if c.Equals(NewCircle(1, 2, 4)) {
		t.Error("Equals accepted a different radius")
	}
	if !c.Equals(NewCircle(1, 2, 3.001), 0.01) {
		t.Error("explicit tolerance rejected a close circle")
	}
}
