package hypermath

import (
	"math"
	"testing"
)

func TestAboutEqual(t *testing.T) {
	tests := []struct {
		name      string
		a, b      float32
		tolerance []float32
		want      bool
	}{
		{"identical", 1.5, 1.5, nil, true},
		{"both zero", 0, 0, nil, true},
		{"adjacent values rejected by default", 1, math.Nextafter32(1, 2), nil, false},
		{"inside explicit tolerance", 100, 101, []float32{0.01}, true},
		{"outside explicit tolerance", 100, 102, []float32{0.01}, false},
		{"negative operands", -100, -101, []float32{0.01}, true},
		{"zero against small", 0, 1e-20, nil, false},
		{"large magnitudes scale", 1e10, 1.0000001e10, []float32{1e-3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AboutEqual(tt.a, tt.b, tt.tolerance...)
			if got != tt.want {
				t.Errorf("AboutEqual(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.tolerance, got, tt.want)
			}
		})
	}
}

func TestAboutEqual64(t *testing.T) {
	tests := []struct {
		name      string
		a, b      float64
		tolerance []float64
		want      bool
	}{
		{"identical", 3.25, 3.25, nil, true},
		{"one ulp inside default", 1, math.Nextafter(1, 2), nil, true},
		{"well outside default", 1, 1.00000000000002, nil, false},
		{"inside explicit tolerance", 100, 101, []float64{0.01}, true},
		{"outside explicit tolerance", 100, 102, []float64{0.01}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AboutEqual64(tt.a, tt.b, tt.tolerance...)
			if got != tt.want {
				t.Errorf("AboutEqual64(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.tolerance, got, tt.want)
			}
		})
	}
}

func TestFastInverseSqrt(t *testing.T) {
	inputs := []float32{1e-4, 0.01, 0.25, 0.5, 1, 2, 4, 9, 100, 123.456, 1e4, 1e8}
	for _, v := range inputs {
		got := FastInverseSqrt(v)
		want := 1 / float32(math.Sqrt(float64(v)))
		if Abs(got-want)/want > 1e-5 {
			t.Errorf("FastInverseSqrt(%v) = %v, want %v within 1e-5 relative", v, got, want)
		}
	}
}

func TestFastInverseSqrt64(t *testing.T) {
	inputs := []float64{1e-8, 0.01, 0.25, 1, 2, 9, 100, 123.456, 1e8}
	for _, v := range inputs {
		got := FastInverseSqrt64(v)
		want := 1 / math.Sqrt(v)
		if math.Abs(got-want)/want > 1e-5 {
			t.Errorf("FastInverseSqrt64(%v) = %v, want %v within 1e-5 relative", v, got, want)
		}
	}
}

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		name                      string
		current, target, distance float32
		want                      float32
	}{
		{"partial step up", 0, 10, 3, 3},
		{"clamps at target", 9, 10, 3, 10},
		{"partial step down", 10, 0, 3, 7},
		{"crosses zero", 2, -5, 3, -1},
		{"clamps from below", -4, -1, 10, -1},
		{"already there", 5, 5, 2, 5},
		{"zero distance", 0, 10, 0, 0},
		{"negative distance moves away downward", 0, 10, -3, -3},
		{"negative distance moves away upward", 10, 0, -3, 13},
		{"negative distance at target drifts up", 5, 5, -3, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveTowards(tt.current, tt.target, tt.distance)
			if got != tt.want {
				t.Errorf("MoveTowards(%v, %v, %v) = %v, want %v", tt.current, tt.target, tt.distance, got, tt.want)
			}
		})
	}
}

func TestMoveTowardsInt(t *testing.T) {
	tests := []struct {
		name                      string
		current, target, distance int
		want                      int
	}{
		{"partial step", 0, 10, 3, 3},
		{"clamps at target", 7, 3, 10, 3},
		{"step down", 7, 3, 2, 5},
		{"zero distance", 4, 9, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveTowardsInt(tt.current, tt.target, tt.distance)
			if got != tt.want {
				t.Errorf("MoveTowardsInt(%v, %v, %v) = %v, want %v", tt.current, tt.target, tt.distance, got, tt.want)
			}
		})
	}
}

func TestMoveTowardsIntNegativeDistancePanics(t *testing.T) {
	mustPanicWith(t, ErrNegativeDistance, func() {
		MoveTowardsInt(0, 10, -1)
	})
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float32
		want    float32
	}{
		{"start", 0, 10, 0, 0},
		{"end", 0, 10, 1, 10},
		{"midpoint", 0, 10, 0.5, 5},
		{"downward", 5, -5, 0.5, 0},
		{"extrapolates past end", 0, 10, 1.5, 15},
		{"extrapolates before start", 0, 10, -0.5, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(tt.a, tt.b, tt.t)
			if got != tt.want {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v, want 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %v, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %v, want 10", got)
	}
	if got := Clamp(float32(0.75), 0, 0.5); got != 0.5 {
		t.Errorf("Clamp(0.75, 0, 0.5) = %v, want 0.5", got)
	}
}

func TestAbsSign(t *testing.T) {
	if got := Abs(-3); got != 3 {
		t.Errorf("Abs(-3) = %v, want 3", got)
	}
	if got := Abs(float32(-2.5)); got != 2.5 {
		t.Errorf("Abs(-2.5) = %v, want 2.5", got)
	}
	if got := Abs(0); got != 0 {
		t.Errorf("Abs(0) = %v, want 0", got)
	}
	if got := Sign(42); got != 1 {
		t.Errorf("Sign(42) = %v, want 1", got)
	}
	if got := Sign(-17); got != -1 {
		t.Errorf("Sign(-17) = %v, want -1", got)
	}
	if got := Sign(0); got != 0 {
		t.Errorf("Sign(0) = %v, want 0", got)
	}
	if got := Sign(float32(-0.5)); got != -1 {
		t.Errorf("Sign(-0.5) = %v, want -1", got)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		digits []int
		want   float64
	}{
		{"down", 2.4, nil, 2},
		{"half away from zero", 2.5, nil, 3},
		{"negative half away from zero", -2.5, nil, -3},
		{"up", 2.6, nil, 3},
		{"negative down", -2.4, nil, -2},
		{"two digits", 3.14159, []int{2}, 3.14},
		{"four digits", 3.14159, []int{4}, 3.1416},
		{"zero digits same as none", 2.5, []int{0}, 3},
		{"one digit exact binary", 0.125, []int{1}, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round(tt.v, tt.digits...)
			if !near64(got, tt.want, 1e-12) {
				t.Errorf("Round(%v, %v) = %v, want %v", tt.v, tt.digits, got, tt.want)
			}
			got32 := Round(float32(tt.v), tt.digits...)
			if !near32(got32, float32(tt.want), 1e-6) {
				t.Errorf("Round(float32 %v, %v) = %v, want %v", tt.v, tt.digits, got32, tt.want)
			}
		})
	}
}

func TestDegRadConversions(t *testing.T) {
	if got := DegToRad(180.0); !near64(got, math.Pi, 1e-12) {
		t.Errorf("DegToRad(180) = %v, want pi", got)
	}
	if got := RadToDeg(math.Pi); !near64(got, 180, 1e-12) {
		t.Errorf("RadToDeg(pi) = %v, want 180", got)
	}
	for _, deg := range []float64{-270, -90, 0, 30, 45, 90, 179, 360, 720} {
		if got := RadToDeg(DegToRad(deg)); !near64(got, deg, 1e-10) {
			t.Errorf("RadToDeg(DegToRad(%v)) = %v, want %v", deg, got, deg)
		}
	}
}
