package hypermath

import (
	"image"
	"testing"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func TestVectorF32RoundTrips(t *testing.T) {
	v2 := NewVector2(1.5, -2)
	if got := v2.F32(); got != (f32.Vec2{1.5, -2}) {
		t.Errorf("Vector2.F32 = %v", got)
	}
	if got := Vector2FromF32(v2.F32()); got != v2 {
		t.Errorf("Vector2 round trip = %+v", got)
	}

	v3 := NewVector3(1, 2, 3)
	if got := Vector3FromF32(v3.F32()); got != v3 {
		t.Errorf("Vector3 round trip = %+v", got)
	}

	v4 := NewVector4(1, 2, 3, 4)
	if got := v4.F32(); got != (f32.Vec4{1, 2, 3, 4}) {
		t.Errorf("Vector4.F32 = %v", got)
	}
	if got := Vector4FromF32(v4.F32()); got != v4 {
		t.Errorf("Vector4 round trip = %+v", got)
	}

	vd := NewVector2d(0.1, 0.2)
	if got := vd.F64(); got != (f64.Vec2{0.1, 0.2}) {
		t.Errorf("Vector2d.F64 = %v", got)
	}
	if got := Vector2dFromF64(vd.F64()); got != vd {
		t.Errorf("Vector2d round trip = %+v", got)
	}
}

func TestMatrixF32RowMajor(t *testing.T) {
	m3 := NewMatrix3x3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	want3 := f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := m3.F32(); got != want3 {
		t.Errorf("Matrix3x3.F32 = %v, want %v", got, want3)
	}
	if got := Matrix3x3FromF32(m3.F32()); got != m3 {
		t.Errorf("Matrix3x3 round trip = %+v", got)
	}

	m4 := NewMatrix4x4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	f := m4.F32()
	if f[0] != 1 || f[5] != 6 || f[10] != 11 || f[15] != 16 {
		t.Errorf("Matrix4x4.F32 diagonal = %v, %v, %v, %v", f[0], f[5], f[10], f[15])
	}
	if got := Matrix4x4FromF32(f); got != m4 {
		t.Errorf("Matrix4x4 round trip = %+v", got)
	}
}

// aff3Apply moves a point through an x/image affine matrix, which keeps
// the point on the right.
func aff3Apply(a f64.Aff3, x, y float64) (float64, float64) {
	return a[0]*x + a[1]*y + a[2], a[3]*x + a[4]*y + a[5]
}

func TestMatrix3x2Aff3(t *testing.T) {
	translation := NewMatrix3x2Translation(NewVector2(10, 20))
	got := translation.Aff3()
	want := f64.Aff3{1, 0, 10, 0, 1, 20}
	if got != want {
		t.Errorf("Aff3 = %v, want %v", got, want)
	}

	// Both conventions must move points identically.
	transforms := []Matrix3x2{
		translation,
		NewMatrix3x2Rotation(AngleFromDegrees(30)),
		NewMatrix3x2Scale(2, -3),
		NewMatrix3x2Transform(NewVector2(5, -1), AngleFromDegrees(120), NewVector2(1.5, 0.5)),
	}
	for _, m := range transforms {
		p := NewVector2(1.25, -2)
		direct := m.TransformPoint(p)
		ax, ay := aff3Apply(m.Aff3(), float64(p.X), float64(p.Y))
		if !near64(ax, float64(direct.X), 1e-6) || !near64(ay, float64(direct.Y), 1e-6) {
			t.Errorf("Aff3 moved %+v to (%v, %v), Transform gave %+v", p, ax, ay, direct)
		}
	}
}

func TestMatrix3x2Aff3RoundTrip(t *testing.T) {
	m := NewMatrix3x2Transform(NewVector2(3, 4), AngleFromDegrees(45), NewVector2(2, 2))
	back := Matrix3x2FromAff3(m.Aff3())
	if !mat3x2Near(back, m, 1e-6) {
		t.Errorf("round trip = %+v, want %+v", back, m)
	}
}

func TestMatrix3x3Aff3(t *testing.T) {
	got := NewMatrix3x3Translation(NewVector2(10, 20)).Aff3()
	want := f64.Aff3{1, 0, 10, 0, 1, 20}
	if got != want {
		t.Errorf("Aff3 = %v, want %v", got, want)
	}

	// The two 2D matrix types describe the same transform in the same
	// x/image form.
	angle := AngleFromDegrees(30)
	if a, b := NewMatrix3x2Rotation(angle).Aff3(), NewMatrix3x3Rotation(angle).Aff3(); a != b {
		t.Errorf("rotation Aff3 mismatch: %v vs %v", a, b)
	}
	offset := NewVector2(-4, 9)
	if a, b := NewMatrix3x2Translation(offset).Aff3(), NewMatrix3x3Translation(offset).Aff3(); a != b {
		t.Errorf("translation Aff3 mismatch: %v vs %v", a, b)
	}
}

func TestMatrix4x4Aff4(t *testing.T) {
	got := NewMatrix4x4Translation(NewVector3(1, 2, 3)).Aff4()
	want := f64.Aff4{
		1, 0, 0, 1,
		0, 1, 0, 2,
		0, 0, 1, 3,
	}
	if got != want {
		t.Errorf("Aff4 = %v, want %v", got, want)
	}
}

func TestVector2Fixed(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2
		want fixed.Point26_6
	}{
		{"whole and fractional", NewVector2(1.5, -0.25), fixed.Point26_6{X: 96, Y: -16}},
		{"origin", Vector2Zero, fixed.Point26_6{}},
		{"rounds to nearest", NewVector2(0.3, 0.7), fixed.Point26_6{X: 19, Y: 45}},
		{"half rounds away from zero", NewVector2(0.0078125, -0.0078125), fixed.Point26_6{X: 1, Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Fixed(); got != tt.want {
				t.Errorf("Fixed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVector2FromFixed(t *testing.T) {
	got := Vector2FromFixed(fixed.Point26_6{X: 96, Y: -16})
	if got != NewVector2(1.5, -0.25) {
		t.Errorf("Vector2FromFixed = %+v, want (1.5, -0.25)", got)
	}

	// Values on the 1/64 grid survive the round trip exactly.
	for _, v := range []Vector2{
		NewVector2(0, 0),
		NewVector2(1.5, -0.25),
		NewVector2(100.015625, -3.984375),
	} {
		if got := Vector2FromFixed(v.Fixed()); got != v {
			t.Errorf("round trip of %+v = %+v", v, got)
		}
	}
}

func TestVector2iPoint(t *testing.T) {
	p := NewVector2i(3, -4).Point()
	if p != image.Pt(3, -4) {
		t.Errorf("Point() = %v", p)
	}
	if got := Vector2iFromPoint(p); got != NewVector2i(3, -4) {
		t.Errorf("Vector2iFromPoint = %+v", got)
	}
}

func TestBox2iRectangle(t *testing.T) {
	b := NewBox2i(1, 2, 5, 6)
	r := b.Rectangle()
	if r != image.Rect(1, 2, 5, 6) {
		t.Errorf("Rectangle() = %v", r)
	}
	if got := Box2iFromRectangle(r); got != b {
		t.Errorf("Box2iFromRectangle = %+v, want %+v", got, b)
	}

	// Both types exclude the max corner, so membership agrees.
	for _, p := range []Vector2i{{1, 2}, {4, 5}, {5, 6}, {0, 0}, {3, 3}} {
		if got, want := b.Contains(p), p.Point().In(r); got != want {
			t.Errorf("Contains(%+v) = %v, image.In = %v", p, got, want)
		}
	}
}
