package hypermath

import (
	"errors"
	"fmt"
	"testing"
)

// near32 reports whether a and b differ by at most eps. The library's
// Equals predicates use relative tolerance, which rejects tiny absolute
// residue near zero, so tests compare trig and normalization results
// with an absolute epsilon instead.
func near32(a, b, eps float32) bool {
	return Abs(a-b) <= eps
}

func near64(a, b, eps float64) bool {
	return Abs(a-b) <= eps
}

func vec2Near(a, b Vector2, eps float32) bool {
	return near32(a.X, b.X, eps) && near32(a.Y, b.Y, eps)
}

func vec3Near(a, b Vector3, eps float32) bool {
	return near32(a.X, b.X, eps) && near32(a.Y, b.Y, eps) && near32(a.Z, b.Z, eps)
}

func vec4Near(a, b Vector4, eps float32) bool {
	return near32(a.X, b.X, eps) && near32(a.Y, b.Y, eps) &&
		near32(a.Z, b.Z, eps) && near32(a.W, b.W, eps)
}

func quatNear(a, b Quaternion, eps float32) bool {
	return near32(a.X, b.X, eps) && near32(a.Y, b.Y, eps) &&
		near32(a.Z, b.Z, eps) && near32(a.W, b.W, eps)
}

func mat3x2Near(a, b Matrix3x2, eps float32) bool {
	return vec2Near(a.Row0, b.Row0, eps) && vec2Near(a.Row1, b.Row1, eps) &&
		vec2Near(a.Row2, b.Row2, eps)
}

func mat3x3Near(a, b Matrix3x3, eps float32) bool {
	return vec3Near(a.Row0, b.Row0, eps) && vec3Near(a.Row1, b.Row1, eps) &&
		vec3Near(a.Row2, b.Row2, eps)
}

func mat4x4Near(a, b Matrix4x4, eps float32) bool {
	return vec4Near(a.Row0, b.Row0, eps) && vec4Near(a.Row1, b.Row1, eps) &&
		vec4Near(a.Row2, b.Row2, eps) && vec4Near(a.Row3, b.Row3, eps)
}

// mustPanicWith runs fn and asserts it panics with an error matching
// sentinel via errors.Is.
func mustPanicWith(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v, got none", sentinel)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		if !errors.Is(err, sentinel) {
			t.Fatalf("panic error = %v, want errors.Is(%v)", err, sentinel)
		}
	}()
	fn()
}

func TestIndexPanicsWrapSentinel(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Vector2 negative", func() { NewVector2(1, 2).At(-1) }},
		{"Vector2 past end", func() { NewVector2(1, 2).At(2) }},
		{"Vector2d past end", func() { NewVector2d(1, 2).At(2) }},
		{"Vector2i past end", func() { NewVector2i(1, 2).At(2) }},
		{"Vector2b past end", func() { NewVector2b(true, false).At(2) }},
		{"Vector3 past end", func() { NewVector3(1, 2, 3).At(3) }},
		{"Vector3i past end", func() { NewVector3i(1, 2, 3).At(3) }},
		{"Vector4 past end", func() { NewVector4(1, 2, 3, 4).At(4) }},
		{"Quaternion past end", func() { QuaternionIdentity.At(4) }},
		{"Matrix3x2 row", func() { Matrix3x2Identity.Row(3) }},
		{"Matrix3x2 column", func() { Matrix3x2Identity.Column(2) }},
		{"Matrix3x2 cell", func() { Matrix3x2Identity.At(0, 2) }},
		{"Matrix3x3 row", func() { Matrix3x3Identity.Row(-1) }},
		{"Matrix3x3 cell", func() { Matrix3x3Identity.At(3, 0) }},
		{"Matrix4x4 row", func() { Matrix4x4Identity.Row(4) }},
		{"Matrix4x4 column", func() { Matrix4x4Identity.Column(4) }},
		{"Matrix4x4 cell", func() { Matrix4x4Identity.At(1, 4) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanicWith(t, ErrIndexOutOfRange, tt.fn)
		})
	}
}

func TestVersionConsistent(t *testing.T) {
	want := fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	if Version != want {
		t.Errorf("Version = %q, want %q from components", Version, want)
	}
}
