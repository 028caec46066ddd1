package hypermath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringForms(t *testing.T) {
	tests := []struct {
		name string
		in   interface{ String() string }
		want string
	}{
		{"vector2", NewVector2(1, 2), "1, 2"},
		{"vector2 fractional", NewVector2(1.5, -0.25), "1.5, -0.25"},
		{"vector2 shortest float32", NewVector2(1.0/3, 0), "0.33333334, 0"},
		{"vector2 exponent", NewVector2(1e10, 0), "1e+10, 0"},
		{"vector2d double precision", NewVector2d(1.0/3, 2), "0.3333333333333333, 2"},
		{"vector2i", NewVector2i(3, -4), "3, -4"},
		{"vector2b", NewVector2b(true, false), "true, false"},
		{"vector3", NewVector3(1, 2, 3), "1, 2, 3"},
		{"vector3i", NewVector3i(-1, 0, 7), "-1, 0, 7"},
		{"vector4", NewVector4(1, 2, 3, 4), "1, 2, 3, 4"},
		{"quaternion", QuaternionIdentity, "0, 0, 0, 1"},
		{"color", ColorRed, "#ff0000ff"},
		{"matrix3x2", Matrix3x2Identity, "1, 0\n0, 1\n0, 0"},
		{"matrix3x3", Matrix3x3Identity, "1, 0, 0\n0, 1, 0\n0, 0, 1"},
		{"matrix4x4", Matrix4x4Identity, "1, 0, 0, 0\n0, 1, 0, 0\n0, 0, 1, 0\n0, 0, 0, 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestAppendTextAppends(t *testing.T) {
	b := []byte("at ")
	b, err := NewVector2(1, 2).AppendText(b)
	require.NoError(t, err)
	assert.Equal(t, "at 1, 2", string(b))
}

func TestParseVector2(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Vector2
	}{
		{"canonical", "1, 2", NewVector2(1, 2)},
		{"no spaces", "1,2", NewVector2(1, 2)},
		{"extra spaces", "  3 ,  -4.5 ", NewVector2(3, -4.5)},
		{"exponent form", "1e3, 0.5", NewVector2(1000, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVector2(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVector2Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"one component", "1"},
		{"three components", "1, 2, 3"},
		{"trailing comma", "1, 2,"},
		{"not a number", "a, 2"},
		{"embedded junk", "1, 2x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVector2(tt.in)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestParseOtherShapes(t *testing.T) {
	v3, err := ParseVector3("1, 2, 3")
	require.NoError(t, err)
	assert.Equal(t, NewVector3(1, 2, 3), v3)

	v4, err := ParseVector4("1, 2, 3, 4")
	require.NoError(t, err)
	assert.Equal(t, NewVector4(1, 2, 3, 4), v4)

	q, err := ParseQuaternion("0, 0, 0, 1")
	require.NoError(t, err)
	assert.Equal(t, QuaternionIdentity, q)

	_, err = ParseVector3("1, 2")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = ParseQuaternion("1, 2, 3")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseVector2d(t *testing.T) {
	v, err := ParseVector2d("0.1, 2")
	require.NoError(t, err)
	assert.Equal(t, 0.1, v.X)
	assert.Equal(t, 2.0, v.Y)

	// Double precision survives where float32 would round.
	v, err = ParseVector2d("0.3333333333333333, 0")
	require.NoError(t, err)
	assert.Equal(t, 1.0/3, v.X)

	_, err = ParseVector2d("0.1")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseVector2i(t *testing.T) {
	v, err := ParseVector2i("3, -4")
	require.NoError(t, err)
	assert.Equal(t, NewVector2i(3, -4), v)

	_, err = ParseVector2i("3.5, 1")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = ParseVector2i("3, four")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseVector3i(t *testing.T) {
	v, err := ParseVector3i("1, -2, 3")
	require.NoError(t, err)
	assert.Equal(t, NewVector3i(1, -2, 3), v)

	_, err = ParseVector3i("1, 2")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseVector2b(t *testing.T) {
	tests := []struct {
		in   string
		want Vector2b
	}{
		{"true, false", NewVector2b(true, false)},
		{"1, 0", NewVector2b(true, false)},
		{"T, TRUE", NewVector2b(true, true)},
	}
	for _, tt := range tests {
		got, err := ParseVector2b(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}

	_, err := ParseVector2b("yes, no")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTextRoundTrips(t *testing.T) {
	v2 := NewVector2(1.5, -0.25)
	text, err := v2.MarshalText()
	require.NoError(t, err)
	var v2back Vector2
	require.NoError(t, v2back.UnmarshalText(text))
	assert.Equal(t, v2, v2back)

	// Shortest float32 output restores the exact bits.
	odd := NewVector3(1.0/3, 2.0/7, 1e-20)
	text, err = odd.MarshalText()
	require.NoError(t, err)
	var v3back Vector3
	require.NoError(t, v3back.UnmarshalText(text))
	assert.Equal(t, odd, v3back)

	q := NewQuaternionAxisAngle(NewVector3(1, 2, 3), AngleFromDegrees(50))
	text, err = q.MarshalText()
	require.NoError(t, err)
	var qback Quaternion
	require.NoError(t, qback.UnmarshalText(text))
	assert.Equal(t, q, qback)

	c := NewColorBytes(0xff, 0x80, 0x40, 0xc0)
	text, err = c.MarshalText()
	require.NoError(t, err)
	var cback Color
	require.NoError(t, cback.UnmarshalText(text))
	assert.True(t, cback.Equals(c, 1e-6))
}

func TestUnmarshalTextRejectsMalformed(t *testing.T) {
	var v Vector2
	assert.ErrorIs(t, v.UnmarshalText([]byte("nope")), ErrInvalidFormat)
	var c Color
	assert.ErrorIs(t, c.UnmarshalText([]byte("#12345")), ErrInvalidHexColor)
}
