package hypermath

import (
	"fmt"
	"strconv"
	"strings"
)

// Canonical text forms. Vectors render as comma-space separated
// components ("1, 2"); matrices as newline-separated rows of the same.
// Floats use the shortest representation that round-trips at their
// precision. Parsing is forgiving about spaces around separators but
// strict about component count and numeric syntax, failing with errors
// wrapping ErrInvalidFormat.

func appendFloat32(b []byte, f float32) []byte {
	return strconv.AppendFloat(b, float64(f), 'g', -1, 32)
}

func appendComponents32(b []byte, components ...float32) []byte {
	for i, c := range components {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = appendFloat32(b, c)
	}
	return b
}

// splitComponents splits s on commas into exactly want trimmed fields.
func splitComponents(s string, want int) ([]string, error) {
	parts := strings.Split(s, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("%w: %q has %d components, want %d",
			ErrInvalidFormat, s, len(parts), want)
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts, nil
}

func parseFloats32(s string, want int) ([]float32, error) {
	parts, err := splitComponents(s, want)
	if err != nil {
		return nil, err
	}
	out := make([]float32, want)
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: component %d of %q: %v", ErrInvalidFormat, i, s, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func parseInts(s string, want int) ([]int, error) {
	parts, err := splitComponents(s, want)
	if err != nil {
		return nil, err
	}
	out := make([]int, want)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: component %d of %q: %v", ErrInvalidFormat, i, s, err)
		}
		out[i] = n
	}
	return out, nil
}

// ParseVector2 parses the canonical "x, y" form.
func ParseVector2(s string) (Vector2, error) {
	f, err := parseFloats32(s, 2)
	if err != nil {
		return Vector2{}, err
	}
	return Vector2{X: f[0], Y: f[1]}, nil
}

// ParseVector3 parses the canonical "x, y, z" form.
func ParseVector3(s string) (Vector3, error) {
	f, err := parseFloats32(s, 3)
	if err != nil {
		return Vector3{}, err
	}
	return Vector3{X: f[0], Y: f[1], Z: f[2]}, nil
}

// ParseVector4 parses the canonical "x, y, z, w" form.
func ParseVector4(s string) (Vector4, error) {
	f, err := parseFloats32(s, 4)
	if err != nil {
		return Vector4{}, err
	}
	return Vector4{X: f[0], Y: f[1], Z: f[2], W: f[3]}, nil
}

// ParseQuaternion parses the canonical "x, y, z, w" form.
func ParseQuaternion(s string) (Quaternion, error) {
	f, err := parseFloats32(s, 4)
	if err != nil {
		return Quaternion{}, err
	}
	return Quaternion{X: f[0], Y: f[1], Z: f[2], W: f[3]}, nil
}

// ParseVector2d parses the canonical "x, y" form at double precision.
func ParseVector2d(s string) (Vector2d, error) {
	parts, err := splitComponents(s, 2)
	if err != nil {
		return Vector2d{}, err
	}
	var out [2]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Vector2d{}, fmt.Errorf("%w: component %d of %q: %v", ErrInvalidFormat, i, s, err)
		}
		out[i] = f
	}
	return Vector2d{X: out[0], Y: out[1]}, nil
}

// ParseVector2i parses the canonical "x, y" integer form.
func ParseVector2i(s string) (Vector2i, error) {
	n, err := parseInts(s, 2)
	if err != nil {
		return Vector2i{}, err
	}
	return Vector2i{X: n[0], Y: n[1]}, nil
}

// ParseVector3i parses the canonical "x, y, z" integer form.
func ParseVector3i(s string) (Vector3i, error) {
	n, err := parseInts(s, 3)
	if err != nil {
		return Vector3i{}, err
	}
	return Vector3i{X: n[0], Y: n[1], Z: n[2]}, nil
}

// ParseVector2b parses the canonical "x, y" boolean form.
func ParseVector2b(s string) (Vector2b, error) {
	parts, err := splitComponents(s, 2)
	if err != nil {
		return Vector2b{}, err
	}
	var out [2]bool
	for i, p := range parts {
		b, err := strconv.ParseBool(p)
		if err != nil {
			return Vector2b{}, fmt.Errorf("%w: component %d of %q: %v", ErrInvalidFormat, i, s, err)
		}
		out[i] = b
	}
	return Vector2b{X: out[0], Y: out[1]}, nil
}

// String returns the canonical "x, y" form.
func (v Vector2) String() string {
	b, _ := v.AppendText(nil)
	return string(b)
}

// AppendText appends the canonical form to b. It never fails; the error
// satisfies encoding.TextAppender.
func (v Vector2) AppendText(b []byte) ([]byte, error) {
	return appendComponents32(b, v.X, v.Y), nil
}

// MarshalText returns the canonical form.
func (v Vector2) MarshalText() ([]byte, error) {
	return v.AppendText(nil)
}

// UnmarshalText parses the canonical form; see ParseVector2.
func (v *Vector2) UnmarshalText(b []byte) error {
	parsed, err := ParseVector2(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns the canonical "x, y" form.
func (v Vector2d) String() string {
	b, _ := v.AppendText(nil)
	return string(b)
}

// AppendText appends the canonical form to b.
func (v Vector2d) AppendText(b []byte) ([]byte, error) {
	b = strconv.AppendFloat(b, v.X, 'g', -1, 64)
	b = append(b, ", "...)
	b = strconv.AppendFloat(b, v.Y, 'g', -1, 64)
	return b, nil
}

// MarshalText returns the canonical form.
func (v Vector2d) MarshalText() ([]byte, error) {
	return v.AppendText(nil)
}

// UnmarshalText parses the canonical form; see ParseVector2d.
func (v *Vector2d) UnmarshalText(b []byte) error {
	parsed, err := ParseVector2d(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns the canonical "x, y" form.
func (v Vector2i) String() string {
	b, _ := v.AppendText(nil)
	return string(b)
}

// AppendText appends the canonical form to b.
func (v Vector2i) AppendText(b []byte) ([]byte, error) {
	b = strconv.AppendInt(b, int64(v.X), 10)
	b = append(b, ", "...)
	b = strconv.AppendInt(b, int64(v.Y), 10)
	return b, nil
}

// MarshalText returns the canonical form.
func (v Vector2i) MarshalText() ([]byte, error) {
	return v.AppendText(nil)
}

// UnmarshalText parses the canonical form; see ParseVector2i.
func (v *Vector2i) UnmarshalText(b []byte) error {
	parsed, err := ParseVector2i(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns the canonical "x, y" form.
func (v Vector2b) String() string {
	b, _ := v.AppendText(nil)
	return string(b)
}

// AppendText appends the canonical form to b.
func (v Vector2b) AppendText(b []byte) ([]byte, error) {
	b = strconv.AppendBool(b, v.X)
	b = append(b, ", "...)
	b = strconv.AppendBool(b, v.Y)
	return b, nil
}

// MarshalText returns the canonical form.
func (v Vector2b) MarshalText() ([]byte, error) {
	return v.AppendText(nil)
}

// UnmarshalText parses the canonical form; see ParseVector2b.
func (v *Vector2b) UnmarshalText(b []byte) error {
	parsed, err := ParseVector2b(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns the canonical "x, y, z" form.
func (v Vector3) String() string {
	b, _ := v.AppendText(nil)
	return string(b)
}

// AppendText appends the canonical form to b.
func (v Vector3) AppendText(b []byte) ([]byte, error) {
	return appendComponents32(b, v.X, v.Y, v.Z), nil
}

// MarshalText returns the canonical form.
func (v Vector3) MarshalText() ([]byte, error) {
	return v.AppendText(nil)
}

// UnmarshalText parses the canonical form; see ParseVector3.
func (v *Vector3) UnmarshalText(b []byte) error {
	parsed, err := ParseVector3(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns the canonical "x, y, z" form.
func (v Vector3i) String() string {
	b, _ := v.AppendText(nil)
	return string(b)
}

// AppendText appends the canonical form to b.
func (v Vector3i) AppendText(b []byte) ([]byte, error) {
	b = strconv.AppendInt(b, int64(v.X), 10)
	b = append(b, ", "...)
	b = strconv.AppendInt(b, int64(v.Y), 10)
	b = append(b, ", "...)
	b = strconv.AppendInt(b, int64(v.Z), 10)
	return b, nil
}

// MarshalText returns the canonical form.
func (v Vector3i) MarshalText() ([]byte, error) {
	return v.AppendText(nil)
}

// UnmarshalText parses the canonical form; see ParseVector3i.
func (v *Vector3i) UnmarshalText(b []byte) error {
	parsed, err := ParseVector3i(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns the canonical "x, y, z, w" form.
func (v Vector4) String() string {
	b, _ := v.AppendText(nil)
	return string(b)
}

// AppendText appends the canonical form to b.
func (v Vector4) AppendText(b []byte) ([]byte, error) {
	return appendComponents32(b, v.X, v.Y, v.Z, v.W), nil
}

// MarshalText returns the canonical form.
func (v Vector4) MarshalText() ([]byte, error) {
	return v.AppendText(nil)
}

// UnmarshalText parses the canonical form; see ParseVector4.
func (v *Vector4) UnmarshalText(b []byte) error {
	parsed, err := ParseVector4(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns the canonical "x, y, z, w" form.
func (q Quaternion) String() string {
	b, _ := q.AppendText(nil)
	return string(b)
}

// AppendText appends the canonical form to b.
func (q Quaternion) AppendText(b []byte) ([]byte, error) {
	return appendComponents32(b, q.X, q.Y, q.Z, q.W), nil
}

// MarshalText returns the canonical form.
func (q Quaternion) MarshalText() ([]byte, error) {
	return q.AppendText(nil)
}

// UnmarshalText parses the canonical form; see ParseQuaternion.
func (q *Quaternion) UnmarshalText(b []byte) error {
	parsed, err := ParseQuaternion(string(b))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// String returns the rows in canonical form separated by newlines.
// Matrices deliberately implement only the append/String side of the
// text interfaces: structured codecs round-trip them through their row
// fields instead of a flat string.
func (m Matrix3x2) String() string {
	b, _ := m.AppendText(nil)
	return string(b)
}

// AppendText appends the newline-separated rows to b.
func (m Matrix3x2) AppendText(b []byte) ([]byte, error) {
	b = appendComponents32(b, m.Row0.X, m.Row0.Y)
	b = append(b, '\n')
	b = appendComponents32(b, m.Row1.X, m.Row1.Y)
	b = append(b, '\n')
	b = appendComponents32(b, m.Row2.X, m.Row2.Y)
	return b, nil
}

// String returns the rows in canonical form separated by newlines; see
// Matrix3x2.String.
func (m Matrix3x3) String() string {
	b, _ := m.AppendText(nil)
	return string(b)
}

// AppendText appends the newline-separated rows to b.
func (m Matrix3x3) AppendText(b []byte) ([]byte, error) {
	b = appendComponents32(b, m.Row0.X, m.Row0.Y, m.Row0.Z)
	b = append(b, '\n')
	b = appendComponents32(b, m.Row1.X, m.Row1.Y, m.Row1.Z)
	b = append(b, '\n')
	b = appendComponents32(b, m.Row2.X, m.Row2.Y, m.Row2.Z)
	return b, nil
}

// String returns the rows in canonical form separated by newlines; see
// Matrix3x2.String.
func (m Matrix4x4) String() string {
	b, _ := m.AppendText(nil)
	return string(b)
}

// AppendText appends the newline-separated rows to b.
func (m Matrix4x4) AppendText(b []byte) ([]byte, error) {
	b = appendComponents32(b, m.Row0.X, m.Row0.Y, m.Row0.Z, m.Row0.W)
	b = append(b, '\n')
	b = appendComponents32(b, m.Row1.X, m.Row1.Y, m.Row1.Z, m.Row1.W)
	b = append(b, '\n')
	b = appendComponents32(b, m.Row2.X, m.Row2.Y, m.Row2.Z, m.Row2.W)
	b = append(b, '\n')
	b = appendComponents32(b, m.Row3.X, m.Row3.Y, m.Row3.Z, m.Row3.W)
	return b, nil
}

// String returns the canonical #rrggbbaa hex form.
func (c Color) String() string {
	return c.Hex()
}

// AppendText appends the canonical hex form to b.
func (c Color) AppendText(b []byte) ([]byte, error) {
	return append(b, c.Hex()...), nil
}

// MarshalText returns the canonical hex form.
func (c Color) MarshalText() ([]byte, error) {
	return c.AppendText(nil)
}

// UnmarshalText parses any form ParseColorHex accepts.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColorHex(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
