package hypermath

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGBA color with each channel in [0, 1]. Channels are not
// premultiplied by alpha; Premultiplied derives that form. Values
// outside [0, 1] are representable (HDR intermediates) and only clamp
// when leaving through the byte-oriented conversions.
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	ColorBlack       = NewColorRGB(0, 0, 0)
	ColorWhite       = NewColorRGB(1, 1, 1)
	ColorRed         = NewColorRGB(1, 0, 0)
	ColorGreen       = NewColorRGB(0, 1, 0)
	ColorBlue        = NewColorRGB(0, 0, 1)
	ColorYellow      = NewColorRGB(1, 1, 0)
	ColorCyan        = NewColorRGB(0, 1, 1)
	ColorMagenta     = NewColorRGB(1, 0, 1)
	ColorTransparent = NewColor(0, 0, 0, 0)
)

// NewColor returns the color with the given channels.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NewColorRGB returns the opaque color with the given channels.
func NewColorRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// NewColorBytes returns the color with the given 8-bit channels mapped
// into [0, 1].
func NewColorBytes(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// NewColorHSL returns the color for the given hue, saturation, and
// lightness. h is degrees and wraps modulo 360; s and l are in [0, 1].
func NewColorHSL(h, s, l float32) Color {
	hd := math.Mod(float64(h), 360)
	if hd < 0 {
		hd += 360
	}
	hd /= 360

	c := (1 - Abs(2*l-1)) * s
	x := c * float32(1-math.Abs(math.Mod(hd*6, 2)-1))
	m := l - c/2

	var r, g, b float32
	switch {
	case hd < 1.0/6:
		r, g, b = c, x, 0
	case hd < 2.0/6:
		r, g, b = x, c, 0
	case hd < 3.0/6:
		r, g, b = 0, c, x
	case hd < 4.0/6:
		r, g, b = 0, x, c
	case hd < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return NewColorRGB(r+m, g+m, b+m)
}

// ParseColorHex parses a hex color string in any of the forms RGB,
// RGBA, RRGGBB, RRGGBBAA, with or without a leading '#'. Short-form
// digits expand by repetition (F -> FF). Alpha defaults to opaque.
// Malformed input returns an error wrapping ErrInvalidHexColor rather
// than a partially parsed color.
func ParseColorHex(s string) (Color, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint8
	a := uint8(0xff)
	ok := true
	switch len(hex) {
	case 3:
		r, g, b = hexByte(hex[0], hex[0], &ok), hexByte(hex[1], hex[1], &ok), hexByte(hex[2], hex[2], &ok)
	case 4:
		r, g, b = hexByte(hex[0], hex[0], &ok), hexByte(hex[1], hex[1], &ok), hexByte(hex[2], hex[2], &ok)
		a = hexByte(hex[3], hex[3], &ok)
	case 6:
		r, g, b = hexByte(hex[0], hex[1], &ok), hexByte(hex[2], hex[3], &ok), hexByte(hex[4], hex[5], &ok)
	case 8:
		r, g, b = hexByte(hex[0], hex[1], &ok), hexByte(hex[2], hex[3], &ok), hexByte(hex[4], hex[5], &ok)
		a = hexByte(hex[6], hex[7], &ok)
	default:
		return Color{}, fmt.Errorf("%w: %q has %d hex digits, want 3, 4, 6, or 8",
			ErrInvalidHexColor, s, len(hex))
	}
	if !ok {
		return Color{}, fmt.Errorf("%w: %q contains a non-hex digit", ErrInvalidHexColor, s)
	}
	return NewColorBytes(r, g, b, a), nil
}

// MustParseColorHex is ParseColorHex for string literals; it panics on
// malformed input.
func MustParseColorHex(s string) Color {
	c, err := ParseColorHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// hexByte decodes the two-digit hex value hi|lo, clearing *ok on any
// non-hex digit.
func hexByte(hi, lo byte, ok *bool) uint8 {
	return hexNibble(hi, ok)<<4 | hexNibble(lo, ok)
}

func hexNibble(c byte, ok *bool) uint8 {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	*ok = false
	return 0
}

// Hex returns the canonical lowercase #rrggbbaa form of the color,
// clamping channels to [0, 1] first. ParseColorHex accepts the output.
func (c Color) Hex() string {
	r, g, b, a := c.bytes()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func (c Color) bytes() (r, g, b, a uint8) {
	conv := func(ch float32) uint8 {
		return uint8(Clamp(ch, 0, 1)*255 + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B), conv(c.A)
}

// Premultiplied returns the color with the RGB channels multiplied by
// alpha, the form blending hardware expects.
func (c Color) Premultiplied() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiplied undoes Premultiplied. Fully transparent input maps to
// the zero color.
func (c Color) Unpremultiplied() Color {
	if c.A == 0 {
		return Color{}
	}
	return Color{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// WithAlpha returns the color with the alpha channel replaced.
func (c Color) WithAlpha(a float32) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// Lerp linearly interpolates from c to target by t, channel-wise.
func (c Color) Lerp(target Color, t float32) Color {
	return Color{
		R: Lerp(c.R, target.R, t),
		G: Lerp(c.G, target.G, t),
		B: Lerp(c.B, target.B, t),
		A: Lerp(c.A, target.A, t),
	}
}

// Equals reports channel-wise approximate equality via AboutEqual.
func (c Color) Equals(other Color, tolerance ...float32) bool {
	return AboutEqual(c.R, other.R, tolerance...) &&
		AboutEqual(c.G, other.G, tolerance...) &&
		AboutEqual(c.B, other.B, tolerance...) &&
		AboutEqual(c.A, other.A, tolerance...)
}

// Vector4 reinterprets the channels as (R, G, B, A) vector components,
// handy for shader uniforms and channel arithmetic.
func (c Color) Vector4() Vector4 {
	return Vector4{X: c.R, Y: c.G, Z: c.B, W: c.A}
}

// ColorFromVector4 is the inverse of Color.Vector4.
func ColorFromVector4(v Vector4) Color {
	return Color{R: v.X, G: v.Y, B: v.Z, A: v.W}
}

// RGBA implements image/color.Color: alpha-premultiplied 16-bit
// channels, clamped to [0, 1] first.
func (c Color) RGBA() (r, g, b, a uint32) {
	p := c.Premultiplied()
	conv := func(ch float32) uint32 {
		return uint32(Clamp(ch, 0, 1)*65535 + 0.5)
	}
	return conv(p.R), conv(p.G), conv(p.B), conv(p.A)
}

// ColorFromStdColor converts any image/color.Color, undoing the
// premultiplied alpha of the standard representation.
func ColorFromStdColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	out := Color{
		R: float32(r) / 65535,
		G: float32(g) / 65535,
		B: float32(b) / 65535,
		A: float32(a) / 65535,
	}
	return out.Unpremultiplied()
}
