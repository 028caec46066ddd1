package hypermath

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func colorNear(got, want Color, eps float32) bool {
	return near32(got.R, want.R, eps) && near32(got.G, want.G, eps) &&
		near32(got.B, want.B, eps) && near32(got.A, want.A, eps)
}

func TestColorConstructors(t *testing.T) {
	c := NewColor(0.1, 0.2, 0.3, 0.4)
	if c.R != 0.1 || c.G != 0.2 || c.B != 0.3 || c.A != 0.4 {
		t.Errorf("NewColor = %+v", c)
	}
	if got := NewColorRGB(0.1, 0.2, 0.3); got.A != 1 {
		t.Errorf("NewColorRGB alpha = %v, want 1", got.A)
	}
	if got := NewColorBytes(255, 0, 51, 255); !colorNear(got, NewColor(1, 0, 0.2, 1), 1e-6) {
		t.Errorf("NewColorBytes(255, 0, 51, 255) = %+v", got)
	}
	if !ColorWhite.Equals(NewColor(1, 1, 1, 1)) {
		t.Errorf("ColorWhite = %+v", ColorWhite)
	}
	if ColorTransparent.A != 0 {
		t.Errorf("ColorTransparent.A = %v", ColorTransparent.A)
	}
}

func TestColorHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float32
		want    Color
	}{
		{"red", 0, 1, 0.5, ColorRed},
		{"yellow", 60, 1, 0.5, ColorYellow},
		{"green", 120, 1, 0.5, ColorGreen},
		{"cyan", 180, 1, 0.5, ColorCyan},
		{"blue", 240, 1, 0.5, ColorBlue},
		{"magenta", 300, 1, 0.5, ColorMagenta},
		{"hue wraps forward", 480, 1, 0.5, ColorGreen},
		{"hue wraps backward", -120, 1, 0.5, ColorBlue},
		{"no saturation is gray", 42, 0, 0.25, NewColorRGB(0.25, 0.25, 0.25)},
		{"full lightness is white", 200, 1, 1, ColorWhite},
		{"no lightness is black", 200, 1, 0, ColorBlack},
		{"half saturation red", 0, 0.5, 0.5, NewColorRGB(0.75, 0.25, 0.25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewColorHSL(tt.h, tt.s, tt.l)
			if !colorNear(got, tt.want, 1e-6) {
				t.Errorf("NewColorHSL(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestParseColorHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Color
	}{
		{"short rgb", "#f00", ColorRed},
		{"short rgb no hash", "0f0", ColorGreen},
		{"short rgba", "#00ff", ColorBlue},
		{"short rgba expands digits", "#1234", NewColorBytes(0x11, 0x22, 0x33, 0x44)},
		{"long rgb", "#ff0000", ColorRed},
		{"long rgb no hash", "00ff00", ColorGreen},
		{"long rgba", "#0000ffff", ColorBlue},
		{"long rgba half alpha", "#ff000080", NewColorBytes(255, 0, 0, 0x80)},
		{"uppercase digits", "#ABCDEF", NewColorBytes(0xab, 0xcd, 0xef, 255)},
		{"alpha defaults opaque", "#336699", NewColorBytes(0x33, 0x66, 0x99, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColorHex(tt.in)
			if err != nil {
				t.Fatalf("ParseColorHex(%q) error: %v", tt.in, err)
			}
			if !colorNear(got, tt.want, 1e-6) {
				t.Errorf("ParseColorHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorHexRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"bare hash", "#"},
		{"two digits", "#ab"},
		{"five digits", "#12345"},
		{"seven digits", "#1234567"},
		{"nine digits", "#123456789"},
		{"non-hex short", "#xyz"},
		{"non-hex long", "#gg0011"},
		{"non-hex mixed", "12x456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseColorHex(tt.in)
			if err == nil {
				t.Fatalf("ParseColorHex(%q) accepted malformed input", tt.in)
			}
			if !errors.Is(err, ErrInvalidHexColor) {
				t.Errorf("ParseColorHex(%q) error = %v, want ErrInvalidHexColor", tt.in, err)
			}
		})
	}
}

func TestMustParseColorHex(t *testing.T) {
	if got := MustParseColorHex("#ff0000"); !colorNear(got, ColorRed, 1e-6) {
		t.Errorf("MustParseColorHex = %+v, want red", got)
	}
	mustPanicWith(t, ErrInvalidHexColor, func() { MustParseColorHex("oops") })
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"red", ColorRed, "#ff0000ff"},
		{"half green channel", NewColor(0.5, 1, 0, 1), "#80ff00ff"},
		{"transparent", ColorTransparent, "#00000000"},
		{"clamps above one", NewColor(1.5, -0.2, 0.5, 1), "#ff0080ff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	colors := []Color{
		ColorRed,
		ColorTransparent,
		NewColorBytes(0x12, 0x34, 0x56, 0x78),
		NewColorBytes(1, 2, 3, 4),
	}
	for _, c := range colors {
		parsed := MustParseColorHex(c.Hex())
		if !colorNear(parsed, c, 1e-6) {
			t.Errorf("round trip of %+v through %q gave %+v", c, c.Hex(), parsed)
		}
	}
}

func TestColorPremultiplied(t *testing.T) {
	c := NewColor(1, 0.5, 0, 0.5)
	p := c.Premultiplied()
	if !colorNear(p, NewColor(0.5, 0.25, 0, 0.5), 1e-6) {
		t.Errorf("Premultiplied = %+v, want (0.5, 0.25, 0, 0.5)", p)
	}
	if got := p.Unpremultiplied(); !colorNear(got, c, 1e-6) {
		t.Errorf("Unpremultiplied = %+v, want %+v", got, c)
	}

	// Opaque colors premultiply to themselves.
	if got := ColorCyan.Premultiplied(); got != ColorCyan {
		t.Errorf("opaque Premultiplied = %+v", got)
	}

	// Fully transparent input has no color to recover.
	if got := NewColor(0.5, 0.5, 0.5, 0).Unpremultiplied(); got != (Color{}) {
		t.Errorf("Unpremultiplied of transparent = %+v, want zero", got)
	}
}

func TestColorWithAlpha(t *testing.T) {
	got := ColorRed.WithAlpha(0.25)
	if got != NewColor(1, 0, 0, 0.25) {
		t.Errorf("WithAlpha(0.25) = %+v", got)
	}
}

func TestColorLerp(t *testing.T) {
	a := NewColor(0, 0, 0, 0)
	b := NewColor(1, 0.5, 0.25, 1)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %+v, want %+v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if !colorNear(mid, NewColor(0.5, 0.25, 0.125, 0.5), 1e-6) {
		t.Errorf("Lerp(0.5) = %+v", mid)
	}
}

func TestColorEquals(t *testing.T) {
	if !ColorRed.Equals(NewColorRGB(1, 0, 0)) {
		t.Error("Equals rejected an identical color")
	}
	if ColorRed.Equals(ColorGreen) {
		t.Error("Equals accepted a different color")
	}
	if !NewColorRGB(0.5, 0.5, 0.5).Equals(NewColorRGB(0.5005, 0.5, 0.5), 0.01) {
		t.Error("explicit tolerance rejected a 0.1% difference")
	}
}

func TestColorVector4(t *testing.T) {
	c := NewColor(0.1, 0.2, 0.3, 0.4)
	v := c.Vector4()
	if v != NewVector4(0.1, 0.2, 0.3, 0.4) {
		t.Errorf("Vector4() = %+v", v)
	}
	if got := ColorFromVector4(v); got != c {
		t.Errorf("ColorFromVector4 = %+v, want %+v", got, c)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := ColorRed.RGBA()
	if r != 65535 || g != 0 || b != 0 || a != 65535 {
		t.Errorf("ColorRed.RGBA() = (%d, %d, %d, %d), want (65535, 0, 0, 65535)", r, g, b, a)
	}

	// Translucent colors come out premultiplied, as image/color requires.
	r, g, b, a = NewColor(1, 0.5, 0, 0.5).RGBA()
	if r != 32768 || g != 16384 || b != 0 || a != 32768 {
		t.Errorf("RGBA() = (%d, %d, %d, %d), want (32768, 16384, 0, 32768)", r, g, b, a)
	}

	// HDR channels clamp on the way out.
	r, _, _, _ = NewColor(2, 0, 0, 1).RGBA()
	if r != 65535 {
		t.Errorf("HDR red = %d, want 65535", r)
	}
}

func TestColorFromStdColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"opaque rgba", color.RGBA{R: 255, G: 0, B: 0, A: 255}, ColorRed},
		{"translucent nrgba", color.NRGBA{R: 255, G: 0, B: 0, A: 128}, NewColorBytes(255, 0, 0, 128)},
		{"gray", color.Gray{Y: 100}, NewColorBytes(100, 100, 100, 255)},
		{"transparent", color.NRGBA{}, Color{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorFromStdColor(tt.in)
			if !colorNear(got, tt.want, 1e-5) {
				t.Errorf("ColorFromStdColor(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorRoundTripThroughStd(t *testing.T) {
	c := NewColor(0.8, 0.4, 0.2, 0.5)
	got := ColorFromStdColor(c)
	if !colorNear(got, c, 1e-3) {
		t.Errorf("round trip through image/color = %+v, want %+v", got, c)
	}
}
