package sketch

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Color is a fill or stroke color with components in [0, 1].
// It implements the standard color.Color interface, so it can be passed
// directly to gg and to image/draw code.
type Color gg.RGBA

// RGBA implements color.Color. Components are alpha-premultiplied 16-bit,
// matching color.NRGBA semantics.
func (c Color) RGBA() (r, g, b, a uint32) {
	return gg.RGBA(c).Color().RGBA()
}

// Bytes returns the 8-bit non-premultiplied components.
// Useful for backends that want integer channels, like SVG styles.
func (c Color) Bytes() (r, g, b, a uint8) {
	n := gg.RGBA(c).Color().(color.NRGBA)
	return n.R, n.G, n.B, n.A
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// RGB creates an opaque color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color(gg.RGB(r, g, b))
}

// RGBA creates a color from components in [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color(gg.RGBA2(r, g, b, a))
}

// Gray creates an opaque gray with the given intensity in [0, 1].
func Gray(v float64) Color {
	return Color(gg.RGB(v, v, v))
}

// HSV creates an opaque color from hue [0, 360), saturation [0, 1], and
// value [0, 1]. Hue wraps; saturation and value are clamped.
func HSV(h, s, v float64) Color {
	return HSVA(h, s, v, 1)
}

// HSVA is HSV with an explicit alpha in [0, 1].
func HSVA(h, s, v, a float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	v = clamp01(v)

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGBA(r+m, g+m, b+m, clamp01(a))
}

// Hex creates a color from a hex string ("#RGB", "#RGBA", "#RRGGBB",
// "#RRGGBBAA", leading '#' optional). Malformed strings yield opaque black;
// use ParseHex when the input is untrusted.
func Hex(s string) Color {
	return Color(gg.Hex(s))
}

// ParseHex is like Hex but reports malformed input instead of defaulting.
func ParseHex(s string) (Color, error) {
	raw := s
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return Color{}, fmt.Errorf("sketch: invalid hex color %q", raw)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		ok := ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
		if !ok {
			return Color{}, fmt.Errorf("sketch: invalid hex color %q", raw)
		}
	}
	return Color(gg.Hex(raw)), nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
