package glowfx

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL returns the color for hue h in degrees (any value; wrapped onto the
// color wheel), saturation s and lightness l in [0, 1], and alpha a.
func HSL(h, s, l, a float64) Color {
	c := colorful.Hsl(wrapHue(h), clamp01(s), clamp01(l)).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(a)}
}

// wrapHue maps any hue in degrees onto [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// Hex parses a "#rrggbb" string into an opaque Color. Malformed input
// yields black.
func Hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{A: 1}
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// premultiplied returns the color with RGB scaled by alpha.
func (c Color) premultiplied() (r, g, b, a float64) {
	a = clamp01(c.A)
	return clamp01(c.R) * a, clamp01(c.G) * a, clamp01(c.B) * a, a
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	r, g, b, a := c.premultiplied()
	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: uint8(a * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
