package glowfx

import "math"

// Surface is a 2D raster the fireworks engine draws to. Canvas (GPU, via
// Ebitengine) and Raster (CPU) implement it.
type Surface interface {
	// SetBlend selects the compositing operation for subsequent draws.
	SetBlend(mode BlendMode)
	// FillRect fills the rectangle with c using the current blend mode.
	FillRect(x, y, w, h float64, c Color)
	// StrokeLine draws a straight stroke from (x0, y0) to (x1, y1) using the
	// current blend mode. Zero-length strokes draw nothing.
	StrokeLine(x0, y0, x1, y1 float64, s Stroke)
}

// Stroke describes a line with an optional soft glow halo.
type Stroke struct {
	Width float64
	Color Color
	// Glow is the halo radius in pixels. Zero disables the halo.
	Glow      float64
	GlowColor Color
}

// glowPasses is the number of widening translucent strokes a halo is built from.
const glowPasses = 3

// glowPassAlpha is the opacity of a single halo pass relative to GlowColor.A.
const glowPassAlpha = 0.18

// halo returns the passes that make up the stroke's glow, widest first. The
// returned strokes carry no glow of their own. Returns nil without a glow.
func (s Stroke) halo() []Stroke {
	if s.Glow <= 0 || s.GlowColor.A <= 0 {
		return nil
	}
	passes := make([]Stroke, glowPasses)
	for i := range passes {
		f := float64(glowPasses-i) / glowPasses
		c := s.GlowColor
		c.A *= glowPassAlpha
		passes[i] = Stroke{Width: s.Width + 2*s.Glow*f, Color: c}
	}
	return passes
}

// lineQuad returns the four corners of a butt-capped stroke from (x0, y0) to
// (x1, y1), in winding order. ok is false for zero-length or zero-width lines.
func lineQuad(x0, y0, x1, y1, width float64) (q [4]Vec2, ok bool) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return q, false
	}
	nx := -dy / length * width / 2
	ny := dx / length * width / 2
	q[0] = Vec2{x0 + nx, y0 + ny}
	q[1] = Vec2{x1 + nx, y1 + ny}
	q[2] = Vec2{x1 - nx, y1 - ny}
	q[3] = Vec2{x0 - nx, y0 - ny}
	return q, true
}

// distance returns the straight-line distance between (x0, y0) and (x1, y1).
func distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x0-x1, y0-y1)
}
