package glowfx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is a persistent offscreen ebiten image that implements Surface.
// Content accumulates between frames until it is erased, which is what lets
// the fireworks engine leave fading trails. Canvas is also a Layer: drawing
// it composites its content over the destination.
type Canvas struct {
	image *ebiten.Image
	w, h  int
	blend BlendMode

	verts [4]ebiten.Vertex
	inds  [6]uint16
	triOp ebiten.DrawTrianglesOptions
	imgOp ebiten.DrawImageOptions
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		image: ebiten.NewImage(max(w, 1), max(h, 1)),
		w:     w,
		h:     h,
	}
	c.inds = [6]uint16{0, 1, 2, 0, 2, 3}
	return c
}

// Image returns the underlying *ebiten.Image for direct manipulation.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.w
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.h
}

// Blend returns the current compositing operation.
func (c *Canvas) Blend() BlendMode {
	return c.blend
}

// Clear fills the canvas with transparent black.
func (c *Canvas) Clear() {
	c.image.Clear()
}

// SetBlend implements Surface.
func (c *Canvas) SetBlend(mode BlendMode) {
	c.blend = mode
}

// FillRect implements Surface.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &c.imgOp
	op.GeoM.Reset()
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Reset()
	r, g, b, a := col.premultiplied()
	op.ColorScale.Scale(float32(r), float32(g), float32(b), float32(a))
	op.Blend = c.blend.EbitenBlend()
	c.image.DrawImage(WhitePixel, op)
}

// StrokeLine implements Surface. The glow halo is drawn first, as widening
// translucent strokes, then the core stroke on top.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, s Stroke) {
	for _, pass := range s.halo() {
		c.strokeQuad(x0, y0, x1, y1, pass.Width, pass.Color)
	}
	c.strokeQuad(x0, y0, x1, y1, s.Width, s.Color)
}

func (c *Canvas) strokeQuad(x0, y0, x1, y1, width float64, col Color) {
	q, ok := lineQuad(x0, y0, x1, y1, width)
	if !ok || col.A <= 0 {
		return
	}
	for i, p := range q {
		v := &c.verts[i]
		v.DstX = float32(p.X)
		v.DstY = float32(p.Y)
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR = float32(clamp01(col.R))
		v.ColorG = float32(clamp01(col.G))
		v.ColorB = float32(clamp01(col.B))
		v.ColorA = float32(clamp01(col.A))
	}
	c.triOp.Blend = c.blend.EbitenBlend()
	c.triOp.AntiAlias = true
	c.image.DrawTriangles(c.verts[:], c.inds[:], WhitePixel, &c.triOp)
}

// Update implements Layer. A canvas changes only when something draws to it.
func (c *Canvas) Update(dt float64) {}

// Draw implements Layer by compositing the canvas over dst.
func (c *Canvas) Draw(dst *ebiten.Image) {
	op := &c.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.Blend = BlendNormal.EbitenBlend()
	dst.DrawImage(c.image, op)
}

// Resize deallocates the old image and creates a new, empty one at the given
// dimensions. No-op when the size is unchanged.
func (c *Canvas) Resize(width, height int) {
	if width == c.w && height == c.h && c.image != nil {
		return
	}
	if c.image != nil {
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(max(width, 1), max(height, 1))
	c.w = width
	c.h = height
}

// Dispose deallocates the underlying image. The Canvas should not be
// used after calling Dispose.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
}
