package glowfx

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Raster is a CPU Surface backed by a premultiplied *image.RGBA. It needs no
// graphics context, so it serves headless rendering (snapshots, terminals)
// and pixel-level tests.
type Raster struct {
	img   *image.RGBA
	blend BlendMode

	z    *vector.Rasterizer
	mask *image.Alpha
}

// NewRaster creates a transparent raster of the given size.
func NewRaster(w, h int) *Raster {
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		z:   vector.NewRasterizer(1, 1),
	}
}

// Image returns the backing image. Pixels are premultiplied.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.img.Rect.Dx()
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.img.Rect.Dy()
}

// Clear resets every pixel to transparent black.
func (r *Raster) Clear() {
	clear(r.img.Pix)
}

// Resize replaces the backing image with an empty one of the given size.
func (r *Raster) Resize(w, h int) {
	if w == r.Width() && h == r.Height() {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
}

// SetBlend implements Surface.
func (r *Raster) SetBlend(mode BlendMode) {
	r.blend = mode
}

// FillRect implements Surface. Edges snap to whole pixels.
func (r *Raster) FillRect(x, y, w, h float64, c Color) {
	rect := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	).Intersect(r.img.Rect)
	if rect.Empty() {
		return
	}
	sr, sg, sb, sa := c.premultiplied()
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		off := r.img.PixOffset(rect.Min.X, py)
		for px := rect.Min.X; px < rect.Max.X; px++ {
			r.composite(r.img.Pix[off:off+4:off+4], sr, sg, sb, sa)
			off += 4
		}
	}
}

// StrokeLine implements Surface.
func (r *Raster) StrokeLine(x0, y0, x1, y1 float64, s Stroke) {
	for _, pass := range s.halo() {
		r.strokeQuad(x0, y0, x1, y1, pass.Width, pass.Color)
	}
	r.strokeQuad(x0, y0, x1, y1, s.Width, s.Color)
}

// strokeQuad rasterizes the stroke's quad into a coverage mask the size of
// its bounding box, then composites the color through the mask.
func (r *Raster) strokeQuad(x0, y0, x1, y1, width float64, c Color) {
	q, ok := lineQuad(x0, y0, x1, y1, width)
	if !ok || c.A <= 0 {
		return
	}
	minX, minY := q[0].X, q[0].Y
	maxX, maxY := minX, minY
	for _, p := range q[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
	clip := box.Intersect(r.img.Rect)
	if clip.Empty() {
		return
	}

	bw, bh := box.Dx(), box.Dy()
	r.z.Reset(bw, bh)
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	r.z.MoveTo(float32(q[0].X-ox), float32(q[0].Y-oy))
	for _, p := range q[1:] {
		r.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	r.z.ClosePath()

	r.ensureMask(bw, bh)
	clear(r.mask.Pix)
	r.z.Draw(r.mask, r.mask.Rect, image.Opaque, image.Point{})

	sr, sg, sb, sa := c.premultiplied()
	for py := clip.Min.Y; py < clip.Max.Y; py++ {
		off := r.img.PixOffset(clip.Min.X, py)
		moff := r.mask.PixOffset(clip.Min.X-box.Min.X, py-box.Min.Y)
		for px := clip.Min.X; px < clip.Max.X; px++ {
			cov := float64(r.mask.Pix[moff]) / 255
			if cov > 0 {
				r.composite(r.img.Pix[off:off+4:off+4], sr*cov, sg*cov, sb*cov, sa*cov)
			}
			off += 4
			moff++
		}
	}
}

func (r *Raster) ensureMask(w, h int) {
	if r.mask != nil && cap(r.mask.Pix) >= w*h {
		r.mask.Pix = r.mask.Pix[:w*h]
		r.mask.Stride = w
		r.mask.Rect = image.Rect(0, 0, w, h)
		return
	}
	r.mask = image.NewAlpha(image.Rect(0, 0, w, h))
}

// composite blends a premultiplied source color into one RGBA pixel using
// the current blend mode.
func (r *Raster) composite(px []uint8, sr, sg, sb, sa float64) {
	dr := float64(px[0]) / 255
	dg := float64(px[1]) / 255
	db := float64(px[2]) / 255
	da := float64(px[3]) / 255

	switch r.blend {
	case BlendAdd:
		dr, dg, db, da = dr+sr, dg+sg, db+sb, da+sa
	case BlendErase:
		k := 1 - sa
		dr, dg, db, da = dr*k, dg*k, db*k, da*k
	case BlendScreen:
		dr, dg, db, da = sr+dr-sr*dr, sg+dg-sg*dg, sb+db-sb*db, sa+da-sa*da
	default:
		k := 1 - sa
		dr, dg, db, da = sr+dr*k, sg+dg*k, sb+db*k, sa+da*k
	}

	px[0] = uint8(clamp01(dr) * 255)
	px[1] = uint8(clamp01(dg) * 255)
	px[2] = uint8(clamp01(db) * 255)
	px[3] = uint8(clamp01(da) * 255)
}
