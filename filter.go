package glowfx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Filter is the interface for visual effects applied to a layer's rendered output.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
}

// --- Kage shader sources ---
// All shaders use //kage:unit pixels as required by Ebitengine.

// liquidShaderSrc displaces each pixel along a procedural turbulence field.
// Frequency plays the role of an feTurbulence base frequency (cycles per
// pixel) and Scale the feDisplacementMap scale (pixels).
const liquidShaderSrc = `//kage:unit pixels
package main

var Frequency float
var Scale float
var Time float

func turbulence(p vec2, t float) float {
	n := sin(p.x*6.2831853 + t) * cos(p.y*6.2831853 - t*0.7)
	n += 0.5 * sin((p.x+p.y)*12.566371 + t*1.3)
	n += 0.25 * cos((p.x-p.y)*25.132741 - t*1.9)
	return n / 1.75
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	p := src * Frequency
	dx := turbulence(p, Time)
	dy := turbulence(p.yx + vec2(3.7, 1.3), Time)
	return imageSrc0At(src + vec2(dx, dy)*Scale*0.5)
}
`

// --- Lazy shader compilation (single-threaded, no sync.Once) ---

var liquidShader *ebiten.Shader

func ensureLiquidShader() *ebiten.Shader {
	if liquidShader == nil {
		s, err := ebiten.NewShader([]byte(liquidShaderSrc))
		if err != nil {
			panic("glowfx: failed to compile liquid shader: " + err.Error())
		}
		liquidShader = s
	}
	return liquidShader
}

// --- LiquidFilter ---

// LiquidFilter warps its source like a glass of moving liquid. Its strength
// follows a Distortion, which it eases one step per Update.
type LiquidFilter struct {
	Distortion *Distortion
	// Speed scales how fast the turbulence field evolves. Zero freezes it.
	Speed float64

	time     float64
	uniforms map[string]any
	shaderOp ebiten.DrawRectShaderOptions
}

// NewLiquidFilter creates a filter driven by d. A nil d uses a distortion at rest.
func NewLiquidFilter(d *Distortion) *LiquidFilter {
	if d == nil {
		d = NewDistortion()
	}
	return &LiquidFilter{
		Distortion: d,
		Speed:      1,
		uniforms:   make(map[string]any, 3),
	}
}

// Update eases the distortion one frame and advances the turbulence clock.
func (f *LiquidFilter) Update(dt float64) {
	f.Distortion.Step()
	f.time += dt * f.Speed
}

// Apply renders the distorted src into dst.
func (f *LiquidFilter) Apply(src, dst *ebiten.Image) {
	shader := ensureLiquidShader()
	f.uniforms["Frequency"] = float32(f.Distortion.Frequency)
	f.uniforms["Scale"] = float32(f.Distortion.Scale)
	f.uniforms["Time"] = float32(f.time)
	bounds := src.Bounds()
	f.shaderOp.Images[0] = src
	f.shaderOp.Uniforms = f.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &f.shaderOp)
}

// --- FilteredLayer ---

// FilteredLayer renders a layer offscreen and draws it through a filter.
// Filters that also implement Update(dt float64) are advanced with the layer.
type FilteredLayer struct {
	Layer  Layer
	Filter Filter

	offscreen *ebiten.Image
	imgOp     ebiten.DrawImageOptions
}

// NewFilteredLayer wraps l so it is drawn through f.
func NewFilteredLayer(l Layer, f Filter) *FilteredLayer {
	return &FilteredLayer{Layer: l, Filter: f}
}

// Update implements Layer.
func (fl *FilteredLayer) Update(dt float64) {
	fl.Layer.Update(dt)
	if u, ok := fl.Filter.(interface{ Update(float64) }); ok {
		u.Update(dt)
	}
}

// Resize implements Layer.
func (fl *FilteredLayer) Resize(w, h int) {
	if fl.offscreen != nil {
		fl.offscreen.Deallocate()
	}
	fl.offscreen = ebiten.NewImage(max(w, 1), max(h, 1))
	fl.Layer.Resize(w, h)
}

// Draw implements Layer.
func (fl *FilteredLayer) Draw(dst *ebiten.Image) {
	if fl.offscreen == nil {
		b := dst.Bounds()
		fl.offscreen = ebiten.NewImage(max(b.Dx(), 1), max(b.Dy(), 1))
	}
	fl.offscreen.Clear()
	fl.Layer.Draw(fl.offscreen)
	if fl.Filter == nil {
		fl.imgOp.GeoM.Reset()
		dst.DrawImage(fl.offscreen, &fl.imgOp)
		return
	}
	fl.Filter.Apply(fl.offscreen, dst)
}
