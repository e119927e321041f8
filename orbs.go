package glowfx

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// OrbBackground is the deep blue every orb field is painted over.
var OrbBackground = Hex("#020024")

// OrbPalette holds the default orb colors: neon cyan, electric purple, deep
// magenta and bright blue.
var OrbPalette = []Color{
	{R: 0, G: 1, B: 1, A: 0.6},
	{R: 180.0 / 255, G: 0, B: 1, A: 0.6},
	{R: 1, G: 0, B: 150.0 / 255, A: 0.5},
	{R: 0, G: 100.0 / 255, B: 1, A: 0.5},
}

// Orb field defaults.
const (
	DefaultOrbCount = 15
	orbMargin       = 200 // orbs may drift this far off-screen before bouncing
	orbPulse        = 0.5 // radius change per update at the peak of the pulse
	gradientSize    = 256
)

// OrbConfig controls how an OrbField seeds its orbs.
type OrbConfig struct {
	// Count is the number of orbs. Zero means DefaultOrbCount.
	Count int
	// Radius is the range of starting radii in pixels.
	Radius Range
	// Speed is the range of per-axis velocities in pixels per update.
	Speed Range
	// Growth is the range of per-orb growth factors. Stored for callers;
	// the pulse is shared by all orbs.
	Growth Range
	// Palette is the set of colors orbs pick from. Empty means OrbPalette.
	Palette []Color
	// Background fills the screen before orbs are drawn.
	Background Color
}

// DefaultOrbConfig returns the settings of the stock liquid background.
func DefaultOrbConfig() OrbConfig {
	return OrbConfig{
		Count:      DefaultOrbCount,
		Radius:     Range{Min: 200, Max: 600},
		Speed:      Range{Min: -1.5, Max: 1.5},
		Growth:     Range{Min: -0.1, Max: 0.1},
		Palette:    OrbPalette,
		Background: OrbBackground,
	}
}

// Orb is one soft glowing blob.
type Orb struct {
	X, Y   float64
	Radius float64
	DX, DY float64
	Growth float64
	Color  Color
}

// OrbField renders large drifting radial-gradient orbs blended with screen
// compositing over a dark background. It is a Layer.
type OrbField struct {
	cfg     OrbConfig
	orbs    []Orb
	rng     Rand
	w, h    float64
	elapsed float64
	seeded  bool

	gradient *ebiten.Image
	imgOp    ebiten.DrawImageOptions
}

// NewOrbField creates an orb field. Orbs are seeded on the first Resize,
// once the screen size is known. A nil rng uses the global generator.
func NewOrbField(cfg OrbConfig, rng Rand) *OrbField {
	if cfg.Count <= 0 {
		cfg.Count = DefaultOrbCount
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = OrbPalette
	}
	if rng == nil {
		rng = globalRand{}
	}
	return &OrbField{cfg: cfg, rng: rng}
}

// Orbs returns the current orbs. The returned slice MUST NOT be mutated.
func (f *OrbField) Orbs() []Orb {
	return f.orbs
}

// Resize implements Layer. The first call seeds the orbs inside the screen.
func (f *OrbField) Resize(w, h int) {
	f.w, f.h = float64(w), float64(h)
	if f.seeded {
		return
	}
	f.seeded = true
	f.orbs = make([]Orb, f.cfg.Count)
	for i := range f.orbs {
		f.orbs[i] = f.newOrb()
	}
}

func (f *OrbField) newOrb() Orb {
	o := Orb{
		X:      f.rng.Float64() * f.w,
		Y:      f.rng.Float64() * f.h,
		Radius: f.cfg.Radius.Sample(f.rng),
		DX:     f.cfg.Speed.Sample(f.rng),
		DY:     f.cfg.Speed.Sample(f.rng),
	}
	o.Color = f.cfg.Palette[int(f.rng.Float64()*float64(len(f.cfg.Palette)))%len(f.cfg.Palette)]
	o.Growth = f.cfg.Growth.Sample(f.rng)
	return o
}

// Update implements Layer. Orbs drift, bounce once they are orbMargin past
// an edge, and all radii pulse together with the elapsed time.
func (f *OrbField) Update(dt float64) {
	f.elapsed += dt
	pulse := math.Sin(f.elapsed) * orbPulse
	for i := range f.orbs {
		o := &f.orbs[i]
		o.X += o.DX
		o.Y += o.DY
		if o.X < -orbMargin || o.X > f.w+orbMargin {
			o.DX = -o.DX
		}
		if o.Y < -orbMargin || o.Y > f.h+orbMargin {
			o.DY = -o.DY
		}
		o.Radius += pulse
	}
}

// Draw implements Layer.
func (f *OrbField) Draw(dst *ebiten.Image) {
	dst.Fill(f.cfg.Background.toRGBA())
	grad := f.ensureGradient()
	op := &f.imgOp
	for i := range f.orbs {
		o := &f.orbs[i]
		if o.Radius <= 0 {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Translate(-gradientSize/2, -gradientSize/2)
		op.GeoM.Scale(o.Radius*2/gradientSize, o.Radius*2/gradientSize)
		op.GeoM.Translate(o.X, o.Y)
		op.ColorScale.Reset()
		r, g, b, a := o.Color.premultiplied()
		op.ColorScale.Scale(float32(r), float32(g), float32(b), float32(a))
		op.Blend = BlendScreen.EbitenBlend()
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(grad, op)
	}
}

// Dispose releases the gradient texture.
func (f *OrbField) Dispose() {
	if f.gradient != nil {
		f.gradient.Deallocate()
		f.gradient = nil
	}
}

func (f *OrbField) ensureGradient() *ebiten.Image {
	if f.gradient == nil {
		img := ebiten.NewImage(gradientSize, gradientSize)
		img.WritePixels(radialGradientPixels(gradientSize))
		f.gradient = img
	}
	return f.gradient
}

// radialGradientPixels returns premultiplied RGBA pixels of a white disc whose
// alpha falls linearly from 1 at the center to 0 at the rim.
func radialGradientPixels(size int) []byte {
	pix := make([]byte, size*size*4)
	radius := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - radius
			dy := float64(y) + 0.5 - radius
			t := 1 - math.Sqrt(dx*dx+dy*dy)/radius
			a := uint8(clamp01(t) * 255)
			off := (y*size + x) * 4
			pix[off+0] = a // premultiplied white
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	return pix
}
