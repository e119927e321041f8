package glowfx

import "math"

// Distortion resting values and pointer response.
const (
	distortionBaseFreq  = 0.01
	distortionBaseScale = 5
	distortionEase      = 0.02 // fraction of the remaining gap closed per step
)

// Distortion tracks the parameters of a pointer-driven liquid distortion:
// a turbulence base frequency and a displacement scale. Pointer moves set
// targets; Step eases the current values toward them, so the liquid reacts
// slowly and heavily.
type Distortion struct {
	Frequency       float64
	Scale           float64
	TargetFrequency float64
	TargetScale     float64
}

// NewDistortion returns a distortion at rest.
func NewDistortion() *Distortion {
	return &Distortion{
		Frequency:       distortionBaseFreq,
		Scale:           distortionBaseScale,
		TargetFrequency: distortionBaseFreq,
		TargetScale:     distortionBaseScale,
	}
}

// PointerMoved retargets the distortion for a pointer at (x, y) on a w×h
// screen. The liquid boils faster toward the left and right edges and
// displaces further toward the bottom.
func (d *Distortion) PointerMoved(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	nx := x / w
	ny := y / h
	d.TargetFrequency = 0.02 + math.Abs(0.5-nx)*0.05
	d.TargetScale = 10 + ny*20
}

// Step eases the current values one frame toward their targets.
func (d *Distortion) Step() {
	d.Frequency += (d.TargetFrequency - d.Frequency) * distortionEase
	d.Scale += (d.TargetScale - d.Scale) * distortionEase
}

// ParallaxOffset returns the background offset for a pointer at (px, py) on
// a w×h screen. The background moves against the pointer, 1px per 50px.
func ParallaxOffset(px, py, w, h float64) Vec2 {
	return Vec2{
		X: (w - px*2) / 100,
		Y: (h - py*2) / 100,
	}
}

// Tilt limits.
const (
	tiltMaxDegrees  = 10
	tiltHoverScale  = 1.02
	TiltPerspective = 1000 // px; the viewer distance used when projecting a tilt
)

// TiltState is the 3D pose of a hovered card plus the position of its glare.
type TiltState struct {
	// RotateX and RotateY are rotations in degrees about the card's horizontal
	// and vertical axes.
	RotateX, RotateY float64
	Scale            float64
	// GlareX and GlareY are the pointer position relative to the card's
	// top-left corner, where the radial glare is centered.
	GlareX, GlareY float64
	// Hovered is false for the resting pose, which has no glare.
	Hovered bool
}

// Tilt returns the pose of card for a pointer at (px, py). The card leans
// away from the pointer by up to 5 degrees on each axis.
func Tilt(card Rect, px, py float64) TiltState {
	if card.Width <= 0 || card.Height <= 0 {
		return RestingTilt()
	}
	x := px - card.X
	y := py - card.Y
	xPct := x / card.Width
	yPct := y / card.Height
	return TiltState{
		RotateX: (0.5 - yPct) * tiltMaxDegrees,
		RotateY: (xPct - 0.5) * tiltMaxDegrees,
		Scale:   tiltHoverScale,
		GlareX:  x,
		GlareY:  y,
		Hovered: true,
	}
}

// RestingTilt returns the pose of a card the pointer has left.
func RestingTilt() TiltState {
	return TiltState{Scale: 1}
}

// Project maps a point given relative to the card's center through the tilt,
// with the viewer TiltPerspective pixels away. Returns the projected offset
// from the card's center.
func (t TiltState) Project(x, y float64) (float64, float64) {
	ax := t.RotateX * math.Pi / 180
	ay := t.RotateY * math.Pi / 180
	x *= t.Scale
	y *= t.Scale

	// rotateX then rotateY, as composed by a CSS transform list.
	y1 := y * math.Cos(ax)
	z1 := y * math.Sin(ax)
	x2 := x*math.Cos(ay) + z1*math.Sin(ay)
	z2 := -x*math.Sin(ay) + z1*math.Cos(ay)

	k := TiltPerspective / (TiltPerspective - z2)
	return x2 * k, y1 * k
}
