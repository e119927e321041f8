package glowfx

import (
	"math"
	"testing"
)

func TestDistortionAtRest(t *testing.T) {
	d := NewDistortion()
	assertNear(t, "Frequency", d.Frequency, 0.01)
	assertNear(t, "Scale", d.Scale, 5)
	d.Step()
	assertNear(t, "Frequency after Step", d.Frequency, 0.01)
	assertNear(t, "Scale after Step", d.Scale, 5)
}

func TestDistortionPointerTargets(t *testing.T) {
	d := NewDistortion()

	d.PointerMoved(500, 250, 1000, 500)
	assertNear(t, "center frequency", d.TargetFrequency, 0.02)
	assertNear(t, "center scale", d.TargetScale, 20)

	d.PointerMoved(0, 500, 1000, 500)
	assertNear(t, "edge frequency", d.TargetFrequency, 0.045)
	assertNear(t, "bottom scale", d.TargetScale, 30)

	// Unknown screen size leaves targets alone.
	d.PointerMoved(10, 10, 0, 0)
	assertNear(t, "frequency unchanged", d.TargetFrequency, 0.045)
}

func TestDistortionEases(t *testing.T) {
	d := NewDistortion()
	d.PointerMoved(500, 500, 1000, 500) // scale target 30
	d.Step()
	assertNear(t, "Scale after one step", d.Scale, 5+25*0.02)

	for i := 0; i < 1000; i++ {
		d.Step()
	}
	if math.Abs(d.Scale-30) > 1e-3 {
		t.Errorf("Scale = %v, want ~30 after settling", d.Scale)
	}
}

func TestParallaxOffset(t *testing.T) {
	if got := ParallaxOffset(400, 300, 800, 600); got != (Vec2{}) {
		t.Errorf("center offset = %v, want zero", got)
	}
	got := ParallaxOffset(0, 600, 800, 600)
	assertNear(t, "X", got.X, 8)
	assertNear(t, "Y", got.Y, -6)
}

func TestTilt(t *testing.T) {
	card := Rect{X: 100, Y: 100, Width: 200, Height: 100}

	center := Tilt(card, 200, 150)
	assertNear(t, "center RotateX", center.RotateX, 0)
	assertNear(t, "center RotateY", center.RotateY, 0)
	assertNear(t, "Scale", center.Scale, 1.02)
	if !center.Hovered {
		t.Error("expected Hovered")
	}
	assertNear(t, "GlareX", center.GlareX, 100)
	assertNear(t, "GlareY", center.GlareY, 50)

	corner := Tilt(card, 100, 100)
	assertNear(t, "corner RotateX", corner.RotateX, 5)
	assertNear(t, "corner RotateY", corner.RotateY, -5)
}

func TestTiltDegenerateCard(t *testing.T) {
	if got := Tilt(Rect{Width: 0, Height: 10}, 5, 5); got != RestingTilt() {
		t.Errorf("Tilt = %+v, want resting pose", got)
	}
}

func TestTiltProject(t *testing.T) {
	x, y := RestingTilt().Project(10, -20)
	assertNear(t, "resting x", x, 10)
	assertNear(t, "resting y", y, -20)

	// Leaning about the vertical axis brings one side closer to the viewer.
	tilt := TiltState{RotateY: 5, Scale: 1}
	lx, _ := tilt.Project(-100, 0)
	rx, _ := tilt.Project(100, 0)
	if math.Abs(lx) == math.Abs(rx) {
		t.Errorf("projected edges %v and %v should differ in size", lx, rx)
	}
}
