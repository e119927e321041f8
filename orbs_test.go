package glowfx

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestOrbFieldDefaults(t *testing.T) {
	f := NewOrbField(OrbConfig{}, nil)
	if f.cfg.Count != DefaultOrbCount {
		t.Errorf("Count = %d, want %d", f.cfg.Count, DefaultOrbCount)
	}
	if len(f.cfg.Palette) != len(OrbPalette) {
		t.Errorf("palette size = %d, want %d", len(f.cfg.Palette), len(OrbPalette))
	}
	if len(f.Orbs()) != 0 {
		t.Errorf("orbs before Resize = %d, want 0", len(f.Orbs()))
	}
}

func TestOrbFieldSeedsOnFirstResize(t *testing.T) {
	cfg := DefaultOrbConfig()
	f := NewOrbField(cfg, NewRand(9))
	f.Resize(800, 600)

	orbs := f.Orbs()
	if len(orbs) != 15 {
		t.Fatalf("orbs = %d, want 15", len(orbs))
	}
	for i, o := range orbs {
		if o.X < 0 || o.X >= 800 || o.Y < 0 || o.Y >= 600 {
			t.Errorf("orb %d at (%v,%v) outside the screen", i, o.X, o.Y)
		}
		if o.Radius < 200 || o.Radius >= 600 {
			t.Errorf("orb %d radius %v out of range", i, o.Radius)
		}
		if math.Abs(o.DX) > 1.5 || math.Abs(o.DY) > 1.5 {
			t.Errorf("orb %d velocity (%v,%v) out of range", i, o.DX, o.DY)
		}
		found := false
		for _, c := range OrbPalette {
			if c == o.Color {
				found = true
			}
		}
		if !found {
			t.Errorf("orb %d color %+v not in the palette", i, o.Color)
		}
	}

	first := orbs[0]
	f.Resize(1024, 768)
	if f.Orbs()[0] != first {
		t.Error("second Resize should not reseed")
	}
}

func TestOrbFieldDrawOrder(t *testing.T) {
	rng := &seqRand{vals: []float64{0.5, 0.25, 0, 1, 0, 0.99, 0.5}}
	f := NewOrbField(OrbConfig{Count: 1, Radius: Range{100, 300}, Speed: Range{-2, 2}}, rng)
	f.Resize(400, 200)
	o := f.Orbs()[0]
	assertNear(t, "X", o.X, 200)
	assertNear(t, "Y", o.Y, 50)
	assertNear(t, "Radius", o.Radius, 100)
	assertNear(t, "DX", o.DX, 2)
	assertNear(t, "DY", o.DY, -2)
	if o.Color != OrbPalette[3] {
		t.Errorf("Color = %+v, want the last palette entry", o.Color)
	}
}

func TestOrbFieldUpdateMovesAndPulses(t *testing.T) {
	f := NewOrbField(OrbConfig{Count: 1}, constRand(0))
	f.Resize(100, 100)
	f.orbs[0] = Orb{X: 10, Y: 20, Radius: 50, DX: 1, DY: -2}

	f.Update(0.5)
	o := f.Orbs()[0]
	assertNear(t, "X", o.X, 11)
	assertNear(t, "Y", o.Y, 18)
	assertNear(t, "Radius", o.Radius, 50+math.Sin(0.5)*0.5)
}

func TestOrbFieldBounces(t *testing.T) {
	f := NewOrbField(OrbConfig{Count: 1}, constRand(0))
	f.Resize(100, 100)
	f.orbs[0] = Orb{X: 100 + 200, Y: -200, Radius: 50, DX: 1, DY: -1}

	f.Update(0)
	o := f.Orbs()[0]
	if o.DX != -1 {
		t.Errorf("DX = %v, want -1 after passing the right margin", o.DX)
	}
	if o.DY != 1 {
		t.Errorf("DY = %v, want 1 after passing the top margin", o.DY)
	}
}

func TestRadialGradientPixels(t *testing.T) {
	pix := radialGradientPixels(16)
	if len(pix) != 16*16*4 {
		t.Fatalf("len = %d", len(pix))
	}
	center := (8*16 + 8) * 4
	if pix[center+3] < 200 {
		t.Errorf("center alpha = %d, want near opaque", pix[center+3])
	}
	if pix[3] != 0 {
		t.Errorf("corner alpha = %d, want 0", pix[3])
	}
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != pix[i+3] {
			t.Fatalf("pixel %d not premultiplied white: %v", i/4, pix[i:i+4])
		}
	}
}

func TestOrbFieldDraw(t *testing.T) {
	f := NewOrbField(DefaultOrbConfig(), NewRand(1))
	f.Resize(64, 64)
	defer f.Dispose()

	dst := ebiten.NewImage(64, 64)
	defer dst.Deallocate()
	f.Draw(dst)
	if f.gradient == nil {
		t.Error("Draw should build the gradient texture")
	}
	f.Dispose()
	if f.gradient != nil {
		t.Error("Dispose should release the gradient")
	}
}
