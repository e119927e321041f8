package glowfx

import (
	"math"
	"testing"
)

func TestSpawnExplosionCount(t *testing.T) {
	cfg := DefaultConfig()

	// coin comes up tails
	got := spawnExplosion(nil, Vec2{10, 20}, 100, &cfg, &seqRand{vals: []float64{0.5}, fallback: 0.3})
	if len(got) != 60 {
		t.Errorf("regular shell = %d particles, want 60", len(got))
	}

	// coin comes up heads
	got = spawnExplosion(nil, Vec2{10, 20}, 100, &cfg, &seqRand{vals: []float64{0.1}, fallback: 0.3})
	if len(got) != 120 {
		t.Errorf("massive shell = %d particles, want 120", len(got))
	}
}

func TestSpawnExplosionAppends(t *testing.T) {
	cfg := DefaultConfig()
	dst := make([]particle, 3)
	dst = spawnExplosion(dst, Vec2{}, 0, &cfg, constRand(0.9))
	if len(dst) != 63 {
		t.Errorf("len = %d, want 63", len(dst))
	}
}

func TestSpawnExplosionHueJitter(t *testing.T) {
	cfg := DefaultConfig()
	ps := spawnExplosion(nil, Vec2{5, 5}, 200, &cfg, NewRand(42))
	for i, p := range ps {
		if p.hue < 180 || p.hue >= 220 {
			t.Errorf("particle %d hue = %v, want within 20 of 200", i, p.hue)
		}
		if p.pos != (Vec2{5, 5}) {
			t.Errorf("particle %d pos = %v, want the burst point", i, p.pos)
		}
		if p.alpha != 1 {
			t.Errorf("particle %d alpha = %v, want 1", i, p.alpha)
		}
		if p.decay < particleDecayMin || p.decay >= particleDecayMax {
			t.Errorf("particle %d decay = %v out of range", i, p.decay)
		}
	}
}

func TestNewParticleDrawOrder(t *testing.T) {
	rng := &seqRand{vals: []float64{0.25, 0.5, 0.75, 0.5, 0}}
	p := newParticle(Vec2{}, 100, rng)
	assertNear(t, "angle", p.angle, math.Pi/2)
	assertNear(t, "speed", p.speed, 5.5)
	assertNear(t, "hue", p.hue, 110)
	assertNear(t, "brightness", p.brightness, 65)
	assertNear(t, "decay", p.decay, 0.015)
}

func TestParticleAlphaDecreasesUntilExpiry(t *testing.T) {
	cfg := DefaultConfig()
	p := newParticle(Vec2{}, 0, NewRand(3))
	prev := p.alpha
	for i := 0; i < 1000; i++ {
		if prev <= p.decay {
			t.Fatalf("tick %d: alive particle has alpha %v <= decay %v", i, prev, p.decay)
		}
		expired := advanceParticle(&p, &cfg)
		if p.alpha >= prev {
			t.Fatalf("tick %d: alpha %v did not decrease from %v", i, p.alpha, prev)
		}
		if expired {
			if p.alpha > p.decay {
				t.Errorf("expired with alpha %v > decay %v", p.alpha, p.decay)
			}
			return
		}
		prev = p.alpha
	}
	t.Fatal("particle never expired")
}

func TestParticleMotion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Wind = 0.5
	p := newParticle(Vec2{}, 0, constRand(0)) // angle 0, speed 1
	advanceParticle(&p, &cfg)
	assertNear(t, "speed", p.speed, 0.96)
	assertNear(t, "pos.X", p.pos.X, 0.96+0.5)
	assertNear(t, "pos.Y", p.pos.Y, 0.08)
}

func TestParticleGravityWithoutSpeed(t *testing.T) {
	cfg := DefaultConfig()
	p := newParticle(Vec2{}, 0, constRand(0))
	p.speed = 0
	for i := 0; i < 10; i++ {
		advanceParticle(&p, &cfg)
	}
	assertNear(t, "pos.X", p.pos.X, 0)
	if math.Abs(p.pos.Y-0.8) > 1e-9 {
		t.Errorf("pos.Y = %v, want 0.8 from gravity alone", p.pos.Y)
	}
}

func TestParticleTrailKeepsLength(t *testing.T) {
	cfg := DefaultConfig()
	p := newParticle(Vec2{}, 0, constRand(0.5))
	for i := 0; i < 30; i++ {
		advanceParticle(&p, &cfg)
		if p.trail.Len() != 5 {
			t.Fatalf("tick %d: trail length %d, want 5", i, p.trail.Len())
		}
	}
}

func TestRenderParticleUsesAlpha(t *testing.T) {
	cfg := DefaultConfig()
	p := newParticle(Vec2{}, 0, constRand(0))
	advanceParticle(&p, &cfg)

	s := &recSurface{}
	renderParticle(s, &p, &cfg)
	if len(s.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(s.calls))
	}
	assertNear(t, "stroke alpha", s.calls[0].color.A, p.alpha)
}
