package glowfx

import "math"

// particleTrailLen is the number of positions a particle remembers. Longer
// than a rocket's so explosion streaks read as trails.
const particleTrailLen = 5

// Per-particle random ranges.
const (
	particleSpeedMin      = 1
	particleSpeedMax      = 10
	particleHueJitter     = 20
	particleBrightnessMin = 50
	particleBrightnessMax = 80
	particleDecayMin      = 0.015
	particleDecayMax      = 0.03
)

// particle is one streak of an explosion. Unexported; owned by Engine.
type particle struct {
	pos   Vec2
	trail trail

	angle      float64
	speed      float64
	hue        float64
	brightness float64 // lightness percent
	alpha      float64
	decay      float64 // alpha lost per tick, fixed at creation
}

// newParticle creates a particle at p with a hue near baseHue. Draws angle,
// speed, hue, brightness and decay from rng, in that order.
func newParticle(p Vec2, baseHue float64, rng Rand) particle {
	return particle{
		pos:        p,
		trail:      newTrail(particleTrailLen, p),
		angle:      between(rng, 0, math.Pi*2),
		speed:      between(rng, particleSpeedMin, particleSpeedMax),
		hue:        between(rng, baseHue-particleHueJitter, baseHue+particleHueJitter),
		brightness: between(rng, particleBrightnessMin, particleBrightnessMax),
		alpha:      1,
		decay:      between(rng, particleDecayMin, particleDecayMax),
	}
}

// advanceParticle moves p one tick: speed decays by friction, then wind and
// gravity are added on top of the directional motion. Reports expiry once the
// remaining alpha is no more than one decay step.
func advanceParticle(p *particle, cfg *Config) (expired bool) {
	p.trail.push(p.pos)

	p.speed *= cfg.Friction
	p.pos.X += math.Cos(p.angle)*p.speed + cfg.Wind
	p.pos.Y += math.Sin(p.angle)*p.speed + cfg.Gravity

	p.alpha -= p.decay
	return p.alpha <= p.decay
}

// renderParticle strokes p's trail segment at its current opacity.
func renderParticle(s Surface, p *particle, cfg *Config) {
	from := p.trail.oldest()
	s.StrokeLine(from.X, from.Y, p.pos.X, p.pos.Y, Stroke{
		Width:     cfg.LineWidth,
		Color:     HSL(p.hue, 1, p.brightness/100, p.alpha),
		Glow:      cfg.GlowRadius,
		GlowColor: HSL(p.hue, 1, 0.5, p.alpha),
	})
}

// spawnExplosion appends one shell's particles at p to dst and returns the
// extended slice. The count is doubled when the massive-shell coin, flipped
// before any particle is created, comes up.
func spawnExplosion(dst []particle, p Vec2, baseHue float64, cfg *Config, rng Rand) []particle {
	n := cfg.ParticlesPerExplosion
	if rng.Float64() < cfg.MassiveChance {
		n *= 2
	}
	for i := 0; i < n; i++ {
		dst = append(dst, newParticle(p, baseHue, rng))
	}
	return dst
}
