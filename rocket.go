package glowfx

import "math"

// rocketTrailLen is the number of positions a rocket remembers for its trail.
const rocketTrailLen = 3

// Target marker radius cycle. The marker is cosmetic and never affects flight.
const (
	targetRadiusMin  = 1
	targetRadiusMax  = 8
	targetRadiusStep = 0.3
)

// rocket is a launched shell traveling from its start point toward its target.
// Unexported; owned by Engine.
type rocket struct {
	pos    Vec2
	start  Vec2
	target Vec2

	distanceToTarget float64
	distanceTraveled float64

	trail trail

	angle        float64 // fixed at launch, start → target
	speed        float64
	acceleration float64
	brightness   float64 // lightness percent, fixed at launch
	targetRadius float64
}

// newRocket creates a rocket at start aimed at target. Draws one value from
// rng for the brightness.
func newRocket(start, target Vec2, cfg *Config, rng Rand) rocket {
	return rocket{
		pos:              start,
		start:            start,
		target:           target,
		distanceToTarget: distance(start.X, start.Y, target.X, target.Y),
		trail:            newTrail(rocketTrailLen, start),
		angle:            math.Atan2(target.Y-start.Y, target.X-start.X),
		speed:            cfg.RocketSpeed,
		acceleration:     cfg.RocketAcceleration,
		brightness:       between(rng, 50, 70),
		targetRadius:     targetRadiusMin,
	}
}

// advanceRocket moves r one tick. The traveled distance is measured to the
// position the rocket is about to move to, and arrival is decided before the
// move: an arriving rocket keeps its current position and the caller must
// explode it at its target and drop it.
func advanceRocket(r *rocket) (arrived bool) {
	r.trail.push(r.pos)

	if r.targetRadius < targetRadiusMax {
		r.targetRadius += targetRadiusStep
	} else {
		r.targetRadius = targetRadiusMin
	}

	r.speed *= r.acceleration

	vx := math.Cos(r.angle) * r.speed
	vy := math.Sin(r.angle) * r.speed

	r.distanceTraveled = distance(r.start.X, r.start.Y, r.pos.X+vx, r.pos.Y+vy)
	if r.distanceTraveled >= r.distanceToTarget {
		return true
	}
	r.pos.X += vx
	r.pos.Y += vy
	return false
}

// renderRocket strokes r's trail segment in the shared base hue.
func renderRocket(s Surface, r *rocket, hue float64, cfg *Config) {
	from := r.trail.oldest()
	s.StrokeLine(from.X, from.Y, r.pos.X, r.pos.Y, Stroke{
		Width:     cfg.LineWidth,
		Color:     HSL(hue, 1, r.brightness/100, 1),
		Glow:      cfg.GlowRadius,
		GlowColor: HSL(hue, 1, 0.5, 1),
	})
}
