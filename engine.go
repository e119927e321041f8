package glowfx

import (
	"slices"
	"time"
)

// Engine runs a fireworks show on a Surface. It owns every rocket and
// particle; all mutation happens inside Tick on the caller's goroutine.
//
// A nil *Engine is valid and inert: New returns nil when there is no surface
// to draw on, and every method is a no-op on a nil receiver.
type Engine struct {
	surface Surface
	sched   Scheduler
	rng     Rand
	sink    EventSink
	cfg     Config

	rockets   []rocket
	particles []particle
	hue       float64

	width, height float64

	frame   FrameID
	running bool

	debug bool
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithRand replaces the random source (the math/rand/v2 global generator by default).
func WithRand(rng Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithEventSink forwards launch and explosion events to sink.
func WithEventSink(sink EventSink) Option {
	return func(e *Engine) { e.sink = sink }
}

// WithSize sets the initial surface size, as if Resize had been called.
func WithSize(w, h int) Option {
	return func(e *Engine) { e.Resize(w, h) }
}

// New creates an engine drawing to surface and scheduling its frames on
// sched. It returns nil, silently, when surface is nil. A nil sched is
// allowed; such an engine only advances when Tick is called directly.
//
// A RocketSpeed that is not positive or a RocketAcceleration below 1 would
// leave rockets short of their targets forever, so New replaces them with
// the DefaultConfig values.
func New(surface Surface, sched Scheduler, cfg Config, opts ...Option) *Engine {
	if surface == nil {
		return nil
	}
	def := DefaultConfig()
	if cfg.RocketSpeed <= 0 {
		cfg.RocketSpeed = def.RocketSpeed
	}
	if cfg.RocketAcceleration < 1 {
		cfg.RocketAcceleration = def.RocketAcceleration
	}
	e := &Engine{
		surface: surface,
		sched:   sched,
		rng:     globalRand{},
		cfg:     cfg,
		hue:     cfg.BaseHue,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start requests the first frame. From then on every frame ticks once and
// requests the next, until Stop.
func (e *Engine) Start() {
	if e == nil || e.running || e.sched == nil {
		return
	}
	e.running = true
	e.frame = e.sched.RequestFrame(e.loop)
}

// Stop cancels the pending frame request. Rockets and particles stay where
// they are; Start resumes the show.
func (e *Engine) Stop() {
	if e == nil || !e.running {
		return
	}
	e.running = false
	if e.frame != 0 {
		e.sched.CancelFrame(e.frame)
		e.frame = 0
	}
}

// Running reports whether the engine has a frame loop scheduled.
func (e *Engine) Running() bool {
	return e != nil && e.running
}

func (e *Engine) loop() {
	e.frame = 0
	if !e.running {
		return
	}
	e.Tick()
	// A sink may have restarted the engine during Tick, which already
	// requested the next frame.
	if e.running && e.frame == 0 {
		e.frame = e.sched.RequestFrame(e.loop)
	}
}

// Resize records the surface's new pixel size. Launches after this call aim
// inside the new bounds.
func (e *Engine) Resize(w, h int) {
	if e == nil {
		return
	}
	e.width = float64(w)
	e.height = float64(h)
}

// Size returns the last size passed to Resize.
func (e *Engine) Size() (w, h float64) {
	if e == nil {
		return 0, 0
	}
	return e.width, e.height
}

// SetEventSink replaces the event sink. Nil disables events.
func (e *Engine) SetEventSink(sink EventSink) {
	if e == nil {
		return
	}
	e.sink = sink
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config {
	if e == nil {
		return Config{}
	}
	return e.cfg
}

// Hue returns the current base hue in degrees. It grows without bound;
// colors wrap it onto the color wheel.
func (e *Engine) Hue() float64 {
	if e == nil {
		return 0
	}
	return e.hue
}

// RocketCount returns the number of rockets in flight.
func (e *Engine) RocketCount() int {
	if e == nil {
		return 0
	}
	return len(e.rockets)
}

// ParticleCount returns the number of live explosion particles.
func (e *Engine) ParticleCount() int {
	if e == nil {
		return 0
	}
	return len(e.particles)
}

// Launch fires a rocket from (sx, sy) toward (tx, ty).
func (e *Engine) Launch(sx, sy, tx, ty float64) {
	if e == nil {
		return
	}
	e.rockets = append(e.rockets, newRocket(Vec2{sx, sy}, Vec2{tx, ty}, &e.cfg, e.rng))
	e.emit(ShowEvent{Type: EventLaunch, X: sx, Y: sy, Hue: e.hue})
}

// Tick advances the show by one frame and draws it:
//
//  1. the base hue advances by Config.HueStep;
//  2. the whole surface is erased by Config.FadeAlpha, leaving fading trails;
//  3. blending switches to additive so overlapping glows brighten;
//  4. rockets draw then advance, newest first; arrivals explode and are removed;
//  5. particles draw then advance, newest first; expired ones are removed;
//  6. new rockets may launch.
//
// Tick does not schedule anything; the loop started by Start does that.
func (e *Engine) Tick() {
	if e == nil {
		return
	}
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.hue += e.cfg.HueStep

	e.surface.SetBlend(BlendErase)
	e.surface.FillRect(0, 0, e.width, e.height, Color{A: e.cfg.FadeAlpha})

	e.surface.SetBlend(BlendAdd)

	explosions := 0
	for i := len(e.rockets) - 1; i >= 0; i-- {
		r := &e.rockets[i]
		renderRocket(e.surface, r, e.hue, &e.cfg)
		if advanceRocket(r) {
			e.explode(r.target)
			e.rockets = slices.Delete(e.rockets, i, i+1)
			explosions++
		}
	}

	expired := 0
	for i := len(e.particles) - 1; i >= 0; i-- {
		p := &e.particles[i]
		renderParticle(e.surface, p, &e.cfg)
		if advanceParticle(p, &e.cfg) {
			e.particles = slices.Delete(e.particles, i, i+1)
			expired++
		}
	}

	e.maybeLaunch()

	if e.debug {
		e.debugLog(tickStats{
			tickTime:   time.Since(t0),
			rockets:    len(e.rockets),
			particles:  len(e.particles),
			explosions: explosions,
			expired:    expired,
		})
	}
}

// explode creates one shell's particles at p.
func (e *Engine) explode(p Vec2) {
	before := len(e.particles)
	e.particles = spawnExplosion(e.particles, p, e.hue, &e.cfg, e.rng)
	e.emit(ShowEvent{Type: EventExplode, X: p.X, Y: p.Y, Hue: e.hue, Count: len(e.particles) - before})
}

// maybeLaunch fires a rocket from bottom center toward the top half with
// probability RocketSpawnRate. A launch is sometimes joined by two rockets
// from the bottom quarters, each aimed at its own half of the sky.
func (e *Engine) maybeLaunch() {
	if e.rng.Float64() >= e.cfg.RocketSpawnRate {
		return
	}
	w, h := e.width, e.height
	e.Launch(w/2, h, between(e.rng, 0, w), between(e.rng, 0, h/2))

	if e.rng.Float64() < e.cfg.MultiLaunchChance {
		e.Launch(w/4, h, between(e.rng, 0, w/2), between(e.rng, 0, h/2))
		e.Launch(3*w/4, h, between(e.rng, w/2, w), between(e.rng, 0, h/2))
	}
}

func (e *Engine) emit(ev ShowEvent) {
	if e.sink != nil {
		e.sink.EmitEvent(ev)
	}
}
