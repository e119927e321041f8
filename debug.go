package glowfx

import (
	"fmt"
	"io"
	"os"
	"time"
)

// tickStats holds per-tick timing and population counts.
// Only populated when the engine is in debug mode.
type tickStats struct {
	tickTime   time.Duration
	rockets    int
	particles  int
	explosions int
	expired    int
}

// debugOut is where debug lines go. Tests swap it out.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables per-tick stats on stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	if e == nil {
		return
	}
	e.debug = enabled
}

// debugLog prints timing and population stats.
func (e *Engine) debugLog(stats tickStats) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[glowfx] tick: %v | hue: %.1f | rockets: %d | particles: %d | explosions: %d | expired: %d\n",
		stats.tickTime, e.hue, stats.rockets, stats.particles, stats.explosions, stats.expired)
}
