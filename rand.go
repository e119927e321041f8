package glowfx

import "math/rand/v2"

// Rand is the source of uniform random numbers in [0, 1) used for every
// stochastic choice: spawn decisions, targets, particle angles, speeds,
// decay rates and hue jitter. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded PCG source.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalRand draws from the math/rand/v2 top-level generator.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// between returns a value in [min, max) drawn from rng.
func between(rng Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}
