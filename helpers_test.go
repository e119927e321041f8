package glowfx

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// constRand always returns the same value.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

// seqRand returns scripted values in order, then fallback forever.
type seqRand struct {
	vals     []float64
	fallback float64
}

func (s *seqRand) Float64() float64 {
	if len(s.vals) == 0 {
		return s.fallback
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

type surfaceCall struct {
	op    string // "blend", "fill" or "stroke"
	blend BlendMode
	rect  Rect
	line  [4]float64
	color Color
	width float64
}

// recSurface records every draw call in order.
type recSurface struct {
	calls []surfaceCall
	blend BlendMode
}

func (s *recSurface) SetBlend(mode BlendMode) {
	s.blend = mode
	s.calls = append(s.calls, surfaceCall{op: "blend", blend: mode})
}

func (s *recSurface) FillRect(x, y, w, h float64, c Color) {
	s.calls = append(s.calls, surfaceCall{op: "fill", blend: s.blend, rect: Rect{x, y, w, h}, color: c})
}

func (s *recSurface) StrokeLine(x0, y0, x1, y1 float64, st Stroke) {
	s.calls = append(s.calls, surfaceCall{
		op: "stroke", blend: s.blend, line: [4]float64{x0, y0, x1, y1},
		color: st.Color, width: st.Width,
	})
}

func (s *recSurface) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

// quietConfig never launches rockets on its own and never doubles a shell.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.RocketSpawnRate = 0
	cfg.MassiveChance = 0
	return cfg
}
