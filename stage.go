package glowfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Layer is one full-screen effect owned by a Stage. Layers are updated and
// drawn in the order they were added, so later layers composite on top.
type Layer interface {
	// Update advances the layer by dt seconds.
	Update(dt float64)
	// Draw renders the layer onto dst.
	Draw(dst *ebiten.Image)
	// Resize is called whenever the screen size changes, and once before
	// the first Update.
	Resize(w, h int)
}

// Stage is the top-level object that owns the layers, the frame queue that
// drives self-scheduling effects, and the screen size. It implements
// ebiten.Game; Run wraps it in a window.
type Stage struct {
	// ClearColor fills the screen before any layer is drawn.
	ClearColor Color

	layers     []Layer
	frames     FrameQueue
	onResize   []func(w, h int)
	updateFunc func() error
	w, h       int
	fps        *fpsOverlay
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	return &Stage{}
}

// AddLayer appends l on top of the existing layers. When the stage already
// knows its size, l is resized immediately.
func (s *Stage) AddLayer(l Layer) {
	s.layers = append(s.layers, l)
	if s.w > 0 && s.h > 0 {
		l.Resize(s.w, s.h)
	}
}

// Layers returns the stage's layers. The returned slice MUST NOT be mutated.
func (s *Stage) Layers() []Layer {
	return s.layers
}

// Frames returns the scheduler flushed once per Update. Pass it to New so an
// Engine ticks once per frame.
func (s *Stage) Frames() *FrameQueue {
	return &s.frames
}

// OnResize registers fn to be notified of screen size changes, after the
// layers have been resized.
func (s *Stage) OnResize(fn func(w, h int)) {
	s.onResize = append(s.onResize, fn)
	if s.w > 0 && s.h > 0 {
		fn(s.w, s.h)
	}
}

// SetUpdateFunc sets a callback run at the end of every Update. A non-nil
// error ends the game loop.
func (s *Stage) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Size returns the current screen size.
func (s *Stage) Size() (w, h int) {
	return s.w, s.h
}

// Update implements ebiten.Game. Frame callbacks run first, then layers.
func (s *Stage) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	s.frames.Flush()
	for _, l := range s.layers {
		l.Update(dt)
	}
	if s.fps != nil {
		s.fps.update(dt)
	}
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return fmt.Errorf("update: %w", err)
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.ClearColor != (Color{}) {
		screen.Fill(s.ClearColor.toRGBA())
	}
	for _, l := range s.layers {
		l.Draw(screen)
	}
	if s.fps != nil {
		s.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The stage renders at the window's size and
// notifies layers and resize callbacks when it changes.
func (s *Stage) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (s *Stage) resize(w, h int) {
	if w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	for _, l := range s.layers {
		l.Resize(w, h)
	}
	for _, fn := range s.onResize {
		fn(w, h)
	}
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// Run opens a resizable window and runs the stage until the window closes or
// the update func returns an error.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 960, 540
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.ShowFPS {
		stage.fps = newFPSOverlay()
	}
	return ebiten.RunGame(stage)
}
