// Fireworks-term runs the fireworks show in a terminal. Every character cell
// shows two vertically stacked pixels using the upper half block, so the show
// is rendered on the CPU and downsampled into cell colors. Explosions play a
// short tone whose pitch follows the hue. Click to launch a rocket at the
// pointer; press Esc or Ctrl-C to quit.
package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/phanxgames/glowfx"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	sampleRate    = beep.SampleRate(44100)
	toneDuration  = 80 * time.Millisecond
)

type term struct {
	screen tcell.Screen
	raster *glowfx.Raster
	frames glowfx.FrameQueue
	show   *glowfx.Engine
	scale  int
	cols   int
	rows   int
	mute   bool
	audio  bool

	// held is the left button state from the previous mouse event.
	held bool
}

func main() {
	configPath := flag.String("config", "", "YAML show config (defaults when empty)")
	scale := flag.Int("scale", 4, "raster pixels per cell column")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	mute := flag.Bool("mute", false, "disable explosion tones")
	flag.Parse()

	cfg := glowfx.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = glowfx.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	// Cells are small, so thin the strokes to keep shapes legible.
	cfg.LineWidth = max(cfg.LineWidth/2, 1)
	cfg.GlowRadius /= 2

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()

	t := &term{screen: screen, scale: max(*scale, 1), mute: *mute}
	if !t.mute {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			// Non-fatal, the show runs silently.
			log.Printf("audio init failed: %v", err)
		} else {
			t.audio = true
		}
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	t.raster = glowfx.NewRaster(1, 1)
	t.show = glowfx.New(t.raster, &t.frames, cfg,
		glowfx.WithRand(glowfx.NewRand(s)),
		glowfx.WithEventSink(glowfx.EventSinkFunc(t.onEvent)))
	t.resize()
	t.show.Start()

	t.run()
	t.cleanup()
}

// resize fits the raster to the terminal.
func (t *term) resize() {
	t.cols, t.rows = t.screen.Size()
	w, h := t.cols*t.scale, t.rows*2*t.scale
	t.raster.Resize(w, h)
	t.show.Resize(w, h)
}

func (t *term) onEvent(ev glowfx.ShowEvent) {
	if ev.Type != glowfx.EventExplode || !t.audio {
		return
	}
	hue := math.Mod(ev.Hue, 360)
	sine, err := generators.SineTone(sampleRate, 220+hue/360*660)
	if err != nil {
		return
	}
	tone := &effects.Gain{Streamer: beep.Take(sampleRate.N(toneDuration), sine), Gain: -0.8}
	speaker.Play(tone)
}

func (t *term) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
	case *tcell.EventMouse:
		if t.pressed(ev.Buttons()) {
			x, y := ev.Position()
			w, h := t.show.Size()
			t.show.Launch(w/2, h, float64(x*t.scale), float64(y*2*t.scale))
		}
	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()
	}
	return true
}

// pressed reports whether the left button went down with this event. Motion
// events with the button still held do not count.
func (t *term) pressed(buttons tcell.ButtonMask) bool {
	down := buttons&tcell.Button1 != 0
	was := t.held
	t.held = down
	return down && !was
}

func (t *term) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !t.handleInput(ev) {
				return
			}
		case <-ticker.C:
			t.frames.Flush()
			t.draw()
		}
	}
}

// draw downsamples the raster into half-block cells: the foreground is the
// upper pixel block and the background the lower one.
func (t *term) draw() {
	img := t.raster.Image()
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			top := t.average(img.Pix, img.Stride, col*t.scale, row*2*t.scale)
			bottom := t.average(img.Pix, img.Stride, col*t.scale, (row*2+1)*t.scale)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			t.screen.SetContent(col, row, '▀', nil, style)
		}
	}
	t.screen.Show()
}

// average returns the mean color of the scale×scale block at (x0, y0).
// Pixels are premultiplied, which is their color over black.
func (t *term) average(pix []uint8, stride, x0, y0 int) tcell.Color {
	var r, g, b int
	for y := y0; y < y0+t.scale; y++ {
		off := y*stride + x0*4
		for x := 0; x < t.scale; x++ {
			r += int(pix[off])
			g += int(pix[off+1])
			b += int(pix[off+2])
			off += 4
		}
	}
	n := t.scale * t.scale
	return tcell.NewRGBColor(int32(r/n), int32(g/n), int32(b/n))
}

func (t *term) cleanup() {
	t.show.Stop()
	if t.audio {
		speaker.Close()
	}
	t.screen.Fini()
}
