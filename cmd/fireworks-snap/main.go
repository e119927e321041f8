// Fireworks-snap runs the fireworks show headless on the CPU and writes
// periodic PNG snapshots. With a fixed seed the output is reproducible,
// which makes it handy for tuning a show config.
package main

import (
	"flag"
	"log"

	"github.com/phanxgames/glowfx"
)

func main() {
	frames := flag.Int("frames", 600, "number of frames to simulate")
	every := flag.Int("every", 60, "write a snapshot every N frames")
	out := flag.String("out", "snapshots", "output directory")
	configPath := flag.String("config", "", "YAML show config (defaults when empty)")
	width := flag.Int("width", 960, "surface width in pixels")
	height := flag.Int("height", 540, "surface height in pixels")
	seed := flag.Uint64("seed", 1, "random seed")
	debug := flag.Bool("debug", false, "print per-frame stats to stderr")
	flag.Parse()

	if *every <= 0 {
		log.Fatalf("-every must be positive, got %d", *every)
	}

	cfg := glowfx.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = glowfx.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	raster := glowfx.NewRaster(*width, *height)
	var queue glowfx.FrameQueue
	explosions := 0
	show := glowfx.New(raster, &queue, cfg,
		glowfx.WithRand(glowfx.NewRand(*seed)),
		glowfx.WithSize(*width, *height),
		glowfx.WithEventSink(glowfx.EventSinkFunc(func(ev glowfx.ShowEvent) {
			if ev.Type == glowfx.EventExplode {
				explosions++
			}
		})))
	show.SetDebugMode(*debug)
	show.Start()

	written := 0
	for frame := 1; frame <= *frames; frame++ {
		queue.Flush()
		if frame%*every != 0 {
			continue
		}
		path := glowfx.SnapshotPath(*out, "fireworks", frame)
		if err := glowfx.WritePNG(path, glowfx.Flatten(raster.Image(), glowfx.Color{A: 1})); err != nil {
			log.Fatal(err)
		}
		written++
	}
	show.Stop()

	log.Printf("%d frames, %d explosions, %d snapshots in %s", *frames, explosions, written, *out)
}
