// Package glowfx renders decorative glowing effects for [Ebitengine]: a
// particle fireworks show, drifting "liquid orb" backgrounds, a
// pointer-driven liquid distortion filter, card tilt and parallax, and
// tab/filter state with tweened transitions.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	stage := glowfx.NewStage()
//	canvas := glowfx.NewCanvas(960, 540)
//	stage.AddLayer(canvas)
//
//	show := glowfx.New(canvas, stage.Frames(), glowfx.DefaultConfig())
//	stage.OnResize(show.Resize)
//	show.Start()
//
//	glowfx.Run(stage, glowfx.RunConfig{Title: "Fireworks", Width: 960, Height: 540})
//
// For full control, implement [ebiten.Game] yourself: [Stage] already does,
// so embed it or call [Stage.Update], [Stage.Draw] and [Stage.Layout].
//
// # Fireworks
//
// An [Engine] owns every rocket and particle of a show. Each frame it fades
// the previous frame with destination-out compositing, switches to additive
// blending, draws and advances rockets (exploding the ones that arrive) and
// particles (dropping the ones that faded out), and sometimes launches new
// rockets. It reschedules itself on a [Scheduler]; [FrameQueue] is the one a
// [Stage] flushes every Update.
//
// The engine draws on any [Surface]. [Canvas] draws on the GPU through
// Ebitengine; [Raster] draws on the CPU into an *image.RGBA and needs no
// graphics context, which suits snapshots, terminals and tests.
//
// With no surface there is no show: [New] returns nil and a nil *Engine
// ignores every call.
//
// # Background and interaction
//
// [OrbField] paints large radial-gradient orbs with screen blending.
// [LiquidFilter] warps a layer with a Kage shader whose strength follows a
// [Distortion] that eases toward pointer-driven targets. [Tilt] and
// [ParallaxOffset] compute pointer-reactive poses, and [TabGroup],
// [EventFilter] and [CardFader] hold tab and filter state, with transitions
// tweened via [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package glowfx
