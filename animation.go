package glowfx

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously, optionally after
// a delay. Create one via TweenCard and call Update(dt) each frame. The group
// writes values into the target fields as it runs.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	delay  float32
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. While the delay is running nothing is written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.delay > 0 {
		if dt <= g.delay {
			g.delay -= dt
			return
		}
		dt -= g.delay
		g.delay = 0
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenCard creates a TweenGroup that animates card.Alpha and card.Scale from
// their current values to the targets.
func TweenCard(card *Card, toAlpha, toScale float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenCardFrom(card, card.Alpha, card.Scale, toAlpha, toScale, duration, 0, fn)
}

// TweenCardFrom creates a TweenGroup that snaps card.Alpha and card.Scale to
// the given start values and animates them to the targets after delay seconds.
func TweenCardFrom(card *Card, fromAlpha, fromScale, toAlpha, toScale float64, duration, delay float32, fn ease.TweenFunc) *TweenGroup {
	card.Alpha, card.Scale = fromAlpha, fromScale
	g := &TweenGroup{count: 2, delay: delay}
	g.tweens[0] = gween.New(float32(fromAlpha), float32(toAlpha), duration, fn)
	g.tweens[1] = gween.New(float32(fromScale), float32(toScale), duration, fn)
	g.fields[0] = &card.Alpha
	g.fields[1] = &card.Scale
	return g
}

// Card fade timings.
const (
	fadeOutDuration = 0.2
	fadeInDuration  = 0.3
	fadeStagger     = 0.05
	fadeHiddenScale = 0.95
)

type fadePhase uint8

const (
	fadeIdle fadePhase = iota
	fadeOut
	fadeIn
)

// CardFader applies EventFilter changes with a transition: every card fades
// out and shrinks slightly, the filter is applied, then the visible cards fade
// back in one after another.
type CardFader struct {
	filter *EventFilter
	phase  fadePhase
	tweens []*TweenGroup
	ease   ease.TweenFunc
}

// NewCardFader creates a fader over f.
func NewCardFader(f *EventFilter) *CardFader {
	return &CardFader{filter: f, ease: ease.OutQuad}
}

// Filter returns the underlying filter.
func (cf *CardFader) Filter() *EventFilter {
	return cf.filter
}

// Busy reports whether a transition is running.
func (cf *CardFader) Busy() bool {
	return cf.phase != fadeIdle
}

// SetCategory changes the category and starts a transition.
func (cf *CardFader) SetCategory(category string) {
	cf.filter.category = category
	cf.begin()
}

// SetDay changes the day and starts a transition.
func (cf *CardFader) SetDay(day string) {
	cf.filter.day = day
	cf.begin()
}

// begin fades every card out from wherever it currently is. A transition
// already running is abandoned.
func (cf *CardFader) begin() {
	cf.phase = fadeOut
	cf.tweens = cf.tweens[:0]
	for _, c := range cf.filter.cards {
		cf.tweens = append(cf.tweens, TweenCard(c, 0, fadeHiddenScale, fadeOutDuration, cf.ease))
	}
}

// Update advances the transition by dt seconds.
func (cf *CardFader) Update(dt float32) {
	if cf.phase == fadeIdle {
		return
	}
	done := true
	for _, g := range cf.tweens {
		g.Update(dt)
		if !g.Done {
			done = false
		}
	}
	if !done {
		return
	}

	switch cf.phase {
	case fadeOut:
		cf.filter.Apply()
		cf.tweens = cf.tweens[:0]
		for i, c := range cf.filter.Visible() {
			delay := float32(i) * fadeStagger
			cf.tweens = append(cf.tweens, TweenCardFrom(c, 0, fadeHiddenScale, 1, 1, fadeInDuration, delay, cf.ease))
		}
		cf.phase = fadeIn
		if len(cf.tweens) == 0 {
			cf.phase = fadeIdle
		}
	case fadeIn:
		cf.tweens = cf.tweens[:0]
		cf.phase = fadeIdle
	}
}
