package glowfx

// FilterAll matches every category or day.
const FilterAll = "all"

// TabGroup is a set of tab buttons where exactly one is active at a time.
// Each button may have a content panel of the same name; activating a button
// shows its panel, if one exists, and hides every other panel.
type TabGroup struct {
	buttons []string
	panels  map[string]bool
	active  string
	shown   string
}

// NewTabGroup creates a tab group from button names and the names of the
// panels that exist. Nothing is active until Activate is called.
func NewTabGroup(buttons, panels []string) *TabGroup {
	g := &TabGroup{
		buttons: buttons,
		panels:  make(map[string]bool, len(panels)),
	}
	for _, p := range panels {
		g.panels[p] = true
	}
	return g
}

// Activate makes name the active button and shows its panel. It reports
// whether a panel was shown. Groups without buttons and unknown button names
// leave the group unchanged.
func (g *TabGroup) Activate(name string) bool {
	if len(g.buttons) == 0 || !g.hasButton(name) {
		return false
	}
	g.active = name
	g.shown = ""
	if g.panels[name] {
		g.shown = name
		return true
	}
	return false
}

// Active returns the active button name, or "" when none is active.
func (g *TabGroup) Active() string {
	return g.active
}

// Shown returns the visible panel name, or "" when no panel is visible.
func (g *TabGroup) Shown() string {
	return g.shown
}

// Buttons returns the button names. The returned slice MUST NOT be mutated.
func (g *TabGroup) Buttons() []string {
	return g.buttons
}

func (g *TabGroup) hasButton(name string) bool {
	for _, b := range g.buttons {
		if b == name {
			return true
		}
	}
	return false
}

// Card is one filterable event card. Alpha and Scale are animated by a
// CardFader; without one they stay at 1.
type Card struct {
	Name     string
	Category string
	Day      string
	Bounds   Rect

	Visible bool
	Alpha   float64
	Scale   float64
	Tilt    TiltState
}

// NewCard returns a visible, fully opaque card at rest.
func NewCard(name, category, day string, bounds Rect) *Card {
	return &Card{
		Name:     name,
		Category: category,
		Day:      day,
		Bounds:   bounds,
		Visible:  true,
		Alpha:    1,
		Scale:    1,
		Tilt:     RestingTilt(),
	}
}

// EventFilter shows the cards matching both the current category and the
// current day. FilterAll matches everything.
type EventFilter struct {
	cards    []*Card
	category string
	day      string
}

// NewEventFilter creates a filter over cards with both criteria set to FilterAll.
func NewEventFilter(cards []*Card) *EventFilter {
	return &EventFilter{cards: cards, category: FilterAll, day: FilterAll}
}

// Cards returns every card, visible or not. The returned slice MUST NOT be mutated.
func (f *EventFilter) Cards() []*Card {
	return f.cards
}

// Category returns the current category.
func (f *EventFilter) Category() string {
	return f.category
}

// Day returns the current day.
func (f *EventFilter) Day() string {
	return f.day
}

// SetCategory changes the category and reapplies the filter immediately.
func (f *EventFilter) SetCategory(category string) int {
	f.category = category
	return f.Apply()
}

// SetDay changes the day and reapplies the filter immediately.
func (f *EventFilter) SetDay(day string) int {
	f.day = day
	return f.Apply()
}

// Matches reports whether c passes the current criteria.
func (f *EventFilter) Matches(c *Card) bool {
	catMatch := f.category == FilterAll || c.Category == f.category
	dayMatch := f.day == FilterAll || c.Day == f.day
	return catMatch && dayMatch
}

// Apply updates every card's Visible flag and returns the visible count.
func (f *EventFilter) Apply() int {
	visible := 0
	for _, c := range f.cards {
		c.Visible = f.Matches(c)
		if c.Visible {
			visible++
		}
	}
	return visible
}

// Visible returns the cards currently shown, in their original order.
func (f *EventFilter) Visible() []*Card {
	var out []*Card
	for _, c := range f.cards {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}
