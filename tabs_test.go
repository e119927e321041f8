package glowfx

import "testing"

func TestTabGroupActivate(t *testing.T) {
	g := NewTabGroup([]string{"lineup", "map", "tickets"}, []string{"lineup", "map"})
	if g.Active() != "" || g.Shown() != "" {
		t.Fatal("nothing should be active initially")
	}

	if !g.Activate("map") {
		t.Error("Activate(map) should show a panel")
	}
	if g.Active() != "map" || g.Shown() != "map" {
		t.Errorf("active/shown = %q/%q, want map/map", g.Active(), g.Shown())
	}

	// A button without a panel hides every panel.
	if g.Activate("tickets") {
		t.Error("Activate(tickets) should report no panel")
	}
	if g.Active() != "tickets" || g.Shown() != "" {
		t.Errorf("active/shown = %q/%q, want tickets/\"\"", g.Active(), g.Shown())
	}

	// Unknown buttons are ignored.
	g.Activate("nope")
	if g.Active() != "tickets" {
		t.Errorf("Active = %q after unknown name, want tickets", g.Active())
	}
}

func TestTabGroupEmpty(t *testing.T) {
	g := NewTabGroup(nil, []string{"lineup"})
	if g.Activate("lineup") {
		t.Error("empty group should do nothing")
	}
	if g.Active() != "" || g.Shown() != "" {
		t.Error("empty group should stay inactive")
	}
}

func testCards() []*Card {
	return []*Card{
		NewCard("a", "music", "fri", Rect{}),
		NewCard("b", "food", "fri", Rect{}),
		NewCard("c", "music", "sat", Rect{}),
		NewCard("d", "art", "sun", Rect{}),
	}
}

func visibleNames(f *EventFilter) string {
	s := ""
	for _, c := range f.Visible() {
		s += c.Name
	}
	return s
}

func TestEventFilter(t *testing.T) {
	f := NewEventFilter(testCards())
	if f.Category() != FilterAll || f.Day() != FilterAll {
		t.Fatalf("criteria = %q/%q, want all/all", f.Category(), f.Day())
	}
	if n := f.Apply(); n != 4 {
		t.Errorf("visible = %d, want 4", n)
	}

	tests := []struct {
		category, day string
		want          string
	}{
		{"music", FilterAll, "ac"},
		{FilterAll, "fri", "ab"},
		{"music", "sat", "c"},
		{"food", "sun", ""},
		{FilterAll, FilterAll, "abcd"},
	}
	for _, tt := range tests {
		f.SetCategory(tt.category)
		n := f.SetDay(tt.day)
		if got := visibleNames(f); got != tt.want {
			t.Errorf("%s/%s: visible = %q, want %q", tt.category, tt.day, got, tt.want)
		}
		if n != len(tt.want) {
			t.Errorf("%s/%s: count = %d, want %d", tt.category, tt.day, n, len(tt.want))
		}
	}
}

func TestNewCardAtRest(t *testing.T) {
	c := NewCard("x", "art", "sat", Rect{X: 1, Y: 2, Width: 3, Height: 4})
	if !c.Visible || c.Alpha != 1 || c.Scale != 1 {
		t.Errorf("card = %+v, want visible and opaque at scale 1", c)
	}
	if c.Tilt != RestingTilt() {
		t.Errorf("Tilt = %+v, want resting", c.Tilt)
	}
}
