package glowfx

import "testing"

func TestTrailPushDropsOldest(t *testing.T) {
	tr := newTrail(3, Vec2{0, 0})
	tr.push(Vec2{1, 1})
	tr.push(Vec2{2, 2})
	tr.push(Vec2{3, 3})

	want := []Vec2{{3, 3}, {2, 2}, {1, 1}}
	for i, p := range tr.pts {
		if p != want[i] {
			t.Errorf("pts[%d] = %v, want %v", i, p, want[i])
		}
	}
	if tr.oldest() != (Vec2{1, 1}) {
		t.Errorf("oldest = %v, want {1 1}", tr.oldest())
	}
	if tr.Len() != 3 {
		t.Errorf("Len = %d, want 3", tr.Len())
	}
}

func TestTrailStartsFilled(t *testing.T) {
	tr := newTrail(5, Vec2{7, 8})
	for i, p := range tr.pts {
		if p != (Vec2{7, 8}) {
			t.Errorf("pts[%d] = %v, want the start point", i, p)
		}
	}
}

func TestShortTrailHoldsOnePoint(t *testing.T) {
	for _, n := range []int{0, -3} {
		tr := newTrail(n, Vec2{4, 5})
		if tr.Len() != 1 {
			t.Fatalf("newTrail(%d): Len = %d, want 1", n, tr.Len())
		}
		if tr.oldest() != (Vec2{4, 5}) {
			t.Errorf("newTrail(%d): oldest = %v, want {4 5}", n, tr.oldest())
		}
		tr.push(Vec2{1, 1})
		if tr.oldest() != (Vec2{1, 1}) {
			t.Errorf("newTrail(%d): oldest after push = %v, want {1 1}", n, tr.oldest())
		}
	}
}
