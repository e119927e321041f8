package glowfx

// trail is a fixed-length history of recent positions, newest first. It
// always holds at least one position and its length never changes after
// creation.
type trail struct {
	pts []Vec2
}

// newTrail returns a trail of n copies of p. n is raised to 1 if smaller.
func newTrail(n int, p Vec2) trail {
	pts := make([]Vec2, max(n, 1))
	for i := range pts {
		pts[i] = p
	}
	return trail{pts: pts}
}

// push drops the oldest position and records p as the newest.
func (t *trail) push(p Vec2) {
	copy(t.pts[1:], t.pts[:len(t.pts)-1])
	t.pts[0] = p
}

// oldest returns the least recent position.
func (t *trail) oldest() Vec2 {
	return t.pts[len(t.pts)-1]
}

// Len returns the number of positions held.
func (t *trail) Len() int {
	return len(t.pts)
}
