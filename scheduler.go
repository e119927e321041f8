package glowfx

// FrameID identifies a pending frame request. The zero value is never issued.
type FrameID uint64

// Scheduler runs a callback once before the next repaint.
type Scheduler interface {
	// RequestFrame queues fn for the next frame and returns a handle that
	// can cancel it.
	RequestFrame(fn func()) FrameID
	// CancelFrame drops a pending request. Unknown or already-run IDs are ignored.
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a Scheduler driven by its host: every call to Flush runs the
// callbacks requested before that call. Callbacks requested while flushing
// wait for the next Flush, so a self-rescheduling loop runs once per frame.
//
// FrameQueue is not safe for concurrent use; it belongs to the goroutine
// that draws.
type FrameQueue struct {
	last    FrameID
	pending []frameRequest
	running []frameRequest
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.last++
	q.pending = append(q.pending, frameRequest{id: q.last, fn: fn})
	return q.last
}

// CancelFrame implements Scheduler. A request cancelled by an earlier
// callback of the same Flush does not run.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i := range q.pending {
		if q.pending[i].id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Flush runs every callback that was pending when Flush was called and
// returns how many ran.
func (q *FrameQueue) Flush() int {
	q.running, q.pending = q.pending, q.running[:0]
	ran := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn()
		ran++
	}
	q.running = q.running[:0]
	return ran
}

// Pending returns the number of callbacks waiting for the next Flush.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
