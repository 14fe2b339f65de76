// Package schedule runs timed callbacks against a simulated clock.
//
// The game never sleeps: every wait (invulnerability windows, speed effects,
// blink toggling, spawn cadences) is a callback registered on a Scheduler and
// fired when the owner advances the clock. Advancing is explicit, so a
// simulation driven by fixed ticks stays deterministic and testable.
package schedule

import (
	"container/heap"
	"time"
)

// Scheduler orders callbacks by due time. It is not safe for concurrent use;
// the owning game loop is its only caller.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	queue   timerQueue
	stopped bool
}

// New creates a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of armed callbacks.
func (s *Scheduler) Pending() int {
	n := 0
	for _, h := range s.queue {
		if !h.cancelled {
			n++
		}
	}
	return n
}

// Stopped reports whether Stop has been called.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// After arms fn to run once, d from now. A non-positive d fires on the next
// Advance. On a stopped scheduler the returned handle is already cancelled.
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	return s.schedule(d, 0, fn)
}

// Every arms fn to run every period, first at now+period.
// Periods below one millisecond are raised to one millisecond.
func (s *Scheduler) Every(period time.Duration, fn func()) *Handle {
	if period < time.Millisecond {
		period = time.Millisecond
	}
	return s.schedule(period, period, fn)
}

func (s *Scheduler) schedule(d, period time.Duration, fn func()) *Handle {
	if d < 0 {
		d = 0
	}
	s.seq++
	h := &Handle{
		due:    s.now + d,
		period: period,
		fn:     fn,
		seq:    s.seq,
		sched:  s,
		index:  -1,
	}
	if s.stopped {
		h.cancelled = true
		return h
	}
	heap.Push(&s.queue, h)
	return h
}

// Advance moves the clock forward by d, firing every callback that falls due
// in order of due time (ties fire in arming order). Callbacks may arm or
// cancel other callbacks; ones that fall due within the window fire in the
// same call.
func (s *Scheduler) Advance(d time.Duration) {
	if s.stopped || d < 0 {
		return
	}
	target := s.now + d
	for len(s.queue) > 0 && !s.stopped {
		next := s.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		if next.cancelled {
			continue
		}
		s.now = next.due
		if next.period > 0 {
			next.due += next.period
			heap.Push(&s.queue, next)
		} else {
			next.fired = true
		}
		next.fn()
	}
	if !s.stopped {
		s.now = target
	}
}

// Stop cancels every pending callback. Later calls to After and Every return
// cancelled handles and Advance becomes a no-op.
func (s *Scheduler) Stop() {
	s.stopped = true
	for _, h := range s.queue {
		h.cancelled = true
	}
	s.queue = s.queue[:0]
}

// Handle refers to one armed callback.
type Handle struct {
	due       time.Duration
	period    time.Duration
	fn        func()
	seq       uint64
	index     int
	cancelled bool
	fired     bool
	sched     *Scheduler
}

// Cancel disarms the callback. Cancelling twice, or after a one-shot
// callback fired, is a no-op.
func (h *Handle) Cancel() {
	if h == nil || h.cancelled {
		return
	}
	h.cancelled = true
	if h.index >= 0 && h.sched != nil {
		heap.Remove(&h.sched.queue, h.index)
	}
}

// Active reports whether the callback is still armed.
func (h *Handle) Active() bool {
	return h != nil && !h.cancelled && !h.fired
}

// Remaining returns the time left until the next firing, or zero when the
// handle is no longer armed.
func (h *Handle) Remaining() time.Duration {
	if !h.Active() {
		return 0
	}
	if r := h.due - h.sched.now; r > 0 {
		return r
	}
	return 0
}

// timerQueue implements heap.Interface ordered by (due, seq).
type timerQueue []*Handle

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	h := x.(*Handle)
	h.index = len(*q)
	*q = append(*q, h)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	h := old[n-1]
	old[n-1] = nil
	h.index = -1
	*q = old[:n-1]
	return h
}
