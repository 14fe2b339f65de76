package schedule

import "time"

// Slot holds at most one armed callback for a named timed effect.
// Re-arming replaces the previous callback instead of stacking a second one,
// so a repeated trigger restarts the effect's duration.
type Slot struct {
	h *Handle
}

// Arm cancels any pending callback and schedules fn after d.
func (sl *Slot) Arm(s *Scheduler, d time.Duration, fn func()) {
	sl.Cancel()
	sl.h = s.After(d, fn)
}

// ArmEvery cancels any pending callback and schedules fn every period.
func (sl *Slot) ArmEvery(s *Scheduler, period time.Duration, fn func()) {
	sl.Cancel()
	sl.h = s.Every(period, fn)
}

// Cancel disarms the pending callback, if any.
func (sl *Slot) Cancel() {
	if sl.h != nil {
		sl.h.Cancel()
		sl.h = nil
	}
}

// Active reports whether a callback is armed.
func (sl *Slot) Active() bool {
	return sl.h.Active()
}

// Remaining returns the time until the armed callback fires.
func (sl *Slot) Remaining() time.Duration {
	return sl.h.Remaining()
}
