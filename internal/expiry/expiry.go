// Package expiry drives the timeout lifecycle of a display session: one
// inactivity timer armed at creation, cancelled only by explicit terminal
// actions, firing a teardown exactly once.
package expiry

import (
	"sync"
	"time"
)

// Timer wraps a single scheduled teardown. The callback and a future Cancel
// race against each other; whichever happens first wins and the loser is
// observably inert. The callback never runs twice.
type Timer struct {
	mu        sync.Mutex
	timer     *time.Timer
	fired     bool
	cancelled bool
}

// After arms a timer that invokes teardown once d elapses. The timer is not
// rearmed or extended by any later activity; navigation does not keep a
// session alive in this design.
func After(d time.Duration, teardown func()) *Timer {
	t := &Timer{}
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		if t.cancelled || t.fired {
			t.mu.Unlock()
			return
		}
		t.fired = true
		t.mu.Unlock()
		teardown()
	})
	return t
}

// Cancel deterministically stops the timer before it fires. It reports
// whether the teardown was actually averted; false means it already ran or
// the timer was cancelled before. Cancelling twice is safe.
func (t *Timer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancelled || t.fired {
		return false
	}
	t.cancelled = true
	t.timer.Stop()
	return true
}

// Done reports whether the timer has either fired or been cancelled.
func (t *Timer) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled || t.fired
}
