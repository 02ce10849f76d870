package interview

import (
	"sync"
	"time"
)

// AdvisoryTimer is the per-question countdown. It is purely a UX signal:
// expiry fires the notify callback once but never cancels or invalidates
// the pending answer. Submitting after expiry is still accepted.
type AdvisoryTimer struct {
	mu    sync.Mutex
	timer *time.Timer
	start time.Time
	limit time.Duration
}

// StartAdvisoryTimer begins a countdown of d and calls notify (on its
// own goroutine) when it expires. Stop the returned timer when the
// answer arrives to suppress a late notification.
func StartAdvisoryTimer(d time.Duration, notify func()) *AdvisoryTimer {
	t := &AdvisoryTimer{start: time.Now(), limit: d}
	t.timer = time.AfterFunc(d, notify)
	return t
}

// Stop cancels the pending notification. Safe to call more than once.
func (t *AdvisoryTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
}

// Remaining returns the time left, which may be negative after expiry.
func (t *AdvisoryTimer) Remaining() time.Duration {
	return t.limit - time.Since(t.start)
}
