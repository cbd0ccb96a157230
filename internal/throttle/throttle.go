// Package throttle enforces a minimum interval between self-authored posts.
package throttle

import (
	"sync"
	"time"
)

// Throttle remembers when the last post succeeded. The zero time means no
// post has succeeded yet. State lives for the process lifetime only.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// New creates a throttle allowing one action per interval
func New(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Interval returns the minimum spacing between actions
func (t *Throttle) Interval() time.Duration {
	return t.interval
}

// Allow reports whether an action may run at now. It never mutates state.
func (t *Throttle) Allow(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allowLocked(now)
}

func (t *Throttle) allowLocked(now time.Time) bool {
	return t.last.IsZero() || now.Sub(t.last) >= t.interval
}

// Record marks a successful action at now
func (t *Throttle) Record(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = now
}

// Last returns the time of the last successful action, or the zero time
func (t *Throttle) Last() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// Remaining returns how long until the next action is allowed
func (t *Throttle) Remaining(now time.Time) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.allowLocked(now) {
		return 0
	}
	return t.interval - now.Sub(t.last)
}

// Do runs fn when allowed and records now if fn succeeds. ran is false when
// the action was skipped. The lock is held while fn runs so two callers can
// never both pass the check.
func (t *Throttle) Do(now time.Time, fn func() error) (ran bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.allowLocked(now) {
		return false, nil
	}
	if err := fn(); err != nil {
		return true, err
	}
	t.last = now
	return true, nil
}
