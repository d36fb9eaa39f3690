package cooldown

import "sync"

// Timer is a countdown state machine: Idle → Running(n) → Idle. It is
// advanced by an external tick driver (one Tick per elapsed second) rather
// than owning a clock, which keeps it deterministic under test. Reaching zero
// closes the completion channel handed out by Start; completion re-enables
// the submit action, it never auto-resubmits.
type Timer struct {
	mu        sync.Mutex
	remaining int
	done      chan struct{}
}

// creates an idle timer
func NewTimer() *Timer {
	return &Timer{}
}

// begins a countdown, stopping any countdown already in progress. The
// returned channel is closed when the countdown completes. A non-positive
// seconds value completes immediately.
func (t *Timer) Start(seconds int) <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	// overlapping countdowns are disallowed: the prior one is abandoned
	// without a completion signal
	t.done = make(chan struct{})
	t.remaining = seconds

	if seconds <= 0 {
		t.remaining = 0
		close(t.done)
	}

	return t.done
}

// advances the countdown by one second; a no-op while idle
func (t *Timer) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.remaining == 0 {
		return
	}

	t.remaining--

	if t.remaining == 0 && t.done != nil {
		close(t.done)
	}
}

// abandons the countdown without a completion signal
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.remaining = 0
	t.done = nil
}

// returns the seconds left in the countdown; 0 while idle
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.remaining
}

// reports whether a countdown is in progress
func (t *Timer) Running() bool {
	return t.Remaining() > 0
}
