package cooldown

import (
	"sync"
	"time"

	"github.com/glamai/server/internal/logger"
)

// Tracker drives per-owner cooldown timers off a single shared ticker. The
// governor remains the authority on cooldowns; the tracker exists so the API
// can report live countdowns and cheaply refuse submissions mid-cooldown.
type Tracker struct {
	mu     sync.Mutex
	timers map[string]*Timer

	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// creates a tracker ticking once per second
func NewTracker() *Tracker {
	return NewTrackerWithInterval(time.Second)
}

// creates a tracker with a custom tick interval (used by tests)
func NewTrackerWithInterval(interval time.Duration) *Tracker {
	tr := &Tracker{
		timers:   make(map[string]*Timer),
		interval: interval,
		stopCh:   make(chan struct{}),
	}

	tr.wg.Add(1)
	go tr.run()

	return tr
}

// starts (or restarts) the owner's countdown
func (tr *Tracker) Begin(ownerID string, seconds int) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	timer, ok := tr.timers[ownerID]
	if !ok {
		timer = NewTimer()
		tr.timers[ownerID] = timer
	}

	timer.Start(seconds)
}

// returns the seconds left in the owner's countdown; 0 when none is running
func (tr *Tracker) Remaining(ownerID string) int {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	timer, ok := tr.timers[ownerID]
	if !ok {
		return 0
	}

	return timer.Remaining()
}

// reports whether the owner is mid-cooldown
func (tr *Tracker) Active(ownerID string) bool {
	return tr.Remaining(ownerID) > 0
}

// stops the tick loop; no further ticks are scheduled after Stop returns
func (tr *Tracker) Stop() {
	tr.stopOnce.Do(func() {
		close(tr.stopCh)
	})
	tr.wg.Wait()

	logger.Debug("cooldown tracker stopped")
}

func (tr *Tracker) run() {
	defer tr.wg.Done()

	ticker := time.NewTicker(tr.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			tr.tickAll()
		case <-tr.stopCh:
			return
		}
	}
}

// advances every running countdown and drops the ones that finished
func (tr *Tracker) tickAll() {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	for ownerID, timer := range tr.timers {
		timer.Tick()

		if !timer.Running() {
			delete(tr.timers, ownerID)
		}
	}
}
