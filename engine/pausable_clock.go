package engine

import (
	"sync"
	"time"
)

// PausableClock derives game time from a base TimeProvider
// While paused, game time is frozen; on resume it continues from the frozen instant
type PausableClock struct {
	mu sync.RWMutex

	base      TimeProvider
	epoch     time.Time     // Base time when the clock was created
	paused    bool
	pauseAt   time.Time     // Base time when the current pause started
	pausedFor time.Duration // Cumulative completed pause duration
}

// NewPausableClock creates a running clock over base
func NewPausableClock(base TimeProvider) *PausableClock {
	return &PausableClock{
		base:  base,
		epoch: base.Now(),
	}
}

// Now returns current game time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseAt.Add(-pc.pausedFor)
	}
	return pc.base.Now().Add(-pc.pausedFor)
}

// RealTime returns the base time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return pc.base.Now()
}

// Pause stops game time advancement; pausing twice is a no-op
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseAt = pc.base.Now()
}

// Resume continues game time advancement; resuming a running clock is a no-op
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.pausedFor += pc.base.Now().Sub(pc.pauseAt)
	pc.paused = false
	pc.pauseAt = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.pausedFor
	if pc.paused {
		total += pc.base.Now().Sub(pc.pauseAt)
	}
	return total
}

// Elapsed returns game time since the clock was created
func (pc *PausableClock) Elapsed() time.Duration {
	return pc.Now().Sub(pc.epoch)
}
