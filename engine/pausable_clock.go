package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides game time that freezes while paused
// Game elapsed = real elapsed - total paused time
type PausableClock struct {
	mu sync.RWMutex

	real TimeProvider

	realStartTime time.Time // Real time at creation
	gameStartTime time.Time // Game time epoch

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // Real time the current pause began
	totalPausedTime time.Duration // Cumulative completed pauses
}

// NewPausableClock creates a clock driven by the given real-time source
// A nil provider uses the monotonic system clock
func NewPausableClock(real TimeProvider) *PausableClock {
	if real == nil {
		real = NewMonotonicTimeProvider()
	}
	now := real.Now()
	return &PausableClock{
		real:          real,
		realStartTime: now,
		gameStartTime: now,
	}
}

// Now returns current game time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	realElapsed := pc.real.Now().Sub(pc.realStartTime)
	return pc.gameStartTime.Add(realElapsed - pc.totalPausedTime)
}

// RealTime returns wall clock time from the underlying provider
func (pc *PausableClock) RealTime() time.Time {
	return pc.real.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.pauseStartTime = pc.real.Now()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.totalPausedTime += pc.real.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.real.Now().Sub(pc.pauseStartTime)
	}
	return total
}
