package engine

import (
	"sync"
	"time"
)

// TimeSource provides wall-clock readings
type TimeSource interface {
	Now() time.Time
}

// SystemTime is the real monotonic clock
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }

// MockTime provides a controllable time source for testing and replay
type MockTime struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockTime(start time.Time) *MockTime {
	return &MockTime{now: start}
}

func (m *MockTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the mocked time forward by d
func (m *MockTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// FrameClock turns wall-clock readings into per-frame delta seconds
// Deltas are capped at MaxDelta so a stalled frame cannot launch a gesture across the arena
type FrameClock struct {
	src      TimeSource
	last     time.Time
	maxDelta time.Duration
	paused   bool
}

func NewFrameClock(src TimeSource, maxDelta time.Duration) *FrameClock {
	if src == nil {
		src = SystemTime{}
	}
	return &FrameClock{src: src, last: src.Now(), maxDelta: maxDelta}
}

// Tick returns the seconds elapsed since the previous tick, zero while paused
func (c *FrameClock) Tick() float64 {
	now := c.src.Now()
	d := now.Sub(c.last)
	c.last = now

	if c.paused || d < 0 {
		return 0
	}
	if c.maxDelta > 0 && d > c.maxDelta {
		d = c.maxDelta
	}
	return d.Seconds()
}

// SetPaused freezes simulated time; the first tick after resuming starts from the resume point
func (c *FrameClock) SetPaused(paused bool) {
	c.paused = paused
	c.last = c.src.Now()
}

func (c *FrameClock) Paused() bool { return c.paused }
