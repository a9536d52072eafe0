package engine

import (
	"time"

	"github.com/vovakirdan/gravflip/internal/core"
)

// FrameClock turns frame timestamps into millisecond deltas for Tick.
// The first frame after creation or Reset yields 0, timestamps that go
// backwards yield 0, and long pauses are clamped to maxDelta.
type FrameClock struct {
	last     time.Time
	started  bool
	maxDelta time.Duration
}

// NewFrameClock creates a clock that clamps deltas to maxDelta.
func NewFrameClock(maxDelta time.Duration) *FrameClock {
	return &FrameClock{maxDelta: maxDelta}
}

// Delta records now and returns the milliseconds elapsed since the previous call.
func (c *FrameClock) Delta(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	d := now.Sub(c.last)
	if d < 0 {
		// Out-of-order timestamp; last stays at the later one.
		return 0
	}
	c.last = now

	ms := float64(d) / float64(time.Millisecond)
	if c.maxDelta > 0 {
		ms = core.ClampF(ms, 0, float64(c.maxDelta)/float64(time.Millisecond))
	}
	return ms
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.started = false
}

// MaxDeltaFromMillis converts a configured millisecond value to a duration.
func MaxDeltaFromMillis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
