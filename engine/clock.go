package engine

import "time"

// FrameClock converts frame timestamps into simulation deltas
// The first reading after Reset only stores the timestamp, so a stall
// before start or during pause never becomes one huge displacement
type FrameClock struct {
	time     TimeProvider
	last     time.Time
	primed   bool
	maxDelta time.Duration
}

// NewFrameClock creates a clock; maxDelta <= 0 disables capping
func NewFrameClock(tp TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{time: tp, maxDelta: maxDelta}
}

// Reset discards the stored timestamp; the next Delta returns false
func (c *FrameClock) Reset() {
	c.primed = false
}

// Delta returns the elapsed time since the previous call
// ok is false on the first call after Reset
func (c *FrameClock) Delta() (dt time.Duration, ok bool) {
	now := c.time.Now()
	if !c.primed {
		c.last = now
		c.primed = true
		return 0, false
	}

	dt = now.Sub(c.last)
	c.last = now
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	return dt, true
}
