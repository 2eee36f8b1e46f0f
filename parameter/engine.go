package parameter

import "time"

// Game Loop Timing
const (
	// FrameRate is the default display refresh for the terminal driver (~60 FPS)
	FrameRate = 60

	// FrameUpdateInterval is the frame interval derived from FrameRate
	FrameUpdateInterval = time.Second / FrameRate

	// MaxFrameDelta caps a single tick so a stalled frame cannot tunnel the ball through a wall
	MaxFrameDelta = 100 * time.Millisecond

	// AutoplayTimeout bounds a headless round in simulated time
	AutoplayTimeout = 10 * time.Minute
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
