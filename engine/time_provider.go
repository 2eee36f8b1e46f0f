package engine

import "time"

// TimeProvider abstracts the wall clock so frame timing is testable
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider provides the real system time with monotonic clock readings
type RealTimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
