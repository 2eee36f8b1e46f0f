package status

import "sync/atomic"

// Metric keys written by the session and read by the HUD and autoplay report
const (
	KeyTicks            = "session.ticks"
	KeyRound            = "session.round"
	KeyRoundsWon        = "rounds.won"
	KeyRoundsLost       = "rounds.lost"
	KeyTargetsDestroyed = "targets.destroyed"
	KeyBottomHits       = "ball.bottom_hits"
	KeyBallSpeed        = "ball.speed"
)

// Registry is the metrics facade shared by session and presentation
// The session caches pointers at construction and writes directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Int returns the current value of an integer metric, 0 if unregistered
func (r *Registry) Int(key string) int64 {
	return r.Ints.Get(key).Load()
}

// Float returns the current value of a float metric, 0 if unregistered
func (r *Registry) Float(key string) float64 {
	return r.Floats.Get(key).Get()
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}
