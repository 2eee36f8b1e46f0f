package fsm

import "errors"

// ErrInvalidTransition is returned when an event has no transition from the active state
var ErrInvalidTransition = errors.New("fsm: invalid transition")

// Transition defines a link between states triggered by an event
type Transition[S comparable, E comparable] struct {
	From  S
	Event E
	To    S
}

// ActionFunc executes a side effect on state entry
// from is the state being left, ev the event that caused the transition
type ActionFunc[S comparable, E comparable] func(from S, ev E)
