package fsm

import "fmt"

// Machine is a flat finite state machine over state type S and event type E
// Graph is immutable after construction; not safe for concurrent use
type Machine[S comparable, E comparable] struct {
	initial S
	active  S

	transitions map[S]map[E]S
	onEnter     map[S][]ActionFunc[S, E]
}

// NewMachine creates a machine from a transition table
// Panics on a duplicate (From, Event) pair since the table is programmer-supplied
func NewMachine[S comparable, E comparable](initial S, table []Transition[S, E]) *Machine[S, E] {
	m := &Machine[S, E]{
		initial:     initial,
		active:      initial,
		transitions: make(map[S]map[E]S),
		onEnter:     make(map[S][]ActionFunc[S, E]),
	}
	for _, t := range table {
		edges, ok := m.transitions[t.From]
		if !ok {
			edges = make(map[E]S)
			m.transitions[t.From] = edges
		}
		if _, dup := edges[t.Event]; dup {
			panic(fmt.Sprintf("fsm: duplicate transition from %v on %v", t.From, t.Event))
		}
		edges[t.Event] = t.To
	}
	return m
}

// OnEnter registers an action run after entering state s
func (m *Machine[S, E]) OnEnter(s S, fn ActionFunc[S, E]) {
	m.onEnter[s] = append(m.onEnter[s], fn)
}

// State returns the active state
func (m *Machine[S, E]) State() S {
	return m.active
}

// Can reports whether ev has a transition from the active state
func (m *Machine[S, E]) Can(ev E) bool {
	_, ok := m.transitions[m.active][ev]
	return ok
}

// Fire applies ev to the active state and runs entry actions of the target
// Self-transitions run entry actions again
func (m *Machine[S, E]) Fire(ev E) (S, error) {
	to, ok := m.transitions[m.active][ev]
	if !ok {
		return m.active, fmt.Errorf("%w: %v on %v", ErrInvalidTransition, m.active, ev)
	}

	from := m.active
	m.active = to
	for _, fn := range m.onEnter[to] {
		fn(from, ev)
	}
	return to, nil
}

// Reset forces the initial state without running actions
func (m *Machine[S, E]) Reset() {
	m.active = m.initial
}
