package event

import (
	"github.com/lixenwraith/breakout/parameter"
)

// EventQueue is a fixed-size ring buffer of game events
// Single-threaded: producer and consumer are both the driving loop
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest one when full. O(1)
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}

	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&parameter.EventBufferMask])
	}
	eq.head = eq.tail
	return result
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Reset drops all pending events
func (eq *EventQueue) Reset() {
	eq.head = eq.tail
}
