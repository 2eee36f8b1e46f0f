package fsm

import (
	"errors"
	"testing"
)

type light int

const (
	lightRed light = iota
	lightGreen
	lightYellow
)

type signal int

const (
	signalGo signal = iota
	signalSlow
	signalStop
)

func newLight() *Machine[light, signal] {
	return NewMachine(lightRed, []Transition[light, signal]{
		{From: lightRed, Event: signalGo, To: lightGreen},
		{From: lightGreen, Event: signalSlow, To: lightYellow},
		{From: lightYellow, Event: signalStop, To: lightRed},
	})
}

// TestMachineTransitions verifies table-driven transitions
func TestMachineTransitions(t *testing.T) {
	m := newLight()

	if m.State() != lightRed {
		t.Fatalf("Expected initial red, got %v", m.State())
	}
	if !m.Can(signalGo) || m.Can(signalStop) {
		t.Error("Unexpected Can result from red")
	}

	for _, step := range []struct {
		ev   signal
		want light
	}{
		{signalGo, lightGreen},
		{signalSlow, lightYellow},
		{signalStop, lightRed},
	} {
		got, err := m.Fire(step.ev)
		if err != nil {
			t.Fatalf("Unexpected error on %v: %v", step.ev, err)
		}
		if got != step.want {
			t.Errorf("Expected %v, got %v", step.want, got)
		}
	}
}

// TestMachineInvalidTransition verifies rejected events leave state unchanged
func TestMachineInvalidTransition(t *testing.T) {
	m := newLight()

	got, err := m.Fire(signalStop)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition, got %v", err)
	}
	if got != lightRed || m.State() != lightRed {
		t.Errorf("Expected state to remain red, got %v", m.State())
	}
}

// TestMachineOnEnter verifies entry actions receive source state and event
func TestMachineOnEnter(t *testing.T) {
	m := newLight()

	var from light = -1
	var via signal = -1
	calls := 0
	m.OnEnter(lightGreen, func(f light, ev signal) {
		from, via = f, ev
		calls++
	})

	m.Fire(signalGo)
	if calls != 1 || from != lightRed || via != signalGo {
		t.Errorf("Expected one call from red via go, got calls=%d from=%v via=%v", calls, from, via)
	}

	m.Reset()
	if m.State() != lightRed || calls != 1 {
		t.Errorf("Expected Reset to red without actions, got %v calls=%d", m.State(), calls)
	}
}

// TestMachineDuplicatePanics verifies duplicate table entries are rejected
func TestMachineDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate transition")
		}
	}()
	NewMachine(lightRed, []Transition[light, signal]{
		{From: lightRed, Event: signalGo, To: lightGreen},
		{From: lightRed, Event: signalGo, To: lightYellow},
	})
}
