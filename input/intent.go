package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Round control
	IntentStart   // Left-click, Space, Enter
	IntentPause   // p
	IntentRestart // r

	// Paddle
	IntentSteer // Mouse motion, X carries the board coordinate
	IntentNudge // Left/Right arrows, h/l; Dir carries the sign
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentToggleMute: "toggle_mute",
	IntentResize:     "resize",
	IntentStart:      "start",
	IntentPause:      "pause",
	IntentRestart:    "restart",
	IntentSteer:      "steer",
	IntentNudge:      "nudge",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is a translated input event
type Intent struct {
	Type IntentType
	// X is the board x coordinate under the pointer, valid when HasX
	X    float64
	HasX bool
	// Dir is -1 or +1 for IntentNudge
	Dir int
}
