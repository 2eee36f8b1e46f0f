package core

// GameState is the round-level state of a session
type GameState uint8

const (
	StateNew    GameState = iota // Idle, waiting for start input
	StateActive                  // Simulation running
	StateWon                     // All targets cleared
	StateLost                    // Bottom-hit threshold reached
)

var stateNames = [...]string{
	StateNew:    "NEW",
	StateActive: "ACTIVE",
	StateWon:    "WON",
	StateLost:   "LOST",
}

func (s GameState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "UNKNOWN"
}

// Terminal reports whether the state ends a round
func (s GameState) Terminal() bool {
	return s == StateWon || s == StateLost
}
