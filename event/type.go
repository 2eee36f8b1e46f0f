package event

// EventType represents the type of game event
type EventType int

const (
	// EventRoundStart fires on the NEW → ACTIVE transition
	// Trigger: Session.Start | Payload: nil
	EventRoundStart EventType = iota

	// EventRoundRestart fires when the session returns to NEW
	// Trigger: Session.Restart | Payload: *RestartPayload
	EventRoundRestart

	// EventPaddleBounce fires when the ball box meets the paddle box
	// Trigger: Tick step 2 | Payload: nil
	EventPaddleBounce

	// EventWallBounce fires when a side wall or the ceiling flips the ball
	// Trigger: Tick steps 3-4 | Payload: nil
	EventWallBounce

	// EventBottomHit fires when the ball crosses the bottom edge
	// Trigger: Tick step 4 | Payload: *BottomHitPayload
	EventBottomHit

	// EventTargetHit fires once per destroyed target
	// Trigger: Tick step 5 | Payload: *TargetHitPayload
	EventTargetHit

	// EventRoundWon fires when the target field is emptied
	// Trigger: Tick step 6 | Payload: nil
	EventRoundWon

	// EventRoundLost fires when the bottom-hit threshold is reached
	// Trigger: Tick step 4 | Payload: nil
	EventRoundLost
)

var typeNames = map[EventType]string{
	EventRoundStart:   "RoundStart",
	EventRoundRestart: "RoundRestart",
	EventPaddleBounce: "PaddleBounce",
	EventWallBounce:   "WallBounce",
	EventBottomHit:    "BottomHit",
	EventTargetHit:    "TargetHit",
	EventRoundWon:     "RoundWon",
	EventRoundLost:    "RoundLost",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	// Tick is the session tick counter when the event was emitted
	Tick uint64
}
