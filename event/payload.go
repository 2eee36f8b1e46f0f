package event

// TargetHitPayload identifies a destroyed target
type TargetHitPayload struct {
	ID   int
	Kind int // engine.TargetKind
	// Remaining is the live target count after removal
	Remaining int
}

// BottomHitPayload reports the bottom-hit counter after the hit
type BottomHitPayload struct {
	Count     int
	Threshold int
}

// RestartPayload carries the outcome of the round being replaced
type RestartPayload struct {
	// Outcome is the core.GameState value the round ended in
	Outcome int
	Round   int
}
