package main

import (
	"testing"
	"time"

	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/event"
)

func newHeadless(t *testing.T, cfg engine.Config) (*engine.Session, *engine.MockTimeProvider) {
	t.Helper()
	s, err := engine.NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s, engine.NewMockTimeProvider(time.Unix(0, 0))
}

// TestAwayFrom verifies the dodge target is on the far side of the board
func TestAwayFrom(t *testing.T) {
	if x := awayFrom(10, 400); x != 400 {
		t.Errorf("Expected 400, got %f", x)
	}
	if x := awayFrom(200, 400); x != 0 {
		t.Errorf("Expected 0, got %f", x)
	}
}

// TestPlayRoundAlwaysMiss verifies a dodging autopilot loses at the bottom-hit threshold
// Targets do not deflect the ball, so a larger threshold can still end in a win
func TestPlayRoundAlwaysMiss(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.BottomHitsToLose = 1
	s, tp := newHeadless(t, cfg)
	pilot := newAutopilot(1, 1)

	res := playRound(s, pilot, tp, time.Second/60)

	if res.TimedOut {
		t.Fatal("Expected the round to end before the timeout")
	}
	if res.State != core.StateLost {
		t.Errorf("Expected LOST, got %s", res.State)
	}
	if res.BottomHits != s.Config().BottomHitsToLose {
		t.Errorf("Expected %d bottom hits, got %d", s.Config().BottomHitsToLose, res.BottomHits)
	}
	if res.Round != 1 {
		t.Errorf("Expected round 1, got %d", res.Round)
	}
	if s.State() != core.StateNew || s.Round() != 2 {
		t.Errorf("Expected session restarted into round 2, got %s round %d", s.State(), s.Round())
	}
}

// TestPlayRoundNeverMiss verifies a tracking autopilot never lets the ball reach the bottom
func TestPlayRoundNeverMiss(t *testing.T) {
	s, tp := newHeadless(t, engine.DefaultConfig())
	pilot := newAutopilot(1, 0)

	res := playRound(s, pilot, tp, time.Second/60)

	if res.BottomHits != 0 {
		t.Errorf("Expected no bottom hits, got %d", res.BottomHits)
	}
	if res.State == core.StateLost {
		t.Error("Expected the round not to be lost")
	}
	if res.Paddle == 0 {
		t.Error("Expected paddle bounces")
	}
	if !res.TimedOut && res.Destroyed != s.Config().TargetCount {
		t.Errorf("Expected all %d targets destroyed on a win, got %d", s.Config().TargetCount, res.Destroyed)
	}
}

// TestPlayRoundDeterministic verifies equal seeds replay identically
func TestPlayRoundDeterministic(t *testing.T) {
	s1, tp1 := newHeadless(t, engine.DefaultConfig())
	s2, tp2 := newHeadless(t, engine.DefaultConfig())

	r1 := playRound(s1, newAutopilot(7, 0.5), tp1, time.Second/60)
	r2 := playRound(s2, newAutopilot(7, 0.5), tp2, time.Second/60)

	if r1 != r2 {
		t.Errorf("Expected identical rounds, got %+v and %+v", r1, r2)
	}
}

// TestRoundResultTally verifies event counting
func TestRoundResultTally(t *testing.T) {
	var r roundResult
	r.tally([]event.GameEvent{
		{Type: event.EventTargetHit},
		{Type: event.EventTargetHit},
		{Type: event.EventBottomHit},
		{Type: event.EventPaddleBounce},
		{Type: event.EventWallBounce},
	})

	if r.Destroyed != 2 || r.BottomHits != 1 || r.Paddle != 1 {
		t.Errorf("Expected 2/1/1, got %d/%d/%d", r.Destroyed, r.BottomHits, r.Paddle)
	}
}
