package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/engine/fsm"
	"github.com/lixenwraith/breakout/event"
	"github.com/lixenwraith/breakout/status"
)

// Trigger is an input to the round state machine
type Trigger int

const (
	TriggerStart     Trigger = iota // User start input
	TriggerCleared                  // Target field emptied
	TriggerExhausted                // Bottom-hit threshold reached
	TriggerRestart                  // Driver requests a fresh round
)

var roundTransitions = []fsm.Transition[core.GameState, Trigger]{
	{From: core.StateNew, Event: TriggerStart, To: core.StateActive},
	{From: core.StateActive, Event: TriggerCleared, To: core.StateWon},
	{From: core.StateActive, Event: TriggerExhausted, To: core.StateLost},
	{From: core.StateWon, Event: TriggerRestart, To: core.StateNew},
	{From: core.StateLost, Event: TriggerRestart, To: core.StateNew},
	{From: core.StateActive, Event: TriggerRestart, To: core.StateNew},
	{From: core.StateNew, Event: TriggerRestart, To: core.StateNew},
}

// Session owns every entity of a round and advances the simulation
// Single-threaded: all calls must come from the driving loop
type Session struct {
	cfg Config

	ball       *Ball
	paddle     *Paddle
	field      *TargetField
	bottomHits int

	machine *fsm.Machine[core.GameState, Trigger]
	outcome core.GameState
	round   int
	ticks   uint64

	events  *event.EventQueue
	metrics *status.Registry

	// Cached metric pointers
	mTicks     *atomic.Int64
	mRound     *atomic.Int64
	mWon       *atomic.Int64
	mLost      *atomic.Int64
	mDestroyed *atomic.Int64
	mBottom    *atomic.Int64
	mSpeed     *status.AtomicFloat
}

// NewSession validates cfg and sets up the first round in StateNew
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		field:   NewTargetField(cfg),
		machine: fsm.NewMachine(core.StateNew, roundTransitions),
		outcome: core.StateNew,
		events:  event.NewEventQueue(),
		metrics: status.NewRegistry(),
	}
	s.mTicks = s.metrics.Ints.Get(status.KeyTicks)
	s.mRound = s.metrics.Ints.Get(status.KeyRound)
	s.mWon = s.metrics.Ints.Get(status.KeyRoundsWon)
	s.mLost = s.metrics.Ints.Get(status.KeyRoundsLost)
	s.mDestroyed = s.metrics.Ints.Get(status.KeyTargetsDestroyed)
	s.mBottom = s.metrics.Ints.Get(status.KeyBottomHits)
	s.mSpeed = s.metrics.Floats.Get(status.KeyBallSpeed)

	s.machine.OnEnter(core.StateNew, func(from core.GameState, _ Trigger) {
		s.events.Push(event.GameEvent{
			Type:    event.EventRoundRestart,
			Payload: &event.RestartPayload{Outcome: int(from), Round: s.round},
			Tick:    s.ticks,
		})
		if from.Terminal() {
			s.outcome = from
		} else {
			s.outcome = core.StateNew
		}
		s.resetRound()
	})
	s.machine.OnEnter(core.StateActive, func(core.GameState, Trigger) {
		s.emit(event.EventRoundStart, nil)
	})
	s.machine.OnEnter(core.StateWon, func(core.GameState, Trigger) {
		s.mWon.Add(1)
		s.emit(event.EventRoundWon, nil)
		log.Printf("round %d won after %d ticks", s.round, s.ticks)
	})
	s.machine.OnEnter(core.StateLost, func(core.GameState, Trigger) {
		s.mLost.Add(1)
		s.emit(event.EventRoundLost, nil)
		log.Printf("round %d lost with %d targets left", s.round, s.field.Len())
	})

	s.resetRound()
	return s, nil
}

// resetRound recreates ball, paddle and field and clears the bottom-hit counter
func (s *Session) resetRound() {
	s.round++
	s.bottomHits = 0
	s.ball = NewBall(
		s.cfg.BoardWidth/2, s.cfg.BoardHeight/2,
		s.cfg.BallRadius,
		mgl64.Vec2{s.cfg.BallVX, s.cfg.BallVY},
	)
	s.paddle = NewPaddle(s.cfg)
	s.field.Reset(s.cfg.TargetCount)

	s.mRound.Store(int64(s.round))
	s.mBottom.Store(0)
	s.mSpeed.Set(s.ball.Speed())
}

func (s *Session) emit(t event.EventType, payload any) {
	s.events.Push(event.GameEvent{Type: t, Payload: payload, Tick: s.ticks})
}

// Start moves NEW → ACTIVE, returns false in any other state
func (s *Session) Start() bool {
	if !s.machine.Can(TriggerStart) {
		return false
	}
	_, err := s.machine.Fire(TriggerStart)
	return err == nil
}

// Restart abandons the current round and returns to NEW with fresh entities
func (s *Session) Restart() {
	// Restart is defined from every state
	s.machine.Fire(TriggerRestart)
}

// MovePaddleTo centers the paddle on board x, clamped to the board
func (s *Session) MovePaddleTo(x float64) {
	_, y := s.paddle.Center()
	s.paddle.MoveTo(x, y)
}

// NudgePaddle shifts the paddle horizontally by dx
func (s *Session) NudgePaddle(dx float64) {
	s.paddle.Nudge(dx)
}

// Tick advances one simulation step and returns the resulting state
// Non-positive dt or a non-ACTIVE state is a no-op returning the current state
func (s *Session) Tick(dt time.Duration) core.GameState {
	state := s.machine.State()
	if dt <= 0 || state != core.StateActive {
		return state
	}
	s.ticks++
	s.mTicks.Add(1)

	// 1. Kinematics
	s.ball.Advance(dt)
	ballBox := s.ball.BoundingBox()

	// 2. Paddle: unconditional flip
	if ballBox.Intersects(s.paddle.BoundingBox()) {
		s.ball.ReflectY()
		s.emit(event.EventPaddleBounce, nil)
	}

	// 3. Side walls, positive forced last
	if ballBox.MaxX > s.cfg.BoardWidth && s.ball.ForceXNegative() {
		s.emit(event.EventWallBounce, nil)
	}
	if ballBox.MinX < 0 && s.ball.ForceXPositive() {
		s.emit(event.EventWallBounce, nil)
	}

	// 4. Ceiling and floor
	if ballBox.MinY < 0 {
		if s.ball.ForceYPositive() {
			s.emit(event.EventWallBounce, nil)
		}
	} else if ballBox.MaxY > s.cfg.BoardHeight {
		s.ball.ForceYNegative()
		s.bottomHits++
		s.mBottom.Store(int64(s.bottomHits))
		s.emit(event.EventBottomHit, &event.BottomHitPayload{
			Count:     s.bottomHits,
			Threshold: s.cfg.BottomHitsToLose,
		})
		if s.bottomHits >= s.cfg.BottomHitsToLose {
			return s.finish(TriggerExhausted)
		}
	}

	// 5. Targets: collect then remove
	for _, t := range s.field.RemoveIfHit(ballBox) {
		s.ball.SpeedUp(s.cfg.SpeedUpFactor)
		s.mDestroyed.Add(1)
		s.emit(event.EventTargetHit, &event.TargetHitPayload{
			ID:        t.ID,
			Kind:      int(t.Kind),
			Remaining: s.field.Len(),
		})
	}
	s.mSpeed.Set(s.ball.Speed())

	// 6. Win
	if s.field.IsEmpty() {
		return s.finish(TriggerCleared)
	}

	return core.StateActive
}

func (s *Session) finish(trigger Trigger) core.GameState {
	state, err := s.machine.Fire(trigger)
	if err != nil {
		// Unreachable: finish is only called from ACTIVE
		log.Printf("session: %v", err)
	}
	return state
}

// State returns the current round state
func (s *Session) State() core.GameState { return s.machine.State() }

// Outcome returns how the previous round ended, StateNew if none has
func (s *Session) Outcome() core.GameState { return s.outcome }

func (s *Session) Config() Config { return s.cfg }
func (s *Session) Round() int     { return s.round }

// Board returns the board rectangle
func (s *Session) Board() core.Box {
	return core.BoxFromSize(0, 0, s.cfg.BoardWidth, s.cfg.BoardHeight)
}

func (s *Session) BallBox() core.Box   { return s.ball.BoundingBox() }
func (s *Session) BallSpeed() float64 { return s.ball.Speed() }
func (s *Session) PaddleBox() core.Box { return s.paddle.BoundingBox() }

// Targets returns the live targets in stable order
func (s *Session) Targets() []Target { return s.field.Targets() }

func (s *Session) BottomHits() int { return s.bottomHits }

// HitsRemaining returns the bottom hits left before the round is lost
func (s *Session) HitsRemaining() int {
	return s.cfg.BottomHitsToLose - s.bottomHits
}

// Events drains events emitted since the previous call
func (s *Session) Events() []event.GameEvent { return s.events.Consume() }

// Metrics returns the session-lifetime metric registry
func (s *Session) Metrics() *status.Registry { return s.metrics }
