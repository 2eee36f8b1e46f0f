package main

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/event"
	"github.com/lixenwraith/breakout/parameter"
)

// autopilot steers the paddle under the ball, deliberately missing some approaches
type autopilot struct {
	rng     *rand.Rand
	miss    float64
	prevY   float64
	falling bool
	dodge   bool
}

func newAutopilot(seed uint64, miss float64) *autopilot {
	return &autopilot{
		rng:  rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d)),
		miss: miss,
	}
}

// reset forgets the previous round's trajectory
func (a *autopilot) reset(s *engine.Session) {
	_, a.prevY = s.BallBox().Center()
	a.falling = false
	a.dodge = false
}

// steer moves the paddle for the coming tick
// A miss is decided once per descent; the paddle never enters the ball from the side or below
func (a *autopilot) steer(s *engine.Session) {
	ball, paddle := s.BallBox(), s.PaddleBox()
	bx, by := ball.Center()

	falling := by > a.prevY
	if falling && !a.falling {
		a.dodge = a.rng.Float64() < a.miss
	}
	a.falling = falling
	a.prevY = by

	switch {
	case ball.MinY > paddle.MaxY:
		s.MovePaddleTo(awayFrom(bx, s.Config().BoardWidth))
	case ball.MaxY >= paddle.MinY:
		// Level with the paddle: hold position
	case a.dodge:
		s.MovePaddleTo(awayFrom(bx, s.Config().BoardWidth))
	default:
		s.MovePaddleTo(bx)
	}
}

func awayFrom(x, width float64) float64 {
	if x < width/2 {
		return width
	}
	return 0
}

// roundResult summarizes one headless round
type roundResult struct {
	Round      int
	State      core.GameState
	Ticks      int
	Simulated  time.Duration
	Destroyed  int
	BottomHits int
	Paddle     int
	TimedOut   bool
}

func (r *roundResult) tally(events []event.GameEvent) {
	for _, ev := range events {
		switch ev.Type {
		case event.EventTargetHit:
			r.Destroyed++
		case event.EventBottomHit:
			r.BottomHits++
		case event.EventPaddleBounce:
			r.Paddle++
		}
	}
}

// playRound runs one round from NEW to a terminal state or the timeout, then restarts
func playRound(s *engine.Session, pilot *autopilot, tp *engine.MockTimeProvider, frame time.Duration) roundResult {
	clock := engine.NewFrameClock(tp, parameter.MaxFrameDelta)
	res := roundResult{Round: s.Round()}

	pilot.reset(s)
	s.Start()
	s.Events()
	clock.Delta()

	for res.Simulated < parameter.AutoplayTimeout {
		pilot.steer(s)
		tp.Advance(frame)
		dt, _ := clock.Delta()

		state := s.Tick(dt)
		res.Ticks++
		res.Simulated += dt
		res.tally(s.Events())

		if state.Terminal() {
			res.State = state
			s.Restart()
			s.Events()
			return res
		}
	}

	res.State = s.State()
	res.TimedOut = true
	s.Restart()
	s.Events()
	return res
}
