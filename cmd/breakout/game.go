package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/audio"
	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/input"
	"github.com/lixenwraith/breakout/parameter"
	"github.com/lixenwraith/breakout/render"
)

// game owns the session and is only touched from the loop goroutine
type game struct {
	session  *engine.Session
	renderer *render.TerminalRenderer
	mapper   *input.Mapper
	sounds   *audio.SoundManager
	clock    *engine.FrameClock
	interval time.Duration
	paused   bool
	muted    bool
}

func newGame(s *engine.Session, r *render.TerminalRenderer, sounds *audio.SoundManager, tp engine.TimeProvider, fps int) *game {
	return &game{
		session:  s,
		renderer: r,
		mapper:   input.NewMapper(nil),
		sounds:   sounds,
		clock:    engine.NewFrameClock(tp, parameter.MaxFrameDelta),
		interval: time.Second / time.Duration(max(fps, 1)),
	}
}

// run drives frames until a quit intent arrives
func (g *game) run(screen tcell.Screen) {
	eventChan := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	// PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	g.frame()
	for {
		select {
		case ev := <-eventChan:
			intent := g.mapper.Translate(ev, g.renderer.Viewport())
			if intent.Type == input.IntentResize {
				screen.Sync()
			}
			if g.handle(intent) {
				return
			}
		case <-ticker.C:
			g.frame()
		}
	}
}

// handle applies an intent, returns true on quit
func (g *game) handle(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return true
	case input.IntentResize:
		g.renderer.Resize()
	case input.IntentSteer:
		if !g.paused {
			g.session.MovePaddleTo(in.X)
		}
	case input.IntentNudge:
		if !g.paused {
			g.session.NudgePaddle(float64(in.Dir) * parameter.PaddleNudgeStep)
		}
	case input.IntentStart:
		if in.HasX && !g.paused {
			g.session.MovePaddleTo(in.X)
		}
		g.begin()
	case input.IntentPause:
		if g.session.State() == core.StateActive {
			g.paused = !g.paused
			if !g.paused {
				g.clock.Reset()
			}
		}
	case input.IntentRestart:
		g.paused = false
		g.session.Restart()
	case input.IntentToggleMute:
		g.muted = !g.muted
		g.sounds.SetMuted(g.muted)
	}
	return false
}

// begin starts a round, restarting first after a finished one and resuming if paused
func (g *game) begin() {
	switch state := g.session.State(); {
	case state == core.StateActive:
		if g.paused {
			g.paused = false
			g.clock.Reset()
		}
		return
	case state.Terminal():
		g.session.Restart()
	}
	if g.session.Start() {
		g.clock.Reset()
		log.Printf("round %d started", g.session.Round())
	}
}

// frame advances the simulation by the elapsed wall time and redraws
func (g *game) frame() {
	if g.session.State() == core.StateActive && !g.paused {
		if dt, ok := g.clock.Delta(); ok {
			g.session.Tick(dt)
		}
	}
	g.sounds.HandleEvents(g.session.Events())
	g.renderer.RenderFrame(g.session, g.paused)
}
