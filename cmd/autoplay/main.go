package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/status"
	"github.com/lixenwraith/breakout/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	roundsFlag = flag.Int("rounds", 10, "Number of rounds to play")
	seedFlag   = flag.Uint64("seed", 1, "Seed for target kinds and autopilot misses")
	fpsFlag    = flag.Int("fps", 60, "Simulated frames per second")
	missFlag   = flag.Float64("miss", 0.1, "Probability the autopilot misses an approach")
	debugFlag  = flag.Bool("debug", false, "Log session events to stderr")
)

func main() {
	flag.Parse()

	if !*debugFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "autoplay: %v\n", err)
		os.Exit(1)
	}
	cfg.Game.Seed = *seedFlag

	if *roundsFlag < 1 || *fpsFlag < config.MinFPS || *fpsFlag > config.MaxFPS {
		fmt.Fprintf(os.Stderr, "autoplay: need rounds >= 1 and fps in [%d, %d]\n", config.MinFPS, config.MaxFPS)
		os.Exit(2)
	}

	session, err := engine.NewSession(cfg.Game)
	if err != nil {
		fmt.Fprintf(os.Stderr, "autoplay: %v\n", err)
		os.Exit(1)
	}

	pilot := newAutopilot(*seedFlag, vmath.Clamp(*missFlag, 0, 1))
	tp := engine.NewMockTimeProvider(time.Unix(0, 0))
	frame := time.Second / time.Duration(*fpsFlag)

	for i := 0; i < *roundsFlag; i++ {
		res := playRound(session, pilot, tp, frame)
		outcome := res.State.String()
		if res.TimedOut {
			outcome = "TIMEOUT"
		}
		fmt.Printf("round %3d  %-7s  %6d ticks  %8s  targets %2d  bottom %d  paddle %d\n",
			res.Round, outcome, res.Ticks, res.Simulated.Round(time.Millisecond),
			res.Destroyed, res.BottomHits, res.Paddle)
	}

	m := session.Metrics()
	fmt.Printf("won %d  lost %d  targets destroyed %d  ticks %d\n",
		m.Int(status.KeyRoundsWon), m.Int(status.KeyRoundsLost),
		m.Int(status.KeyTargetsDestroyed), m.Int(status.KeyTicks))
}
