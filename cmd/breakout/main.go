package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/audio"
	"github.com/lixenwraith/breakout/config"
	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/render"
	"github.com/lixenwraith/breakout/terminal"
)

var (
	configFlag    = flag.String("config", "", "Path to a TOML config file")
	colorModeFlag = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	fpsFlag       = flag.Int("fps", 0, "Frames per second (overrides config)")
	debugFlag     = flag.Bool("debug", false, "Write a debug log to logs/breakout.log")
	muteFlag      = flag.Bool("mute", false, "Start with sound effects muted")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if !terminal.IsTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "breakout: stdout is not a terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "breakout: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "breakout: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	colorMode, err := terminal.ParseColorMode(cfg.Display.ColorMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "breakout: %v\n", err)
		os.Exit(1)
	}

	session, err := engine.NewSession(cfg.Game)
	if err != nil {
		fmt.Fprintf(os.Stderr, "breakout: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashFinalizer(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sounds := audio.NewSoundManager(&cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	} else {
		defer sounds.Cleanup()
	}
	sounds.SetMuted(*muteFlag)

	renderer := render.NewTerminalRenderer(screen, colorMode, cfg.Game.BoardWidth, cfg.Game.BoardHeight)
	g := newGame(session, renderer, sounds, engine.NewTimeProvider(), cfg.Display.FPS)
	g.muted = *muteFlag

	log.Printf("starting: board %.0fx%.0f, %d targets, %d fps, color %s",
		cfg.Game.BoardWidth, cfg.Game.BoardHeight, cfg.Game.TargetCount, cfg.Display.FPS, colorMode)
	g.run(screen)
}

// applyFlags lets explicitly set command-line flags override the loaded config
func applyFlags(cfg *config.Config) error {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "color":
			cfg.Display.ColorMode = *colorModeFlag
		case "fps":
			cfg.Display.FPS = *fpsFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})
	return cfg.Validate()
}
