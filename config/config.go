package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/breakout/audio"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/parameter"
)

// Environment variables read by ApplyEnv, in addition to the audio ones
const (
	EnvSeed          = "BREAKOUT_SEED"
	EnvBottomHits    = "BREAKOUT_BOTTOM_HITS"
	EnvTargetCount   = "BREAKOUT_TARGET_COUNT"
	EnvSpeedUpFactor = "BREAKOUT_SPEED_UP"
	EnvFPS           = "BREAKOUT_FPS"
	EnvColorMode     = "BREAKOUT_COLOR"
	EnvDebug         = "BREAKOUT_DEBUG"
)

// Display limits
const (
	MinFPS = 1
	MaxFPS = 240
)

var (
	ErrConfigFile     = errors.New("config file")
	ErrInvalidDisplay = errors.New("invalid display configuration")
)

var colorModes = []string{"auto", "truecolor", "256"}

// Display holds terminal presentation settings
type Display struct {
	ColorMode string `toml:"color_mode"`
	FPS       int    `toml:"fps"`
}

// Config is the complete application configuration
type Config struct {
	Game    engine.Config     `toml:"game"`
	Audio   audio.AudioConfig `toml:"audio"`
	Display Display           `toml:"display"`
	Debug   bool              `toml:"debug"`

	// Volumes holds per-effect gains keyed by effect name, applied to Audio on load
	Volumes map[string]float64 `toml:"volumes"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game:  engine.DefaultConfig(),
		Audio: *audio.DefaultAudioConfig(),
		Display: Display{
			ColorMode: "auto",
			FPS:       parameter.FrameRate,
		},
	}
}

// Load builds a configuration from defaults, an optional TOML file and the environment
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrConfigFile, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			log.Printf("config: ignoring unknown keys in %s: %v", path, undecoded)
		}
	}

	if unknown := cfg.Audio.SetVolumes(cfg.Volumes); len(unknown) > 0 {
		log.Printf("config: ignoring unknown sound effects %v", unknown)
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays BREAKOUT_* environment variables; malformed values are skipped
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Game.Seed = seed
		}
	}
	if v := os.Getenv(EnvBottomHits); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Game.BottomHitsToLose = n
		}
	}
	if v := os.Getenv(EnvTargetCount); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Game.TargetCount = n
		}
	}
	if v := os.Getenv(EnvSpeedUpFactor); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Game.SpeedUpFactor = f
		}
	}
	if v := os.Getenv(EnvFPS); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Display.FPS = n
		}
	}
	if v := os.Getenv(EnvColorMode); v != "" {
		c.Display.ColorMode = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}

	c.Audio.ApplyEnv()
}

// Validate checks every section
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if c.Display.FPS < MinFPS || c.Display.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d outside [%d, %d]", ErrInvalidDisplay, c.Display.FPS, MinFPS, MaxFPS)
	}
	if !slices.Contains(colorModes, c.Display.ColorMode) {
		return fmt.Errorf("%w: color mode %q, want one of %v", ErrInvalidDisplay, c.Display.ColorMode, colorModes)
	}
	return nil
}
