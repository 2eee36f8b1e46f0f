package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/breakout/audio"
	"github.com/lixenwraith/breakout/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "breakout.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// TestLoadDefaults verifies an empty path yields the built-in configuration
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Game != engine.DefaultConfig() {
		t.Errorf("Expected default game config, got %+v", cfg.Game)
	}
	if cfg.Display.FPS != 60 {
		t.Errorf("Expected 60 fps, got %d", cfg.Display.FPS)
	}
	if cfg.Display.ColorMode != "auto" {
		t.Errorf("Expected auto color mode, got %q", cfg.Display.ColorMode)
	}
	if cfg.Debug {
		t.Error("Expected debug off by default")
	}
}

// TestLoadFile verifies TOML values override defaults section by section
func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
debug = true

[game]
bottom_hits_to_lose = 3
target_count = 8
seed = 42

[audio]
enabled = false
master_volume = 0.25

[display]
fps = 30
color_mode = "256"

[volumes]
quack = 0.1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !cfg.Debug {
		t.Error("Expected debug on")
	}
	if cfg.Game.BottomHitsToLose != 3 || cfg.Game.TargetCount != 8 || cfg.Game.Seed != 42 {
		t.Errorf("Expected game overrides, got %+v", cfg.Game)
	}
	if cfg.Game.BoardWidth != engine.DefaultConfig().BoardWidth {
		t.Errorf("Expected untouched board width, got %f", cfg.Game.BoardWidth)
	}
	if cfg.Audio.Enabled || cfg.Audio.MasterVolume != 0.25 {
		t.Errorf("Expected audio overrides, got enabled=%v volume=%f", cfg.Audio.Enabled, cfg.Audio.MasterVolume)
	}
	if cfg.Audio.EffectVolumes[audio.SoundQuack] != 0.1 {
		t.Errorf("Expected quack volume 0.1, got %f", cfg.Audio.EffectVolumes[audio.SoundQuack])
	}
	if cfg.Audio.EffectVolumes[audio.SoundBoing] != audio.DefaultAudioConfig().EffectVolumes[audio.SoundBoing] {
		t.Error("Expected unlisted effect volumes to keep defaults")
	}
	if cfg.Display.FPS != 30 || cfg.Display.ColorMode != "256" {
		t.Errorf("Expected display overrides, got %+v", cfg.Display)
	}
}

// TestLoadEnvOverridesFile verifies environment variables win over the file
func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[game]
seed = 1

[display]
fps = 30
`)
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvFPS, "120")
	t.Setenv(EnvBottomHits, "2")
	t.Setenv(EnvColorMode, "truecolor")
	t.Setenv(EnvDebug, "true")
	t.Setenv(audio.EnvMasterVolume, "10")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Game.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", cfg.Game.Seed)
	}
	if cfg.Display.FPS != 120 {
		t.Errorf("Expected 120 fps, got %d", cfg.Display.FPS)
	}
	if cfg.Game.BottomHitsToLose != 2 {
		t.Errorf("Expected 2 bottom hits, got %d", cfg.Game.BottomHitsToLose)
	}
	if cfg.Display.ColorMode != "truecolor" {
		t.Errorf("Expected truecolor, got %q", cfg.Display.ColorMode)
	}
	if !cfg.Debug {
		t.Error("Expected debug from env")
	}
	if cfg.Audio.MasterVolume != 0.1 {
		t.Errorf("Expected master volume 0.1, got %f", cfg.Audio.MasterVolume)
	}
}

// TestLoadMalformedEnvIgnored verifies unparsable env values keep earlier layers
func TestLoadMalformedEnvIgnored(t *testing.T) {
	t.Setenv(EnvSeed, "-5")
	t.Setenv(EnvFPS, "fast")
	t.Setenv(EnvDebug, "sometimes")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Game.Seed != 0 || cfg.Display.FPS != 60 || cfg.Debug {
		t.Errorf("Expected defaults, got seed=%d fps=%d debug=%v", cfg.Game.Seed, cfg.Display.FPS, cfg.Debug)
	}
}

// TestLoadMissingFile verifies a missing file is reported
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, ErrConfigFile) {
		t.Errorf("Expected ErrConfigFile, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", err)
	}
}

// TestLoadMalformedFile verifies TOML syntax errors are reported
func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[game\nseed = ")
	if _, err := Load(path); !errors.Is(err, ErrConfigFile) {
		t.Errorf("Expected ErrConfigFile, got %v", err)
	}
}

// TestLoadInvalidGame verifies engine validation runs after all layers
func TestLoadInvalidGame(t *testing.T) {
	t.Setenv(EnvTargetCount, "0")
	if _, err := Load(""); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

// TestValidateDisplay verifies display limits
func TestValidateDisplay(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"fps zero", func(c *Config) { c.Display.FPS = 0 }, true},
		{"fps max", func(c *Config) { c.Display.FPS = MaxFPS }, false},
		{"fps too high", func(c *Config) { c.Display.FPS = MaxFPS + 1 }, true},
		{"color 256", func(c *Config) { c.Display.ColorMode = "256" }, false},
		{"color 16", func(c *Config) { c.Display.ColorMode = "16" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidDisplay) {
				t.Errorf("Expected ErrInvalidDisplay, got %v", err)
			}
		})
	}
}
