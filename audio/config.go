package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/breakout/parameter"
	"github.com/lixenwraith/breakout/vmath"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "BREAKOUT_AUDIO_ENABLED"
	EnvMasterVolume = "BREAKOUT_MASTER_VOLUME"
	EnvSFXVolumes   = "BREAKOUT_SFX_VOLUMES"
	EnvSampleRate   = "BREAKOUT_SAMPLE_RATE"
)

// AudioConfig holds the sound settings
type AudioConfig struct {
	Enabled       bool                  `toml:"enabled"`
	MasterVolume  float64               `toml:"master_volume"`
	SampleRate    int                   `toml:"sample_rate"`
	EffectVolumes map[SoundType]float64 `toml:"-"`
	MinSoundGap   time.Duration         `toml:"-"`
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundBoing:    0.7,
			SoundQuack:    0.8,
			SoundBleat:    0.8,
			SoundWhinny:   0.8,
			SoundChaChing: 1.0,
			SoundShatter:  0.6,
		},
		MinSoundGap: parameter.MinSoundGap,
	}
}

// SetVolumes applies named per-effect volumes, clamped to [0,1]
// Unknown names are returned and otherwise ignored
func (c *AudioConfig) SetVolumes(volumes map[string]float64) []string {
	var unknown []string
	for name, v := range volumes {
		st, err := ParseSoundType(name)
		if err != nil {
			unknown = append(unknown, name)
			continue
		}
		c.EffectVolumes[st] = vmath.Clamp(v, 0, 1)
	}
	return unknown
}

// ApplyEnv overlays the BREAKOUT_* audio variables onto c
// Malformed values are skipped
func (c *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			c.SetVolumes(volumes)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.ApplyEnv()
	return cfg
}

// Volume returns the effective gain for a sound type
func (c *AudioConfig) Volume(st SoundType) float64 {
	return c.EffectVolumes[st] * c.MasterVolume
}
