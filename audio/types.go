package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundBoing    SoundType = iota // Paddle bounce
	SoundQuack                     // Duck target destroyed
	SoundBleat                     // Goat target destroyed
	SoundWhinny                    // Horse target destroyed
	SoundChaChing                  // Round won
	SoundShatter                   // Round lost
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundBoing:    "boing",
	SoundQuack:    "quack",
	SoundBleat:    "bleat",
	SoundWhinny:   "whinny",
	SoundChaChing: "chaching",
	SoundShatter:  "shatter",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType resolves a lower-case effect name as used in volume tables
func ParseSoundType(name string) (SoundType, error) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), nil
		}
	}
	return 0, ErrUnknownSound
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrUnknownSound  = errors.New("unknown sound effect")
)
