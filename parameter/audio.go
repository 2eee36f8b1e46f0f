package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length handed to beep
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between two plays of the same effect
	MinSoundGap = 40 * time.Millisecond
)

// Boing Sound (paddle)
const (
	BoingSoundDuration = 160 * time.Millisecond
	BoingSoundAttack   = 5 * time.Millisecond
	BoingSoundRelease  = 110 * time.Millisecond
	BoingSoundFromHz   = 180.0
	BoingSoundToHz     = 420.0
)

// Quack Sound (duck target)
const (
	QuackSoundPulse   = 90 * time.Millisecond
	QuackSoundGap     = 30 * time.Millisecond
	QuackSoundAttack  = 10 * time.Millisecond
	QuackSoundRelease = 40 * time.Millisecond
	QuackSoundFromHz  = 320.0
	QuackSoundToHz    = 240.0
)

// Bleat Sound (goat target)
const (
	BleatSoundPulse   = 70 * time.Millisecond
	BleatSoundPulses  = 3
	BleatSoundAttack  = 5 * time.Millisecond
	BleatSoundRelease = 30 * time.Millisecond
	BleatSoundHz      = 540.0
)

// Whinny Sound (horse target)
const (
	WhinnySoundDuration = 420 * time.Millisecond
	WhinnySoundAttack   = 20 * time.Millisecond
	WhinnySoundRelease  = 200 * time.Millisecond
	WhinnySoundFromHz   = 1100.0
	WhinnySoundToHz     = 520.0
)

// Cha-ching Sound (round won)
const (
	ChaChingNote1Duration = 80 * time.Millisecond
	ChaChingNote2Duration = 420 * time.Millisecond
	ChaChingAttack        = 5 * time.Millisecond
	ChaChingNote1Release  = 40 * time.Millisecond
	ChaChingNote2Release  = 360 * time.Millisecond
)

// Shatter Sound (round lost)
const (
	ShatterSoundDuration = 500 * time.Millisecond
	ShatterSoundAttack   = 2 * time.Millisecond
	ShatterSoundRelease  = 450 * time.Millisecond
)
