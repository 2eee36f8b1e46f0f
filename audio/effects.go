package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/breakout/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, gliding linearly from freq to freqEnd
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator whose pitch sweeps from one frequency to another
func NewGlide(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		freqEnd:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) currentFreq() float64 {
	if o.duration <= 1 || o.freq == o.freqEnd {
		return o.freq
	}
	t := float64(o.position) / float64(o.duration-1)
	return o.freq + (o.freqEnd-o.freq)*t
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.currentFreq() / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateBoingSound generates a rising spring for paddle bounces
func CreateBoingSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewGlide(parameter.BoingSoundFromHz, parameter.BoingSoundToHz, parameter.BoingSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.BoingSoundDuration, parameter.BoingSoundAttack, parameter.BoingSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundBoing))
}

// CreateQuackSound generates two nasal falling pulses for a duck
func CreateQuackSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	pulse := func() beep.Streamer {
		osc := NewGlide(parameter.QuackSoundFromHz, parameter.QuackSoundToHz, parameter.QuackSoundPulse, WaveSaw, rate)
		return NewEnvelope(osc, parameter.QuackSoundPulse, parameter.QuackSoundAttack, parameter.QuackSoundRelease, rate)
	}
	sequence := beep.Seq(pulse(), beep.Silence(rate.N(parameter.QuackSoundGap)), pulse())

	return newVolume(sequence, cfg.Volume(SoundQuack))
}

// CreateBleatSound generates a wavering square tone for a goat
func CreateBleatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	pulses := make([]beep.Streamer, 0, parameter.BleatSoundPulses)
	for i := range parameter.BleatSoundPulses {
		// Each pulse drops slightly in pitch
		freq := parameter.BleatSoundHz * (1 - 0.04*float64(i))
		osc := NewOscillator(freq, parameter.BleatSoundPulse, WaveSquare, rate)
		pulses = append(pulses, NewEnvelope(osc, parameter.BleatSoundPulse, parameter.BleatSoundAttack, parameter.BleatSoundRelease, rate))
	}

	return newVolume(beep.Seq(pulses...), cfg.Volume(SoundBleat)*0.6)
}

// CreateWhinnySound generates a long falling call for a horse
func CreateWhinnySound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewGlide(parameter.WhinnySoundFromHz, parameter.WhinnySoundToHz, parameter.WhinnySoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.WhinnySoundDuration, parameter.WhinnySoundAttack, parameter.WhinnySoundRelease, rate)

	rasp := NewGlide(parameter.WhinnySoundFromHz/2, parameter.WhinnySoundToHz/2, parameter.WhinnySoundDuration, WaveSaw, rate)
	raspShaped := NewEnvelope(rasp, parameter.WhinnySoundDuration, parameter.WhinnySoundAttack, parameter.WhinnySoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(raspShaped, 0.2),
	)

	return newVolume(mixed, cfg.Volume(SoundWhinny))
}

// CreateChaChingSound generates a register chime for a cleared field
func CreateChaChingSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (B5)
	n1 := NewOscillator(987.77, parameter.ChaChingNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.ChaChingNote1Duration, parameter.ChaChingAttack, parameter.ChaChingNote1Release, rate)

	// Second note (E6)
	n2 := NewOscillator(1318.51, parameter.ChaChingNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.ChaChingNote2Duration, parameter.ChaChingAttack, parameter.ChaChingNote2Release, rate)
	ring := beep.Streamer(n2Shaped)

	// Octave overtone; SineTone rejects frequencies above Nyquist
	if sine, err := generators.SineTone(rate, 2637.02); err == nil {
		over := beep.Take(rate.N(parameter.ChaChingNote2Duration), sine)
		overShaped := NewEnvelope(over, parameter.ChaChingNote2Duration, parameter.ChaChingAttack, parameter.ChaChingNote2Release/2, rate)
		ring = beep.Mix(n2Shaped, newVolume(overShaped, 0.3))
	}

	sequence := beep.Seq(n1Shaped, ring)

	return newVolume(sequence, cfg.Volume(SoundChaChing))
}

// CreateShatterSound generates a burst of decaying noise for a lost round
func CreateShatterSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.ShatterSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.ShatterSoundDuration, parameter.ShatterSoundAttack, parameter.ShatterSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundShatter))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundBoing:
		return CreateBoingSound(cfg)
	case SoundQuack:
		return CreateQuackSound(cfg)
	case SoundBleat:
		return CreateBleatSound(cfg)
	case SoundWhinny:
		return CreateWhinnySound(cfg)
	case SoundChaChing:
		return CreateChaChingSound(cfg)
	case SoundShatter:
		return CreateShatterSound(cfg)
	default:
		return nil
	}
}
