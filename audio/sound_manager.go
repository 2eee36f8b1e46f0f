package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/event"
	"github.com/lixenwraith/breakout/parameter"
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	lastPlayed  [soundTypeCount]time.Time
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager; nil cfg selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Play queues a one-shot effect, returns false when suppressed
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.admit(st, time.Now()) {
		return false
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// admit applies mute and the per-effect rate limit; caller holds mu
func (sm *SoundManager) admit(st SoundType, now time.Time) bool {
	if sm.muted || st < 0 || st >= soundTypeCount {
		return false
	}
	if last := sm.lastPlayed[st]; !last.IsZero() && now.Sub(last) < sm.cfg.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}

// HandleEvents plays the effect mapped to each game event
func (sm *SoundManager) HandleEvents(events []event.GameEvent) {
	for _, ev := range events {
		if st, ok := SoundForEvent(ev); ok {
			sm.Play(st)
		}
	}
}

// SoundForEvent maps a game event to its effect
// Wall bounces, bottom hits and round transitions other than win/loss stay silent
func SoundForEvent(ev event.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case event.EventPaddleBounce:
		return SoundBoing, true
	case event.EventTargetHit:
		p, ok := ev.Payload.(*event.TargetHitPayload)
		if !ok {
			return 0, false
		}
		switch engine.TargetKind(p.Kind) {
		case engine.KindDuck:
			return SoundQuack, true
		case engine.KindGoat:
			return SoundBleat, true
		case engine.KindHorse:
			return SoundWhinny, true
		}
	case event.EventRoundWon:
		return SoundChaChing, true
	case event.EventRoundLost:
		return SoundShatter, true
	}
	return 0, false
}
