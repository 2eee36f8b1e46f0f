package audio

import (
	"testing"
	"time"

	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/event"
)

// TestSoundForEvent verifies the event to effect mapping
func TestSoundForEvent(t *testing.T) {
	tests := []struct {
		name  string
		ev    event.GameEvent
		want  SoundType
		audio bool
	}{
		{"paddle", event.GameEvent{Type: event.EventPaddleBounce}, SoundBoing, true},
		{"duck", event.GameEvent{Type: event.EventTargetHit, Payload: &event.TargetHitPayload{Kind: int(engine.KindDuck)}}, SoundQuack, true},
		{"goat", event.GameEvent{Type: event.EventTargetHit, Payload: &event.TargetHitPayload{Kind: int(engine.KindGoat)}}, SoundBleat, true},
		{"horse", event.GameEvent{Type: event.EventTargetHit, Payload: &event.TargetHitPayload{Kind: int(engine.KindHorse)}}, SoundWhinny, true},
		{"target without payload", event.GameEvent{Type: event.EventTargetHit}, 0, false},
		{"won", event.GameEvent{Type: event.EventRoundWon}, SoundChaChing, true},
		{"lost", event.GameEvent{Type: event.EventRoundLost}, SoundShatter, true},
		{"wall", event.GameEvent{Type: event.EventWallBounce}, 0, false},
		{"bottom", event.GameEvent{Type: event.EventBottomHit}, 0, false},
		{"start", event.GameEvent{Type: event.EventRoundStart}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SoundForEvent(tt.ev)
			if ok != tt.audio {
				t.Fatalf("Expected audible=%v, got %v", tt.audio, ok)
			}
			if ok && got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

// TestPlayUninitialized verifies playback is a no-op before Initialize
func TestPlayUninitialized(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.Play(SoundBoing) {
		t.Error("Expected Play to be suppressed before Initialize")
	}
	sm.HandleEvents([]event.GameEvent{{Type: event.EventRoundWon}})
	sm.Cleanup()
}

// TestInitializeDisabled verifies a disabled config never opens the speaker
func TestInitializeDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != ErrAudioDisabled {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
}

// TestAdmitRateLimit verifies repeated effects inside MinSoundGap are dropped
func TestAdmitRateLimit(t *testing.T) {
	sm := NewSoundManager(nil)
	now := time.Now()

	if !sm.admit(SoundBoing, now) {
		t.Fatal("Expected first play to be admitted")
	}
	if sm.admit(SoundBoing, now.Add(sm.cfg.MinSoundGap/2)) {
		t.Error("Expected play inside gap to be dropped")
	}
	if !sm.admit(SoundQuack, now) {
		t.Error("Expected a different effect to be admitted")
	}
	if !sm.admit(SoundBoing, now.Add(sm.cfg.MinSoundGap)) {
		t.Error("Expected play after gap to be admitted")
	}
}

// TestAdmitMuted verifies mute drops every effect
func TestAdmitMuted(t *testing.T) {
	sm := NewSoundManager(nil)
	sm.SetMuted(true)

	if sm.admit(SoundChaChing, time.Now()) {
		t.Error("Expected muted manager to drop effects")
	}
	if sm.admit(soundTypeCount, time.Now()) {
		t.Error("Expected unknown sound type to be dropped")
	}
}
