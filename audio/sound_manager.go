package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/events"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Cue identifies one sound effect
type Cue uint8

const (
	CueNone Cue = iota
	CueKill
	CueLeak
	CueWaveCleared
	CueRejected
)

// SoundManager manages all game audio
// Every Play call is a no-op until Initialize succeeds, and while muted
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
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

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; an empty mixer is silent
	sm.initialized = false
}

// SetMuted enables or disables all cues
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

// ToggleMute flips the mute flag and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()
	sm.SetMuted(muted)
	return muted
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := cueStreamer(cue)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayKill plays the coin chime
func (sm *SoundManager) PlayKill() { sm.Play(CueKill) }

// PlayLeak plays the low buzz
func (sm *SoundManager) PlayLeak() { sm.Play(CueLeak) }

// PlayWaveCleared plays the bell arpeggio
func (sm *SoundManager) PlayWaveCleared() { sm.Play(CueWaveCleared) }

// PlayRejected plays the short click
func (sm *SoundManager) PlayRejected() { sm.Play(CueRejected) }

// HandleEvent plays the cue bound to a notification
func (sm *SoundManager) HandleEvent(_ *engine.World, ev events.GameEvent) {
	sm.Play(CueFor(ev.Type))
}

// EventTypes returns the notifications that have a cue
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventEnemyKilled,
		events.EventEnemyLeaked,
		events.EventWaveCleared,
		events.EventPlacementRejected,
	}
}

// CueFor maps a notification to its sound
func CueFor(et events.EventType) Cue {
	switch et {
	case events.EventEnemyKilled:
		return CueKill
	case events.EventEnemyLeaked:
		return CueLeak
	case events.EventWaveCleared:
		return CueWaveCleared
	case events.EventPlacementRejected:
		return CueRejected
	default:
		return CueNone
	}
}

// cueStreamer builds a finite streamer for a cue
func cueStreamer(cue Cue) beep.Streamer {
	switch cue {
	case CueKill:
		return beep.Take(sampleRate.N(time.Millisecond*120), NewChimeGenerator(sampleRate, 1320))
	case CueLeak:
		return beep.Take(sampleRate.N(time.Millisecond*150), NewBuzzGenerator(sampleRate, 120))
	case CueWaveCleared:
		return beep.Seq(
			beep.Take(sampleRate.N(time.Millisecond*110), NewChimeGenerator(sampleRate, 660)),
			beep.Take(sampleRate.N(time.Millisecond*110), NewChimeGenerator(sampleRate, 830)),
			beep.Take(sampleRate.N(time.Millisecond*220), NewChimeGenerator(sampleRate, 990)),
		)
	case CueRejected:
		return beep.Take(sampleRate.N(time.Millisecond*40), NewClickGenerator(sampleRate))
	default:
		return nil
	}
}
