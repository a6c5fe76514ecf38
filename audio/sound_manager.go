package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
)

// SoundManager plays one-shot cues through a single speaker mixer.
// All methods are safe to call before Initialize or after Cleanup; they do nothing.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; Initialize must succeed before cues play
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
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
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", sm.cfg.SampleRate, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayEvents plays the cues for one tick's game events
func (sm *SoundManager) PlayEvents(events []engine.GameEvent) {
	for _, st := range SoundsForEvents(events) {
		sm.Play(st)
	}
}

// SoundsForEvents maps a tick's events to cues.
// A match-winning point plays only the win chime.
func SoundsForEvents(events []engine.GameEvent) []SoundType {
	won := engine.HasEvent(events, engine.EventMatchWon)

	var sounds []SoundType
	for _, ev := range events {
		switch ev.Type {
		case engine.EventWallBounce:
			sounds = append(sounds, SoundWall)
		case engine.EventPaddleBounce:
			sounds = append(sounds, SoundPaddle)
		case engine.EventPoint:
			if !won {
				sounds = append(sounds, SoundPoint)
			}
		case engine.EventMatchWon:
			sounds = append(sounds, SoundWin)
		}
	}
	return sounds
}
