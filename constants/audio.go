package constants

import "time"

// Audio Engine Defaults
const (
	// DefaultSampleRate is the speaker sample rate when none is configured
	DefaultSampleRate = 44100

	// SpeakerBufferDuration is the speaker buffer length passed to speaker.Init
	SpeakerBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume applies to all cues (0.0-1.0)
	DefaultMasterVolume = 0.5
)

// Paddle Hit Sound Timing
const (
	PaddleSoundDuration = 50 * time.Millisecond
	PaddleSoundAttack   = 2 * time.Millisecond
	PaddleSoundRelease  = 20 * time.Millisecond
)

// Wall Hit Sound Timing
const (
	WallSoundDuration = 40 * time.Millisecond
	WallSoundAttack   = 2 * time.Millisecond
	WallSoundRelease  = 20 * time.Millisecond
)

// Point Sound Timing
const (
	PointSoundDuration = 250 * time.Millisecond
	PointSoundAttack   = 5 * time.Millisecond
	PointSoundRelease  = 150 * time.Millisecond
)

// Win Sound Timing
const (
	WinSoundNote1Duration = 120 * time.Millisecond
	WinSoundNote2Duration = 400 * time.Millisecond
	WinSoundAttack        = 5 * time.Millisecond
	WinSoundNote1Release  = 60 * time.Millisecond
	WinSoundNote2Release  = 300 * time.Millisecond
)
