package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddle SoundType = iota // Ball hits a paddle
	SoundWall                    // Ball hits the top or bottom wall
	SoundPoint                   // A side scores
	SoundWin                     // Match won
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundPaddle: "paddle",
	SoundWall:   "wall",
	SoundPoint:  "point",
	SoundWin:    "win",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
