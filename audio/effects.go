package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/pong/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite streamer of the given wave
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
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
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: start,
		release:      rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.releaseStart {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePaddleSound is a short bright blip (A5)
func CreatePaddleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(880.0, constants.PaddleSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.PaddleSoundDuration, constants.PaddleSoundAttack, constants.PaddleSoundRelease, rate)

	return newVolume(shaped, 0.5*cfg.EffectVolumes[SoundPaddle]*cfg.MasterVolume)
}

// CreateWallSound is a softer, lower blip (A4)
func CreateWallSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(440.0, constants.WallSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.WallSoundDuration, constants.WallSoundAttack, constants.WallSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundWall]*cfg.MasterVolume)
}

// CreatePointSound is a low tone mixed with a burst of noise
func CreatePointSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone := NewOscillator(220.0, constants.PointSoundDuration, WaveSine, rate)
	toneShaped := NewEnvelope(tone, constants.PointSoundDuration, constants.PointSoundAttack, constants.PointSoundRelease, rate)

	noise := NewOscillator(0, constants.PointSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.PointSoundDuration, constants.PointSoundAttack, constants.PointSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(toneShaped, 0.8),
		newVolume(noiseShaped, 0.15),
	)

	return newVolume(mixed, cfg.EffectVolumes[SoundPoint]*cfg.MasterVolume)
}

// CreateWinSound is a rising two-note chime (B5, E6)
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(987.77, constants.WinSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.WinSoundNote1Duration, constants.WinSoundAttack, constants.WinSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, constants.WinSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.WinSoundNote2Duration, constants.WinSoundAttack, constants.WinSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.5*cfg.EffectVolumes[SoundWin]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPaddle:
		return CreatePaddleSound(cfg)
	case SoundWall:
		return CreateWallSound(cfg)
	case SoundPoint:
		return CreatePointSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	default:
		return nil
	}
}
