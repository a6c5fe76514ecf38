package engine

import (
	"context"
	"log/slog"

	"github.com/lixenwraith/pong/input"
)

// InputSource samples the keyboard once per tick
type InputSource interface {
	Poll() input.Snapshot
}

// Renderer draws a frame; it may block only for presentation
type Renderer interface {
	SubmitFrame(f Frame)
}

// Clock blocks until the next tick boundary
type Clock interface {
	Wait(ctx context.Context) error
}

// SoundPlayer reacts to the events of a tick; playback must not block the loop
type SoundPlayer interface {
	PlayEvents(events []GameEvent)
}

// Loop is the fixed-tick frame loop: wait, poll, step, play, render
type Loop struct {
	state    *GameState
	input    InputSource
	renderer Renderer
	clock    Clock
	sound    SoundPlayer
	logger   *slog.Logger
}

// NewLoop wires the collaborators around a game state
func NewLoop(state *GameState, in InputSource, renderer Renderer, clock Clock) *Loop {
	return &Loop{
		state:    state,
		input:    in,
		renderer: renderer,
		clock:    clock,
		logger:   slog.Default(),
	}
}

// SetSoundPlayer attaches an optional sound collaborator
func (l *Loop) SetSoundPlayer(sp SoundPlayer) {
	l.sound = sp
}

// SetLogger replaces the loop logger
func (l *Loop) SetLogger(logger *slog.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// Run drives the match until it terminates (nil) or ctx is done (ctx.Err()).
// The replay decision phase has no timeout; the loop keeps ticking until a choice arrives.
func (l *Loop) Run(ctx context.Context) error {
	l.renderer.SubmitFrame(l.state.Frame())

	for {
		if err := l.clock.Wait(ctx); err != nil {
			l.logger.Debug("frame loop stopped", "reason", err, "frame", l.state.FrameNumber())
			return err
		}

		snapshot := l.input.Poll()
		prev := l.state.Phase()
		events := l.state.Step(snapshot)

		if l.sound != nil && len(events) > 0 {
			l.sound.PlayEvents(events)
		}

		phase := l.state.Phase()
		if phase != prev {
			l.logger.Debug("phase changed", "from", prev, "to", phase, "frame", l.state.FrameNumber())
		}
		if phase == PhaseTerminated {
			return nil
		}

		l.renderer.SubmitFrame(l.state.Frame())
	}
}
