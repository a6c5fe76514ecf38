package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/modes"
	"github.com/lixenwraith/pong/render"
)

func main() {
	// Panic Recovery: ensure the terminal is usable again even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			render.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPONG CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	logFile := setupLogging(debugEnabled())

	err := run()

	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.HideCursor()

	// Sound is optional; the game runs silently if the speaker cannot open
	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		slog.Warn("audio unavailable, continuing without sound", "error", err)
	} else {
		defer sound.Cleanup()
	}

	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	// Runs before screen.Fini, so a pump blocked on a full channel can return
	defer close(done)
	go pumpEvents(screen, events, done)

	renderer := render.NewTerminalRenderer(screen)
	inputHandler := modes.NewInputHandler(events, engine.NewMonotonicTimeProvider())
	inputHandler.OnResize = renderer.Resize

	clock := engine.NewTickerClock(constants.FrameUpdateInterval)
	defer clock.Stop()

	state := engine.NewGameState(slog.Default())
	loop := engine.NewLoop(state, inputHandler, renderer, clock)
	loop.SetSoundPlayer(sound)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("frame loop: %w", err)
	}
	return nil
}

// pumpEvents forwards terminal events until the screen is finalized or done is closed.
// PollEvent blocks, so it lives on its own goroutine; the channel is closed on exit.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	defer func() {
		if r := recover(); r != nil {
			render.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
