package modes

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/input"
)

// InputHandler turns terminal events into per-tick input snapshots.
// Terminals only report presses and auto-repeats, so a key counts as held
// for holdWindow after its most recent event.
type InputHandler struct {
	events       <-chan tcell.Event
	keys         *input.KeyTable
	timeProvider engine.TimeProvider
	holdWindow   time.Duration

	lastSeen map[input.Key]time.Time
	pressed  []input.Key
	closed   bool

	// OnResize is called from Poll when the terminal size changed
	OnResize func(width, height int)
}

// NewInputHandler reads events from a channel fed by the terminal event pump.
// The channel is closed by the pump when the terminal goes away.
func NewInputHandler(events <-chan tcell.Event, timeProvider engine.TimeProvider) *InputHandler {
	return &InputHandler{
		events:       events,
		keys:         input.DefaultKeyTable(),
		timeProvider: timeProvider,
		holdWindow:   constants.KeyHoldWindow,
		lastSeen:     make(map[input.Key]time.Time),
	}
}

// Poll drains pending events without blocking and returns this tick's snapshot
func (h *InputHandler) Poll() input.Snapshot {
	h.pressed = h.pressed[:0]

drain:
	for {
		select {
		case ev, ok := <-h.events:
			if !ok {
				h.closed = true
				break drain
			}
			h.HandleEvent(ev)
		default:
			break drain
		}
	}

	return h.snapshot()
}

// HandleEvent records a single terminal event
func (h *InputHandler) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.handleKeyEvent(ev)
	case *tcell.EventResize:
		if h.OnResize != nil {
			w, hgt := ev.Size()
			h.OnResize(w, hgt)
		}
	}
}

func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) {
	k, ok := h.keys.Lookup(ev)
	if !ok {
		return
	}
	h.lastSeen[k] = h.timeProvider.Now()
	h.pressed = append(h.pressed, k)
}

func (h *InputHandler) snapshot() input.Snapshot {
	now := h.timeProvider.Now()
	s := input.Snapshot{Closed: h.closed}

	for k, at := range h.lastSeen {
		if now.Sub(at) < h.holdWindow {
			s.Hold(k)
		}
	}
	if len(h.pressed) > 0 {
		s.Pressed = append([]input.Key(nil), h.pressed...)
	}

	return s
}
