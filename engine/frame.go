package engine

import "github.com/lixenwraith/pong/components"

// Frame is everything the renderer needs to draw one tick
type Frame struct {
	Phase       GamePhase
	LeftPaddle  components.Rect
	RightPaddle components.Rect
	Ball        components.Circle
	ScoreLeft   int
	ScoreRight  int

	// Overlay holds centred text lines (win banner, replay prompt); empty while playing
	Overlay []string
}
