package input

import "github.com/lixenwraith/pong/components"

// ApplyPaddleIntents translates held keys into paddle moves.
// A step is taken only when the paddle stays inside [0, fieldHeight-height]
// afterwards; up and down held together both apply.
func ApplyPaddleIntents(s Snapshot, left, right *components.PaddleComponent, fieldHeight float64) {
	movePaddle(left, s.IsHeld(KeyLeftUp), s.IsHeld(KeyLeftDown), fieldHeight)
	movePaddle(right, s.IsHeld(KeyRightUp), s.IsHeld(KeyRightDown), fieldHeight)
}

func movePaddle(p *components.PaddleComponent, up, down bool, fieldHeight float64) {
	if up && CanMove(p, components.DirectionUp, fieldHeight) {
		p.Move(components.DirectionUp)
	}
	if down && CanMove(p, components.DirectionDown, fieldHeight) {
		p.Move(components.DirectionDown)
	}
}

// CanMove reports whether one step in dir keeps the paddle in bounds
func CanMove(p *components.PaddleComponent, dir components.Direction, fieldHeight float64) bool {
	switch dir {
	case components.DirectionUp:
		return p.Y-p.Velocity >= 0
	case components.DirectionDown:
		return p.Y+p.Height+p.Velocity <= fieldHeight
	}
	return false
}
