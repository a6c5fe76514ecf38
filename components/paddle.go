package components

import "github.com/lixenwraith/pong/constants"

// Direction is a vertical paddle intent
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

// Rect is a render command for an axis-aligned rectangle in field units
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// PaddleComponent is one player's paddle.
// X never changes after construction; Y is moved by the input mapper.
type PaddleComponent struct {
	X, Y     float64
	Width    float64
	Height   float64
	Velocity float64

	originX, originY float64
}

// NewPaddle creates a paddle resting at its origin
func NewPaddle(originX, originY float64) *PaddleComponent {
	return &PaddleComponent{
		X:        originX,
		Y:        originY,
		Width:    constants.PaddleWidth,
		Height:   constants.PaddleHeight,
		Velocity: constants.PaddleVelocity,
		originX:  originX,
		originY:  originY,
	}
}

// NewLeftPaddle creates the paddle on the left edge of the field
func NewLeftPaddle() *PaddleComponent {
	return NewPaddle(constants.LeftPaddleX, constants.PaddleOriginY)
}

// NewRightPaddle creates the paddle on the right edge of the field
func NewRightPaddle() *PaddleComponent {
	return NewPaddle(constants.RightPaddleX, constants.PaddleOriginY)
}

// Move shifts the paddle one step. Bounds are the caller's concern.
func (p *PaddleComponent) Move(dir Direction) {
	switch dir {
	case DirectionUp:
		p.Y -= p.Velocity
	case DirectionDown:
		p.Y += p.Velocity
	}
}

// Reset returns the paddle to its origin
func (p *PaddleComponent) Reset() {
	p.X = p.originX
	p.Y = p.originY
}

// CenterY returns the vertical centre of the paddle
func (p *PaddleComponent) CenterY() float64 {
	return p.Y + p.Height/2
}

// Rect returns the paddle's render rectangle
func (p *PaddleComponent) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}
