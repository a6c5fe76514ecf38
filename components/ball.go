package components

import "github.com/lixenwraith/pong/constants"

// Circle is a render command for a filled circle in field units
type Circle struct {
	X, Y   float64
	Radius float64
}

// BallComponent is the match ball.
// Every match builds its own instance; there is no shared default state.
type BallComponent struct {
	X, Y   float64
	VX, VY float64
	Radius float64

	originX, originY float64
}

// NewBall creates a ball at the field centre serving right at base speed
func NewBall() *BallComponent {
	return &BallComponent{
		X:       constants.BallOriginX,
		Y:       constants.BallOriginY,
		VX:      constants.BaseBallSpeed,
		VY:      0,
		Radius:  constants.BallRadius,
		originX: constants.BallOriginX,
		originY: constants.BallOriginY,
	}
}

// Move advances the ball by its velocity without any clamping.
// Leaving the field horizontally is how a point is detected.
func (b *BallComponent) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Reset recentres the ball and reverses its horizontal direction, so it
// leaves the centre toward the side that just scored
func (b *BallComponent) Reset() {
	b.VX = -b.VX
	b.VY = 0
	b.X = b.originX
	b.Y = b.originY
}

// Top returns the y of the ball's upper edge
func (b *BallComponent) Top() float64 { return b.Y - b.Radius }

// Bottom returns the y of the ball's lower edge
func (b *BallComponent) Bottom() float64 { return b.Y + b.Radius }

// Circle returns the ball's render command
func (b *BallComponent) Circle() Circle {
	return Circle{X: b.X, Y: b.Y, Radius: b.Radius}
}
