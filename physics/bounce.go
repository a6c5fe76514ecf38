package physics

import (
	"github.com/lixenwraith/pong/components"
	"github.com/lixenwraith/pong/constants"
)

// Contact reports which surfaces the ball bounced off during one resolution pass
type Contact uint8

const (
	ContactNone Contact = 0
	ContactWall Contact = 1 << iota
	ContactLeftPaddle
	ContactRightPaddle
)

// Has reports whether c includes flag
func (c Contact) Has(flag Contact) bool {
	return c&flag != 0
}

// Resolve applies wall and paddle bounces to the ball after both entities moved.
// Wall and paddle checks are independent; the left and right paddle checks are exclusive.
func Resolve(ball *components.BallComponent, left, right *components.PaddleComponent, fieldHeight float64) Contact {
	contact := ContactNone

	if BounceWall(ball, fieldHeight) {
		contact |= ContactWall
	}

	if ball.X < left.X+left.Width {
		if BouncePaddle(ball, left, -1) {
			contact |= ContactLeftPaddle
		}
	} else if ball.X > right.X {
		if BouncePaddle(ball, right, 1) {
			contact |= ContactRightPaddle
		}
	}

	return contact
}

// BounceWall inverts vy when the ball touches the top or bottom edge while moving into it.
// Position is not clamped, so a ball already inside a wall and moving out is left alone.
func BounceWall(ball *components.BallComponent, fieldHeight float64) bool {
	if (ball.Top() <= 0 && ball.VY < 0) || (ball.Bottom() >= fieldHeight && ball.VY > 0) {
		ball.VY = -ball.VY
		return true
	}
	return false
}

// BouncePaddle reflects the ball off a paddle it overlaps vertically.
// towards is the sign of vx for a ball approaching this paddle (-1 left, +1 right);
// a ball already moving away is left alone so one approach flips vx exactly once.
func BouncePaddle(ball *components.BallComponent, paddle *components.PaddleComponent, towards float64) bool {
	if ball.VX*towards <= 0 {
		return false
	}
	if !Overlaps(ball, paddle) {
		return false
	}

	ball.VX = -ball.VX
	ball.VY = DeflectionCoefficient(ball.Y, paddle) * constants.BaseBallSpeed
	return true
}

// Overlaps reports whether the ball's vertical span [y-r, y+r] meets the paddle's [y, y+h)
func Overlaps(ball *components.BallComponent, paddle *components.PaddleComponent) bool {
	return paddle.Y < ball.Bottom() && paddle.Y+paddle.Height > ball.Top()
}

// DeflectionCoefficient maps the strike point to [-1, 1] for a strike inside the paddle.
// offset = paddle centre - ball y; coefficient = -offset / half height.
// Centre gives 0, top edge -1 (ball leaves upward), bottom edge +1.
func DeflectionCoefficient(ballY float64, paddle *components.PaddleComponent) float64 {
	halfHeight := paddle.Height / 2
	if halfHeight == 0 {
		return 0
	}
	offset := paddle.CenterY() - ballY
	return -offset / halfHeight
}
