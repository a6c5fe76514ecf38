package constants

import "time"

// Playing Field (logical units, independent of terminal size)
const (
	// FieldWidth is the logical width of the playing field
	FieldWidth = 400

	// FieldHeight is the logical height of the playing field
	FieldHeight = 400

	// EdgeDeviation is the gap between a paddle and its side of the field
	EdgeDeviation = 10
)

// Paddle Constants
const (
	PaddleWidth    = 12
	PaddleHeight   = 50
	PaddleVelocity = 4

	// LeftPaddleX is the fixed x of the left paddle
	LeftPaddleX = EdgeDeviation

	// RightPaddleX is the fixed x of the right paddle
	RightPaddleX = FieldWidth - PaddleWidth - EdgeDeviation

	// PaddleOriginY centres both paddles vertically
	PaddleOriginY = FieldHeight/2 - PaddleHeight/2
)

// Ball Constants
const (
	BallRadius = 5

	// BaseBallSpeed is the horizontal speed magnitude, also the deflection scale
	BaseBallSpeed = 5

	BallOriginX = FieldWidth / 2
	BallOriginY = FieldHeight / 2
)

// Match Constants
const (
	// BestOf is the match length; the first side to a majority wins
	BestOf = 5

	// WinTarget is the number of points that ends the match
	WinTarget = (BestOf + 1) / 2
)

// Game Loop Timing Constants
const (
	// TargetFPS is the fixed tick rate of the frame loop
	TargetFPS = 60

	// FrameUpdateInterval is the duration of one tick
	FrameUpdateInterval = time.Second / TargetFPS

	// KeyHoldWindow is how long a key counts as held after its last press or repeat.
	// Terminals report presses and auto-repeats only, never releases, and the first
	// repeat usually arrives 250-600ms after the press.
	KeyHoldWindow = 500 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)
