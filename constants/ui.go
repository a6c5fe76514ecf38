package constants

// Overlay text
const (
	LeftWinsText  = "Left paddle wins!"
	RightWinsText = "Right paddle wins!"
	PlayAgainText = "Play again? Y/N"
)

// UI Layout Constants
const (
	// ScoreRow is the terminal row holding the score line
	ScoreRow = 0

	// BannerGapRows separates the win banner from the replay prompt
	BannerGapRows = 1
)

// Glyphs
const (
	PaddleChar = '█'
	BallChar   = '●'
)
