package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pong/components"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
)

// TerminalRenderer projects the logical field onto the whole terminal
type TerminalRenderer struct {
	screen      tcell.Screen
	width       int
	height      int
	fieldWidth  float64
	fieldHeight float64
}

// NewTerminalRenderer creates a renderer sized to the screen's current dimensions
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	width, height := screen.Size()
	return &TerminalRenderer{
		screen:      screen,
		width:       width,
		height:      height,
		fieldWidth:  constants.FieldWidth,
		fieldHeight: constants.FieldHeight,
	}
}

// Resize adopts new terminal dimensions and forces a full redraw
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.screen.Sync()
}

// SubmitFrame draws background, paddles, ball, score and overlay, then presents
func (r *TerminalRenderer) SubmitFrame(f engine.Frame) {
	r.screen.Fill(' ', StyleField)

	r.drawRect(f.LeftPaddle, StyleField)
	r.drawRect(f.RightPaddle, StyleField)
	r.drawBall(f.Ball, StyleField)

	r.drawCentered(constants.ScoreRow, fmt.Sprintf("%d:%d", f.ScoreLeft, f.ScoreRight), StyleText)

	if len(f.Overlay) > 0 {
		r.drawOverlay(f.Overlay)
	}

	r.screen.Show()
}

// CellX maps a field x to a terminal column
func (r *TerminalRenderer) CellX(x float64) int {
	return int(math.Floor(x / r.fieldWidth * float64(r.width)))
}

// CellY maps a field y to a terminal row
func (r *TerminalRenderer) CellY(y float64) int {
	return int(math.Floor(y / r.fieldHeight * float64(r.height)))
}

// drawRect fills every cell the rectangle touches, at least one cell
func (r *TerminalRenderer) drawRect(rect components.Rect, style tcell.Style) {
	x0 := r.CellX(rect.X)
	y0 := r.CellY(rect.Y)
	x1 := int(math.Ceil((rect.X+rect.Width)/r.fieldWidth*float64(r.width))) - 1
	y1 := int(math.Ceil((rect.Y+rect.Height)/r.fieldHeight*float64(r.height))) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.setCell(x, y, constants.PaddleChar, style)
		}
	}
}

// drawBall draws the ball as a single glyph at its centre cell.
// A ball outside the field is not drawn.
func (r *TerminalRenderer) drawBall(c components.Circle, style tcell.Style) {
	r.setCell(r.CellX(c.X), r.CellY(c.Y), constants.BallChar, style)
}

// drawOverlay centres the banner lines around the middle row
func (r *TerminalRenderer) drawOverlay(lines []string) {
	step := 1 + constants.BannerGapRows
	top := r.height/2 - (len(lines)-1)*step/2
	for i, line := range lines {
		r.drawCentered(top+i*step, " "+line+" ", StyleBanner)
	}
}

func (r *TerminalRenderer) drawCentered(row int, text string, style tcell.Style) {
	runes := []rune(text)
	start := r.width/2 - len(runes)/2
	for i, ch := range runes {
		r.setCell(start+i, row, ch, style)
	}
}

func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
