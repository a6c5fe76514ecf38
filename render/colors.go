package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(255, 255, 0) // Yellow field
	RgbObject     = tcell.NewRGBColor(0, 0, 0)     // Paddles, ball and text
)

// Styles derived from the palette
var (
	StyleField  = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbObject)
	StyleText   = StyleField.Bold(true)
	StyleBanner = tcell.StyleDefault.Background(RgbObject).Foreground(RgbBackground).Bold(true)
)
