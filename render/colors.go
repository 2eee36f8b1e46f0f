package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/engine"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(120, 124, 153) // Muted slate
	RgbBall       = tcell.NewRGBColor(255, 255, 255) // White
	RgbPaddle     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStatusBar  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbHelpText   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbHitsLow    = tcell.NewRGBColor(255, 80, 80)   // Normal Red, one hit left

	RgbMessageWon  = tcell.NewRGBColor(50, 255, 50)  // Bright Green
	RgbMessageLost = tcell.NewRGBColor(255, 80, 80)  // Normal Red
	RgbMessageIdle = tcell.NewRGBColor(255, 255, 0)  // Bright Yellow
	RgbMessageBg   = tcell.NewRGBColor(50, 50, 50)   // Very dark gray

	// Target colors by kind
	RgbDuck  = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbGoat  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbHorse = tcell.NewRGBColor(180, 120, 60)  // Brown
)

// targetGlyphs labels each target kind in its rectangle
var targetGlyphs = map[engine.TargetKind]rune{
	engine.KindDuck:  'D',
	engine.KindGoat:  'G',
	engine.KindHorse: 'H',
}

// TargetColor returns the fill color for a target kind
func TargetColor(k engine.TargetKind) tcell.Color {
	switch k {
	case engine.KindDuck:
		return RgbDuck
	case engine.KindGoat:
		return RgbGoat
	case engine.KindHorse:
		return RgbHorse
	default:
		return RgbBorder
	}
}

// xterm256 is the 6x6x6 cube plus grayscale ramp used when truecolor is unavailable
var xterm256 = func() []tcell.Color {
	p := make([]tcell.Color, 0, 240)
	for i := 16; i < 256; i++ {
		p = append(p, tcell.PaletteColor(i))
	}
	return p
}()

// Downsample maps a color onto the xterm-256 palette
func Downsample(c tcell.Color) tcell.Color {
	return tcell.FindColor(c, xterm256)
}
