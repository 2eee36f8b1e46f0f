package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/engine"
	"github.com/lixenwraith/breakout/status"
	"github.com/lixenwraith/breakout/terminal"
)

// Overlay messages
const (
	MsgStart  = "Click mouse to start"
	MsgWon    = "You won!"
	MsgLost   = "Game Over"
	MsgPaused = "Paused"

	helpText = "mouse/←→ move  click/space start  p pause  r restart  q quit"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	mode   terminal.ColorMode
	width  int
	height int
	vp     Viewport
	boardW float64
	boardH float64
}

// NewTerminalRenderer creates a renderer for a board of the given size
func NewTerminalRenderer(screen tcell.Screen, mode terminal.ColorMode, boardW, boardH float64) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		mode:   mode,
		boardW: boardW,
		boardH: boardH,
	}
	r.Resize()
	return r
}

// Resize recomputes the viewport from the current screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.vp = NewViewport(r.width, r.height, r.boardW, r.boardH)
}

// Viewport returns the current board-to-cell mapping
func (r *TerminalRenderer) Viewport() Viewport { return r.vp }

// Message returns the overlay text for a session, empty while play is running
func Message(s *engine.Session, paused bool) string {
	state := s.State()
	if state == core.StateActive {
		if paused {
			return MsgPaused
		}
		return ""
	}

	prev := state
	if state == core.StateNew {
		prev = s.Outcome()
	}
	switch prev {
	case core.StateWon:
		return MsgWon + "  " + MsgStart
	case core.StateLost:
		return MsgLost + "  " + MsgStart
	}
	return MsgStart
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(s *engine.Session, paused bool) {
	defaultStyle := tcell.StyleDefault.Background(r.color(RgbBackground))
	r.screen.Fill(' ', defaultStyle)

	r.drawStatusBar(s, defaultStyle)
	r.drawBorder(defaultStyle)

	for _, t := range s.Targets() {
		r.drawTarget(t, defaultStyle)
	}

	r.drawBox(s.PaddleBox(), '▀', defaultStyle.Foreground(r.color(RgbPaddle)))

	bx, by := s.BallBox().Center()
	col, row := r.vp.ToCell(bx, by)
	r.screen.SetContent(col, row, '●', nil, defaultStyle.Foreground(r.color(RgbBall)))

	if msg := Message(s, paused); msg != "" {
		r.drawMessage(msg, r.messageColor(s, paused))
	}

	r.drawHelp(defaultStyle)
	r.screen.Show()
}

// color adapts a palette entry to the terminal's capability
func (r *TerminalRenderer) color(c tcell.Color) tcell.Color {
	if r.mode == terminal.ColorModeTrueColor {
		return c
	}
	return Downsample(c)
}

func (r *TerminalRenderer) messageColor(s *engine.Session, paused bool) tcell.Color {
	prev := s.State()
	if prev == core.StateNew {
		prev = s.Outcome()
	}
	switch {
	case paused && s.State() == core.StateActive:
		return r.color(RgbMessageIdle)
	case prev == core.StateWon:
		return r.color(RgbMessageWon)
	case prev == core.StateLost:
		return r.color(RgbMessageLost)
	}
	return r.color(RgbMessageIdle)
}

// drawStatusBar draws the HUD line above the board
func (r *TerminalRenderer) drawStatusBar(s *engine.Session, defaultStyle tcell.Style) {
	m := s.Metrics()
	barStyle := defaultStyle.Background(r.color(RgbStatusBar)).Foreground(r.color(RgbStatusText))

	left := fmt.Sprintf(" Round %d  %s ", s.Round(), s.State())
	hits := fmt.Sprintf(" Hits left %d ", s.HitsRemaining())
	right := fmt.Sprintf(" Targets %d  Speed %.0f  Won %d  Lost %d ",
		len(s.Targets()),
		m.Float(status.KeyBallSpeed),
		m.Int(status.KeyRoundsWon),
		m.Int(status.KeyRoundsLost),
	)

	x := r.drawText(0, 0, left, barStyle)
	hitsStyle := barStyle
	if s.HitsRemaining() <= 1 {
		hitsStyle = barStyle.Foreground(r.color(RgbHitsLow)).Bold(true)
	}
	x = r.drawText(x, 0, hits, hitsStyle)
	r.drawText(x, 0, right, barStyle)
}

// drawBorder frames the board interior
func (r *TerminalRenderer) drawBorder(defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(r.color(RgbBorder))
	x0, y0 := r.vp.OriginX-1, r.vp.OriginY-1
	x1, y1 := r.vp.OriginX+r.vp.Cols, r.vp.OriginY+r.vp.Rows

	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, style)
		r.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, style)
		r.screen.SetContent(x1, y, '│', nil, style)
	}
	r.screen.SetContent(x0, y0, '┌', nil, style)
	r.screen.SetContent(x1, y0, '┐', nil, style)
	r.screen.SetContent(x0, y1, '└', nil, style)
	r.screen.SetContent(x1, y1, '┘', nil, style)
}

// drawTarget fills a target rectangle and labels it with its kind
func (r *TerminalRenderer) drawTarget(t engine.Target, defaultStyle tcell.Style) {
	fill := r.color(TargetColor(t.Kind))
	style := defaultStyle.Background(fill).Foreground(r.color(RgbStatusText))
	c0, r0, c1, r1 := r.drawBox(t.Box, ' ', style)

	if glyph, ok := targetGlyphs[t.Kind]; ok {
		r.screen.SetContent((c0+c1)/2, (r0+r1)/2, glyph, nil, style.Bold(true))
	}
}

// drawBox fills the cells covered by a board box
func (r *TerminalRenderer) drawBox(b core.Box, ch rune, style tcell.Style) (c0, r0, c1, r1 int) {
	c0, r0, c1, r1 = r.vp.CellRect(b)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
	return c0, r0, c1, r1
}

// drawMessage centers an overlay line on the board
func (r *TerminalRenderer) drawMessage(msg string, fg tcell.Color) {
	style := tcell.StyleDefault.Background(r.color(RgbMessageBg)).Foreground(fg).Bold(true)
	text := " " + msg + " "
	n := len([]rune(text))
	x := r.vp.OriginX + (r.vp.Cols-n)/2
	// Below the ball's start cell and above the paddle
	y := r.vp.OriginY + r.vp.Rows*2/3
	r.drawText(max(x, 0), y, text, style)
}

func (r *TerminalRenderer) drawHelp(defaultStyle tcell.Style) {
	y := r.vp.OriginY + r.vp.Rows + borderSize
	if y >= r.height {
		return
	}
	r.drawText(0, y, helpText, defaultStyle.Foreground(r.color(RgbHelpText)))
}

// drawText writes s starting at (x, y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
