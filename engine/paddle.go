package engine

import (
	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/vmath"
)

// Paddle is the player-controlled rectangle near the board bottom
// Position changes only through MoveTo/Nudge, never through physics
type Paddle struct {
	x, y   float64 // Center
	w, h   float64
	boardW float64
}

// NewPaddle creates a paddle centered horizontally at its fixed height
func NewPaddle(cfg Config) *Paddle {
	return &Paddle{
		x:      cfg.BoardWidth / 2,
		y:      cfg.PaddleY(),
		w:      cfg.PaddleWidth,
		h:      cfg.PaddleHeight,
		boardW: cfg.BoardWidth,
	}
}

// MoveTo centers the paddle on x, clamped so the box stays within [0, W]
// y is ignored: travel is horizontal only
func (p *Paddle) MoveTo(x, y float64) {
	half := p.w / 2
	p.x = vmath.Clamp(x, half, p.boardW-half)
}

// Nudge shifts the paddle by dx with the same clamping as MoveTo
func (p *Paddle) Nudge(dx float64) {
	p.MoveTo(p.x+dx, p.y)
}

// BoundingBox returns the paddle rectangle
func (p *Paddle) BoundingBox() core.Box {
	return core.BoxFromCenter(p.x, p.y, p.w, p.h)
}

// Center returns the paddle center
func (p *Paddle) Center() (x, y float64) {
	return p.x, p.y
}
