package render

import (
	"math"

	"github.com/lixenwraith/breakout/core"
	"github.com/lixenwraith/breakout/vmath"
)

// Terminal layout
const (
	// CellAspect is the height of a terminal cell in units of its width
	CellAspect = 2.0

	hudRows    = 1 // status line above the board
	footerRows = 1 // key help below the board
	borderSize = 1
)

// Viewport maps board coordinates onto a rectangle of terminal cells
// Cols x Rows is the interior of the border; (OriginX, OriginY) its top-left cell
type Viewport struct {
	OriginX, OriginY int
	Cols, Rows       int
	BoardW, BoardH   float64
}

// NewViewport fits a boardW x boardH board into a screen, preserving aspect
func NewViewport(screenW, screenH int, boardW, boardH float64) Viewport {
	availW := max(screenW-2*borderSize, 1)
	availH := max(screenH-hudRows-footerRows-2*borderSize, 1)

	// Columns per row that keep the board's shape on screen
	ratio := boardW / boardH * CellAspect

	rows := availH
	cols := int(math.Round(float64(rows) * ratio))
	if cols > availW {
		cols = availW
		rows = max(int(math.Round(float64(cols)/ratio)), 1)
	}
	cols = max(cols, 1)

	return Viewport{
		OriginX: (screenW-cols)/2,
		OriginY: hudRows + borderSize,
		Cols:    cols,
		Rows:    rows,
		BoardW:  boardW,
		BoardH:  boardH,
	}
}

// ToCell returns the cell containing board point (x, y), clamped to the viewport
func (v Viewport) ToCell(x, y float64) (col, row int) {
	c := int(math.Floor(x / v.BoardW * float64(v.Cols)))
	r := int(math.Floor(y / v.BoardH * float64(v.Rows)))
	return v.OriginX + vmath.Clamp(c, 0, v.Cols-1), v.OriginY + vmath.Clamp(r, 0, v.Rows-1)
}

// ToBoard returns the board point at the center of a cell, clamped to the board
func (v Viewport) ToBoard(col, row int) (x, y float64) {
	return v.ToBoardX(col), v.ToBoardY(row)
}

// ToBoardX maps a screen column to a board x coordinate
func (v Viewport) ToBoardX(col int) float64 {
	x := (float64(col-v.OriginX) + 0.5) / float64(v.Cols) * v.BoardW
	return vmath.Clamp(x, 0, v.BoardW)
}

// ToBoardY maps a screen row to a board y coordinate
func (v Viewport) ToBoardY(row int) float64 {
	y := (float64(row-v.OriginY) + 0.5) / float64(v.Rows) * v.BoardH
	return vmath.Clamp(y, 0, v.BoardH)
}

// CellRect returns the inclusive cell span covered by a board box
func (v Viewport) CellRect(b core.Box) (c0, r0, c1, r1 int) {
	c0, r0 = v.ToCell(b.MinX, b.MinY)
	// Max edges are exclusive so adjacent boxes do not share a cell
	c1, r1 = v.ToCell(math.Nextafter(b.MaxX, math.Inf(-1)), math.Nextafter(b.MaxY, math.Inf(-1)))
	return c0, r0, max(c0, c1), max(r0, r1)
}

// Contains reports whether a screen cell lies inside the board interior
func (v Viewport) Contains(col, row int) bool {
	return col >= v.OriginX && col < v.OriginX+v.Cols &&
		row >= v.OriginY && row < v.OriginY+v.Rows
}
