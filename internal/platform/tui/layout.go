package tui

import (
	"github.com/vovakirdan/tui-sketchpad/internal/paint"
)

// Screen rows above the canvas.
const (
	toolbarRow = 0
	paletteRow = 1
	canvasTop  = 2 // top border of the canvas frame
)

// Layout maps terminal cells to grid cells. Each grid cell is CellWidth
// columns wide and one row high. With gridlines shown, a one-column
// separator follows every cell but the last in a row, and a one-row
// separator follows every row but the last.
type Layout struct {
	Size      int
	CellWidth int
	GridLines bool
	OriginX   int // screen column of the top-left cell
	OriginY   int // screen row of the top-left cell
}

// NewLayout returns the layout of a size×size canvas drawn below the
// toolbar and palette rows, inside a one-cell frame.
func NewLayout(size, cellWidth int, gridLines bool) Layout {
	if cellWidth <= 0 {
		cellWidth = 2
	}
	return Layout{
		Size:      size,
		CellWidth: cellWidth,
		GridLines: gridLines,
		OriginX:   1,
		OriginY:   canvasTop + 1,
	}
}

func (l Layout) strideX() int {
	if l.GridLines {
		return l.CellWidth + 1
	}
	return l.CellWidth
}

func (l Layout) strideY() int {
	if l.GridLines {
		return 2
	}
	return 1
}

// Width returns the canvas width in columns, excluding the frame.
func (l Layout) Width() int {
	if l.Size <= 0 {
		return 0
	}
	return l.Size*l.strideX() - (l.strideX() - l.CellWidth)
}

// Height returns the canvas height in rows, excluding the frame.
func (l Layout) Height() int {
	if l.Size <= 0 {
		return 0
	}
	return l.Size*l.strideY() - (l.strideY() - 1)
}

// CellAt hit-tests a screen position. Positions on a gridline or outside
// the canvas map to no cell.
func (l Layout) CellAt(x, y int) (paint.Coord, bool) {
	rx, ry := x-l.OriginX, y-l.OriginY
	if rx < 0 || ry < 0 || rx >= l.Width() || ry >= l.Height() {
		return paint.Coord{}, false
	}
	if rx%l.strideX() >= l.CellWidth || ry%l.strideY() != 0 {
		return paint.Coord{}, false
	}
	return paint.At(ry/l.strideY(), rx/l.strideX()), true
}

// CellOrigin returns the screen position of the first column of c.
func (l Layout) CellOrigin(c paint.Coord) (x, y int) {
	return l.OriginX + c.Col*l.strideX(), l.OriginY + c.Row*l.strideY()
}

// strip is a row of labels separated by single spaces, such as the toolbar.
type strip []string

// hit returns the index of the label under column x, or -1.
func (s strip) hit(x int) int {
	pos := 0
	for i, label := range s {
		if x >= pos && x < pos+len(label) {
			return i
		}
		pos += len(label) + 1
	}
	return -1
}
