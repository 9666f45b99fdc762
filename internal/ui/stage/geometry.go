// Package stage draws a canvas snapshot onto a terminal cell grid and maps
// mouse cells back to stickers and handles.
package stage

import (
	"math"

	"github.com/llehouerou/stickers/internal/sticker"
	"github.com/llehouerou/stickers/internal/transform"
)

// Minimum box size in cells: a border around a two-column glyph.
const (
	minBoxCols = 4
	minBoxRows = 3
)

// Geometry maps canvas points onto terminal cells.
type Geometry struct {
	CellWidth  float64 // points per column
	CellHeight float64 // points per row
	BaseSize   float64 // sticker side at scale 1, in points
}

// DefaultGeometry returns the geometry used when none is configured.
func DefaultGeometry() Geometry {
	return Geometry{CellWidth: 4, CellHeight: 8, BaseSize: 32}
}

// ToCell returns the cell holding the canvas point (x, y).
func (g Geometry) ToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / g.CellWidth)), int(math.Floor(y / g.CellHeight))
}

// ToPoint returns the canvas point at the centre of a cell.
func (g Geometry) ToPoint(col, row int) transform.Point {
	return transform.Point{
		X: (float64(col) + 0.5) * g.CellWidth,
		Y: (float64(row) + 0.5) * g.CellHeight,
	}
}

// Bounds returns the canvas rectangle covered by a cols x rows stage.
func (g Geometry) Bounds(cols, rows int) transform.Rect {
	return transform.Rect{W: float64(cols) * g.CellWidth, H: float64(rows) * g.CellHeight}
}

// Center returns the canvas point at the middle of a cols x rows stage.
func (g Geometry) Center(cols, rows int) transform.Point {
	b := g.Bounds(cols, rows)
	return transform.Point{X: b.W / 2, Y: b.H / 2}
}

// Box is an inclusive cell rectangle.
type Box struct {
	Left, Top, Right, Bottom int
}

// Contains reports whether the cell lies inside the box.
func (b Box) Contains(col, row int) bool {
	return col >= b.Left && col <= b.Right && row >= b.Top && row <= b.Bottom
}

// CenterCell returns the middle cell of the box.
func (b Box) CenterCell() (col, row int) {
	return (b.Left + b.Right) / 2, (b.Top + b.Bottom) / 2
}

// IsCorner reports whether the cell is one of the four corners.
func (b Box) IsCorner(col, row int) bool {
	return (col == b.Left || col == b.Right) && (row == b.Top || row == b.Bottom)
}

// RotateHandle returns the rotation handle cell: above the top edge, or
// below the bottom edge when the box touches the top of the stage.
func (b Box) RotateHandle() (col, row int) {
	col, _ = b.CenterCell()
	if b.Top > 0 {
		return col, b.Top - 1
	}
	return col, b.Bottom + 1
}

// BoxOf returns the cell box of a sticker, grown to the minimum size
// around its centre.
func (g Geometry) BoxOf(s sticker.Sticker) Box {
	left, top, side := s.Bounds(g.BaseSize)
	b := Box{
		Left:   int(math.Floor(left / g.CellWidth)),
		Top:    int(math.Floor(top / g.CellHeight)),
		Right:  int(math.Ceil((left+side)/g.CellWidth)) - 1,
		Bottom: int(math.Ceil((top+side)/g.CellHeight)) - 1,
	}
	if w := b.Right - b.Left + 1; w < minBoxCols {
		b.Left -= (minBoxCols - w) / 2
		b.Right = b.Left + minBoxCols - 1
	}
	if h := b.Bottom - b.Top + 1; h < minBoxRows {
		b.Top -= (minBoxRows - h) / 2
		b.Bottom = b.Top + minBoxRows - 1
	}
	return b
}
