package app

import (
	"github.com/llehouerou/stickers/internal/transform"
	"github.com/llehouerou/stickers/internal/ui/headerbar"
	"github.com/llehouerou/stickers/internal/ui/layout"
	"github.com/llehouerou/stickers/internal/ui/statusbar"
)

var layoutOpts = layout.Opts{
	HeaderHeight: headerbar.Height,
	StatusHeight: statusbar.Height,
}

// StageSize returns the stage interior in cells.
func (m Model) StageSize() (cols, rows int) {
	return layout.StageSize(m.Width, m.Height, layoutOpts)
}

// stageBounds is the canvas area a sticker centre may move in.
func (m Model) stageBounds() *transform.Rect {
	cols, rows := m.StageSize()
	if cols == 0 || rows == 0 {
		return nil
	}
	b := m.Geometry.Bounds(cols, rows)
	return &b
}

// toStage converts a screen cell to a stage cell.
func toStage(x, y int) (col, row int) {
	return layout.ToStage(x, y, layoutOpts)
}
