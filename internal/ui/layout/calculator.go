// Package layout provides pure functions for UI dimension calculations.
package layout

// StageBorder is the width of the frame around the stage on each side.
const StageBorder = 1

// MinStageCols and MinStageRows are the smallest usable stage; below that
// the stage is reported as empty.
const (
	MinStageCols = 4
	MinStageRows = 3
)

// Opts contains the fixed heights around the stage.
type Opts struct {
	HeaderHeight int
	StatusHeight int
}

// StageSize returns the stage interior in cells: the window minus the
// header, the status bar and the frame.
func StageSize(width, height int, opts Opts) (cols, rows int) {
	cols = width - 2*StageBorder
	rows = height - opts.HeaderHeight - opts.StatusHeight - 2*StageBorder
	if cols < MinStageCols || rows < MinStageRows {
		return 0, 0
	}
	return cols, rows
}

// StageOrigin returns the 0-based screen cell of the stage's top-left
// interior cell.
func StageOrigin(opts Opts) (x, y int) {
	return StageBorder, opts.HeaderHeight + StageBorder
}

// ToStage converts a screen cell into a stage cell.
func ToStage(x, y int, opts Opts) (col, row int) {
	ox, oy := StageOrigin(opts)
	return x - ox, y - oy
}
