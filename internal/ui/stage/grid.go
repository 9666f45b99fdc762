package stage

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type tone int

const (
	toneBlank tone = iota
	toneOutline
	toneSelection
	toneHandle
	toneShadow
	toneGlyph
)

type cell struct {
	glyph string
	tone  tone
	tail  bool // right half of a wide glyph
}

// grid is a fixed-size cell buffer. Writes outside it are dropped.
type grid struct {
	cols, rows int
	cells      [][]cell
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, rows: rows, cells: make([][]cell, rows)}
	for r := range g.cells {
		g.cells[r] = make([]cell, cols)
		for c := range g.cells[r] {
			g.cells[r][c] = cell{glyph: " "}
		}
	}
	return g
}

func (g *grid) inside(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// put writes a glyph, splitting any wide glyph it partially covers.
func (g *grid) put(col, row int, glyph string, t tone) {
	if !g.inside(col, row) {
		return
	}
	w := runewidth.StringWidth(glyph)
	if w == 2 && col+1 >= g.cols {
		glyph, w = " ", 1
	}
	g.clear(col, row)
	g.cells[row][col] = cell{glyph: glyph, tone: t}
	if w == 2 {
		g.clear(col+1, row)
		g.cells[row][col+1] = cell{tone: t, tail: true}
	}
}

func (g *grid) clear(col, row int) {
	c := g.cells[row][col]
	switch {
	case c.tail && col > 0:
		g.cells[row][col-1] = cell{glyph: " "}
	case !c.tail && runewidth.StringWidth(c.glyph) == 2 && col+1 < g.cols:
		g.cells[row][col+1] = cell{glyph: " "}
	}
	g.cells[row][col] = cell{glyph: " "}
}

// String renders the grid, styling runs of equal tone together.
func (g *grid) String(styleFor func(tone) lipgloss.Style) string {
	lines := make([]string, g.rows)
	for r, row := range g.cells {
		var line, run strings.Builder
		cur := toneBlank
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == toneBlank {
				line.WriteString(run.String())
			} else {
				line.WriteString(styleFor(cur).Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range row {
			if c.tail {
				continue
			}
			if c.tone != cur {
				flush()
				cur = c.tone
			}
			run.WriteString(c.glyph)
		}
		flush()
		lines[r] = line.String()
	}
	return strings.Join(lines, "\n")
}
