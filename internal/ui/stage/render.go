package stage

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/stickers/internal/sticker"
	"github.com/llehouerou/stickers/internal/transform"
	"github.com/llehouerou/stickers/internal/ui/render"
	"github.com/llehouerou/stickers/internal/ui/styles"
)

type border struct {
	h, v, tl, tr, bl, br string
}

var (
	thinBorder  = border{"─", "│", "┌", "┐", "└", "┘"}
	heavyBorder = border{"━", "┃", "┏", "┓", "┗", "┛"}
)

// Rotation arrows, one per 45° sector clockwise from "up".
var arrows = []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

const (
	handleGlyph = "◆"
	rotateGlyph = "↻"
	shadowGlyph = "░"
	flipHGlyph  = "⇋"
	flipVGlyph  = "⇵"
)

// Render draws the snapshot bottom to top into a cols x rows block. The
// selected sticker gets a heavy outline with resize and rotate handles.
func Render(snap sticker.Snapshot, selected string, g Geometry, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	gr := newGrid(cols, rows)
	for _, s := range snap {
		drawSticker(gr, g.BoxOf(s), s, s.ID == selected)
	}
	return gr.String(toneStyle)
}

func toneStyle(t tone) lipgloss.Style {
	s := styles.T().S()
	switch t {
	case toneOutline:
		return s.Outline
	case toneSelection:
		return s.Selection
	case toneHandle:
		return s.Handle
	case toneShadow:
		return s.Shadow
	default:
		return s.Base
	}
}

func drawSticker(gr *grid, b Box, s sticker.Sticker, selected bool) {
	if s.Popped {
		for r := b.Top + 1; r <= b.Bottom+1; r++ {
			gr.put(b.Right+1, r, shadowGlyph, toneShadow)
		}
		for c := b.Left + 1; c <= b.Right; c++ {
			gr.put(c, b.Bottom+1, shadowGlyph, toneShadow)
		}
	}

	bd, t := thinBorder, toneOutline
	if selected {
		bd, t = heavyBorder, toneSelection
	}
	for r := b.Top; r <= b.Bottom; r++ {
		for c := b.Left; c <= b.Right; c++ {
			gr.put(c, r, borderGlyph(bd, b, c, r), t)
		}
	}

	col, row := b.CenterCell()
	label := Label(s)
	if runewidth.StringWidth(label) == 2 && col+1 >= b.Right {
		col--
	}
	gr.put(col, row, label, toneGlyph)

	// Orientation and flip markers sit on the bottom edge.
	marks := []string{Arrow(s.Rotation)}
	if s.FlipH {
		marks = append(marks, flipHGlyph)
	}
	if s.FlipV {
		marks = append(marks, flipVGlyph)
	}
	for i, m := range marks {
		if c := b.Left + 1 + i; c < b.Right {
			gr.put(c, b.Bottom, m, t)
		}
	}

	if selected {
		for _, c := range []int{b.Left, b.Right} {
			for _, r := range []int{b.Top, b.Bottom} {
				gr.put(c, r, handleGlyph, toneHandle)
			}
		}
		hc, hr := b.RotateHandle()
		gr.put(hc, hr, rotateGlyph, toneHandle)
	}
}

func borderGlyph(bd border, b Box, c, r int) string {
	top, bottom := r == b.Top, r == b.Bottom
	left, right := c == b.Left, c == b.Right
	switch {
	case top && left:
		return bd.tl
	case top && right:
		return bd.tr
	case bottom && left:
		return bd.bl
	case bottom && right:
		return bd.br
	case top || bottom:
		return bd.h
	case left || right:
		return bd.v
	default:
		return " "
	}
}

// Label returns the first grapheme of the sticker payload, or "?" when it
// has none.
func Label(s sticker.Sticker) string {
	for _, p := range []string{s.Emoji, s.Src} {
		p = render.Sanitize(p)
		if p == "" {
			continue
		}
		g, _, _, _ := uniseg.FirstGraphemeClusterInString(p, -1)
		if runewidth.StringWidth(g) > 2 {
			continue
		}
		return g
	}
	return "?"
}

// Arrow returns the arrow closest to the direction a rotation points "up".
func Arrow(deg float64) string {
	i := int(math.Round(transform.Normalize(deg)/45)) % len(arrows)
	return arrows[i]
}
