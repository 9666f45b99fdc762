package stage

import "github.com/llehouerou/stickers/internal/sticker"

// Hit identifies what a mouse press landed on.
type Hit int

const (
	HitNone Hit = iota
	HitBody
	HitCorner
	HitRotate
)

func (h Hit) String() string {
	switch h {
	case HitBody:
		return "body"
	case HitCorner:
		return "corner"
	case HitRotate:
		return "rotate"
	default:
		return "none"
	}
}

// HitTest returns the sticker under a cell and the part that was hit. The
// selected sticker's handles win over any body; bodies are searched from
// the top of the stack down.
func (g Geometry) HitTest(snap sticker.Snapshot, selected string, col, row int) (string, Hit) {
	if s, ok := snap.Find(selected); ok {
		box := g.BoxOf(s)
		if hc, hr := box.RotateHandle(); hc == col && hr == row {
			return s.ID, HitRotate
		}
		if box.IsCorner(col, row) {
			return s.ID, HitCorner
		}
	}

	top, ok := snap.TopAt(func(s sticker.Sticker) bool {
		return g.BoxOf(s).Contains(col, row)
	})
	if !ok {
		return "", HitNone
	}
	return top.ID, HitBody
}
