package gesture

import (
	"github.com/llehouerou/stickers/internal/sticker"
	"github.com/llehouerou/stickers/internal/transform"
)

// Drag moves a sticker by the pointer's travel since Begin.
type Drag struct {
	session
	pointer0 transform.Point
	bounds   *transform.Rect
}

// BeginDrag starts dragging the sticker with the given id from pointer.
// bounds, when non-nil, clamps the sticker centre. Returns false if the
// sticker does not exist.
func BeginDrag(t Target, id string, pointer transform.Point, bounds *transform.Rect) (*Drag, bool) {
	s, ok := begin(t, id)
	if !ok {
		return nil, false
	}
	return &Drag{session: s, pointer0: pointer, bounds: bounds}, true
}

// Kind implements Gesture.
func (d *Drag) Kind() Kind { return KindDrag }

// Move updates the live position for the current pointer.
func (d *Drag) Move(pointer transform.Point) {
	p := transform.Drag(point(d.start.X, d.start.Y), pointer.Sub(d.pointer0), d.bounds)
	d.live(func(st sticker.Sticker) sticker.Sticker {
		return st.WithPosition(p.X, p.Y)
	})
}

// End implements Gesture.
func (d *Drag) End() bool { return d.end() }
