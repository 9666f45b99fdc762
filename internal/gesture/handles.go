package gesture

import (
	"github.com/llehouerou/stickers/internal/sticker"
	"github.com/llehouerou/stickers/internal/transform"
)

// Resize scales a sticker from a corner handle. All corners drive the same
// uniform scale: the ratio of the pointer's distance from the sticker centre
// now and at Begin.
type Resize struct {
	session
	center transform.Point
	d0     float64
	limits transform.Limits
}

// BeginResize starts a corner-handle resize from pointer.
func BeginResize(t Target, id string, pointer transform.Point, limits transform.Limits) (*Resize, bool) {
	s, ok := begin(t, id)
	if !ok {
		return nil, false
	}
	c := point(s.start.X, s.start.Y)
	return &Resize{
		session: s,
		center:  c,
		d0:      transform.Distance(c, pointer),
		limits:  limits,
	}, true
}

// Kind implements Gesture.
func (r *Resize) Kind() Kind { return KindResize }

// Move updates the live scale for the current pointer.
func (r *Resize) Move(pointer transform.Point) {
	scale := transform.Resize(r.start.Scale, r.d0, transform.Distance(r.center, pointer), r.limits)
	r.live(func(st sticker.Sticker) sticker.Sticker {
		return st.WithScale(scale)
	})
}

// End implements Gesture.
func (r *Resize) End() bool { return r.end() }

// Rotate turns a sticker from its rotation handle by the pointer's angular
// travel around the sticker centre.
type Rotate struct {
	session
	center transform.Point
	a0     float64
	step   float64
}

// BeginRotate starts a rotation-handle gesture from pointer. step is the
// snap increment used when Move is called with snap set.
func BeginRotate(t Target, id string, pointer transform.Point, step float64) (*Rotate, bool) {
	s, ok := begin(t, id)
	if !ok {
		return nil, false
	}
	c := point(s.start.X, s.start.Y)
	return &Rotate{
		session: s,
		center:  c,
		a0:      transform.Angle(c, pointer),
		step:    step,
	}, true
}

// Kind implements Gesture.
func (r *Rotate) Kind() Kind { return KindRotate }

// Move updates the live rotation for the current pointer. With snap the
// rotation is rounded to the configured step.
func (r *Rotate) Move(pointer transform.Point, snap bool) {
	step := 0.0
	if snap {
		step = r.step
	}
	deg := transform.RotateStep(r.start.Rotation, r.a0, transform.Angle(r.center, pointer), step)
	r.live(func(st sticker.Sticker) sticker.Sticker {
		return st.WithRotation(deg)
	})
}

// End implements Gesture.
func (r *Rotate) End() bool { return r.end() }
