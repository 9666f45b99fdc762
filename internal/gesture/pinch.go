package gesture

import (
	"github.com/llehouerou/stickers/internal/sticker"
	"github.com/llehouerou/stickers/internal/transform"
)

// Pinch applies a two-finger offset (scale factor, rotation delta) relative
// to the values captured at Begin.
type Pinch struct {
	session
	limits transform.Limits

	// accumulated offset, for sources that report increments
	scale    float64
	rotation float64
}

// BeginPinch starts a pinch on the sticker with the given id.
func BeginPinch(t Target, id string, limits transform.Limits) (*Pinch, bool) {
	s, ok := begin(t, id)
	if !ok {
		return nil, false
	}
	return &Pinch{session: s, limits: limits, scale: 1}, true
}

// Kind implements Gesture.
func (p *Pinch) Kind() Kind { return KindPinch }

// Move sets the gesture offset: scale factor s and rotation delta r, both
// measured from Begin.
func (p *Pinch) Move(s, r float64) {
	p.scale, p.rotation = s, r
	scale, rot := transform.Pinch(p.start.Scale, p.start.Rotation, s, r, p.limits)
	p.live(func(st sticker.Sticker) sticker.Sticker {
		return st.WithTransform(scale, rot)
	})
}

// Step multiplies the offset scale by ds and adds dr to the offset rotation.
// Used by input sources such as a mouse wheel that report increments.
// The scale offset is kept inside the limits so reversing direction responds
// immediately.
func (p *Pinch) Step(ds, dr float64) {
	s := p.scale * ds
	if s0 := p.start.Scale; s0 > 0 {
		s = p.limits.ClampScale(s0*s) / s0
	}
	p.Move(s, p.rotation+dr)
}

// Offset returns the current gesture offset.
func (p *Pinch) Offset() (s, r float64) {
	return p.scale, p.rotation
}

// End implements Gesture.
func (p *Pinch) End() bool { return p.end() }
