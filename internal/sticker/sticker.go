// Package sticker defines the manipulable objects placed on the canvas and the
// ordered snapshots that hold them.
//
// Stickers and snapshots are values: every edit returns a new value and never
// modifies the receiver, so a snapshot stored in history can be shared safely.
package sticker

// Sticker is a single object on the canvas.
type Sticker struct {
	ID       string
	X, Y     float64 // centre, canvas points
	Scale    float64
	Rotation float64 // degrees, unbounded
	FlipH    bool
	FlipV    bool
	Popped   bool // visual elevation only

	// Opaque payload, not interpreted by the core.
	Emoji string
	Src   string
}

// New creates a sticker at (x, y) with identity transform.
func New(id, emoji string, x, y float64) Sticker {
	return Sticker{ID: id, Emoji: emoji, X: x, Y: y, Scale: 1}
}

// WithPosition returns a copy moved to (x, y).
func (s Sticker) WithPosition(x, y float64) Sticker {
	s.X, s.Y = x, y
	return s
}

// WithScale returns a copy with the given scale.
func (s Sticker) WithScale(scale float64) Sticker {
	s.Scale = scale
	return s
}

// WithRotation returns a copy with the given rotation.
func (s Sticker) WithRotation(deg float64) Sticker {
	s.Rotation = deg
	return s
}

// WithTransform returns a copy with both scale and rotation replaced.
func (s Sticker) WithTransform(scale, deg float64) Sticker {
	s.Scale, s.Rotation = scale, deg
	return s
}

// Flipped returns a copy with the horizontal and/or vertical flip toggled.
func (s Sticker) Flipped(horizontal, vertical bool) Sticker {
	if horizontal {
		s.FlipH = !s.FlipH
	}
	if vertical {
		s.FlipV = !s.FlipV
	}
	return s
}

// TogglePopped returns a copy with the elevation flag toggled.
func (s Sticker) TogglePopped() Sticker {
	s.Popped = !s.Popped
	return s
}

// Size returns the rendered side length for a sticker whose side is base at
// scale 1.
func (s Sticker) Size(base float64) float64 {
	return base * s.Scale
}

// Bounds returns the unrotated box of the sticker as (left, top, side).
func (s Sticker) Bounds(base float64) (left, top, side float64) {
	side = s.Size(base)
	return s.X - side/2, s.Y - side/2, side
}
