package canvas

import (
	"github.com/google/uuid"

	"github.com/llehouerou/stickers/internal/sticker"
	"github.com/llehouerou/stickers/internal/transform"
)

// apply commits edit(current) and logs the outcome.
func (c *Canvas) apply(op string, id string, edit func(sticker.Snapshot) sticker.Snapshot) bool {
	ok := c.Commit(edit(c.hist.Current()))
	if !ok {
		c.log.Debug("edit skipped", "op", op, "id", id)
	}
	return ok
}

// Add places a new sticker on top at (x, y) and returns its id.
func (c *Canvas) Add(emoji string, x, y float64) (string, bool) {
	id := c.freshID()
	ok := c.apply("add", id, func(s sticker.Snapshot) sticker.Snapshot {
		return s.Append(sticker.New(id, emoji, x, y))
	})
	if !ok {
		return "", false
	}
	return id, true
}

// Delete removes the sticker with the given id.
func (c *Canvas) Delete(id string) bool {
	return c.apply("delete", id, func(s sticker.Snapshot) sticker.Snapshot {
		return s.Remove(id)
	})
}

// Duplicate copies the sticker with the given id on top, offset so the copy
// is visibly distinct, and returns the copy's id.
func (c *Canvas) Duplicate(id string) (string, bool) {
	newID := c.freshID()
	ok := c.apply("duplicate", id, func(s sticker.Snapshot) sticker.Snapshot {
		return s.Duplicate(id, newID, c.offset, c.offset)
	})
	if !ok {
		return "", false
	}
	return newID, true
}

// BringForward moves the sticker one step up the z-order.
func (c *Canvas) BringForward(id string) bool {
	return c.apply("bring forward", id, func(s sticker.Snapshot) sticker.Snapshot {
		return s.BringForward(id)
	})
}

// SendBackward moves the sticker one step down the z-order.
func (c *Canvas) SendBackward(id string) bool {
	return c.apply("send backward", id, func(s sticker.Snapshot) sticker.Snapshot {
		return s.SendBackward(id)
	})
}

// Flip toggles the horizontal and/or vertical mirror of a sticker.
func (c *Canvas) Flip(id string, horizontal, vertical bool) bool {
	return c.update("flip", id, func(st sticker.Sticker) sticker.Sticker {
		return st.Flipped(horizontal, vertical)
	})
}

// TogglePopped toggles the visual elevation of a sticker.
func (c *Canvas) TogglePopped(id string) bool {
	return c.update("pop", id, sticker.Sticker.TogglePopped)
}

// Nudge moves a sticker by (dx, dy), clamped to bounds when non-nil.
func (c *Canvas) Nudge(id string, dx, dy float64, bounds *transform.Rect) bool {
	return c.update("nudge", id, func(st sticker.Sticker) sticker.Sticker {
		p := transform.Drag(transform.Point{X: st.X, Y: st.Y}, transform.Vec{DX: dx, DY: dy}, bounds)
		return st.WithPosition(p.X, p.Y)
	})
}

// ScaleBy multiplies a sticker's scale by ratio within the scale limits.
func (c *Canvas) ScaleBy(id string, ratio float64) bool {
	return c.update("scale", id, func(st sticker.Sticker) sticker.Sticker {
		return st.WithScale(transform.Resize(st.Scale, 1, ratio, c.opts.Limits))
	})
}

// RotateBy turns a sticker by deg. A positive step snaps the result to a
// multiple of step.
func (c *Canvas) RotateBy(id string, deg, step float64) bool {
	return c.update("rotate", id, func(st sticker.Sticker) sticker.Sticker {
		return st.WithRotation(transform.RotateStep(st.Rotation, 0, deg, step))
	})
}

func (c *Canvas) update(op, id string, fn func(sticker.Sticker) sticker.Sticker) bool {
	return c.apply(op, id, func(s sticker.Snapshot) sticker.Snapshot {
		return s.Update(id, fn)
	})
}

const maxIDAttempts = 8

// freshID returns an id not used by the current snapshot. It falls back to a
// random UUID if the configured generator keeps colliding.
func (c *Canvas) freshID() string {
	cur := c.hist.Current()
	for range maxIDAttempts {
		if id := c.newID(); id != "" && !cur.Contains(id) {
			return id
		}
	}
	for {
		if id := uuid.NewString(); !cur.Contains(id) {
			return id
		}
	}
}
