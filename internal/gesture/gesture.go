// Package gesture implements the pointer gestures that manipulate a single
// sticker: drag, corner resize, handle rotation and pinch.
//
// Every gesture writes intermediate frames as live state and commits once
// when it ends. Ending restores the snapshot captured at Begin before
// committing the final one, so a single undo returns to the pre-gesture state.
package gesture

import (
	"github.com/llehouerou/stickers/internal/sticker"
	"github.com/llehouerou/stickers/internal/transform"
)

// Target is the history a gesture writes to.
type Target interface {
	Current() sticker.Snapshot
	SetLive(sticker.Snapshot)
	// Commit records s as a durable entry and reports whether one was added.
	Commit(s sticker.Snapshot) bool
}

// Kind identifies a gesture type.
type Kind int

const (
	KindDrag Kind = iota
	KindResize
	KindRotate
	KindPinch
)

func (k Kind) String() string {
	switch k {
	case KindDrag:
		return "drag"
	case KindResize:
		return "resize"
	case KindRotate:
		return "rotate"
	case KindPinch:
		return "pinch"
	default:
		return "unknown"
	}
}

// Gesture is an in-progress manipulation.
type Gesture interface {
	Kind() Kind
	StickerID() string
	Active() bool
	// End commits the final state. It is safe to call more than once;
	// only the first call commits.
	End() bool
}

// session holds what every gesture captures at Begin.
type session struct {
	target Target
	id     string
	base   sticker.Snapshot
	start  sticker.Sticker
	active bool
}

func begin(t Target, id string) (session, bool) {
	base := t.Current()
	st, ok := base.Find(id)
	if !ok {
		return session{}, false
	}
	return session{target: t, id: id, base: base, start: st, active: true}, true
}

func (s *session) StickerID() string { return s.id }

func (s *session) Active() bool { return s.active }

// live writes fn(start) into the live snapshot.
func (s *session) live(fn func(sticker.Sticker) sticker.Sticker) {
	if !s.active {
		return
	}
	s.target.SetLive(s.base.Update(s.id, func(sticker.Sticker) sticker.Sticker {
		return fn(s.start)
	}))
}

func (s *session) end() bool {
	if !s.active {
		return false
	}
	s.active = false
	final := s.target.Current()
	s.target.SetLive(s.base)
	return s.target.Commit(final)
}

func point(x, y float64) transform.Point {
	return transform.Point{X: x, Y: y}
}
