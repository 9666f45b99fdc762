// Package canvas holds one editing session: the sticker history, the undo
// guard and the structural edits a user can apply.
package canvas

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/stickers/internal/history"
	"github.com/llehouerou/stickers/internal/logging"
	"github.com/llehouerou/stickers/internal/sticker"
	"github.com/llehouerou/stickers/internal/transform"
)

// Options configures a canvas. Zero values select the defaults.
type Options struct {
	MaxHistory int
	Limits     transform.Limits

	// UndoCooldown is the undo/redo guard window. Zero selects
	// history.DefaultCooldown; a negative value disables the guard.
	UndoCooldown time.Duration

	DuplicateOffset float64
	Logger          *slog.Logger
	NewID           func() string
	Clock           func() time.Time
}

func (o Options) withDefaults() Options {
	if o.MaxHistory <= 0 {
		o.MaxHistory = history.DefaultMax
	}
	if o.Limits.MinScale <= 0 || o.Limits.MaxScale < o.Limits.MinScale {
		o.Limits = transform.DefaultLimits()
	}
	if o.UndoCooldown == 0 {
		o.UndoCooldown = history.DefaultCooldown
	}
	if o.DuplicateOffset == 0 {
		o.DuplicateOffset = transform.DuplicateOffset
	}
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}

// Canvas is a sticker editing session.
//
// Live writes (SetLive) replace the current entry; commits append a new
// entry. Structural edits commit only when they change the snapshot.
type Canvas struct {
	hist   *history.Stack[sticker.Snapshot]
	guard  *history.Guard
	opts   Options
	log    *slog.Logger
	newID  func() string
	offset float64
}

// New creates a canvas whose history starts at seed.
func New(seed sticker.Snapshot, opts Options) *Canvas {
	opts = opts.withDefaults()
	guard := history.NewGuard(opts.UndoCooldown)
	if opts.Clock != nil {
		guard.WithClock(opts.Clock)
	}
	return &Canvas{
		hist:   history.New(seed.Clone(), opts.MaxHistory),
		guard:  guard,
		opts:   opts,
		log:    opts.Logger,
		newID:  opts.NewID,
		offset: opts.DuplicateOffset,
	}
}

// Current returns a copy of the current snapshot.
func (c *Canvas) Current() sticker.Snapshot {
	return c.hist.Current().Clone()
}

// SetLive replaces the current snapshot without creating an undo step.
func (c *Canvas) SetLive(s sticker.Snapshot) {
	c.hist.SetLive(s.Clone())
}

// UpdateLive replaces the current snapshot with fn(Current()).
func (c *Canvas) UpdateLive(fn func(sticker.Snapshot) sticker.Snapshot) {
	c.SetLive(fn(c.Current()))
}

// Push records s as a new history entry unconditionally.
func (c *Canvas) Push(s sticker.Snapshot) {
	c.hist.Push(s.Clone())
	c.log.Debug("history push", "len", c.hist.Len(), "stickers", s.Len())
}

// Commit records s as a new history entry unless it is structurally equal to
// the current snapshot. Reports whether an entry was added.
func (c *Canvas) Commit(s sticker.Snapshot) bool {
	if s.Equal(c.hist.Current()) {
		return false
	}
	c.Push(s)
	return true
}

// Undo steps back one entry. Returns false at the oldest entry or when the
// call repeats a step within the guard cooldown.
func (c *Canvas) Undo() bool {
	if !c.CanUndo() || !c.guard.Allow() {
		return false
	}
	ok := c.hist.Undo()
	c.log.Debug("undo", "cursor", c.hist.Cursor(), "len", c.hist.Len())
	return ok
}

// Redo steps forward one entry. Returns false at the newest entry or when
// the call repeats a step within the guard cooldown.
func (c *Canvas) Redo() bool {
	if !c.CanRedo() || !c.guard.Allow() {
		return false
	}
	ok := c.hist.Redo()
	c.log.Debug("redo", "cursor", c.hist.Cursor(), "len", c.hist.Len())
	return ok
}

// Clear discards all history and starts again from seed.
func (c *Canvas) Clear(seed sticker.Snapshot) {
	c.hist.Clear(seed.Clone())
	c.log.Info("canvas cleared", "stickers", seed.Len())
}

// Reset discards all history and starts again from the original seed.
func (c *Canvas) Reset() {
	c.hist.Reset()
	c.log.Info("canvas reset")
}

// CanUndo reports whether an earlier entry exists.
func (c *Canvas) CanUndo() bool { return c.hist.CanUndo() }

// CanRedo reports whether a later entry exists.
func (c *Canvas) CanRedo() bool { return c.hist.CanRedo() }

// Len returns the number of history entries.
func (c *Canvas) Len() int { return c.hist.Len() }

// Cursor returns the index of the current entry.
func (c *Canvas) Cursor() int { return c.hist.Cursor() }

// MaxHistory returns the history bound.
func (c *Canvas) MaxHistory() int { return c.hist.Max() }

// Limits returns the scale limits.
func (c *Canvas) Limits() transform.Limits { return c.opts.Limits }
