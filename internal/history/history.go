// Package history maintains a bounded stack of snapshots for undo/redo.
package history

// DefaultMax is the default number of snapshots kept.
const DefaultMax = 30

// Stack holds snapshots and a cursor on the current one.
//
// The stack is never empty and never longer than its maximum; entries after
// the cursor form the redo branch and are discarded by the next Push.
type Stack[S any] struct {
	states  []S
	current int // index of current state
	maxSize int
	seed    S
}

// New creates a history holding only seed. A maxSize below 1 is treated as 1.
func New[S any](seed S, maxSize int) *Stack[S] {
	maxSize = max(maxSize, 1)
	states := make([]S, 1, maxSize)
	states[0] = seed
	return &Stack[S]{
		states:  states,
		maxSize: maxSize,
		seed:    seed,
	}
}

// Current returns the snapshot at the cursor.
func (h *Stack[S]) Current() S {
	return h.states[h.current]
}

// SetLive replaces the snapshot at the cursor in place.
// Length, cursor and undo/redo availability are unchanged.
func (h *Stack[S]) SetLive(state S) {
	h.states[h.current] = state
}

// UpdateLive replaces the snapshot at the cursor with fn(Current()).
func (h *Stack[S]) UpdateLive(fn func(S) S) {
	h.SetLive(fn(h.Current()))
}

// Push commits state as a new entry after the cursor.
// Clears any redo states and trims the oldest entries if over the limit.
func (h *Stack[S]) Push(state S) {
	// Clear redo states (everything after current)
	clear(h.states[h.current+1:])
	h.states = h.states[:h.current+1]

	h.states = append(h.states, state)
	h.current = len(h.states) - 1

	// Trim if over limit
	if len(h.states) > h.maxSize {
		excess := len(h.states) - h.maxSize
		clear(h.states[:excess])
		h.states = h.states[excess:]
		h.current -= excess
	}
}

// Undo moves the cursor back one entry.
// Returns false if there is nothing to undo.
func (h *Stack[S]) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	h.current--
	return true
}

// Redo moves the cursor forward one entry.
// Returns false if there is nothing to redo.
func (h *Stack[S]) Redo() bool {
	if !h.CanRedo() {
		return false
	}
	h.current++
	return true
}

// Clear resets the history to a single entry holding seed.
func (h *Stack[S]) Clear(seed S) {
	clear(h.states)
	h.states = append(h.states[:0], seed)
	h.current = 0
}

// Reset resets the history to the seed it was created with.
func (h *Stack[S]) Reset() {
	h.Clear(h.seed)
}

// CanUndo returns true if there is a previous state to undo to.
func (h *Stack[S]) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if there is a next state to redo to.
func (h *Stack[S]) CanRedo() bool {
	return h.current < len(h.states)-1
}

// Len returns the number of entries.
func (h *Stack[S]) Len() int {
	return len(h.states)
}

// Cursor returns the index of the current entry.
func (h *Stack[S]) Cursor() int {
	return h.current
}

// Max returns the maximum number of entries.
func (h *Stack[S]) Max() int {
	return h.maxSize
}
