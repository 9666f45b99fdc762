package gesture

// Tracker owns at most one active gesture.
//
// Starting a gesture while another is active ends the previous one first,
// so a lost pointer-up never leaves live changes outside the history.
type Tracker struct {
	active Gesture
}

// Start makes g the active gesture, ending any gesture still in progress.
// Returns whether ending the previous gesture committed.
func (t *Tracker) Start(g Gesture) bool {
	committed := t.Finish()
	if g != nil && g.Active() {
		t.active = g
	}
	return committed
}

// Active returns the gesture in progress, or nil.
func (t *Tracker) Active() Gesture {
	if t.active != nil && !t.active.Active() {
		t.active = nil
	}
	return t.active
}

// Busy reports whether a gesture is in progress.
func (t *Tracker) Busy() bool {
	return t.Active() != nil
}

// Finish ends the gesture in progress, if any, and reports whether it
// committed. Used for pointer-up as well as abnormal termination (focus
// loss, quit).
func (t *Tracker) Finish() bool {
	g := t.Active()
	if g == nil {
		return false
	}
	t.active = nil
	return g.End()
}
