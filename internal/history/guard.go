package history

import "time"

// DefaultCooldown is the default minimum spacing between guarded calls.
const DefaultCooldown = 50 * time.Millisecond

// Guard rejects calls that arrive within a cooldown of the last accepted one.
// It keeps a single key-repeat burst from stepping the history twice.
type Guard struct {
	cooldown time.Duration
	now      func() time.Time
	last     time.Time
}

// NewGuard creates a guard with the given cooldown. A non-positive cooldown
// accepts every call.
func NewGuard(cooldown time.Duration) *Guard {
	return &Guard{cooldown: cooldown, now: time.Now}
}

// WithClock replaces the time source. Intended for tests.
func (g *Guard) WithClock(now func() time.Time) *Guard {
	g.now = now
	return g
}

// Allow reports whether a call may proceed and, if so, starts a new cooldown.
func (g *Guard) Allow() bool {
	if g.cooldown <= 0 {
		return true
	}
	t := g.now()
	if !g.last.IsZero() && t.Sub(g.last) < g.cooldown {
		return false
	}
	g.last = t
	return true
}

// Cooldown returns the configured cooldown.
func (g *Guard) Cooldown() time.Duration {
	return g.cooldown
}
