package sticker

import "slices"

// Snapshot is the ordered set of stickers at one point in time.
// Index order is z-order: later stickers are drawn on top.
type Snapshot []Sticker

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	return slices.Clone(s)
}

// Len returns the number of stickers.
func (s Snapshot) Len() int {
	return len(s)
}

// Equal reports whether both snapshots hold the same stickers in the same order.
func (s Snapshot) Equal(other Snapshot) bool {
	return slices.Equal(s, other)
}

// Index returns the position of the sticker with the given id, or -1.
func (s Snapshot) Index(id string) int {
	return slices.IndexFunc(s, func(st Sticker) bool { return st.ID == id })
}

// Find returns the sticker with the given id.
func (s Snapshot) Find(id string) (Sticker, bool) {
	i := s.Index(id)
	if i < 0 {
		return Sticker{}, false
	}
	return s[i], true
}

// Contains reports whether a sticker with the given id exists.
func (s Snapshot) Contains(id string) bool {
	return s.Index(id) >= 0
}

// IDs returns sticker ids in z-order.
func (s Snapshot) IDs() []string {
	ids := make([]string, len(s))
	for i, st := range s {
		ids[i] = st.ID
	}
	return ids
}

// Valid reports whether every sticker id is non-empty and unique.
func (s Snapshot) Valid() bool {
	seen := make(map[string]bool, len(s))
	for _, st := range s {
		if st.ID == "" || seen[st.ID] {
			return false
		}
		seen[st.ID] = true
	}
	return true
}

// Append returns a new snapshot with st added on top.
// The snapshot is returned unchanged if st's id is already present.
func (s Snapshot) Append(st Sticker) Snapshot {
	if s.Contains(st.ID) {
		return s
	}
	out := make(Snapshot, 0, len(s)+1)
	out = append(out, s...)
	return append(out, st)
}

// Update returns a new snapshot where the sticker with the given id is
// replaced by fn applied to it. Returns s unchanged if id is not found.
// fn must not change the sticker id.
func (s Snapshot) Update(id string, fn func(Sticker) Sticker) Snapshot {
	i := s.Index(id)
	if i < 0 {
		return s
	}
	out := s.Clone()
	next := fn(out[i])
	next.ID = id
	out[i] = next
	return out
}

// Remove returns a new snapshot without the sticker with the given id.
// Returns s unchanged if id is not found.
func (s Snapshot) Remove(id string) Snapshot {
	i := s.Index(id)
	if i < 0 {
		return s
	}
	return slices.Delete(s.Clone(), i, i+1)
}

// Duplicate returns a new snapshot with a copy of the sticker with the given
// id appended on top, carrying newID and offset by (dx, dy).
// Returns s unchanged if id is not found or newID is empty or already taken.
func (s Snapshot) Duplicate(id, newID string, dx, dy float64) Snapshot {
	orig, ok := s.Find(id)
	if !ok || newID == "" || s.Contains(newID) {
		return s
	}
	dup := orig
	dup.ID = newID
	dup.X += dx
	dup.Y += dy
	return s.Append(dup)
}

// BringForward swaps the sticker with its neighbour above.
// Returns s unchanged if the sticker is already on top or not found.
func (s Snapshot) BringForward(id string) Snapshot {
	i := s.Index(id)
	if i < 0 || i == len(s)-1 {
		return s
	}
	return s.swap(i, i+1)
}

// SendBackward swaps the sticker with its neighbour below.
// Returns s unchanged if the sticker is already at the bottom or not found.
func (s Snapshot) SendBackward(id string) Snapshot {
	i := s.Index(id)
	if i <= 0 {
		return s
	}
	return s.swap(i, i-1)
}

func (s Snapshot) swap(i, j int) Snapshot {
	out := s.Clone()
	out[i], out[j] = out[j], out[i]
	return out
}

// TopAt returns the topmost sticker for which hit returns true.
func (s Snapshot) TopAt(hit func(Sticker) bool) (Sticker, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if hit(s[i]) {
			return s[i], true
		}
	}
	return Sticker{}, false
}
