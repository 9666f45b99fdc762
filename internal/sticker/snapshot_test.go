//nolint:goconst // test file with repeated string literals
package sticker

import (
	"slices"
	"testing"
)

func abc() Snapshot {
	return Snapshot{
		New("a", "🦊", 0, 0),
		New("b", "🐸", 10, 10),
		New("c", "🐙", 20, 20),
	}
}

func TestSnapshot_Index(t *testing.T) {
	s := abc()

	tests := []struct {
		id   string
		want int
	}{
		{"a", 0},
		{"b", 1},
		{"c", 2},
		{"missing", -1},
		{"", -1},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := s.Index(tt.id); got != tt.want {
				t.Errorf("Index(%q) = %d, want %d", tt.id, got, tt.want)
			}
		})
	}
}

func TestSnapshot_Remove(t *testing.T) {
	s := abc()

	got := s.Remove("b")

	if want := []string{"a", "c"}; !slices.Equal(got.IDs(), want) {
		t.Errorf("IDs() = %v, want %v", got.IDs(), want)
	}
	if s.Len() != 3 {
		t.Error("Remove should not modify the receiver")
	}
}

func TestSnapshot_Remove_Missing(t *testing.T) {
	s := abc()

	got := s.Remove("missing")

	if !got.Equal(s) {
		t.Errorf("Remove of missing id changed snapshot: %v", got.IDs())
	}
}

func TestSnapshot_Duplicate(t *testing.T) {
	s := abc()

	got := s.Duplicate("a", "a2", 20, 20)

	if got.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", got.Len())
	}
	dup := got[3]
	if dup.ID != "a2" {
		t.Errorf("duplicate ID = %q, want a2", dup.ID)
	}
	if dup.X != 20 || dup.Y != 20 {
		t.Errorf("duplicate position = (%v, %v), want (20, 20)", dup.X, dup.Y)
	}
	if dup.Emoji != "🦊" {
		t.Errorf("duplicate Emoji = %q, want 🦊", dup.Emoji)
	}
	if !got.Valid() {
		t.Error("snapshot with duplicate should keep unique ids")
	}
}

func TestSnapshot_Duplicate_NoOps(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		newID string
	}{
		{"missing source", "missing", "x"},
		{"empty new id", "a", ""},
		{"taken new id", "a", "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := abc()
			if got := s.Duplicate(tt.id, tt.newID, 20, 20); !got.Equal(s) {
				t.Errorf("Duplicate(%q, %q) changed snapshot: %v", tt.id, tt.newID, got.IDs())
			}
		})
	}
}

func TestSnapshot_BringForward(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want []string
	}{
		{"bottom moves up", "a", []string{"b", "a", "c"}},
		{"middle moves up", "b", []string{"a", "c", "b"}},
		{"top stays", "c", []string{"a", "b", "c"}},
		{"missing", "z", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := abc().BringForward(tt.id)
			if !slices.Equal(got.IDs(), tt.want) {
				t.Errorf("BringForward(%q) = %v, want %v", tt.id, got.IDs(), tt.want)
			}
		})
	}
}

func TestSnapshot_SendBackward(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want []string
	}{
		{"top moves down", "c", []string{"a", "c", "b"}},
		{"middle moves down", "b", []string{"b", "a", "c"}},
		{"bottom stays", "a", []string{"a", "b", "c"}},
		{"missing", "z", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := abc().SendBackward(tt.id)
			if !slices.Equal(got.IDs(), tt.want) {
				t.Errorf("SendBackward(%q) = %v, want %v", tt.id, got.IDs(), tt.want)
			}
		})
	}
}

func TestSnapshot_ForwardThenBackwardRestoresOrder(t *testing.T) {
	for _, id := range []string{"a", "b"} {
		s := abc()
		got := s.BringForward(id).SendBackward(id)
		if !got.Equal(s) {
			t.Errorf("forward+backward of %q = %v, want %v", id, got.IDs(), s.IDs())
		}
	}
}

func TestSnapshot_Update(t *testing.T) {
	s := abc()

	got := s.Update("b", func(st Sticker) Sticker {
		st.ID = "hijacked"
		return st.WithPosition(99, 98).Flipped(true, false)
	})

	b, ok := got.Find("b")
	if !ok {
		t.Fatal("Update must preserve the sticker id")
	}
	if b.X != 99 || b.Y != 98 || !b.FlipH || b.FlipV {
		t.Errorf("updated sticker = %+v", b)
	}
	if orig, _ := s.Find("b"); orig.X != 10 {
		t.Error("Update should not modify the receiver")
	}
}

func TestSnapshot_Valid(t *testing.T) {
	if !abc().Valid() {
		t.Error("distinct ids should be valid")
	}
	dup := append(abc(), New("a", "x", 0, 0))
	if dup.Valid() {
		t.Error("duplicate ids should be invalid")
	}
	if (Snapshot{New("", "x", 0, 0)}).Valid() {
		t.Error("empty id should be invalid")
	}
}

func TestSnapshot_Append_ExistingID(t *testing.T) {
	s := abc()
	if got := s.Append(New("a", "x", 5, 5)); !got.Equal(s) {
		t.Error("Append with an existing id should be a no-op")
	}
}

func TestSnapshot_TopAt(t *testing.T) {
	s := abc()

	got, ok := s.TopAt(func(st Sticker) bool { return st.X <= 10 })

	if !ok || got.ID != "b" {
		t.Errorf("TopAt = %q, %v; want b, true", got.ID, ok)
	}
}

func TestSticker_Bounds(t *testing.T) {
	st := New("a", "x", 50, 60).WithScale(2)

	left, top, side := st.Bounds(32)

	if left != 18 || top != 28 || side != 64 {
		t.Errorf("Bounds = (%v, %v, %v), want (18, 28, 64)", left, top, side)
	}
}
