//nolint:goconst // test cases repeat ids for readability
package app

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/stickers/internal/app/popupctl"
	"github.com/llehouerou/stickers/internal/canvas"
	"github.com/llehouerou/stickers/internal/config"
	"github.com/llehouerou/stickers/internal/sticker"
	"github.com/llehouerou/stickers/internal/ui/testutil"
)

// Sticker A sits at (80, 80): with the default geometry its box spans
// stage columns 16..23 and rows 8..11. Screen cells are offset by the
// stage border and the header.
const (
	bodyX, bodyY     = 20, 11 // stage (19, 9)
	cornerX, cornerY = 17, 10 // stage (16, 8)
	handleX, handleY = 20, 9  // stage (19, 7)
)

func newTestModel(t *testing.T, seed ...sticker.Sticker) Model {
	t.Helper()
	if len(seed) == 0 {
		seed = []sticker.Sticker{sticker.New("A", "🦊", 80, 80)}
	}
	n := 0
	c := canvas.New(sticker.Snapshot(seed), canvas.Options{
		UndoCooldown: -1,
		NewID: func() string {
			n++
			return fmt.Sprintf("new%d", n)
		},
	})
	m := New(&config.Config{}, c, nil)
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

// sendCmd delivers msg and returns the resulting command.
func sendCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func findA(t *testing.T, m Model) sticker.Sticker {
	t.Helper()
	st, ok := m.Canvas.Current().Find("A")
	require.True(t, ok)
	return st
}

func TestDrag_CommitsOneEntry(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, testutil.Press(bodyX, bodyY))
	assert.Equal(t, "A", m.Selected)
	require.True(t, m.Gestures.Busy())

	m = send(t, m,
		testutil.Motion(bodyX+2, bodyY+1),
		testutil.Motion(bodyX+5, bodyY+2),
	)
	assert.Equal(t, 1, m.Canvas.Len(), "motion stays live")
	assert.Equal(t, 100.0, findA(t, m).X)
	assert.Equal(t, 96.0, findA(t, m).Y)

	m = send(t, m, testutil.Release(bodyX+5, bodyY+2))
	assert.False(t, m.Gestures.Busy())
	assert.Equal(t, 2, m.Canvas.Len())
	assert.Equal(t, 100.0, findA(t, m).X)

	m = send(t, m, testutil.Key("ctrl+z"))
	assert.Equal(t, 80.0, findA(t, m).X)
	assert.Equal(t, 80.0, findA(t, m).Y)
	assert.True(t, m.Canvas.CanRedo())
}

func TestClickWithoutMotion_RecordsNothing(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, testutil.Press(bodyX, bodyY), testutil.Release(bodyX, bodyY))

	assert.Equal(t, "A", m.Selected)
	assert.Equal(t, 1, m.Canvas.Len())
}

func TestPressEmpty_Deselects(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, testutil.Press(bodyX, bodyY), testutil.Release(bodyX, bodyY))

	m = send(t, m, testutil.Press(80, 30))

	assert.Empty(t, m.Selected)
	assert.False(t, m.Gestures.Busy())
}

func TestResize_FromCorner(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, testutil.Press(bodyX, bodyY), testutil.Release(bodyX, bodyY))

	m = send(t, m,
		testutil.Press(cornerX, cornerY),
		testutil.Motion(13, 7), // stage (12, 5), well beyond the max scale
		testutil.Release(13, 7),
	)

	assert.Equal(t, 2.0, findA(t, m).Scale)
	assert.Equal(t, 80.0, findA(t, m).X, "resize keeps the centre")
	assert.Equal(t, 2, m.Canvas.Len())
}

func TestRotate_FromHandle(t *testing.T) {
	tests := []struct {
		name  string
		shift bool
		check func(t *testing.T, deg float64)
	}{
		{"free", false, func(t *testing.T, deg float64) {
			assert.InDelta(t, 90.3, deg, 0.5)
		}},
		{"snapped with shift", true, func(t *testing.T, deg float64) {
			assert.Equal(t, 90.0, deg)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m = send(t, m, testutil.Press(bodyX, bodyY), testutil.Release(bodyX, bodyY))

			motion := testutil.Motion(31, 11) // stage (30, 9)
			motion.Shift = tt.shift
			m = send(t, m, testutil.Press(handleX, handleY), motion, testutil.Release(31, 11))

			tt.check(t, findA(t, m).Rotation)
			assert.Equal(t, 2, m.Canvas.Len())
		})
	}
}

func TestWheelPinch_CommitsWhenIdle(t *testing.T) {
	m := newTestModel(t)

	m, cmd := sendCmd(t, m, testutil.Wheel(bodyX, bodyY, true, false))
	require.NotNil(t, cmd)
	m, cmd = sendCmd(t, m, testutil.Wheel(bodyX, bodyY, true, false))
	require.NotNil(t, cmd)

	assert.Equal(t, "A", m.Selected)
	assert.InDelta(t, 1.21, findA(t, m).Scale, 1e-9)
	assert.Equal(t, 1, m.Canvas.Len(), "pinch stays live while the wheel turns")

	m = send(t, m, PinchIdleMsg{Version: m.PinchVersion - 1})
	assert.True(t, m.Gestures.Busy(), "stale timeout is ignored")

	m = send(t, m, PinchIdleMsg{Version: m.PinchVersion})
	assert.False(t, m.Gestures.Busy())
	assert.Equal(t, 2, m.Canvas.Len())

	m = send(t, m, testutil.Key("u"))
	assert.Equal(t, 1.0, findA(t, m).Scale)
}

func TestWheelIdle_LeavesLaterDragAlone(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, testutil.Wheel(bodyX, bodyY, true, false))
	version := m.PinchVersion

	m = send(t, m,
		testutil.Press(bodyX, bodyY),
		testutil.Motion(bodyX+2, bodyY),
		PinchIdleMsg{Version: version},
	)
	require.True(t, m.Gestures.Busy(), "idle timeout only ends a pinch")

	m = send(t, m, testutil.Motion(bodyX+5, bodyY), testutil.Release(bodyX+5, bodyY))

	assert.False(t, m.Gestures.Busy())
	assert.Equal(t, 100.0, findA(t, m).X)
	assert.Equal(t, 3, m.Canvas.Len(), "pinch then drag")
}

func TestWheelPinch_CtrlRotates(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, testutil.Wheel(bodyX, bodyY, false, true))

	a := findA(t, m)
	assert.Equal(t, 1.0, a.Scale)
	assert.Equal(t, -15.0, a.Rotation)
}

func TestWheelOnEmpty_NoSelection(t *testing.T) {
	m := newTestModel(t)

	m, cmd := sendCmd(t, m, testutil.Wheel(80, 30, true, false))

	assert.Nil(t, cmd)
	assert.False(t, m.Gestures.Busy())
}

func TestBlur_FinishesGesture(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m,
		testutil.Press(bodyX, bodyY),
		testutil.Motion(bodyX+5, bodyY),
		tea.BlurMsg{},
	)

	assert.False(t, m.Focused)
	assert.False(t, m.Gestures.Busy())
	assert.Equal(t, 2, m.Canvas.Len())
	assert.Equal(t, 100.0, findA(t, m).X)
}

func TestKey_FinishesGestureFirst(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m,
		testutil.Press(bodyX, bodyY),
		testutil.Motion(bodyX+5, bodyY),
		testutil.Key("f"),
	)

	assert.False(t, m.Gestures.Busy())
	assert.Equal(t, 3, m.Canvas.Len(), "drag then flip")
	assert.True(t, findA(t, m).FlipH)

	m = send(t, m, testutil.Key("ctrl+z"))
	assert.False(t, findA(t, m).FlipH)
	assert.Equal(t, 100.0, findA(t, m).X)
}

func TestKeys_StickerActionsNeedSelection(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, testutil.Key("d"), testutil.Key("right"))

	assert.Equal(t, 1, m.Canvas.Len())
}

func TestKeys_Edits(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, testutil.Key("tab"))
	require.Equal(t, "A", m.Selected)

	m = send(t, m, testutil.Key("right"))
	assert.Equal(t, 84.0, findA(t, m).X)

	m = send(t, m, testutil.Key("shift+down"))
	assert.Equal(t, 120.0, findA(t, m).Y)

	m = send(t, m, testutil.Key("+"))
	assert.InDelta(t, 1.1, findA(t, m).Scale, 1e-9)

	m = send(t, m, testutil.Key(">"))
	assert.Equal(t, 45.0, findA(t, m).Rotation)

	m = send(t, m, testutil.Key("D"))
	assert.Equal(t, "new1", m.Selected)
	assert.Equal(t, 2, m.Canvas.Current().Len())

	m = send(t, m, testutil.Key("d"))
	assert.Empty(t, m.Selected)
	assert.Equal(t, []string{"A"}, m.Canvas.Current().IDs())

	assert.Equal(t, 7, m.Canvas.Len())
}

func TestKeys_AddCyclesPalette(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, testutil.Key("a"), testutil.Key("a"))

	cur := m.Canvas.Current()
	require.Equal(t, 3, cur.Len())
	assert.Equal(t, "🦊", cur[1].Emoji)
	assert.Equal(t, "🐸", cur[2].Emoji)
	assert.Equal(t, "new2", m.Selected)

	cols, rows := m.StageSize()
	c := m.Geometry.Center(cols, rows)
	assert.Equal(t, c.X, cur[1].X)
	assert.Equal(t, c.Y, cur[1].Y)
}

func TestKeys_TabCyclesSelection(t *testing.T) {
	m := newTestModel(t,
		sticker.New("A", "🦊", 80, 80),
		sticker.New("B", "🐸", 200, 80),
	)

	m = send(t, m, testutil.Key("tab"))
	assert.Equal(t, "A", m.Selected)
	m = send(t, m, testutil.Key("tab"))
	assert.Equal(t, "B", m.Selected)
	m = send(t, m, testutil.Key("tab"))
	assert.Equal(t, "A", m.Selected)
	m = send(t, m, testutil.Key("shift+tab"))
	assert.Equal(t, "B", m.Selected)
	m = send(t, m, testutil.Key("esc"))
	assert.Empty(t, m.Selected)
}

func TestUndoRedo_SelectionFollowsSnapshot(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, testutil.Key("a"))
	require.Equal(t, "new1", m.Selected)

	m = send(t, m, testutil.Key("ctrl+z"))
	assert.Empty(t, m.Selected, "undone sticker is no longer selected")

	m = send(t, m, testutil.Key("ctrl+y"))
	assert.True(t, m.Canvas.Current().Contains("new1"))
}

func TestReset_Confirmed(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, testutil.Key("tab"), testutil.Key("right"), testutil.Key("right"))
	require.Equal(t, 3, m.Canvas.Len())

	m = send(t, m, testutil.Key("R"))
	require.Equal(t, popupctl.Confirm, m.Popups.ActivePopup())

	m, cmd := sendCmd(t, m, testutil.Key("y"))
	msg := testutil.ExecuteCmd(cmd)
	require.NotNil(t, msg)
	m = send(t, m, msg)

	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
	assert.Equal(t, 1, m.Canvas.Len())
	assert.Equal(t, 80.0, findA(t, m).X)
	assert.Empty(t, m.Selected)
	assert.Equal(t, "Canvas reset", m.Message)
}

func TestReset_Cancelled(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, testutil.Key("tab"), testutil.Key("right"))

	m = send(t, m, testutil.Key("R"))
	m, cmd := sendCmd(t, m, testutil.Key("n"))
	m = send(t, m, testutil.ExecuteCmd(cmd))

	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
	assert.Equal(t, 2, m.Canvas.Len())
}

func TestPopup_BlocksMouse(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, testutil.Key("?"))
	require.Equal(t, popupctl.Help, m.Popups.ActivePopup())

	m = send(t, m, testutil.Press(bodyX, bodyY))

	assert.Empty(t, m.Selected)
	assert.False(t, m.Gestures.Busy())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := sendCmd(t, m, testutil.Key("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, testutil.Key("tab"), testutil.Key("right"))

	view := testutil.StripANSI(m.View())

	assert.Len(t, testutil.SplitLines(view), 40)
	assert.Contains(t, testutil.FindLine(view, "stickers"), "2/2")
	assert.True(t, testutil.ContainsLine(view, "🦊"))
	status := testutil.SplitLines(view)[39]
	assert.Contains(t, status, "x 84")
}

func TestView_EmptyBeforeSize(t *testing.T) {
	c := canvas.New(nil, canvas.Options{})
	m := New(&config.Config{}, c, nil)

	assert.Empty(t, m.View())
}

func TestKeys_AddWithEmptyPalette(t *testing.T) {
	m := newTestModel(t)
	m.palette = nil

	m = send(t, m, testutil.Key("a"))

	assert.Equal(t, 1, m.Canvas.Len())
	assert.True(t, m.IsError)
	assert.Equal(t, "Failed to add sticker: palette is empty", m.Message)
}
