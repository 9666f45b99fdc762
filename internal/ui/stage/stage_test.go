package stage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/stickers/internal/sticker"
	"github.com/llehouerou/stickers/internal/transform"
	"github.com/llehouerou/stickers/internal/ui/testutil"
)

var (
	geo  = DefaultGeometry()
	fox  = sticker.New("A", "🦊", 40, 48)
	frog = sticker.New("B", "🐸", 44, 48)
)

func lines(t *testing.T, out string) []string {
	t.Helper()
	return strings.Split(testutil.StripANSI(out), "\n")
}

func TestGeometry_CellMapping(t *testing.T) {
	col, row := geo.ToCell(40, 48)
	assert.Equal(t, 10, col)
	assert.Equal(t, 6, row)

	assert.Equal(t, transform.Point{X: 42, Y: 52}, geo.ToPoint(10, 6))
	assert.Equal(t, transform.Rect{W: 80, H: 80}, geo.Bounds(20, 10))
	assert.Equal(t, transform.Point{X: 40, Y: 40}, geo.Center(20, 10))
}

func TestGeometry_BoxOf(t *testing.T) {
	tests := []struct {
		name string
		s    sticker.Sticker
		want Box
	}{
		{"scale 1", fox, Box{Left: 6, Top: 4, Right: 13, Bottom: 7}},
		{"scale 2", fox.WithScale(2), Box{Left: 2, Top: 2, Right: 17, Bottom: 9}},
		{"small grows to minimum", fox.WithScale(0.5), Box{Left: 8, Top: 5, Right: 11, Bottom: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geo.BoxOf(tt.s))
		})
	}
}

func TestBox_RotateHandle(t *testing.T) {
	col, row := Box{Left: 6, Top: 4, Right: 13, Bottom: 7}.RotateHandle()
	assert.Equal(t, 9, col)
	assert.Equal(t, 3, row)

	col, row = Box{Left: 0, Top: 0, Right: 3, Bottom: 2}.RotateHandle()
	assert.Equal(t, 1, col)
	assert.Equal(t, 3, row, "flips below when touching the top edge")
}

func TestHitTest(t *testing.T) {
	snap := sticker.Snapshot{fox}

	tests := []struct {
		name     string
		selected string
		col, row int
		wantID   string
		wantHit  Hit
	}{
		{"body", "", 8, 5, "A", HitBody},
		{"corner unselected is body", "", 6, 4, "A", HitBody},
		{"corner selected", "A", 6, 4, "A", HitCorner},
		{"bottom right corner", "A", 13, 7, "A", HitCorner},
		{"rotate handle", "A", 9, 3, "A", HitRotate},
		{"rotate handle unselected", "", 9, 3, "", HitNone},
		{"empty space", "A", 0, 0, "", HitNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, hit := geo.HitTest(snap, tt.selected, tt.col, tt.row)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantHit, hit)
		})
	}
}

func TestHitTest_TopmostWins(t *testing.T) {
	id, hit := geo.HitTest(sticker.Snapshot{fox, frog}, "", 10, 5)

	assert.Equal(t, "B", id)
	assert.Equal(t, HitBody, hit)

	id, _ = geo.HitTest(sticker.Snapshot{frog, fox}, "", 10, 5)
	assert.Equal(t, "A", id)
}

func TestHit_String(t *testing.T) {
	assert.Equal(t, "none", HitNone.String())
	assert.Equal(t, "body", HitBody.String())
	assert.Equal(t, "corner", HitCorner.String())
	assert.Equal(t, "rotate", HitRotate.String())
}

func TestRender_Unselected(t *testing.T) {
	out := lines(t, Render(sticker.Snapshot{fox}, "", geo, 20, 10))

	require.Len(t, out, 10)
	assert.Equal(t, "      ┌──────┐      ", out[4])
	assert.Equal(t, "      │  🦊  │      ", out[5])
	assert.Equal(t, "      └↑─────┘      ", out[7])
	assert.Equal(t, strings.Repeat(" ", 20), out[3])
}

func TestRender_SelectedShowsHandles(t *testing.T) {
	out := lines(t, Render(sticker.Snapshot{fox}, "A", geo, 20, 10))

	assert.Equal(t, "         ↻          ", out[3])
	assert.Equal(t, "      ◆━━━━━━◆      ", out[4])
	assert.Equal(t, "      ┃  🦊  ┃      ", out[5])
	assert.Equal(t, "      ◆↑━━━━━◆      ", out[7])
}

func TestRender_FlipAndRotationMarkers(t *testing.T) {
	s := fox.WithRotation(90).Flipped(true, true)

	out := lines(t, Render(sticker.Snapshot{s}, "", geo, 20, 10))

	assert.Equal(t, "      └→⇋⇵───┘      ", out[7])
}

func TestRender_PoppedShadow(t *testing.T) {
	out := lines(t, Render(sticker.Snapshot{fox.TogglePopped()}, "", geo, 20, 10))

	assert.Equal(t, "      │  🦊  │░     ", out[5])
	assert.Equal(t, "       ░░░░░░░░     ", out[8])
}

func TestRender_WidthStableWithOverlapAndClipping(t *testing.T) {
	snap := sticker.Snapshot{
		fox,
		frog,
		sticker.New("C", "🐙", 0, 0).WithScale(2),
		sticker.New("D", "⭐", 78, 78),
	}

	out := lines(t, Render(snap, "B", geo, 20, 10))

	require.Len(t, out, 10)
	for i, l := range out {
		assert.Equal(t, 20, testutil.MeasureWidth(l), "row %d: %q", i, l)
	}
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render(sticker.Snapshot{fox}, "", geo, 0, 10))

	out := lines(t, Render(nil, "", geo, 3, 2))
	assert.Equal(t, []string{"   ", "   "}, out)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		s    sticker.Sticker
		want string
	}{
		{"emoji", fox, "🦊"},
		{"first grapheme only", sticker.New("x", "🦊🐸", 0, 0), "🦊"},
		{"src fallback", sticker.Sticker{ID: "x", Src: "star.png"}, "s"},
		{"control characters stripped", sticker.New("x", "\x1b🐸", 0, 0), "🐸"},
		{"nothing", sticker.Sticker{ID: "x"}, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.s))
		})
	}
}

func TestArrow(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{0, "↑"},
		{45, "↗"},
		{90, "→"},
		{180, "↓"},
		{-90, "←"},
		{350, "↑"},
		{-30, "↖"},
	}

	for _, tt := range tests {
		if got := Arrow(tt.deg); got != tt.want {
			t.Errorf("Arrow(%v) = %q, want %q", tt.deg, got, tt.want)
		}
	}
}
