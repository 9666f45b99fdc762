package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/stickers/internal/ui/headerbar"
	"github.com/llehouerou/stickers/internal/ui/stage"
	"github.com/llehouerou/stickers/internal/ui/statusbar"
	"github.com/llehouerou/stickers/internal/ui/styles"
)

// View renders the header, the framed stage and the status bar, with any
// popup drawn on top.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	snap := m.Canvas.Current()

	header := headerbar.Render(headerbar.Info{
		Cursor:   m.Canvas.Cursor(),
		Len:      m.Canvas.Len(),
		Max:      m.Canvas.MaxHistory(),
		CanUndo:  m.Canvas.CanUndo(),
		CanRedo:  m.Canvas.CanRedo(),
		Stickers: snap.Len(),
	}, m.Width)

	cols, rows := m.StageSize()
	body := styles.StageStyle(m.Focused).
		Width(cols).
		Height(rows).
		Render(stage.Render(snap, m.Selected, m.Geometry, cols, rows))

	info := statusbar.Info{
		Message: m.Message,
		IsError: m.IsError,
		CanUndo: m.Canvas.CanUndo(),
		CanRedo: m.Canvas.CanRedo(),
	}
	if st, ok := snap.Find(m.Selected); ok {
		info.Selected, info.HasSelected = st, true
	}
	if g := m.Gestures.Active(); g != nil {
		info.Gesture = g.Kind().String()
	}
	status := m.Status.Render(info, m.Width)

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, status)
	return m.Popups.RenderOverlay(view)
}
