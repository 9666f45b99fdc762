package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stickers/internal/app/popupctl"
	"github.com/llehouerou/stickers/internal/gesture"
	"github.com/llehouerou/stickers/internal/ui/action"
	"github.com/llehouerou/stickers/internal/ui/confirm"
	"github.com/llehouerou/stickers/internal/ui/helpbindings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Popups.SetSize(msg.Width, msg.Height)

	case tea.FocusMsg:
		m.Focused = true

	case tea.BlurMsg:
		// The release may never arrive once the terminal loses focus.
		m.Focused = false
		m.finishGesture("blur")

	case action.Msg:
		cmd = m.handleActionMsg(msg)

	case PinchIdleMsg:
		if _, ok := m.Gestures.Active().(*gesture.Pinch); ok && msg.Version == m.PinchVersion {
			m.finishGesture("pinch idle")
		}

	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		cmd = m.handleMouseMsg(msg)
	}

	m.syncSelection()
	return m, cmd
}

func (m *Model) handleActionMsg(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)
		m.log.Debug("popup closed", "popup", popupctl.Help)
	case confirm.Result:
		m.Popups.Hide(popupctl.Confirm)
		m.log.Debug("popup closed", "popup", popupctl.Confirm, "confirmed", a.Confirmed)
		if a.Confirmed && a.Context == resetContext {
			m.finishGesture("reset")
			m.Canvas.Reset()
			m.Selected = ""
			m.setMessage("Canvas reset", false)
		}
	}
	return nil
}

// finishGesture ends the gesture in progress, if any.
func (m *Model) finishGesture(reason string) {
	g := m.Gestures.Active()
	if g == nil {
		return
	}
	committed := m.Gestures.Finish()
	m.log.Debug("gesture end", "kind", g.Kind(), "id", g.StickerID(), "reason", reason, "committed", committed)
}

// syncSelection drops a selection the current snapshot no longer holds.
func (m *Model) syncSelection() {
	if m.Selected != "" && !m.Canvas.Current().Contains(m.Selected) {
		m.Selected = ""
	}
}

func (m *Model) setMessage(msg string, isError bool) {
	m.Message = msg
	m.IsError = isError
}
