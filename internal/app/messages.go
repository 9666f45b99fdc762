package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pinchIdle is how long the wheel must rest before a wheel pinch commits.
const pinchIdle = 300 * time.Millisecond

// PinchIdleMsg is sent after pinchIdle following a wheel event.
// The Version field is used to ignore stale timeouts when the wheel keeps turning.
type PinchIdleMsg struct {
	Version int
}

// PinchIdleCmd returns a command that sends PinchIdleMsg after pinchIdle.
func PinchIdleCmd(version int) tea.Cmd {
	return tea.Tick(pinchIdle, func(_ time.Time) tea.Msg {
		return PinchIdleMsg{Version: version}
	})
}

// resetContext tags the reset confirmation.
const resetContext = "reset"
