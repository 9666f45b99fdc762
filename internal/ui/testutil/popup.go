package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stickers/internal/ui/action"
	"github.com/llehouerou/stickers/internal/ui/popup"
)

// PopupHarness drives a popup the way the popup manager does and records
// the commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and records its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	h.record(p.Init())
	return h
}

func (h *PopupHarness) record(cmd tea.Cmd) {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
}

// SetSize sets the popup dimensions.
func (h *PopupHarness) SetSize(width, height int) {
	h.popup.SetSize(width, height)
}

// View returns the popup's rendered content.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// ViewContains reports whether any line of the view, without styling,
// contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}

// SendMsg sends msg to the popup and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	h.record(cmd)
	return cmd
}

// SendKey sends the key named by key (see Key).
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(Key(key))
}

// SendEnter sends the enter key.
func (h *PopupHarness) SendEnter() tea.Cmd { return h.SendKey("enter") }

// SendEscape sends the escape key.
func (h *PopupHarness) SendEscape() tea.Cmd { return h.SendKey("esc") }

// Commands returns the number of commands recorded so far.
func (h *PopupHarness) Commands() int {
	return len(h.cmds)
}

// LastCommand returns the most recent command, or nil if none.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// LastAction runs the most recent command and returns the action message it
// produced. ok is false when there is no command or it produced something
// else.
func (h *PopupHarness) LastAction() (msg action.Msg, ok bool) {
	msg, ok = ExecuteCmd(h.LastCommand()).(action.Msg)
	return msg, ok
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
