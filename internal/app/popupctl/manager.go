// Package popupctl manages the modal popups drawn over the stage.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stickers/internal/ui/confirm"
	"github.com/llehouerou/stickers/internal/ui/helpbindings"
	"github.com/llehouerou/stickers/internal/ui/overlay"
	"github.com/llehouerou/stickers/internal/ui/popup"
	"github.com/llehouerou/stickers/internal/ui/styles"
)

// Manager manages all modal popups and overlays.
type Manager struct {
	popups   map[Type]popup.Popup
	sizes    map[Type]popup.SizeConfig
	errorMsg string
	width    int
	height   int
}

// New creates a new Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes:  map[Type]popup.SizeConfig{}, // all SizeAuto
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for _, pop := range p.popups {
		pop.SetSize(width, height)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case Error:
		return p.errorMsg != ""
	case Help, Confirm:
		return p.popups[t] != nil
	case None:
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.width, p.height)
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case Error:
		p.errorMsg = ""
	case Help, Confirm:
		delete(p.popups, t)
	case None:
	}
}

// ShowHelp displays the help popup with the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowConfirm displays a confirmation dialog.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New()
	c.Show(title, message, context, p.width, p.height)
	return p.Show(Confirm, &c)
}

// ShowError displays an error message popup.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Error popup: dismiss on any key
	if p.errorMsg != "" {
		p.errorMsg = ""
		return true, nil
	}

	active := p.ActivePopup()
	if active == None {
		return false, nil
	}
	pop := p.popups[active]
	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}
		var content string
		if t == Error {
			content = p.renderError()
		} else {
			content = p.popups[t].View()
		}
		rendered := popup.RenderBordered(content, p.width, p.height, p.sizes[t])
		base = overlay.Compose(base, rendered, p.width, p.height)
	}
	return base
}

func (p *Manager) renderError() string {
	s := styles.T().S()
	return s.Error.Bold(true).Render("Error") + "\n\n" +
		s.Base.Render(p.errorMsg) + "\n\n" +
		s.Subtle.Render("Press any key to dismiss")
}
