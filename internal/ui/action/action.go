// Package action defines the interface for UI component actions.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents an action from a UI component.
// The ActionType method returns a string identifier for logging/debugging.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
// UI components report user decisions to the app model this way.
type Msg struct {
	Source string // Component name: "confirm", "helpbindings"
	Action Action
}

var _ tea.Msg = Msg{}
