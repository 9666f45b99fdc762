package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

var specialKeys = map[string]tea.KeyType{
	"enter":       tea.KeyEnter,
	"esc":         tea.KeyEscape,
	"tab":         tea.KeyTab,
	"shift+tab":   tea.KeyShiftTab,
	"up":          tea.KeyUp,
	"down":        tea.KeyDown,
	"left":        tea.KeyLeft,
	"right":       tea.KeyRight,
	"shift+up":    tea.KeyShiftUp,
	"shift+down":  tea.KeyShiftDown,
	"shift+left":  tea.KeyShiftLeft,
	"shift+right": tea.KeyShiftRight,
	"delete":      tea.KeyDelete,
	"backspace":   tea.KeyBackspace,
	"ctrl+c":      tea.KeyCtrlC,
	"ctrl+d":      tea.KeyCtrlD,
	"ctrl+y":      tea.KeyCtrlY,
	"ctrl+z":      tea.KeyCtrlZ,
}

// Key builds the tea.KeyMsg whose String() is key. Unknown names are sent
// as runes.
func Key(key string) tea.KeyMsg {
	if t, ok := specialKeys[key]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// Press builds a left button press at column x, row y.
func Press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

// ShiftPress is Press with shift held.
func ShiftPress(x, y int) tea.MouseMsg {
	m := Press(x, y)
	m.Shift = true
	return m
}

// Motion builds a left button drag motion at column x, row y.
func Motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}
}

// Release builds a button release at column x, row y.
func Release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}
}

// Wheel builds a wheel event; up scrolls toward the user.
func Wheel(x, y int, up, ctrl bool) tea.MouseMsg {
	b := tea.MouseButtonWheelDown
	if up {
		b = tea.MouseButtonWheelUp
	}
	return tea.MouseMsg{X: x, Y: y, Button: b, Action: tea.MouseActionPress, Ctrl: ctrl}
}
