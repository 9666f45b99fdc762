package styles

import "github.com/charmbracelet/lipgloss"

// StageStyle returns the stage border style for the terminal focus state.
func StageStyle(focused bool) lipgloss.Style {
	t := T()
	color := t.Border
	if focused {
		color = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
