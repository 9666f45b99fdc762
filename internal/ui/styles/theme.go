package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - selection, active gesture
	Secondary lipgloss.Color // Gold/orange - handles

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase   lipgloss.Color // Stage background
	BgCursor lipgloss.Color // Popped sticker shadow

	// Borders
	Border      lipgloss.Color // Unfocused stage border
	BorderFocus lipgloss.Color // Focused stage border

	// Status colors
	Success lipgloss.Color // Green - undo/redo available
	Error   lipgloss.Color // Red - errors
	Warning lipgloss.Color // Yellow/orange - history at its bound

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style // Default text
	Muted     lipgloss.Style // Dimmed text
	Subtle    lipgloss.Style // Very dim text
	Title     lipgloss.Style // Bold, bright
	Selection lipgloss.Style // Selected sticker outline
	Handle    lipgloss.Style // Resize and rotate handles
	Shadow    lipgloss.Style // Popped sticker shadow
	Outline   lipgloss.Style // Unselected sticker outline
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Selection: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Handle: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),
		Shadow: lipgloss.NewStyle().
			Foreground(Blend(t.BgCursor, t.FgSubtle, 0.5)),
		Outline: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
