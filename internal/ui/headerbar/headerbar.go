// Package headerbar renders the single-line header above the stage.
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/stickers/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const title = "stickers"

// Info is the history state shown in the header.
type Info struct {
	Cursor   int
	Len      int
	Max      int
	CanUndo  bool
	CanRedo  bool
	Stickers int
}

// Render returns the header bar string for the given width.
func Render(info Info, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	s := t.S()
	separator := s.Subtle.Render(" │ ")

	parts := []string{
		styles.ApplyBoldGradient(title, t.Primary, t.Secondary),
		availability("↶ undo", info.CanUndo),
		historyPosition(info),
		availability("redo ↷", info.CanRedo),
		s.Muted.Render(english.Plural(info.Stickers, "sticker", "")),
	}
	content := strings.Join(parts, separator)

	// Center the content
	if contentWidth := lipgloss.Width(content); contentWidth < width {
		content = strings.Repeat(" ", (width-contentWidth)/2) + content
	}
	return content
}

func availability(label string, ok bool) string {
	s := styles.T().S()
	if ok {
		return s.Success.Render(label)
	}
	return s.Subtle.Render(label)
}

func historyPosition(info Info) string {
	s := styles.T().S()
	text := fmt.Sprintf("%d/%d (max %d)", info.Cursor+1, info.Len, info.Max)
	if info.Len >= info.Max {
		return s.Warning.Render(text)
	}
	return s.Base.Render(text)
}
