// Package overlay composes popups over the rendered stage.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view.
// Non-space characters in overlay replace the base at the same position.
// This function is ANSI-aware and keeps wide characters (emoji) aligned.
func Compose(base, overlay string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue
		}

		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}
		endCol := ansi.StringWidth(strings.TrimRight(plainOverlay, " "))

		overlayContent := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if baseWidth := ansi.StringWidth(baseLine); baseWidth < width {
			baseLine += strings.Repeat(" ", width-baseWidth)
		}

		// A sticker cut in half by the popup edge leaves a short prefix or
		// a long suffix; pad or trim to keep columns aligned.
		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(prefix); w < startCol {
			prefix += strings.Repeat(" ", startCol-w)
		}

		result := prefix + overlayContent
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			suffixWidth := ansi.StringWidth(suffix)
			expected := width - endCol
			switch {
			case suffixWidth > expected:
				suffix = " " + ansi.Cut(suffix, suffixWidth-expected+1, suffixWidth)
			case suffixWidth < expected:
				result += strings.Repeat(" ", expected-suffixWidth)
			}
			result += suffix
		}

		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}
