// Package statusbar renders the bottom line: the selected sticker's
// transform, a transient message, and key hints.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/stickers/internal/keymap"
	"github.com/llehouerou/stickers/internal/sticker"
	"github.com/llehouerou/stickers/internal/transform"
	"github.com/llehouerou/stickers/internal/ui/render"
	"github.com/llehouerou/stickers/internal/ui/styles"
)

// Height is the fixed height of the status bar.
const Height = 1

// Actions shown as hints, in order.
var hintActions = []keymap.Action{
	keymap.ActionUndo,
	keymap.ActionRedo,
	keymap.ActionAdd,
	keymap.ActionDelete,
	keymap.ActionDuplicate,
	keymap.ActionHelp,
	keymap.ActionQuit,
}

// Info is the state shown in the status bar.
type Info struct {
	Selected    sticker.Sticker
	HasSelected bool
	Gesture     string // active gesture kind, empty when idle
	Message     string
	IsError     bool
	CanUndo     bool
	CanRedo     bool
}

// Model holds the key hints. The hints follow the resolver's bindings.
type Model struct {
	help  help.Model
	hints map[keymap.Action]key.Binding
}

// New builds the hints from the resolver.
func New(r *keymap.Resolver) Model {
	t := styles.T()
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Primary)
	h.Styles.ShortDesc = t.S().Muted
	h.Styles.ShortSeparator = t.S().Subtle

	hints := make(map[keymap.Action]key.Binding, len(hintActions))
	for _, a := range hintActions {
		keys := r.KeysFor(a)
		if len(keys) == 0 {
			continue
		}
		hints[a] = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], hintLabel(a)))
	}
	return Model{help: h, hints: hints}
}

func hintLabel(a keymap.Action) string {
	switch a {
	case keymap.ActionDuplicate:
		return "dup"
	case keymap.ActionHelp:
		return "help"
	default:
		return string(a)
	}
}

// Render returns the status line truncated to width.
func (m Model) Render(info Info, width int) string {
	if width <= 0 {
		return ""
	}
	s := styles.T().S()

	var left string
	switch {
	case info.Message != "" && info.IsError:
		left = s.Error.Render(info.Message)
	case info.Message != "":
		left = s.Success.Render(info.Message)
	case info.HasSelected:
		left = Describe(info.Selected, info.Gesture)
	default:
		left = s.Subtle.Render("click a sticker or press tab")
	}

	hints := m.help.ShortHelpView(m.bindings(info))

	return render.Row(left, hints, width)
}

// bindings returns the hints to show; unavailable actions are disabled so
// help hides them.
func (m Model) bindings(info Info) []key.Binding {
	out := make([]key.Binding, 0, len(hintActions))
	for _, a := range hintActions {
		b, ok := m.hints[a]
		if !ok {
			continue
		}
		switch a {
		case keymap.ActionUndo:
			b.SetEnabled(info.CanUndo)
		case keymap.ActionRedo:
			b.SetEnabled(info.CanRedo)
		case keymap.ActionDelete, keymap.ActionDuplicate:
			b.SetEnabled(info.HasSelected)
		}
		out = append(out, b)
	}
	return out
}

// Describe formats a sticker's transform, e.g. "🦊 x 40 y 48 ×1.5 15° ⇋".
func Describe(st sticker.Sticker, gesture string) string {
	s := styles.T().S()
	parts := []string{
		st.Emoji,
		fmt.Sprintf("x %s y %s", humanize.FtoaWithDigits(st.X, 1), humanize.FtoaWithDigits(st.Y, 1)),
		"×" + humanize.FtoaWithDigits(st.Scale, 2),
		humanize.FtoaWithDigits(transform.Normalize(st.Rotation), 1) + "°",
	}
	if st.FlipH {
		parts = append(parts, "⇋")
	}
	if st.FlipV {
		parts = append(parts, "⇵")
	}
	if st.Popped {
		parts = append(parts, "popped")
	}
	out := s.Base.Render(strings.Join(parts, " "))
	if gesture != "" {
		out += " " + s.Selection.Render("["+gesture+"]")
	}
	return out
}
