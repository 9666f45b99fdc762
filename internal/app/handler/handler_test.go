package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stickers/internal/keymap"
)

func TestNotHandled(t *testing.T) {
	if NotHandled.Handled {
		t.Error("NotHandled.Handled should be false")
	}
	if NotHandled.Cmd != nil {
		t.Error("NotHandled.Cmd should be nil")
	}
}

func TestHandledNoCmd(t *testing.T) {
	if !HandledNoCmd.Handled {
		t.Error("HandledNoCmd.Handled should be true")
	}
	if HandledNoCmd.Cmd != nil {
		t.Error("HandledNoCmd.Cmd should be nil")
	}
}

func TestHandled(t *testing.T) {
	cmd := func() tea.Msg { return "test" }
	result := Handled(cmd)
	if !result.Handled {
		t.Error("Handled(cmd).Handled should be true")
	}
	if result.Cmd == nil {
		t.Error("Handled(cmd).Cmd should not be nil")
	}
}

func TestChain(t *testing.T) {
	var calls []string
	record := func(name string, handles keymap.Action) Handler {
		return func(a keymap.Action) Result {
			calls = append(calls, name)
			if a == handles {
				return Handled(func() tea.Msg { return name })
			}
			return NotHandled
		}
	}
	handlers := []Handler{
		record("global", keymap.ActionUndo),
		record("sticker", keymap.ActionDelete),
	}

	tests := []struct {
		name      string
		action    keymap.Action
		handled   bool
		wantCalls []string
		wantMsg   tea.Msg
	}{
		{"first handler", keymap.ActionUndo, true, []string{"global"}, "global"},
		{"second handler", keymap.ActionDelete, true, []string{"global", "sticker"}, "sticker"},
		{"unhandled", keymap.ActionQuit, false, []string{"global", "sticker"}, nil},
		{"empty action", "", false, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls = nil
			handled, cmd := Chain(tt.action, handlers...)

			if handled != tt.handled {
				t.Errorf("handled = %v, want %v", handled, tt.handled)
			}
			if len(calls) != len(tt.wantCalls) {
				t.Errorf("calls = %v, want %v", calls, tt.wantCalls)
			}
			var msg tea.Msg
			if cmd != nil {
				msg = cmd()
			}
			if msg != tt.wantMsg {
				t.Errorf("msg = %v, want %v", msg, tt.wantMsg)
			}
		})
	}
}
