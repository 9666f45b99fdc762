package popupctl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/stickers/internal/ui/action"
	"github.com/llehouerou/stickers/internal/ui/confirm"
	"github.com/llehouerou/stickers/internal/ui/testutil"
)

func dottedBase() string {
	base := ""
	for range 24 {
		base += strings.Repeat(".", 80) + "\n"
	}
	return base
}

func newManager() *Manager {
	p := New()
	p.SetSize(80, 24)
	return p
}

func TestManager_NoPopup(t *testing.T) {
	p := newManager()

	assert.Equal(t, None, p.ActivePopup())
	handled, cmd := p.HandleKey(testutil.Key("y"))
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestManager_ErrorHasPriorityAndDismissesOnAnyKey(t *testing.T) {
	p := newManager()
	p.ShowHelp([]string{"global"})
	p.ShowError("Failed to load configuration: boom")

	assert.Equal(t, Error, p.ActivePopup())
	assert.Contains(t, testutil.StripANSI(p.RenderOverlay(dottedBase())), "Failed to load configuration: boom")

	handled, _ := p.HandleKey(testutil.Key("x"))

	assert.True(t, handled)
	assert.Empty(t, p.ErrorMsg())
	assert.Equal(t, Help, p.ActivePopup())
}

func TestManager_ConfirmRoutesKeys(t *testing.T) {
	p := newManager()
	p.ShowConfirm("Reset canvas?", "History will be discarded.", "reset")

	handled, cmd := p.HandleKey(testutil.Key("y"))

	require.True(t, handled)
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok)
	res, ok := msg.Action.(confirm.Result)
	require.True(t, ok)
	assert.True(t, res.Confirmed)
	assert.Equal(t, "reset", res.Context)
}

func TestManager_Hide(t *testing.T) {
	p := newManager()
	p.ShowConfirm("t", "m", nil)
	p.ShowError("e")

	p.Hide(Confirm)
	p.Hide(Error)

	assert.Equal(t, None, p.ActivePopup())
	assert.False(t, p.IsVisible(None))
}

func TestManager_RenderOverlayKeepsBaseOutside(t *testing.T) {
	p := newManager()
	base := dottedBase()
	p.ShowConfirm("Reset canvas?", "History will be discarded.", nil)

	out := testutil.StripANSI(p.RenderOverlay(base))

	assert.Contains(t, out, "Reset canvas?")
	assert.Contains(t, testutil.SplitLines(out)[0], "....")
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{None, "none"},
		{Help, "help"},
		{Confirm, "confirm"},
		{Error, "error"},
		{Type(42), "none"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
