package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "sticker", "transform", "mouse"
}

// Bindings contains all key bindings, used both for dispatch and for help.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionUndo, []string{"ctrl+z", "u"}, "Undo", "global"},
	{ActionRedo, []string{"ctrl+shift+z", "ctrl+y", "U"}, "Redo", "global"},
	{ActionAdd, []string{"a"}, "Add sticker", "global"},
	{ActionReset, []string{"R"}, "Reset canvas", "global"},
	{ActionSelectNext, []string{"tab"}, "Select next sticker", "global"},
	{ActionSelectPrev, []string{"shift+tab"}, "Select previous sticker", "global"},

	// Selected sticker
	{ActionDeselect, []string{"esc"}, "Clear selection", "sticker"},
	{ActionDelete, []string{"d", "delete", "backspace"}, "Delete", "sticker"},
	{ActionDuplicate, []string{"D", "ctrl+d"}, "Duplicate", "sticker"},
	{ActionBringForward, []string{"]"}, "Bring forward", "sticker"},
	{ActionSendBackward, []string{"["}, "Send backward", "sticker"},
	{ActionFlipH, []string{"f"}, "Flip horizontally", "sticker"},
	{ActionFlipV, []string{"F"}, "Flip vertically", "sticker"},
	{ActionTogglePop, []string{"p"}, "Pop / unpop", "sticker"},

	// Keyboard transforms
	{ActionNudgeLeft, []string{"left", "h"}, "Nudge left", "transform"},
	{ActionNudgeRight, []string{"right", "l"}, "Nudge right", "transform"},
	{ActionNudgeUp, []string{"up", "k"}, "Nudge up", "transform"},
	{ActionNudgeDown, []string{"down", "j"}, "Nudge down", "transform"},
	{ActionNudgeLeftBig, []string{"shift+left", "H"}, "Nudge left (large)", "transform"},
	{ActionNudgeRightBig, []string{"shift+right", "L"}, "Nudge right (large)", "transform"},
	{ActionNudgeUpBig, []string{"shift+up", "K"}, "Nudge up (large)", "transform"},
	{ActionNudgeDownBig, []string{"shift+down", "J"}, "Nudge down (large)", "transform"},
	{ActionScaleUp, []string{"+", "="}, "Scale up", "transform"},
	{ActionScaleDown, []string{"-", "_"}, "Scale down", "transform"},
	{ActionRotateCW, []string{"r", "."}, "Rotate clockwise", "transform"},
	{ActionRotateCCW, []string{"e", ","}, "Rotate counter-clockwise", "transform"},
	{ActionRotateSnapCW, []string{">"}, "Rotate 45° clockwise, snapped", "transform"},
	{ActionRotateSnapCCW, []string{"<"}, "Rotate 45° counter-clockwise, snapped", "transform"},

	// Mouse
	{ActionMouseDrag, []string{"drag body"}, "Move sticker", "mouse"},
	{ActionMouseResize, []string{"drag corner"}, "Resize sticker", "mouse"},
	{ActionMouseRotate, []string{"drag ↻", "shift+drag ↻"}, "Rotate (shift snaps to 45°)", "mouse"},
	{ActionMousePinchScale, []string{"wheel"}, "Pinch scale", "mouse"},
	{ActionMousePinchRotate, []string{"ctrl+wheel"}, "Pinch rotate", "mouse"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
