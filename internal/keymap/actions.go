// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit  Action = "quit"
	ActionHelp  Action = "help"
	ActionUndo  Action = "undo"
	ActionRedo  Action = "redo"
	ActionReset Action = "reset"
	ActionAdd   Action = "add"

	// Selection
	ActionSelectNext Action = "select_next"
	ActionSelectPrev Action = "select_prev"
	ActionDeselect   Action = "deselect"

	// Structural edits on the selected sticker
	ActionDelete       Action = "delete"
	ActionDuplicate    Action = "duplicate"
	ActionBringForward Action = "bring_forward"
	ActionSendBackward Action = "send_backward"
	ActionFlipH        Action = "flip_h"
	ActionFlipV        Action = "flip_v"
	ActionTogglePop    Action = "toggle_pop"

	// Keyboard transforms
	ActionNudgeLeft     Action = "nudge_left"
	ActionNudgeRight    Action = "nudge_right"
	ActionNudgeUp       Action = "nudge_up"
	ActionNudgeDown     Action = "nudge_down"
	ActionNudgeLeftBig  Action = "nudge_left_big"
	ActionNudgeRightBig Action = "nudge_right_big"
	ActionNudgeUpBig    Action = "nudge_up_big"
	ActionNudgeDownBig  Action = "nudge_down_big"
	ActionScaleUp       Action = "scale_up"
	ActionScaleDown     Action = "scale_down"
	ActionRotateCW      Action = "rotate_cw"
	ActionRotateCCW     Action = "rotate_ccw"
	ActionRotateSnapCW  Action = "rotate_snap_cw"
	ActionRotateSnapCCW Action = "rotate_snap_ccw"

	// Mouse gestures (documentation only)
	ActionMouseDrag        Action = "mouse_drag"
	ActionMouseResize      Action = "mouse_resize"
	ActionMouseRotate      Action = "mouse_rotate"
	ActionMousePinchScale  Action = "mouse_pinch_scale"
	ActionMousePinchRotate Action = "mouse_pinch_rotate"
)
