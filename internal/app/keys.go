package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stickers/internal/app/handler"
	"github.com/llehouerou/stickers/internal/errmsg"
	"github.com/llehouerou/stickers/internal/keymap"
)

// Keyboard steps.
const (
	bigNudge   = 5 // cells per large nudge
	scaleRatio = 1.1
)

var (
	errEmptyPalette = errors.New("palette is empty")
	errNotOnCanvas  = errors.New("sticker is not on the canvas")
)

var helpContexts = []string{"global", "sticker", "transform", "mouse"}

// handleKeyMsg routes keys to the active popup, otherwise resolves them to
// an action. Every action ends the gesture in progress first so discrete
// edits never interleave with live updates.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return cmd
	}

	a := m.Keys.Resolve(msg.String())
	if a == "" {
		return nil
	}
	m.setMessage("", false)
	m.finishGesture(string(a))

	_, cmd := handler.Chain(a,
		m.handleGlobalAction,
		m.handleStickerAction,
		m.handleTransformAction,
	)
	return cmd
}

func (m *Model) handleGlobalAction(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		return handler.Handled(m.Popups.ShowHelp(helpContexts))
	case keymap.ActionUndo:
		m.Canvas.Undo()
	case keymap.ActionRedo:
		m.Canvas.Redo()
	case keymap.ActionAdd:
		m.addSticker()
	case keymap.ActionReset:
		return handler.Handled(m.Popups.ShowConfirm(
			"Reset canvas?",
			"Every sticker edit and the undo history will be discarded.",
			resetContext,
		))
	case keymap.ActionSelectNext:
		m.cycleSelection(1)
	case keymap.ActionSelectPrev:
		m.cycleSelection(-1)
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handleStickerAction(a keymap.Action) handler.Result {
	id := m.Selected
	if id == "" {
		return handler.NotHandled
	}
	switch a {
	case keymap.ActionDeselect:
		m.Selected = ""
	case keymap.ActionDelete:
		if m.Canvas.Delete(id) {
			m.Selected = ""
		}
	case keymap.ActionDuplicate:
		newID, ok := m.Canvas.Duplicate(id)
		if !ok {
			m.setMessage(errmsg.FormatWith(errmsg.OpStickerDuplicate, id, errNotOnCanvas), true)
			break
		}
		m.Selected = newID
	case keymap.ActionBringForward:
		m.Canvas.BringForward(id)
	case keymap.ActionSendBackward:
		m.Canvas.SendBackward(id)
	case keymap.ActionFlipH:
		m.Canvas.Flip(id, true, false)
	case keymap.ActionFlipV:
		m.Canvas.Flip(id, false, true)
	case keymap.ActionTogglePop:
		m.Canvas.TogglePopped(id)
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handleTransformAction(a keymap.Action) handler.Result {
	id := m.Selected
	if id == "" {
		return handler.NotHandled
	}
	cw, ch := m.Geometry.CellWidth, m.Geometry.CellHeight
	bounds := m.stageBounds()
	switch a {
	case keymap.ActionNudgeLeft:
		m.Canvas.Nudge(id, -cw, 0, bounds)
	case keymap.ActionNudgeRight:
		m.Canvas.Nudge(id, cw, 0, bounds)
	case keymap.ActionNudgeUp:
		m.Canvas.Nudge(id, 0, -ch, bounds)
	case keymap.ActionNudgeDown:
		m.Canvas.Nudge(id, 0, ch, bounds)
	case keymap.ActionNudgeLeftBig:
		m.Canvas.Nudge(id, -cw*bigNudge, 0, bounds)
	case keymap.ActionNudgeRightBig:
		m.Canvas.Nudge(id, cw*bigNudge, 0, bounds)
	case keymap.ActionNudgeUpBig:
		m.Canvas.Nudge(id, 0, -ch*bigNudge, bounds)
	case keymap.ActionNudgeDownBig:
		m.Canvas.Nudge(id, 0, ch*bigNudge, bounds)
	case keymap.ActionScaleUp:
		m.Canvas.ScaleBy(id, scaleRatio)
	case keymap.ActionScaleDown:
		m.Canvas.ScaleBy(id, 1/scaleRatio)
	case keymap.ActionRotateCW:
		m.Canvas.RotateBy(id, m.stepDegrees, 0)
	case keymap.ActionRotateCCW:
		m.Canvas.RotateBy(id, -m.stepDegrees, 0)
	case keymap.ActionRotateSnapCW:
		m.Canvas.RotateBy(id, m.snapDegrees, m.snapDegrees)
	case keymap.ActionRotateSnapCCW:
		m.Canvas.RotateBy(id, -m.snapDegrees, m.snapDegrees)
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// addSticker places the next palette emoji at the stage centre.
func (m *Model) addSticker() {
	if len(m.palette) == 0 {
		m.setMessage(errmsg.Format(errmsg.OpStickerAdd, errEmptyPalette), true)
		return
	}
	emoji := m.palette[m.paletteNext%len(m.palette)]
	m.paletteNext++
	c := m.Geometry.Center(m.StageSize())
	if id, ok := m.Canvas.Add(emoji, c.X, c.Y); ok {
		m.Selected = id
	}
}

// cycleSelection moves the selection through the stacking order.
func (m *Model) cycleSelection(dir int) {
	ids := m.Canvas.Current().IDs()
	if len(ids) == 0 {
		m.Selected = ""
		return
	}
	i := -1
	for j, id := range ids {
		if id == m.Selected {
			i = j
			break
		}
	}
	switch {
	case i < 0 && dir > 0:
		i = 0
	case i < 0:
		i = len(ids) - 1
	default:
		i = (i + dir + len(ids)) % len(ids)
	}
	m.Selected = ids[i]
}
