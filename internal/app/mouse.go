package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stickers/internal/app/popupctl"
	"github.com/llehouerou/stickers/internal/gesture"
	"github.com/llehouerou/stickers/internal/ui/stage"
)

// wheelScale is the scale factor of one wheel notch during a wheel pinch.
const wheelScale = 1.1

// handleMouseMsg maps pointer input onto gestures. A press starts one, motion
// moves it live, and release commits it as a single history entry.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if m.Popups.ActivePopup() != popupctl.None {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		return m.handleWheel(msg)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.setMessage("", false)
			m.handlePress(msg)
		}
	case tea.MouseActionMotion:
		m.handleMotion(msg)
	case tea.MouseActionRelease:
		m.finishGesture("release")
	}
	return nil
}

func (m *Model) handlePress(msg tea.MouseMsg) {
	m.finishGesture("press")

	col, row := toStage(msg.X, msg.Y)
	id, hit := m.Geometry.HitTest(m.Canvas.Current(), m.Selected, col, row)
	if hit == stage.HitNone {
		m.Selected = ""
		return
	}
	m.Selected = id

	pointer := m.Geometry.ToPoint(col, row)
	var g gesture.Gesture
	switch hit {
	case stage.HitBody:
		if d, ok := gesture.BeginDrag(m.Canvas, id, pointer, m.stageBounds()); ok {
			g = d
		}
	case stage.HitCorner:
		if r, ok := gesture.BeginResize(m.Canvas, id, pointer, m.Canvas.Limits()); ok {
			g = r
		}
	case stage.HitRotate:
		if r, ok := gesture.BeginRotate(m.Canvas, id, pointer, m.snapDegrees); ok {
			g = r
		}
	}
	if g == nil {
		return
	}
	m.Gestures.Start(g)
	m.log.Debug("gesture start", "kind", g.Kind(), "id", id)
}

func (m *Model) handleMotion(msg tea.MouseMsg) {
	col, row := toStage(msg.X, msg.Y)
	pointer := m.Geometry.ToPoint(col, row)
	switch g := m.Gestures.Active().(type) {
	case *gesture.Drag:
		g.Move(pointer)
	case *gesture.Resize:
		g.Move(pointer)
	case *gesture.Rotate:
		g.Move(pointer, msg.Shift)
	}
}

// handleWheel drives a pinch from wheel notches: plain wheel scales, ctrl
// rotates. The pinch commits once the wheel rests for pinchIdle.
func (m *Model) handleWheel(msg tea.MouseMsg) tea.Cmd {
	ds, dr := 1.0, 0.0
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		ds, dr = wheelScale, m.stepDegrees
	case tea.MouseButtonWheelDown:
		ds, dr = 1/wheelScale, -m.stepDegrees
	default:
		return nil
	}
	if msg.Ctrl {
		ds = 1
	} else {
		dr = 0
	}

	col, row := toStage(msg.X, msg.Y)
	id, hit := m.Geometry.HitTest(m.Canvas.Current(), m.Selected, col, row)
	if hit == stage.HitNone {
		id = m.Selected
	}
	if id == "" {
		return nil
	}

	p, ok := m.Gestures.Active().(*gesture.Pinch)
	if !ok || p.StickerID() != id {
		m.finishGesture("wheel")
		p, ok = gesture.BeginPinch(m.Canvas, id, m.Canvas.Limits())
		if !ok {
			return nil
		}
		m.Gestures.Start(p)
		m.log.Debug("gesture start", "kind", p.Kind(), "id", id)
	}
	m.Selected = id
	p.Step(ds, dr)

	m.PinchVersion++
	return PinchIdleCmd(m.PinchVersion)
}
