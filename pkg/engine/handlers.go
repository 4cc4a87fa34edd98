package engine

import "github.com/taigrr/drag3d/pkg/input"

// Dispatch applies a single input event.
func (e *Engine) Dispatch(ev input.Event) {
	switch ev := ev.(type) {
	case input.KeyDown:
		e.KeyDown(ev.Key)
	case input.KeyUp:
		e.KeyUp(ev.Key)
	case input.MouseDown:
		e.MouseDown(ev.X, ev.Y)
	case input.MouseMove:
		e.MouseMove(ev.X, ev.Y)
	case input.MouseUp:
		e.MouseUp()
	case input.Quit:
		e.stop("quit")
	}
}

// KeyDown marks k as held.
func (e *Engine) KeyDown(k input.Key) {
	e.Input.Press(k, e.now())
}

// KeyUp releases k.
func (e *Engine) KeyUp(k input.Key) {
	e.Input.Release(k)
}

// MouseDown starts a look drag at (x, y).
func (e *Engine) MouseDown(x, y int) {
	e.Input.BeginDrag(x, y)
}

// MouseMove turns the camera by the drag delta: right increases yaw, up
// increases pitch. Moves outside a drag are ignored.
func (e *Engine) MouseMove(x, y int) {
	dx, dy, ok := e.Input.Drag(x, y)
	if !ok {
		return
	}
	dYaw := float64(dx) * MouseSensitivity
	dPitch := -float64(dy) * MouseSensitivity

	if e.look != nil {
		e.look.turn(dYaw, dPitch)
		return
	}
	e.Camera.Rotate(dYaw, dPitch)
}

// MouseUp ends the look drag.
func (e *Engine) MouseUp() {
	e.Input.EndDrag()
}
