package controls

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// EventSource is the slice of a platform window the controls listen to.
// window.Window satisfies it.
type EventSource interface {
	SetResizeCallback(callback func(width, height int))
	SetScrollCallback(callback func(delta float32))
	SetKeyDownCallback(callback func(keyCode uint32))
	SetMouseDownCallback(callback func(button common.MouseButton, x, y float32))
	SetMouseUpCallback(callback func(button common.MouseButton, x, y float32))
	SetMouseMoveCallback(callback func(x, y float32))
	Width() int
	Height() int
}

// MouseBindings maps a mouse button to the gesture it starts.
type MouseBindings map[common.MouseButton]GestureState

// DefaultMouseBindings rotates with the left button, dollies with the middle and pans with the right.
func DefaultMouseBindings() MouseBindings {
	return MouseBindings{
		common.MouseButtonLeft:   GestureRotate,
		common.MouseButtonMiddle: GestureDolly,
		common.MouseButtonRight:  GesturePan,
	}
}

// BindWindow routes a window's input callbacks into oc and keeps the viewport (and the camera
// aspect, when the camera is a camera.Resizer) in sync with the window size.
// Replaces any callbacks previously registered for those events.
//
// Parameters:
//   - src: the window to listen to
//   - oc: the controls to drive
//   - bindings: button to gesture map (nil for DefaultMouseBindings)
func BindWindow(src EventSource, oc OrbitControls, bindings MouseBindings) {
	if bindings == nil {
		bindings = DefaultMouseBindings()
	}

	resize := func(width, height int) {
		oc.SetViewport(width, height)
		if r, ok := oc.Camera().(camera.Resizer); ok && width > 0 && height > 0 {
			r.SetSize(width, height)
		}
	}
	resize(src.Width(), src.Height())

	src.SetResizeCallback(resize)
	src.SetScrollCallback(oc.Wheel)
	src.SetKeyDownCallback(func(keyCode uint32) {
		oc.HandleKey(keyCode)
	})
	src.SetMouseDownCallback(func(button common.MouseButton, x, y float32) {
		if kind, ok := bindings[button]; ok {
			oc.BeginGesture(kind, mgl32.Vec2{x, y})
		}
	})
	src.SetMouseUpCallback(func(button common.MouseButton, x, y float32) {
		if kind, ok := bindings[button]; ok && oc.State() == kind {
			oc.AdvanceGesture(mgl32.Vec2{x, y})
			oc.EndGesture()
		}
	})
	src.SetMouseMoveCallback(func(x, y float32) {
		oc.AdvanceGesture(mgl32.Vec2{x, y})
	})
}
