package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var errClosed = errors.New("window: already closed")

// glfwWindow is the GLFW handle behind an engineWindow.
type glfwWindow struct {
	window  *glfw.Window
	running bool
}

// openGLFW creates the GLFW window, registers the input callbacks that forward into w and
// records the real framebuffer size, which differs from the requested size on high-DPI displays.
//
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func openGLFW(w *engineWindow) (*glfwWindow, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize GLFW: %w", err)
	}

	// No OpenGL context; the surface is created through wgpu.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{window: win, running: true}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			if w.onKeyDown != nil {
				w.onKeyDown(uint32(key))
			}
		case glfw.Release:
			if w.onKeyUp != nil {
				w.onKeyUp(uint32(key))
			}
		}
	})

	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		if w.onScroll != nil {
			w.onScroll(float32(yoff))
		}
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := mouseButtonFromGLFW(button)
		if !ok {
			return
		}
		x, y := win.GetCursorPos()
		var cb func(common.MouseButton, float32, float32)
		switch action {
		case glfw.Press:
			cb = w.onMouseDown
		case glfw.Release:
			cb = w.onMouseUp
		}
		if cb != nil {
			cb(b, float32(x), float32(y))
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.onMouseMove != nil {
			w.onMouseMove(float32(x), float32(y))
		}
	})

	// Framebuffer size, not window size: pointer math and the surface both want pixels.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})
	w.width, w.height = win.GetFramebufferSize()

	return gw, nil
}

func mouseButtonFromGLFW(button glfw.MouseButton) (common.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return common.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return common.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return common.MouseButtonMiddle, true
	}
	return 0, false
}

// surfaceDescriptor builds a platform-appropriate descriptor (Windows, X11, Wayland, macOS)
// through the wgpuglfw bridge.
func (gw *glfwWindow) surfaceDescriptor() *wgpu.SurfaceDescriptor {
	if gw == nil || gw.window == nil {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

func (gw *glfwWindow) isRunning() bool {
	return gw != nil && gw.running && gw.window != nil && !gw.window.ShouldClose()
}

// poll drains pending GLFW events without blocking and reports whether the window is still open.
func (gw *glfwWindow) poll() bool {
	glfw.PollEvents()
	return gw.isRunning()
}

// close destroys the window and terminates GLFW. A second call returns errClosed.
func (gw *glfwWindow) close() error {
	if gw == nil || gw.window == nil {
		return errClosed
	}
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	gw.window = nil
	glfw.Terminate()
	return nil
}
