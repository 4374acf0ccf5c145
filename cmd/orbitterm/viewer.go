package main

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// cellAspect is how many "pixels" tall a terminal cell counts as, relative to its width.
const cellAspect = 2

const helpLine = "drag: L rotate, R pan, M dolly | wheel/+/-: dolly | arrows: pan | a auto  d damping  s save  r reset  o ortho  q quit"

// viewer owns the controls and every piece of state the terminal loop touches.
// All methods run on the render goroutine.
type viewer struct {
	controls     controls.OrbitControls
	orthographic bool
	damping      float32
	autoRotate   float32

	buttons tcell.ButtonMask
	width   int
	height  int

	scene    []segment
	profiler *profiler.Profiler
	logger   common.Logger
}

func newViewer(orthographic bool, damping, autoRotate float32, logger common.Logger) *viewer {
	v := &viewer{
		orthographic: orthographic,
		damping:      damping,
		autoRotate:   autoRotate,
		scene:        defaultScene(),
		profiler:     profiler.NewProfiler(profiler.WithLogger(logger)),
		logger:       logger,
	}

	position := mgl32.Vec3{4, 3, 6}
	v.controls = controls.NewOrbitControls(newCamera(orthographic, position, mgl32.Vec3{}),
		controls.WithDamping(policyFor(damping)),
		controls.WithAutoRotate(policyFor(autoRotate)),
		controls.WithDistanceLimits(1.5, 40),
		controls.WithZoomLimits(0.25, 8),
		controls.WithLogger(logger),
	)
	return v
}

func newCamera(orthographic bool, position, target mgl32.Vec3) camera.Camera {
	if orthographic {
		return camera.NewOrthographicCamera(
			camera.WithPosition(position),
			camera.WithTarget(target),
			camera.WithBounds(-4, 4, 3, -3),
		)
	}
	return camera.NewPerspectiveCamera(
		camera.WithPosition(position),
		camera.WithTarget(target),
		camera.WithFov(mgl32.DegToRad(50)),
	)
}

func policyFor(strength float32) controls.Policy {
	if strength <= 0 {
		return controls.Disabled()
	}
	return controls.Enabled(strength)
}

func toggle(p controls.Policy, strength float32) controls.Policy {
	if p.IsEnabled() {
		return controls.Disabled()
	}
	return controls.Enabled(strength)
}

// resize converts a terminal size in cells to the viewport the controls and camera see.
func (v *viewer) resize(cols, rows int) {
	v.width, v.height = cols, rows*cellAspect
	v.controls.SetViewport(v.width, v.height)
	if r, ok := v.controls.Camera().(camera.Resizer); ok {
		r.SetSize(v.width, v.height)
	}
}

// toggleProjection swaps the camera variant, keeping the pose and the controls' policies.
func (v *viewer) toggleProjection() {
	old := v.controls
	v.orthographic = !v.orthographic

	cam := newCamera(v.orthographic, old.Camera().Position(), old.Target())
	cam.SetUp(old.Camera().Up())

	minDist, maxDist := old.DistanceLimits()
	minZoom, maxZoom := old.ZoomLimits()
	v.controls = controls.NewOrbitControls(cam,
		controls.WithTarget(old.Target()),
		controls.WithDamping(old.DampingPolicy()),
		controls.WithAutoRotate(old.AutoRotatePolicy()),
		controls.WithDistanceLimits(minDist, maxDist),
		controls.WithZoomLimits(minZoom, maxZoom),
		controls.WithLogger(v.logger),
	)
	v.buttons = 0
	if v.width > 0 && v.height > 0 {
		v.resize(v.width, v.height/cellAspect)
	}
	v.logger.Infof("orbitterm: switched to %s projection", v.projectionName())
}

func (v *viewer) projectionName() string {
	if v.orthographic {
		return "orthographic"
	}
	return "perspective"
}

// gestureFor picks the gesture for a set of held buttons, primary first.
func gestureFor(buttons tcell.ButtonMask) controls.GestureState {
	switch {
	case buttons&tcell.ButtonPrimary != 0:
		return controls.GestureRotate
	case buttons&tcell.ButtonSecondary != 0:
		return controls.GesturePan
	case buttons&tcell.ButtonMiddle != 0:
		return controls.GestureDolly
	}
	return controls.GestureNone
}

// handleEvent applies one terminal event. It returns true when the program should exit.
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.resize(ev.Size())
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	}
	return false
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.controls.HandleKey(common.KeyUp)
	case tcell.KeyDown:
		v.controls.HandleKey(common.KeyDown)
	case tcell.KeyLeft:
		v.controls.HandleKey(common.KeyLeft)
	case tcell.KeyRight:
		v.controls.HandleKey(common.KeyRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'a':
			v.controls.SetAutoRotatePolicy(toggle(v.controls.AutoRotatePolicy(), max(v.autoRotate, 2)))
		case 'd':
			v.controls.SetDampingPolicy(toggle(v.controls.DampingPolicy(), max(v.damping, 0.1)))
		case 's':
			v.controls.Save()
		case 'r':
			v.controls.Reset()
		case 'o':
			v.toggleProjection()
		case '+', '=':
			v.controls.Wheel(1)
		case '-', '_':
			v.controls.Wheel(-1)
		}
	}
	return false
}

func (v *viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	point := mgl32.Vec2{float32(x), float32(y * cellAspect)}
	buttons := ev.Buttons()

	if buttons&tcell.WheelUp != 0 {
		v.controls.Wheel(1)
	}
	if buttons&tcell.WheelDown != 0 {
		v.controls.Wheel(-1)
	}

	held := buttons & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	switch {
	case held == v.buttons && held != 0:
		v.controls.AdvanceGesture(point)
	case held != v.buttons:
		if v.buttons != 0 {
			v.controls.AdvanceGesture(point)
			v.controls.EndGesture()
		}
		if held != 0 {
			v.controls.BeginGesture(gestureFor(held), point)
		}
	}
	v.buttons = held
}

// frame advances the controls by one tick.
func (v *viewer) frame() bool {
	changed := v.controls.Update()
	v.profiler.Tick(changed)
	return changed
}

func (v *viewer) statusLine() string {
	s := v.controls.Spherical()
	stats := v.profiler.Stats()
	return fmt.Sprintf("%s | r %.2f  phi %.2f  theta %.2f  zoom %.2f | damping %s | auto %s | %.0f fps",
		v.projectionName(), s.Radius, s.Phi, s.Theta, v.controls.Camera().Zoom(),
		v.controls.DampingPolicy(), v.controls.AutoRotatePolicy(), stats.FPS)
}

func (v *viewer) draw(c canvas) {
	_, rows := c.Size()
	drawScene(c, v.controls.Camera(), v.scene, tcell.StyleDefault.Foreground(tcell.ColorTeal))
	drawText(c, 0, 0, tcell.StyleDefault.Foreground(tcell.ColorWhite), helpLine)
	drawText(c, 0, rows-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), v.statusLine())
}
