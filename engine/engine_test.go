package engine

import (
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow runs its update callback a fixed number of times and replays scripted input
// before each iteration.
type fakeWindow struct {
	iterations int
	script     map[int]func(w *fakeWindow)
	closed     int

	onUpdate    func()
	onResize    func(width, height int)
	onScroll    func(delta float32)
	onKeyDown   func(keyCode uint32)
	onMouseDown func(button common.MouseButton, x, y float32)
	onMouseUp   func(button common.MouseButton, x, y float32)
	onMouseMove func(x, y float32)
}

func (f *fakeWindow) SetUpdateCallback(cb func())                  { f.onUpdate = cb }
func (f *fakeWindow) SetResizeCallback(cb func(width, height int)) { f.onResize = cb }
func (f *fakeWindow) SetScrollCallback(cb func(delta float32))     { f.onScroll = cb }
func (f *fakeWindow) SetKeyDownCallback(cb func(keyCode uint32))   { f.onKeyDown = cb }
func (f *fakeWindow) SetMouseDownCallback(cb func(button common.MouseButton, x, y float32)) {
	f.onMouseDown = cb
}
func (f *fakeWindow) SetMouseUpCallback(cb func(button common.MouseButton, x, y float32)) {
	f.onMouseUp = cb
}
func (f *fakeWindow) SetMouseMoveCallback(cb func(x, y float32)) { f.onMouseMove = cb }
func (f *fakeWindow) Width() int                                 { return 640 }
func (f *fakeWindow) Height() int                                { return 480 }
func (f *fakeWindow) IsRunning() bool                            { return f.closed == 0 }
func (f *fakeWindow) Close() error                               { f.closed++; return nil }

func (f *fakeWindow) ProcessMessages() {
	for i := 0; i < f.iterations && f.IsRunning(); i++ {
		if step, ok := f.script[i]; ok {
			step(f)
		}
		if f.onUpdate != nil {
			f.onUpdate()
		}
	}
}

func TestNewEngine_PanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() { NewEngine(nil, nil) })
}

func TestEngine_RunDrivesControls(t *testing.T) {
	cam := camera.NewPerspectiveCamera()
	oc := controls.NewOrbitControls(cam)
	win := &fakeWindow{
		iterations: 4,
		script: map[int]func(w *fakeWindow){
			1: func(w *fakeWindow) {
				w.onMouseDown(common.MouseButtonLeft, 0, 0)
				w.onMouseMove(48, 0)
				w.onMouseUp(common.MouseButtonLeft, 48, 0)
			},
			3: func(w *fakeWindow) { w.onScroll(1) },
		},
	}

	e := NewEngine(win, oc)
	var frames []Frame
	e.SetFrameCallback(func(f Frame) { frames = append(frames, f) })
	e.Run()

	require.Len(t, frames, 4)
	assert.False(t, frames[0].Changed)
	assert.True(t, frames[1].Changed, "the drag moved the camera")
	assert.False(t, frames[2].Changed)
	assert.True(t, frames[3].Changed, "the scroll zoomed the camera")

	w, h := oc.Viewport()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.InDelta(t, -2*math.Pi*48/480, oc.AzimuthAngle(), 1e-5)

	last := frames[3].Uniform
	assert.Equal(t, [16]float32(cam.ViewProjectionMatrix()), last.ViewProj)
	assert.Equal(t, [3]float32(cam.Position()), last.CameraPosition)
}

func TestEngine_FrameLimit(t *testing.T) {
	oc := controls.NewOrbitControls(camera.NewPerspectiveCamera())
	e := NewEngine(&fakeWindow{}, oc, WithFrameLimit(10)).(*engine)

	start := time.Unix(100, 0)
	e.lastFrame = start
	assert.False(t, e.frame(start.Add(50*time.Millisecond)))
	assert.True(t, e.frame(start.Add(100*time.Millisecond)))
	assert.False(t, e.frame(start.Add(150*time.Millisecond)))

	e.SetFrameLimit(0)
	assert.True(t, e.frame(start.Add(151*time.Millisecond)))
}

func TestEngine_ProfilerCountsViewChanges(t *testing.T) {
	start := time.Unix(100, 0)
	clock := start
	p := profiler.NewProfiler(profiler.WithClock(func() time.Time { return clock }))

	oc := controls.NewOrbitControls(camera.NewPerspectiveCamera())
	e := NewEngine(&fakeWindow{}, oc, WithProfiling(true), WithProfiler(p)).(*engine)
	e.lastFrame = start

	oc.RotateLeft(0.1)
	clock = start.Add(500 * time.Millisecond)
	e.frame(clock)
	clock = start.Add(time.Second)
	e.frame(clock)

	assert.Equal(t, 1, e.Profiler().Stats().ViewChanges)
	assert.InDelta(t, 2, e.Profiler().Stats().FPS, 1e-9)
}

func TestEngine_QuitClosesOnce(t *testing.T) {
	win := &fakeWindow{}
	e := NewEngine(win, controls.NewOrbitControls(camera.NewPerspectiveCamera()))

	e.Quit()
	e.Quit()
	assert.Equal(t, 1, win.closed)
}

func TestEngine_MouseBindings(t *testing.T) {
	oc := controls.NewOrbitControls(camera.NewPerspectiveCamera())
	win := &fakeWindow{
		iterations: 1,
		script: map[int]func(w *fakeWindow){
			0: func(w *fakeWindow) { w.onMouseDown(common.MouseButtonLeft, 0, 0) },
		},
	}
	NewEngine(win, oc, WithMouseBindings(controls.MouseBindings{common.MouseButtonLeft: controls.GesturePan})).Run()

	assert.Equal(t, controls.GesturePan, oc.State())
	assert.Equal(t, mgl32.Vec3{}, oc.Target())
}
