package engine

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
)

// Window is what the engine needs from a platform window. window.Window satisfies it.
type Window interface {
	controls.EventSource
	SetUpdateCallback(callback func())
	IsRunning() bool
	ProcessMessages()
	Close() error
}

// Frame is what the engine hands to the frame callback after the controls have been updated.
type Frame struct {
	// DeltaTime is the time since the previous frame in seconds.
	DeltaTime float32
	// Changed reports whether the camera moved or zoomed this frame.
	Changed bool
	// Uniform is the camera state packed for the GPU.
	Uniform camera.GPUCameraUniform
}

// Engine drives orbit controls from a window's message loop.
// Input callbacks, the controls' Update and the frame callback all run on the goroutine that
// calls Run, so the controls never see concurrent access.
type Engine interface {
	// Window returns the window being driven.
	//
	// Returns:
	//   - Window: the window instance
	Window() Window

	// Controls returns the orbit controls being driven.
	//
	// Returns:
	//   - controls.OrbitControls: the controls
	Controls() controls.OrbitControls

	// Profiler returns the frame profiler.
	//
	// Returns:
	//   - *profiler.Profiler: the profiler
	Profiler() *profiler.Profiler

	// EnableProfiler enables frame statistics.
	EnableProfiler()

	// DisableProfiler disables frame statistics.
	DisableProfiler()

	// SetFrameCallback registers the function called once per frame after the controls update.
	// Use it to upload Frame.Uniform and draw.
	//
	// Parameters:
	//   - callback: function receiving the frame
	SetFrameCallback(callback func(frame Frame))

	// SetFrameLimit caps the frame rate. Pass 0 to run a frame every message loop iteration.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Run binds the window to the controls and blocks until the window closes.
	Run()

	// Quit closes the window, which ends Run. Safe to call more than once.
	Quit()
}

type engine struct {
	window   Window
	controls controls.OrbitControls
	bindings controls.MouseBindings

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback func(frame Frame)
	frameLimit    time.Duration
	lastFrame     time.Time
	now           func() time.Time

	quitOnce sync.Once
	logger   common.Logger
}

var _ Engine = &engine{}

// NewEngine creates an Engine for the given window and controls.
// Panics when either is missing.
//
// Parameters:
//   - w: the window to drive
//   - oc: the controls to update every frame
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(w Window, oc controls.OrbitControls, options ...EngineBuilderOption) Engine {
	if w == nil || oc == nil {
		panic("engine needs a window and orbit controls")
	}
	e := &engine{
		window:   w,
		controls: oc,
		now:      time.Now,
		logger:   common.NewNopLogger(),
	}
	for _, opt := range options {
		opt(e)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger), profiler.WithInterval(time.Second))
	}
	return e
}

func (e *engine) Window() Window {
	return e.window
}

func (e *engine) Controls() controls.OrbitControls {
	return e.controls
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameCallback(callback func(frame Frame)) {
	e.frameCallback = callback
}

func (e *engine) SetFrameLimit(fps float64) {
	if fps <= 0 {
		e.frameLimit = 0
		return
	}
	e.frameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) Run() {
	controls.BindWindow(e.window, e.controls, e.bindings)
	e.lastFrame = e.now()
	e.window.SetUpdateCallback(func() {
		e.frame(e.now())
	})
	e.logger.Infof("engine: running at %dx%d", e.window.Width(), e.window.Height())
	e.window.ProcessMessages()
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if err := e.window.Close(); err != nil {
			e.logger.Errorf("engine: close window: %v", err)
		}
	})
}

// frame runs one controls update if the frame limit allows it at now.
// Returns false when the frame was skipped.
func (e *engine) frame(now time.Time) bool {
	elapsed := now.Sub(e.lastFrame)
	if e.frameLimit > 0 && elapsed < e.frameLimit {
		return false
	}
	e.lastFrame = now

	changed := e.controls.Update()
	if e.profilingEnabled {
		e.profiler.Tick(changed)
	}
	if e.frameCallback != nil {
		e.frameCallback(Frame{
			DeltaTime: float32(elapsed.Seconds()),
			Changed:   changed,
			Uniform:   camera.NewGPUCameraUniform(e.controls.Camera()),
		})
	}
	return true
}
