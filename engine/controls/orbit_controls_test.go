package controls

import (
	"fmt"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) DebugEnabled() bool                { return false }
func (l *recordingLogger) SetDebug(enabled bool)             {}
func (l *recordingLogger) Debugf(format string, args ...any) {}
func (l *recordingLogger) Infof(format string, args ...any)  {}
func (l *recordingLogger) Errorf(format string, args ...any) {}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

var _ common.Logger = &recordingLogger{}

func newTestControls(t *testing.T, options ...OrbitControlsOption) (OrbitControls, camera.PerspectiveCamera) {
	t.Helper()
	cam := camera.NewPerspectiveCamera()
	oc := NewOrbitControls(cam, options...)
	require.NotNil(t, oc)
	return oc, cam
}

func TestNewOrbitControls_Defaults(t *testing.T) {
	oc, _ := newTestControls(t)

	s := oc.Spherical()
	assert.InDelta(t, 2, s.Radius, 1e-6)
	assert.InDelta(t, math.Pi/2, s.Phi, 1e-6)
	assert.InDelta(t, 0, s.Theta, 1e-6)

	assert.Equal(t, Enabled(1), oc.ZoomPolicy())
	assert.Equal(t, Enabled(1), oc.RotatePolicy())
	assert.Equal(t, Enabled(1), oc.PanPolicy())
	assert.Equal(t, Disabled(), oc.AutoRotatePolicy())
	assert.Equal(t, Disabled(), oc.DampingPolicy())

	lo, hi := oc.DistanceLimits()
	assert.Zero(t, lo)
	assert.True(t, math.IsInf(float64(hi), 1))
	lo, hi = oc.PolarAngleLimits()
	assert.Zero(t, lo)
	assert.InDelta(t, math.Pi, hi, 1e-6)

	w, h := oc.Viewport()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
	assert.True(t, oc.ScreenSpacePanning())
	assert.Equal(t, float32(7), oc.KeyPanSpeed())
	assert.Equal(t, GestureNone, oc.State())
}

func TestNewOrbitControls_NilCameraPanics(t *testing.T) {
	assert.Panics(t, func() { NewOrbitControls(nil) })
}

func TestOrbitControls_UpdateWithoutInputIsIdempotent(t *testing.T) {
	oc, cam := newTestControls(t)
	position := cam.Position()
	view := cam.ViewMatrix()

	for range 5 {
		assert.False(t, oc.Update())
	}
	assert.Equal(t, position, cam.Position())
	assert.Equal(t, view, cam.ViewMatrix())
}

func TestOrbitControls_PolarAngleStaysOffThePoles(t *testing.T) {
	oc, cam := newTestControls(t)

	oc.RotateUp(10)
	require.True(t, oc.Update())
	assert.InDelta(t, common.Epsilon, oc.PolarAngle(), 1e-6)
	assert.InDelta(t, 2, cam.Position().Y(), 1e-4)

	oc.RotateUp(-20)
	oc.Update()
	assert.InDelta(t, math.Pi-float64(common.Epsilon), oc.PolarAngle(), 1e-6)
	assert.InDelta(t, -2, cam.Position().Y(), 1e-4)
}

func TestOrbitControls_CameraStartingOnPoleIsLifted(t *testing.T) {
	cam := camera.NewPerspectiveCamera(camera.WithPosition(mgl32.Vec3{0, 2, 0}))
	oc := NewOrbitControls(cam)

	assert.InDelta(t, common.Epsilon, oc.PolarAngle(), 1e-9)
	offset := cam.Position().Sub(oc.Target())
	assert.Greater(t, SphericalFromVec3(offset).Phi, common.Epsilon/2, "the camera itself left the pole")
	assert.Greater(t, mgl32.Vec2{offset.X(), offset.Z()}.Len(), float32(0))

	require.NotEqual(t, mgl32.Ident4(), cam.ViewMatrix())
	eyeSpaceTarget := cam.ViewMatrix().Mul4x1(oc.Target().Vec4(1))
	assert.InDelta(t, -2, eyeSpaceTarget.Z(), 1e-4, "the view looks down at the target")

	assert.False(t, oc.Update(), "once lifted the pose is stable")

	before := cam.Position()
	oc.RotateLeft(0.5)
	require.True(t, oc.Update())
	assert.NotEqual(t, before, cam.Position())
	assert.NotEqual(t, mgl32.Ident4(), cam.ViewMatrix())
}

func TestOrbitControls_PolarAngleLimits(t *testing.T) {
	oc, _ := newTestControls(t, WithPolarAngleLimits(math.Pi/4, math.Pi/2))

	oc.RotateUp(1)
	oc.Update()
	assert.InDelta(t, math.Pi/4, oc.PolarAngle(), 1e-6)

	oc.RotateUp(-2)
	oc.Update()
	assert.InDelta(t, math.Pi/2, oc.PolarAngle(), 1e-6)
}

func TestOrbitControls_DistanceLimits(t *testing.T) {
	cam := camera.NewOrthographicCamera(camera.WithPosition(mgl32.Vec3{0, 0, 2}))
	oc := NewOrbitControls(cam, WithDistanceLimits(1, 3))

	oc.DollyOut(0.1)
	oc.Update()
	assert.InDelta(t, 3, oc.Distance(), 1e-5)

	oc.DollyIn(0.01)
	oc.Update()
	assert.InDelta(t, 1, oc.Distance(), 1e-5)
}

func TestOrbitControls_InvertedLimitsCollapseToLowerBound(t *testing.T) {
	logger := &recordingLogger{}
	oc, _ := newTestControls(t, WithLogger(logger))

	oc.SetDistanceLimits(5, 1)
	require.Len(t, logger.warnings, 1)
	assert.Contains(t, logger.warnings[0], "distance")

	oc.Update()
	assert.InDelta(t, 5, oc.Distance(), 1e-5)
}

func TestOrbitControls_WithoutDampingDeltasAreConsumed(t *testing.T) {
	oc, _ := newTestControls(t)
	impl := oc.(*orbitControlsImpl)

	oc.RotateLeft(0.3)
	require.True(t, oc.Update())
	assert.InDelta(t, -0.3, oc.AzimuthAngle(), 1e-5)
	assert.Equal(t, Spherical{}, impl.sphericalDelta)
	assert.Equal(t, mgl32.Vec3{}, impl.panOffset)
	assert.Equal(t, float32(1), impl.scale)

	assert.False(t, oc.Update(), "nothing left to apply")
}

func TestOrbitControls_DampingDecaysGeometrically(t *testing.T) {
	oc, _ := newTestControls(t, WithDamping(Enabled(0.25)))
	impl := oc.(*orbitControlsImpl)

	oc.RotateLeft(0.4)
	oc.Update()
	assert.InDelta(t, -0.1, oc.AzimuthAngle(), 1e-5)
	assert.InDelta(t, -0.3, impl.sphericalDelta.Theta, 1e-6)

	oc.Update()
	assert.InDelta(t, -0.175, oc.AzimuthAngle(), 1e-5)
	assert.InDelta(t, -0.225, impl.sphericalDelta.Theta, 1e-6)

	for range 100 {
		oc.Update()
	}
	assert.InDelta(t, -0.4, oc.AzimuthAngle(), 1e-4, "the full rotation is applied in the limit")
}

func TestOrbitControls_DampingConvergesOnConstantInput(t *testing.T) {
	const (
		rate   = 0.01
		factor = 0.25
	)
	oc, _ := newTestControls(t, WithDamping(Enabled(factor)))

	previous := oc.AzimuthAngle()
	lastStep := float32(0)
	residual := float64(rate)
	for frame := 1; frame <= 10; frame++ {
		oc.RotateLeft(rate)
		require.True(t, oc.Update())

		step := previous - oc.AzimuthAngle()
		previous = oc.AzimuthAngle()
		assert.Greater(t, step, lastStep, "frame %d: the per-frame rotation keeps growing", frame)
		assert.Less(t, step, float32(rate), "frame %d: and never overshoots the input rate", frame)

		residual *= 1 - factor
		assert.InDelta(t, residual, rate-float64(step), 1e-5, "frame %d: the lag shrinks by 1-factor", frame)
		lastStep = step
	}
}

func TestOrbitControls_AutoRotate(t *testing.T) {
	oc, _ := newTestControls(t)
	before := oc.AzimuthAngle()
	oc.Update()
	assert.Equal(t, before, oc.AzimuthAngle(), "disabled auto-rotate does nothing")

	oc.SetAutoRotatePolicy(Enabled(1))
	require.True(t, oc.Update())
	assert.InDelta(t, before-2*math.Pi/3600, oc.AzimuthAngle(), 1e-5)

	oc.BeginGesture(GestureRotate, mgl32.Vec2{})
	after := oc.AzimuthAngle()
	oc.Update()
	assert.InDelta(t, after, oc.AzimuthAngle(), 1e-6, "auto-rotate pauses during a gesture")
}

func TestOrbitControls_SaveReset(t *testing.T) {
	oc, cam := newTestControls(t)
	oc.Save()

	oc.BeginGesture(GestureRotate, mgl32.Vec2{0, 0})
	oc.AdvanceGesture(mgl32.Vec2{100, 50})
	oc.Wheel(1)
	oc.PanByPixels(10, 10)
	require.True(t, oc.Update())
	require.NotEqual(t, mgl32.Vec3{0, 0, 2}, cam.Position())

	oc.RotateLeft(1)
	oc.Reset()

	assert.Equal(t, mgl32.Vec3{0, 0, 2}, cam.Position())
	assert.Equal(t, mgl32.Vec3{}, oc.Target())
	assert.Equal(t, float32(1), cam.Zoom())
	assert.Equal(t, GestureNone, oc.State())
	assert.False(t, oc.Update(), "pending input was dropped by the reset")
}

func TestOrbitControls_ResetWithoutSaveRestoresConstruction(t *testing.T) {
	oc, cam := newTestControls(t)
	oc.RotateUp(0.5)
	oc.Update()

	oc.Reset()
	assert.Equal(t, mgl32.Vec3{0, 0, 2}, cam.Position())
}

func TestOrbitControls_PerspectiveDollyZooms(t *testing.T) {
	oc, cam := newTestControls(t)

	oc.Wheel(1)
	assert.True(t, oc.Update(), "a zoom change counts as a change")
	assert.InDelta(t, 1/0.95, cam.Zoom(), 1e-6)
	assert.InDelta(t, 2, oc.Distance(), 1e-5, "perspective dolly leaves the distance alone")

	oc.Wheel(-1)
	oc.Update()
	assert.InDelta(t, 1, cam.Zoom(), 1e-6)

	oc.SetZoomLimits(0.5, 1.2)
	for range 10 {
		oc.Wheel(1)
	}
	assert.InDelta(t, 1.2, cam.Zoom(), 1e-6)
}

func TestOrbitControls_InvalidDollyScaleIsIgnored(t *testing.T) {
	oc, cam := newTestControls(t)
	inf := float32(math.Inf(1))

	for _, dolly := range []func(){
		func() { oc.DollyIn(0) },
		func() { oc.DollyIn(-2) },
		func() { oc.DollyIn(inf) },
		func() { oc.DollyOut(0) },
		func() { oc.DollyOut(-1) },
	} {
		dolly()
		assert.False(t, oc.Update())
		assert.Equal(t, float32(1), cam.Zoom())
	}
	proj := cam.ProjectionMatrix()
	for i := range proj {
		assert.True(t, common.IsFinite(proj[i]), "projection element %d is %v", i, proj[i])
	}

	ortho := camera.NewOrthographicCamera(camera.WithPosition(mgl32.Vec3{0, 0, 10}))
	orthoControls := NewOrbitControls(ortho)
	orthoControls.DollyOut(-1)
	orthoControls.DollyIn(0)
	assert.False(t, orthoControls.Update())
	assert.InDelta(t, 10, orthoControls.Distance(), 1e-5)
}

func TestOrbitControls_MouseDollyDirection(t *testing.T) {
	oc, cam := newTestControls(t)

	oc.BeginGesture(GestureDolly, mgl32.Vec2{0, 100})
	oc.AdvanceGesture(mgl32.Vec2{0, 80})
	assert.Greater(t, cam.Zoom(), float32(1), "dragging up dollies in")

	oc.AdvanceGesture(mgl32.Vec2{0, 120})
	assert.InDelta(t, 1, cam.Zoom(), 1e-6, "dragging down dollies out")
}

func TestOrbitControls_OrthographicDollyScalesRadius(t *testing.T) {
	cam := camera.NewOrthographicCamera(camera.WithPosition(mgl32.Vec3{0, 0, 10}))
	oc := NewOrbitControls(cam)
	_, h0 := cam.VisibleExtent(oc.Distance())

	oc.Wheel(1)
	require.True(t, oc.Update())
	assert.InDelta(t, 9.5, oc.Distance(), 1e-4)
	assert.Equal(t, float32(1), cam.Zoom(), "orthographic dolly does not touch zoom")

	_, h1 := cam.VisibleExtent(oc.Distance())
	assert.InDelta(t, h0*0.95, h1, 1e-4)
}

func TestOrbitControls_Pan(t *testing.T) {
	oc, cam := newTestControls(t)
	_, visibleHeight := cam.VisibleExtent(2)
	step := 100 * visibleHeight / 1080

	oc.PanByPixels(100, 0)
	oc.Update()
	assert.InDelta(t, -step, oc.Target().X(), 1e-4, "dragging right moves the target left")
	assert.True(t, cam.Position().Sub(oc.Target()).ApproxEqualThreshold(mgl32.Vec3{0, 0, 2}, 1e-5),
		"the camera moves with the target")

	oc.PanByPixels(0, 100)
	oc.Update()
	assert.InDelta(t, step, oc.Target().Y(), 1e-4, "screen-space pans follow the camera's up axis")
}

func TestOrbitControls_GroundPlanePan(t *testing.T) {
	oc, _ := newTestControls(t, WithScreenSpacePanning(false))
	_, visibleHeight := oc.Camera().VisibleExtent(2)

	oc.PanByPixels(0, 100)
	oc.Update()
	assert.InDelta(t, 0, oc.Target().Y(), 1e-5)
	assert.InDelta(t, -100*visibleHeight/1080, oc.Target().Z(), 1e-4)
}

func TestOrbitControls_AzimuthLimits(t *testing.T) {
	oc, _ := newTestControls(t)
	oc.SetAzimuthAngleLimits(-0.5, 0.5)

	oc.RotateLeft(-1)
	oc.Update()
	assert.InDelta(t, 0.5, oc.AzimuthAngle(), 1e-5)

	oc.RotateLeft(2)
	oc.Update()
	assert.InDelta(t, -0.5, oc.AzimuthAngle(), 1e-5)
}

func TestClampAzimuth(t *testing.T) {
	inf := float32(math.Inf(1))
	assert.Equal(t, float32(3), clampAzimuth(3, -inf, inf))
	assert.Equal(t, float32(0.5), clampAzimuth(1, -0.5, 0.5))

	// min > max wraps through ±π.
	assert.Equal(t, float32(3.1), clampAzimuth(3.1, 3, -3))
	assert.Equal(t, float32(-3), clampAzimuth(-0.1, 3, -3))
	assert.Equal(t, float32(3), clampAzimuth(2, 3, -3))

	// Theta past ±π snaps to the bound nearest its wrapped equivalent.
	assert.InDelta(t, -math.Pi/4, clampAzimuth(3.2, -math.Pi/4, math.Pi/4), 1e-6)
	assert.InDelta(t, math.Pi/4, clampAzimuth(-3.2, -math.Pi/4, math.Pi/4), 1e-6)
	assert.InDelta(t, 0.2, clampAzimuth(0.2+4*math.Pi, -math.Pi/4, math.Pi/4), 1e-5)

	assert.InDelta(t, 4-2*math.Pi, wrapPi(4), 1e-6)
	assert.InDelta(t, -1, wrapPi(-1-6*math.Pi), 1e-5)
}

func TestOrbitControls_NonDefaultUp(t *testing.T) {
	cam := camera.NewPerspectiveCamera(
		camera.WithPosition(mgl32.Vec3{0, -2, 0}),
		camera.WithUp(mgl32.Vec3{0, 0, 1}),
	)
	oc := NewOrbitControls(cam)
	position := cam.Position()

	for range 3 {
		assert.False(t, oc.Update())
	}
	assert.Equal(t, position, cam.Position())

	oc.RotateUp(0.5)
	oc.Update()
	want := mgl32.Vec3{0, -2 * float32(math.Cos(0.5)), 2 * float32(math.Sin(0.5))}
	assert.True(t, cam.Position().ApproxEqualThreshold(want, 1e-4), "got %v want %v", cam.Position(), want)
}

func TestOrbitControls_Pinch(t *testing.T) {
	oc, cam := newTestControls(t)

	oc.BeginTouch(GestureTouchDollyPan, mgl32.Vec2{0, 0}, mgl32.Vec2{100, 0})
	require.Equal(t, GestureTouchDollyPan, oc.State())

	oc.AdvanceTouch(mgl32.Vec2{0, 0}, mgl32.Vec2{200, 0})
	assert.InDelta(t, 2, cam.Zoom(), 1e-5, "spreading the fingers zooms in")
}

func TestOrbitControls_DisabledPolicies(t *testing.T) {
	oc, _ := newTestControls(t, WithRotate(Disabled()), WithPan(Disabled()), WithZoom(Disabled()))

	oc.BeginGesture(GestureRotate, mgl32.Vec2{})
	assert.Equal(t, GestureNone, oc.State())
	oc.BeginTouch(GestureTouchDollyPan, mgl32.Vec2{}, mgl32.Vec2{10, 0})
	assert.Equal(t, GestureNone, oc.State())

	oc.PanByPixels(50, 50)
	oc.Wheel(1)
	assert.False(t, oc.HandleKey(common.KeyUp))
	assert.False(t, oc.Update())
}

func TestOrbitControls_PolicyDisabledMidGesture(t *testing.T) {
	oc, _ := newTestControls(t)

	oc.BeginGesture(GestureRotate, mgl32.Vec2{})
	oc.SetRotatePolicy(Disabled())
	oc.AdvanceGesture(mgl32.Vec2{100, 0})
	assert.False(t, oc.Update())
}

func TestOrbitControls_HandleKey(t *testing.T) {
	oc, _ := newTestControls(t)

	assert.True(t, oc.HandleKey(common.KeyUp))
	oc.Update()
	assert.Greater(t, oc.Target().Y(), float32(0))

	assert.True(t, oc.HandleKey(common.KeyRight))
	oc.Update()
	assert.Greater(t, oc.Target().X(), float32(0))

	assert.False(t, oc.HandleKey(common.KeyA))
}

func TestOrbitControls_SetViewportKeepsZeroDimensions(t *testing.T) {
	oc, _ := newTestControls(t)

	oc.SetViewport(0, 500)
	w, h := oc.Viewport()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 500, h)
}

func TestOrbitControls_RotateSpeedScalesWithViewport(t *testing.T) {
	oc, _ := newTestControls(t, WithViewport(800, 600), WithRotate(Enabled(0.5)))

	oc.BeginGesture(GestureRotate, mgl32.Vec2{})
	oc.AdvanceGesture(mgl32.Vec2{60, 0})
	oc.Update()
	assert.InDelta(t, -2*math.Pi*60/600*0.5, oc.AzimuthAngle(), 1e-5)
}
