package controls

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitControls keeps a camera orbiting a target point.
// Input is accumulated as pending deltas between frames; Update consumes (or, with damping,
// decays) them, recomputes the spherical offset, and writes the camera position back.
// The controls own the camera: nothing else should move it while it is managed.
// Not safe for concurrent use; feed input and call Update from the same goroutine.
type OrbitControls interface {
	gestureInput
	orbitLimits
	orbitPolicies

	// Camera returns the managed camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Target returns the point being orbited.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target
	Target() mgl32.Vec3

	// SetTarget moves the orbit pivot. The camera follows on the next Update.
	//
	// Parameters:
	//   - target: world-space target
	SetTarget(target mgl32.Vec3)

	// Spherical returns the spherical offset committed by the last Update.
	//
	// Returns:
	//   - Spherical: camera offset from the target
	Spherical() Spherical

	// PolarAngle returns the committed polar angle (0 = looking down from +Y).
	//
	// Returns:
	//   - float32: polar angle in radians
	PolarAngle() float32

	// AzimuthAngle returns the committed azimuth around +Y.
	//
	// Returns:
	//   - float32: azimuth in radians
	AzimuthAngle() float32

	// Distance returns the current camera-to-target distance.
	//
	// Returns:
	//   - float32: distance in world units
	Distance() float32

	// RotateLeft queues an azimuth rotation. Positive angles orbit the camera to the left.
	//
	// Parameters:
	//   - angle: radians
	RotateLeft(angle float32)

	// RotateUp queues a polar rotation. Positive angles orbit the camera upward.
	//
	// Parameters:
	//   - angle: radians
	RotateUp(angle float32)

	// DollyIn moves toward the target (or zooms in) by scale, e.g. 0.95.
	//
	// Parameters:
	//   - scale: dolly multiplier below 1
	DollyIn(scale float32)

	// DollyOut moves away from the target (or zooms out) by scale, e.g. 0.95.
	//
	// Parameters:
	//   - scale: dolly multiplier below 1
	DollyOut(scale float32)

	// Update advances the controls by one frame and writes the camera position and matrices.
	// Calling it with nothing pending leaves the camera untouched.
	//
	// Returns:
	//   - bool: true if the camera moved or zoomed
	Update() bool

	// Save snapshots target, camera position and zoom for a later Reset.
	Save()

	// Reset restores the last Save (or the construction state), drops pending input and
	// ends any gesture.
	Reset()
}

// gestureInput is the inbound side fed by an input layer.
type gestureInput interface {
	// State returns the active gesture.
	//
	// Returns:
	//   - GestureState: GestureNone when idle
	State() GestureState

	// BeginGesture starts a pointer gesture. Gestures whose policy is disabled do not start.
	//
	// Parameters:
	//   - kind: gesture to start
	//   - point: pointer position in pixels
	BeginGesture(kind GestureState, point mgl32.Vec2)

	// AdvanceGesture feeds a new pointer position to the active gesture. No-op when idle.
	//
	// Parameters:
	//   - point: pointer position in pixels
	AdvanceGesture(point mgl32.Vec2)

	// EndGesture ends the active gesture. No-op when idle.
	EndGesture()

	// BeginTouch starts a two-finger gesture.
	//
	// Parameters:
	//   - kind: gesture to start
	//   - a, b: finger positions in pixels
	BeginTouch(kind GestureState, a, b mgl32.Vec2)

	// AdvanceTouch feeds new finger positions to the active two-finger gesture.
	//
	// Parameters:
	//   - a, b: finger positions in pixels
	AdvanceTouch(a, b mgl32.Vec2)

	// Wheel applies a scroll step. Positive delta (scroll up) dollies in.
	//
	// Parameters:
	//   - delta: scroll amount, only the sign is used
	Wheel(delta float32)

	// PanByPixels pans as if the pointer was dragged by (dx, dy) pixels.
	//
	// Parameters:
	//   - dx, dy: drag in pixels
	PanByPixels(dx, dy float32)

	// HandleKey pans with the arrow keys.
	//
	// Parameters:
	//   - keyCode: virtual key code (see common.KeyUp and friends)
	//
	// Returns:
	//   - bool: true if the key was consumed
	HandleKey(keyCode uint32) bool
}

// orbitLimits groups the range limits. An inverted range collapses to its lower bound.
type orbitLimits interface {
	// DistanceLimits returns the allowed camera-to-target distance range.
	DistanceLimits() (min, max float32)
	// SetDistanceLimits sets the allowed camera-to-target distance range.
	SetDistanceLimits(min, max float32)
	// ZoomLimits returns the allowed zoom range of cameras that dolly through zoom.
	ZoomLimits() (min, max float32)
	// SetZoomLimits sets the allowed zoom range of cameras that dolly through zoom.
	SetZoomLimits(min, max float32)
	// PolarAngleLimits returns the allowed polar angle range, within [0, π].
	PolarAngleLimits() (min, max float32)
	// SetPolarAngleLimits sets the allowed polar angle range, within [0, π].
	SetPolarAngleLimits(min, max float32)
	// AzimuthAngleLimits returns the allowed azimuth range. Infinite bounds disable the limit.
	AzimuthAngleLimits() (min, max float32)
	// SetAzimuthAngleLimits sets the allowed azimuth range. Bounds are normalized into [-π, π];
	// when min ends up greater than max the range wraps through ±π.
	SetAzimuthAngleLimits(min, max float32)
	// Viewport returns the pixel size used to scale pointer deltas.
	Viewport() (width, height int)
	// SetViewport sets the pixel size used to scale pointer deltas.
	SetViewport(width, height int)
}

// orbitPolicies groups the on/off switches and their strengths.
type orbitPolicies interface {
	// ZoomPolicy returns the dolly switch; the strength is the exponent of the 0.95 step.
	ZoomPolicy() Policy
	SetZoomPolicy(p Policy)
	// RotatePolicy returns the rotate switch; the strength scales rotate speed.
	RotatePolicy() Policy
	SetRotatePolicy(p Policy)
	// PanPolicy returns the pan switch; the strength scales pan speed.
	PanPolicy() Policy
	SetPanPolicy(p Policy)
	// AutoRotatePolicy returns the auto-rotate switch; strength 1 is one turn per minute at 60 fps.
	AutoRotatePolicy() Policy
	SetAutoRotatePolicy(p Policy)
	// DampingPolicy returns the inertia switch; the strength is the fraction applied per frame.
	DampingPolicy() Policy
	SetDampingPolicy(p Policy)
	// ScreenSpacePanning reports whether vertical pans follow the screen (true) or the ground plane.
	ScreenSpacePanning() bool
	SetScreenSpacePanning(enabled bool)
	// KeyPanSpeed returns the pixels panned per arrow key press.
	KeyPanSpeed() float32
	SetKeyPanSpeed(speed float32)
}

// orbitState is the snapshot written by Save.
type orbitState struct {
	target   mgl32.Vec3
	position mgl32.Vec3
	zoom     float32
}

type orbitControlsImpl struct {
	camera camera.Camera
	target mgl32.Vec3

	minDistance     float32
	maxDistance     float32
	minZoom         float32
	maxZoom         float32
	minPolarAngle   float32
	maxPolarAngle   float32
	minAzimuthAngle float32
	maxAzimuthAngle float32

	zoom       Policy
	rotate     Policy
	pan        Policy
	autoRotate Policy
	damping    Policy

	screenSpacePanning bool
	keyPanSpeed        float32
	viewportWidth      int
	viewportHeight     int

	spherical      Spherical
	sphericalDelta Spherical
	panOffset      mgl32.Vec3
	scale          float32
	zoomChanged    bool

	gesture   Gesture
	lastState orbitState

	logger common.Logger
}

var _ OrbitControls = &orbitControlsImpl{}

var worldUp = mgl32.Vec3{0, 1, 0}

const (
	defaultViewportWidth  = 1920
	defaultViewportHeight = 1080
)

// NewOrbitControls takes ownership of cam and orbits it around the configured target.
// The initial position/zoom become the state restored by Reset until Save is called, and one
// Update runs so that Spherical reflects the camera immediately.
//
// Parameters:
//   - cam: the camera to manage (must not be nil)
//   - options: functional options to configure the controls
//
// Returns:
//   - OrbitControls: the newly created controls
func NewOrbitControls(cam camera.Camera, options ...OrbitControlsOption) OrbitControls {
	if cam == nil {
		panic("orbit controls need a camera")
	}

	inf := float32(math.Inf(1))
	oc := &orbitControlsImpl{
		camera: cam,
		target: cam.Target(),

		minDistance:     0,
		maxDistance:     inf,
		minZoom:         0,
		maxZoom:         inf,
		minPolarAngle:   0,
		maxPolarAngle:   math.Pi,
		minAzimuthAngle: -inf,
		maxAzimuthAngle: inf,

		zoom:       Enabled(1),
		rotate:     Enabled(1),
		pan:        Enabled(1),
		autoRotate: Disabled(),
		damping:    Disabled(),

		screenSpacePanning: true,
		keyPanSpeed:        7,
		viewportWidth:      defaultViewportWidth,
		viewportHeight:     defaultViewportHeight,

		scale:  1,
		logger: common.NewNopLogger(),
	}

	for _, option := range options {
		option(oc)
	}

	oc.warnInverted("distance", oc.minDistance, oc.maxDistance)
	oc.warnInverted("zoom", oc.minZoom, oc.maxZoom)
	oc.warnInverted("polar angle", oc.minPolarAngle, oc.maxPolarAngle)

	oc.camera.LookAt(oc.target)
	oc.camera.Update()
	oc.Save()
	oc.Update()
	return oc
}

// --- internal helpers ---

// autoRotationAngle is the per-frame azimuth step: one revolution per 60/speed seconds at 60 fps.
func (oc *orbitControlsImpl) autoRotationAngle() (float32, bool) {
	speed, ok := oc.autoRotate.Strength()
	if !ok {
		return 0, false
	}
	return common.TwoPi / 60 / 60 * speed, true
}

// zoomScale is the per-step dolly multiplier.
func (oc *orbitControlsImpl) zoomScale() (float32, bool) {
	strength, ok := oc.zoom.Strength()
	if !ok {
		return 0, false
	}
	return common.Pow(0.95, strength), true
}

func (oc *orbitControlsImpl) warnInverted(what string, lo, hi float32) {
	if lo > hi {
		oc.logger.Warnf("orbit controls: %s limits inverted (min %g > max %g), values collapse to %g", what, lo, hi, lo)
	}
}

// dolly hands factor to the camera and folds what it does not absorb into the distance scale.
// Non-positive or non-finite factors are ignored.
func (oc *orbitControlsImpl) dolly(factor float32) {
	if factor <= 0 || !common.IsFinite(factor) {
		return
	}
	before := oc.camera.Zoom()
	oc.scale *= oc.camera.Dolly(factor, oc.minZoom, oc.maxZoom)
	if oc.camera.Zoom() != before {
		oc.zoomChanged = true
	}
}

func (oc *orbitControlsImpl) rotateByPixels(d mgl32.Vec2) {
	speed, ok := oc.rotate.Strength()
	if !ok {
		return
	}
	h := float32(oc.viewportHeight)
	oc.RotateLeft(common.TwoPi * d.X() / h * speed)
	oc.RotateUp(common.TwoPi * d.Y() / h * speed)
}

func (oc *orbitControlsImpl) dollyByPixels(dy float32) {
	scale, ok := oc.zoomScale()
	if !ok {
		return
	}
	if dy > 0 {
		oc.DollyOut(scale)
	} else if dy < 0 {
		oc.DollyIn(scale)
	}
}

func (oc *orbitControlsImpl) dollyByPinch(pinch float32) {
	strength, ok := oc.zoom.Strength()
	if !ok || pinch <= 0 || pinch == 1 {
		return
	}
	oc.DollyOut(common.Pow(pinch, strength))
}

func (oc *orbitControlsImpl) applyDelta(d GestureDelta) {
	if d.Rotate != (mgl32.Vec2{}) {
		oc.rotateByPixels(d.Rotate)
	}
	if d.Pan != (mgl32.Vec2{}) {
		oc.PanByPixels(d.Pan.X(), d.Pan.Y())
	}
	if d.Dolly.Y() != 0 {
		oc.dollyByPixels(d.Dolly.Y())
	}
	oc.dollyByPinch(d.Pinch)
}

// gestureAllowed reports whether every policy the gesture depends on is enabled.
func (oc *orbitControlsImpl) gestureAllowed(kind GestureState) bool {
	if kind.rotates() && !oc.rotate.IsEnabled() {
		return false
	}
	if kind.pans() && !oc.pan.IsEnabled() {
		return false
	}
	if kind.dollies() && !oc.zoom.IsEnabled() {
		return false
	}
	return true
}

// panLeft returns the offset for moving the target left by distance along the camera's
// right axis (column 0 of the camera-to-world matrix).
func panLeft(distance float32, cameraMatrix mgl32.Mat4) mgl32.Vec3 {
	return cameraMatrix.Col(0).Vec3().Mul(-distance)
}

// panUp returns the offset for moving the target up by distance. In screen space this is the
// camera's up axis; otherwise it is perpendicular to the camera's right axis and the world up,
// which keeps the pan parallel to the ground.
func panUp(distance float32, cameraMatrix mgl32.Mat4, up mgl32.Vec3, screenSpace bool) mgl32.Vec3 {
	var v mgl32.Vec3
	if screenSpace {
		v = cameraMatrix.Col(1).Vec3()
	} else {
		v = up.Cross(cameraMatrix.Col(0).Vec3())
	}
	return v.Mul(distance)
}

// poseChanged reports whether the committed spherical and target differ from the pose read back
// from the camera by more than float32 round-off. Angles are compared directly because near a
// pole a large azimuth change, or the MakeSafe lift itself, moves the position by only about
// ε·radius while it still turns the view.
func (oc *orbitControlsImpl) poseChanged(current Spherical, currentTarget mgl32.Vec3) bool {
	const angleTolerance = common.Epsilon / 2
	distanceTolerance := common.Epsilon * max(oc.spherical.Radius, 1)

	if abs32(wrapPi(oc.spherical.Theta-current.Theta)) > angleTolerance ||
		abs32(oc.spherical.Phi-current.Phi) > angleTolerance {
		return true
	}
	if abs32(oc.spherical.Radius-current.Radius) > distanceTolerance {
		return true
	}
	panned := oc.target.Sub(currentTarget)
	return panned.Dot(panned) > distanceTolerance*distanceTolerance
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// clampAzimuth restricts theta to finite azimuth limits, wrapping through ±π when min > max.
func clampAzimuth(theta, lo, hi float32) float32 {
	if !common.IsFinite(lo) || !common.IsFinite(hi) {
		return theta
	}
	theta, lo, hi = wrapPi(theta), wrapPi(lo), wrapPi(hi)
	if lo <= hi {
		return common.Clamp(theta, lo, hi)
	}
	if theta > (lo+hi)/2 {
		return max(lo, theta)
	}
	return min(hi, theta)
}

// wrapPi maps an angle into [-π, π].
func wrapPi(a float32) float32 {
	return float32(math.Remainder(float64(a), 2*math.Pi))
}

// --- OrbitControls ---

func (oc *orbitControlsImpl) Camera() camera.Camera {
	return oc.camera
}

func (oc *orbitControlsImpl) Target() mgl32.Vec3 {
	return oc.target
}

func (oc *orbitControlsImpl) SetTarget(target mgl32.Vec3) {
	oc.target = target
}

func (oc *orbitControlsImpl) Spherical() Spherical {
	return oc.spherical
}

func (oc *orbitControlsImpl) PolarAngle() float32 {
	return oc.spherical.Phi
}

func (oc *orbitControlsImpl) AzimuthAngle() float32 {
	return oc.spherical.Theta
}

func (oc *orbitControlsImpl) Distance() float32 {
	return oc.camera.Position().Sub(oc.target).Len()
}

func (oc *orbitControlsImpl) RotateLeft(angle float32) {
	oc.sphericalDelta.Theta -= angle
}

func (oc *orbitControlsImpl) RotateUp(angle float32) {
	oc.sphericalDelta.Phi -= angle
}

func (oc *orbitControlsImpl) DollyIn(scale float32) {
	oc.dolly(scale)
}

func (oc *orbitControlsImpl) DollyOut(scale float32) {
	oc.dolly(1 / scale)
}

func (oc *orbitControlsImpl) Update() bool {
	// Rotate the offset into a frame where the camera's up is +Y, work there, rotate back.
	quat := mgl32.QuatBetweenVectors(oc.camera.Up(), worldUp)
	quatInverse := quat.Inverse()

	oc.spherical = SphericalFromVec3(quat.Rotate(oc.camera.Position().Sub(oc.target)))
	current, currentTarget := oc.spherical, oc.target

	if angle, ok := oc.autoRotationAngle(); ok && oc.gesture.State() == GestureNone {
		oc.RotateLeft(angle)
	}

	factor, damped := oc.damping.Strength()
	if damped {
		oc.spherical.Theta += oc.sphericalDelta.Theta * factor
		oc.spherical.Phi += oc.sphericalDelta.Phi * factor
	} else {
		oc.spherical.Theta += oc.sphericalDelta.Theta
		oc.spherical.Phi += oc.sphericalDelta.Phi
	}

	oc.spherical.Phi = common.Clamp(oc.spherical.Phi, oc.minPolarAngle, oc.maxPolarAngle)
	oc.spherical.MakeSafe()
	oc.spherical.Theta = clampAzimuth(oc.spherical.Theta, oc.minAzimuthAngle, oc.maxAzimuthAngle)

	oc.spherical.Radius = common.Clamp(oc.spherical.Radius*oc.scale, oc.minDistance, oc.maxDistance)
	oc.scale = 1

	if damped {
		oc.target = oc.target.Add(oc.panOffset.Mul(factor))
		oc.sphericalDelta.Theta *= 1 - factor
		oc.sphericalDelta.Phi *= 1 - factor
		oc.panOffset = oc.panOffset.Mul(1 - factor)
	} else {
		oc.target = oc.target.Add(oc.panOffset)
		oc.sphericalDelta = Spherical{}
		oc.panOffset = mgl32.Vec3{}
	}

	changed := oc.poseChanged(current, currentTarget)
	if changed {
		oc.camera.SetPosition(oc.target.Add(quatInverse.Rotate(oc.spherical.Vec3())))
	}
	oc.camera.LookAt(oc.target)
	oc.camera.Update()

	changed = changed || oc.zoomChanged
	oc.zoomChanged = false
	return changed
}

func (oc *orbitControlsImpl) Save() {
	oc.lastState = orbitState{
		target:   oc.target,
		position: oc.camera.Position(),
		zoom:     oc.camera.Zoom(),
	}
	oc.logger.Debugf("orbit controls: saved target %v position %v zoom %g", oc.lastState.target, oc.lastState.position, oc.lastState.zoom)
}

func (oc *orbitControlsImpl) Reset() {
	oc.target = oc.lastState.target
	oc.camera.SetPosition(oc.lastState.position)
	oc.camera.SetZoom(oc.lastState.zoom)
	oc.camera.LookAt(oc.target)
	oc.camera.Update()

	oc.sphericalDelta = Spherical{}
	oc.panOffset = mgl32.Vec3{}
	oc.scale = 1

	oc.Update()
	oc.gesture.End()
	oc.logger.Debugf("orbit controls: reset to target %v position %v zoom %g", oc.lastState.target, oc.lastState.position, oc.lastState.zoom)
}

// --- gestureInput ---

func (oc *orbitControlsImpl) State() GestureState {
	return oc.gesture.State()
}

func (oc *orbitControlsImpl) BeginGesture(kind GestureState, point mgl32.Vec2) {
	if !oc.gestureAllowed(kind) {
		oc.logger.Debugf("orbit controls: %s gesture ignored, policy disabled", kind)
		return
	}
	oc.gesture.Begin(kind, point)
	oc.logger.Debugf("orbit controls: begin %s at %v", kind, point)
}

func (oc *orbitControlsImpl) AdvanceGesture(point mgl32.Vec2) {
	d, ok := oc.gesture.Advance(point)
	if !ok {
		return
	}
	oc.applyDelta(d)
}

func (oc *orbitControlsImpl) EndGesture() {
	if oc.gesture.State() == GestureNone {
		return
	}
	oc.logger.Debugf("orbit controls: end %s", oc.gesture.State())
	oc.gesture.End()
}

func (oc *orbitControlsImpl) BeginTouch(kind GestureState, a, b mgl32.Vec2) {
	if !oc.gestureAllowed(kind) {
		oc.logger.Debugf("orbit controls: %s touch ignored, policy disabled", kind)
		return
	}
	oc.gesture.BeginPair(kind, a, b)
	oc.logger.Debugf("orbit controls: begin %s touch at %v %v", kind, a, b)
}

func (oc *orbitControlsImpl) AdvanceTouch(a, b mgl32.Vec2) {
	d, ok := oc.gesture.AdvancePair(a, b)
	if !ok {
		return
	}
	oc.applyDelta(d)
}

func (oc *orbitControlsImpl) Wheel(delta float32) {
	scale, ok := oc.zoomScale()
	if !ok {
		return
	}
	if delta > 0 {
		oc.DollyIn(scale)
	} else if delta < 0 {
		oc.DollyOut(scale)
	}
}

// PanByPixels converts a drag into a world offset using how much of the world is visible at
// the current target distance, so the target tracks the pointer at any distance or zoom.
func (oc *orbitControlsImpl) PanByPixels(dx, dy float32) {
	speed, ok := oc.pan.Strength()
	if !ok {
		return
	}
	width, height := oc.camera.VisibleExtent(oc.Distance())
	worldX := dx * speed * width / float32(oc.viewportWidth)
	worldY := dy * speed * height / float32(oc.viewportHeight)

	cameraMatrix := oc.camera.ViewMatrix().Inv()
	oc.panOffset = oc.panOffset.
		Add(panLeft(worldX, cameraMatrix)).
		Add(panUp(worldY, cameraMatrix, oc.camera.Up(), oc.screenSpacePanning))
}

func (oc *orbitControlsImpl) HandleKey(keyCode uint32) bool {
	if !oc.pan.IsEnabled() {
		return false
	}
	switch keyCode {
	case common.KeyUp:
		oc.PanByPixels(0, oc.keyPanSpeed)
	case common.KeyDown:
		oc.PanByPixels(0, -oc.keyPanSpeed)
	case common.KeyLeft:
		oc.PanByPixels(oc.keyPanSpeed, 0)
	case common.KeyRight:
		oc.PanByPixels(-oc.keyPanSpeed, 0)
	default:
		return false
	}
	return true
}

// --- orbitLimits ---

func (oc *orbitControlsImpl) DistanceLimits() (min, max float32) {
	return oc.minDistance, oc.maxDistance
}

func (oc *orbitControlsImpl) SetDistanceLimits(min, max float32) {
	oc.warnInverted("distance", min, max)
	oc.minDistance, oc.maxDistance = min, max
}

func (oc *orbitControlsImpl) ZoomLimits() (min, max float32) {
	return oc.minZoom, oc.maxZoom
}

func (oc *orbitControlsImpl) SetZoomLimits(min, max float32) {
	oc.warnInverted("zoom", min, max)
	oc.minZoom, oc.maxZoom = min, max
}

func (oc *orbitControlsImpl) PolarAngleLimits() (min, max float32) {
	return oc.minPolarAngle, oc.maxPolarAngle
}

func (oc *orbitControlsImpl) SetPolarAngleLimits(min, max float32) {
	oc.warnInverted("polar angle", min, max)
	oc.minPolarAngle, oc.maxPolarAngle = min, max
}

func (oc *orbitControlsImpl) AzimuthAngleLimits() (min, max float32) {
	return oc.minAzimuthAngle, oc.maxAzimuthAngle
}

func (oc *orbitControlsImpl) SetAzimuthAngleLimits(min, max float32) {
	oc.minAzimuthAngle, oc.maxAzimuthAngle = min, max
}

func (oc *orbitControlsImpl) Viewport() (width, height int) {
	return oc.viewportWidth, oc.viewportHeight
}

func (oc *orbitControlsImpl) SetViewport(width, height int) {
	oc.viewportWidth = common.Coalesce(max(width, 0), oc.viewportWidth)
	oc.viewportHeight = common.Coalesce(max(height, 0), oc.viewportHeight)
}

// --- orbitPolicies ---

func (oc *orbitControlsImpl) ZoomPolicy() Policy           { return oc.zoom }
func (oc *orbitControlsImpl) SetZoomPolicy(p Policy)       { oc.zoom = p }
func (oc *orbitControlsImpl) RotatePolicy() Policy         { return oc.rotate }
func (oc *orbitControlsImpl) SetRotatePolicy(p Policy)     { oc.rotate = p }
func (oc *orbitControlsImpl) PanPolicy() Policy            { return oc.pan }
func (oc *orbitControlsImpl) SetPanPolicy(p Policy)        { oc.pan = p }
func (oc *orbitControlsImpl) AutoRotatePolicy() Policy     { return oc.autoRotate }
func (oc *orbitControlsImpl) SetAutoRotatePolicy(p Policy) { oc.autoRotate = p }
func (oc *orbitControlsImpl) DampingPolicy() Policy        { return oc.damping }
func (oc *orbitControlsImpl) SetDampingPolicy(p Policy)    { oc.damping = p }

func (oc *orbitControlsImpl) ScreenSpacePanning() bool {
	return oc.screenSpacePanning
}

func (oc *orbitControlsImpl) SetScreenSpacePanning(enabled bool) {
	oc.screenSpacePanning = enabled
}

func (oc *orbitControlsImpl) KeyPanSpeed() float32 {
	return oc.keyPanSpeed
}

func (oc *orbitControlsImpl) SetKeyPanSpeed(speed float32) {
	oc.keyPanSpeed = speed
}
