package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the capability set a controller needs from a viewpoint.
// A camera owns its position, look-at target, up vector and zoom, and derives view and
// projection matrices from them in Update. Variants differ in how a dolly is absorbed
// (Dolly) and how much of the world is visible at a distance (VisibleExtent); everything
// else is shared. Cameras are not safe for concurrent use.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// SetPosition moves the camera. Matrices are refreshed on the next Update.
	//
	// Parameters:
	//   - position: world-space camera position
	SetPosition(position mgl32.Vec3)

	// Target returns the point the camera looks at.
	//
	// Returns:
	//   - mgl32.Vec3: world-space look-at point
	Target() mgl32.Vec3

	// LookAt points the camera at target. Matrices are refreshed on the next Update.
	//
	// Parameters:
	//   - target: world-space look-at point
	LookAt(target mgl32.Vec3)

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: up vector
	Up() mgl32.Vec3

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - up: up vector (need not be normalized)
	SetUp(up mgl32.Vec3)

	// Zoom returns the zoom factor (1 = unzoomed).
	//
	// Returns:
	//   - float32: zoom factor
	Zoom() float32

	// SetZoom sets the zoom factor. Matrices are refreshed on the next Update.
	//
	// Parameters:
	//   - zoom: zoom factor, larger values magnify
	SetZoom(zoom float32)

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the view matrix computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the projection matrix computed by the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view from the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// InverseProjectionMatrix returns the inverse of the projection matrix from the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: the inverse projection matrix
	InverseProjectionMatrix() mgl32.Mat4

	// Dolly applies a dolly multiplier (values below 1 move in, above 1 move out).
	// A camera that absorbs the dolly into its own zoom clamps the zoom into [minZoom, maxZoom]
	// and returns 1. A camera that cannot absorb it returns the factor unchanged so the caller
	// folds it into the orbit distance.
	//
	// Parameters:
	//   - factor: dolly multiplier
	//   - minZoom: lower zoom limit
	//   - maxZoom: upper zoom limit
	//
	// Returns:
	//   - float32: the distance multiplier left for the caller to apply
	Dolly(factor, minZoom, maxZoom float32) float32

	// VisibleExtent returns the world-space width and height of the visible area on a plane
	// distance units in front of the camera. Used to convert pixel drags into world offsets.
	//
	// Parameters:
	//   - distance: distance from the camera to the plane of interest
	//
	// Returns:
	//   - width, height: visible size in world units
	VisibleExtent(distance float32) (width, height float32)

	// Update recomputes the view and projection matrices from the current parameters.
	// Should be called once per frame after the camera was moved.
	Update()
}

// Resizer is implemented by cameras whose projection depends on the viewport size.
type Resizer interface {
	// SetSize adapts the projection to a viewport of the given pixel size.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	SetSize(width, height int)
}

// viewpoint is the state shared by every camera variant.
type viewpoint struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3
	zoom     float32
	near     float32
	far      float32

	viewMatrix              mgl32.Mat4
	projectionMatrix        mgl32.Mat4
	viewProjectionMatrix    mgl32.Mat4
	inverseProjectionMatrix mgl32.Mat4
}

func newViewpoint(cfg *cameraConfig) viewpoint {
	return viewpoint{
		position:                cfg.position,
		target:                  cfg.target,
		up:                      cfg.up,
		zoom:                    cfg.zoom,
		near:                    cfg.near,
		far:                     cfg.far,
		viewMatrix:              mgl32.Ident4(),
		projectionMatrix:        mgl32.Ident4(),
		viewProjectionMatrix:    mgl32.Ident4(),
		inverseProjectionMatrix: mgl32.Ident4(),
	}
}

func (v *viewpoint) Position() mgl32.Vec3 {
	return v.position
}

func (v *viewpoint) SetPosition(position mgl32.Vec3) {
	v.position = position
}

func (v *viewpoint) Target() mgl32.Vec3 {
	return v.target
}

func (v *viewpoint) LookAt(target mgl32.Vec3) {
	v.target = target
}

func (v *viewpoint) Up() mgl32.Vec3 {
	return v.up
}

func (v *viewpoint) SetUp(up mgl32.Vec3) {
	v.up = up
}

func (v *viewpoint) Zoom() float32 {
	return v.zoom
}

func (v *viewpoint) SetZoom(zoom float32) {
	v.zoom = zoom
}

func (v *viewpoint) Near() float32 {
	return v.near
}

func (v *viewpoint) Far() float32 {
	return v.far
}

func (v *viewpoint) ViewMatrix() mgl32.Mat4 {
	return v.viewMatrix
}

func (v *viewpoint) ProjectionMatrix() mgl32.Mat4 {
	return v.projectionMatrix
}

func (v *viewpoint) ViewProjectionMatrix() mgl32.Mat4 {
	return v.viewProjectionMatrix
}

func (v *viewpoint) InverseProjectionMatrix() mgl32.Mat4 {
	return v.inverseProjectionMatrix
}

// distance returns |position - target|.
func (v *viewpoint) distance() float32 {
	return v.position.Sub(v.target).Len()
}

// updateView recomputes the view matrix. A degenerate basis (eye on the target, or the
// view direction parallel to up) keeps the previous matrix instead of producing NaNs.
func (v *viewpoint) updateView() {
	forward := v.target.Sub(v.position)
	if forward.Len() < 1e-8 {
		return
	}
	if forward.Normalize().Cross(v.up).Len() < 1e-8 {
		return
	}
	v.viewMatrix = mgl32.LookAtV(v.position, v.target, v.up)
}

// commitProjection stores a freshly built projection and the matrices derived from it.
func (v *viewpoint) commitProjection(projection mgl32.Mat4) {
	v.projectionMatrix = projection
	v.viewProjectionMatrix = projection.Mul4(v.viewMatrix)
	v.inverseProjectionMatrix = projection.Inv()
}
