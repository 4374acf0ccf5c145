package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// OrthographicCamera is a Camera with an orthographic projection.
// Moving an orthographic camera closer to its target does not change the image, so the view box
// is scaled by the ratio between the current target distance and the distance at construction.
// A dolly therefore shrinks or grows the box through the orbit distance rather than the zoom.
type OrthographicCamera interface {
	Camera
	Resizer

	// Bounds returns the view box at zoom 1 and reference distance.
	//
	// Returns:
	//   - left, right, top, bottom: box edges in view space
	Bounds() (left, right, top, bottom float32)

	// SetBounds sets the view box at zoom 1 and reference distance.
	//
	// Parameters:
	//   - left, right, top, bottom: box edges in view space
	SetBounds(left, right, top, bottom float32)

	// ReferenceDistance returns the target distance at which the box is unscaled.
	//
	// Returns:
	//   - float32: reference distance, 0 when the box never scales
	ReferenceDistance() float32
}

type orthographicCamera struct {
	viewpoint

	left, right, top, bottom float32
	referenceDistance        float32
}

var _ OrthographicCamera = &orthographicCamera{}

// NewOrthographicCamera creates an orthographic camera and computes its initial matrices.
// Defaults: box [-1, 1] x [-1, 1], near 0.1, far 2000, positioned at (0, 0, 2) looking at the
// origin with +Y up. The distance to the target after options are applied becomes the
// reference distance.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - OrthographicCamera: the newly created camera
func NewOrthographicCamera(options ...CameraBuilderOption) OrthographicCamera {
	cfg := defaultConfig()
	cfg.far = 2000
	for _, option := range options {
		option(cfg)
	}
	o := &orthographicCamera{
		viewpoint: newViewpoint(cfg),
		left:      cfg.left,
		right:     cfg.right,
		top:       cfg.top,
		bottom:    cfg.bottom,
	}
	o.referenceDistance = o.distance()
	o.Update()
	return o
}

func (o *orthographicCamera) Bounds() (left, right, top, bottom float32) {
	return o.left, o.right, o.top, o.bottom
}

func (o *orthographicCamera) SetBounds(left, right, top, bottom float32) {
	o.left, o.right, o.top, o.bottom = left, right, top, bottom
}

func (o *orthographicCamera) ReferenceDistance() float32 {
	return o.referenceDistance
}

// SetSize keeps the vertical extent and center and widens or narrows the box to the new aspect.
func (o *orthographicCamera) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	aspect := float32(width) / float32(height)
	halfHeight := (o.top - o.bottom) / 2
	cx := (o.left + o.right) / 2
	o.left = cx - aspect*halfHeight
	o.right = cx + aspect*halfHeight
	o.Update()
}

func (o *orthographicCamera) Dolly(factor, minZoom, maxZoom float32) float32 {
	return factor
}

func (o *orthographicCamera) VisibleExtent(distance float32) (width, height float32) {
	s := o.extentScale(distance)
	return (o.right - o.left) * s / o.zoom, (o.top - o.bottom) * s / o.zoom
}

func (o *orthographicCamera) Update() {
	o.updateView()

	s := o.extentScale(o.distance())
	dx := (o.right - o.left) / (2 * o.zoom) * s
	dy := (o.top - o.bottom) / (2 * o.zoom) * s
	cx := (o.right + o.left) / 2
	cy := (o.top + o.bottom) / 2

	o.commitProjection(mgl32.Ortho(cx-dx, cx+dx, cy-dy, cy+dy, o.near, o.far))
}

// extentScale is the box multiplier at a target distance.
func (o *orthographicCamera) extentScale(distance float32) float32 {
	if o.referenceDistance <= 0 || distance <= 0 {
		return 1
	}
	return distance / o.referenceDistance
}
