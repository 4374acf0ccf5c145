package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveCamera is a Camera with a perspective projection.
// A dolly on a perspective camera changes its zoom, which narrows the effective field of view.
type PerspectiveCamera interface {
	Camera
	Resizer

	// Fov returns the vertical field of view in radians (before zoom).
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// SetAspect sets the aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// EffectiveFov returns the field of view after zoom is applied, in radians.
	//
	// Returns:
	//   - float32: zoomed field of view in radians
	EffectiveFov() float32

	// SetViewOffset renders only a sub-rectangle of a larger virtual viewport, e.g. one tile
	// of a multi-monitor wall. All values are in pixels.
	//
	// Parameters:
	//   - fullWidth, fullHeight: size of the whole virtual viewport
	//   - x, y: top-left corner of the sub-rectangle
	//   - width, height: size of the sub-rectangle
	SetViewOffset(fullWidth, fullHeight, x, y, width, height float32)

	// ClearViewOffset removes a view offset set by SetViewOffset.
	ClearViewOffset()
}

// viewOffset describes a sub-rectangle of a larger viewport.
type viewOffset struct {
	fullWidth  float32
	fullHeight float32
	offsetX    float32
	offsetY    float32
	width      float32
	height     float32
}

type perspectiveCamera struct {
	viewpoint

	fov    float32
	aspect float32
	view   *viewOffset
}

var _ PerspectiveCamera = &perspectiveCamera{}

// NewPerspectiveCamera creates a perspective camera and computes its initial matrices.
// Defaults: 45° field of view, 16:9 aspect, near 0.1, far 100, positioned at (0, 0, 2)
// looking at the origin with +Y up.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - PerspectiveCamera: the newly created camera
func NewPerspectiveCamera(options ...CameraBuilderOption) PerspectiveCamera {
	cfg := defaultConfig()
	for _, option := range options {
		option(cfg)
	}
	p := &perspectiveCamera{
		viewpoint: newViewpoint(cfg),
		fov:       cfg.fov,
		aspect:    cfg.aspect,
	}
	p.Update()
	return p
}

func (p *perspectiveCamera) Fov() float32 {
	return p.fov
}

func (p *perspectiveCamera) SetFov(fov float32) {
	p.fov = fov
}

func (p *perspectiveCamera) Aspect() float32 {
	return p.aspect
}

func (p *perspectiveCamera) SetAspect(aspect float32) {
	p.aspect = aspect
}

func (p *perspectiveCamera) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.aspect = float32(width) / float32(height)
	p.Update()
}

func (p *perspectiveCamera) EffectiveFov() float32 {
	return 2 * common.Atan(common.Tan(p.fov*0.5)/p.zoom)
}

func (p *perspectiveCamera) SetViewOffset(fullWidth, fullHeight, x, y, width, height float32) {
	p.view = &viewOffset{
		fullWidth:  fullWidth,
		fullHeight: fullHeight,
		offsetX:    x,
		offsetY:    y,
		width:      width,
		height:     height,
	}
	p.Update()
}

func (p *perspectiveCamera) ClearViewOffset() {
	p.view = nil
	p.Update()
}

func (p *perspectiveCamera) Dolly(factor, minZoom, maxZoom float32) float32 {
	p.zoom = common.Clamp(p.zoom/factor, minZoom, maxZoom)
	p.Update()
	return 1
}

func (p *perspectiveCamera) VisibleExtent(distance float32) (width, height float32) {
	height = 2 * distance * common.Tan(p.fov*0.5) / p.zoom
	return height * p.aspect, height
}

// Update recomputes the view matrix and an off-axis-capable perspective frustum.
// The zoom shrinks the near-plane window, which is the same as narrowing the field of view.
func (p *perspectiveCamera) Update() {
	p.updateView()

	top := p.near * common.Tan(p.fov*0.5) / p.zoom
	height := 2 * top
	width := p.aspect * height
	left := -0.5 * width

	if v := p.view; v != nil && v.fullWidth > 0 && v.fullHeight > 0 {
		left += v.offsetX * width / v.fullWidth
		top -= v.offsetY * height / v.fullHeight
		width *= v.width / v.fullWidth
		height *= v.height / v.fullHeight
	}

	p.commitProjection(mgl32.Frustum(left, left+width, top-height, top, p.near, p.far))
}
