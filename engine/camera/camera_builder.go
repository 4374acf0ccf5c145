package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// cameraConfig collects construction parameters for every camera variant.
// Each constructor fills in its own defaults before applying options.
type cameraConfig struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3
	zoom     float32
	near     float32
	far      float32

	// perspective
	fov    float32
	aspect float32

	// orthographic
	left, right, top, bottom float32
}

func defaultConfig() *cameraConfig {
	return &cameraConfig{
		position: mgl32.Vec3{0, 0, 2},
		up:       mgl32.Vec3{0, 1, 0},
		zoom:     1,
		near:     0.1,
		far:      100,
		fov:      45.0 * (math.Pi / 180.0),
		aspect:   1920.0 / 1080.0,
		left:     -1,
		right:    1,
		top:      1,
		bottom:   -1,
	}
}

// CameraBuilderOption is a functional option for configuring a camera at construction.
// Options that do not apply to a variant (e.g. WithFov on an orthographic camera) are ignored.
type CameraBuilderOption func(*cameraConfig)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - position: world-space camera position
//
// Returns:
//   - CameraBuilderOption: functional option to set the position
func WithPosition(position mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraConfig) {
		c.position = position
	}
}

// WithTarget sets the initial look-at point.
//
// Parameters:
//   - target: world-space look-at point
//
// Returns:
//   - CameraBuilderOption: functional option to set the target
func WithTarget(target mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraConfig) {
		c.target = target
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - up: up vector
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraConfig) {
		c.up = up
	}
}

// WithZoom sets the initial zoom factor.
//
// Parameters:
//   - zoom: zoom factor (1 = unzoomed)
//
// Returns:
//   - CameraBuilderOption: functional option to set the zoom
func WithZoom(zoom float32) CameraBuilderOption {
	return func(c *cameraConfig) {
		c.zoom = zoom
	}
}

// WithFov sets the perspective vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraConfig) {
		c.fov = fov
	}
}

// WithAspect sets the perspective aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraConfig) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraConfig) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraConfig) {
		c.far = far
	}
}

// WithBounds sets the orthographic view box at zoom 1.
//
// Parameters:
//   - left, right, top, bottom: box edges in view space
//
// Returns:
//   - CameraBuilderOption: functional option to set the box
func WithBounds(left, right, top, bottom float32) CameraBuilderOption {
	return func(c *cameraConfig) {
		c.left = left
		c.right = right
		c.top = top
		c.bottom = bottom
	}
}
