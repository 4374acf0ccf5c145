package controls

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitControlsOption is a functional option for configuring OrbitControls.
type OrbitControlsOption func(*orbitControlsImpl)

// WithTarget sets the orbit pivot. Defaults to the camera's own target.
//
// Parameters:
//   - target: world-space pivot
//
// Returns:
//   - OrbitControlsOption: functional option to set the target
func WithTarget(target mgl32.Vec3) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.target = target
	}
}

// WithDistanceLimits bounds the camera-to-target distance.
//
// Parameters:
//   - min: closest allowed distance
//   - max: farthest allowed distance
//
// Returns:
//   - OrbitControlsOption: functional option to set the distance limits
func WithDistanceLimits(min, max float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.minDistance, oc.maxDistance = min, max
	}
}

// WithZoomLimits bounds the zoom of cameras that dolly by zooming.
//
// Parameters:
//   - min: smallest allowed zoom
//   - max: largest allowed zoom
//
// Returns:
//   - OrbitControlsOption: functional option to set the zoom limits
func WithZoomLimits(min, max float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.minZoom, oc.maxZoom = min, max
	}
}

// WithPolarAngleLimits bounds how far the camera can orbit over and under the target.
//
// Parameters:
//   - min: smallest polar angle in radians (0 = straight above)
//   - max: largest polar angle in radians (π = straight below)
//
// Returns:
//   - OrbitControlsOption: functional option to set the polar limits
func WithPolarAngleLimits(min, max float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.minPolarAngle, oc.maxPolarAngle = min, max
	}
}

// WithAzimuthAngleLimits bounds the horizontal orbit. Both bounds must be finite to take effect.
//
// Parameters:
//   - min: smallest azimuth in radians
//   - max: largest azimuth in radians
//
// Returns:
//   - OrbitControlsOption: functional option to set the azimuth limits
func WithAzimuthAngleLimits(min, max float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.minAzimuthAngle, oc.maxAzimuthAngle = min, max
	}
}

// WithZoom sets the dolly policy.
func WithZoom(p Policy) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.zoom = p
	}
}

// WithRotate sets the rotate policy.
func WithRotate(p Policy) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.rotate = p
	}
}

// WithPan sets the pan policy.
func WithPan(p Policy) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.pan = p
	}
}

// WithAutoRotate sets the auto-rotate policy. Enabled(1) turns once a minute at 60 frames per second.
func WithAutoRotate(p Policy) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.autoRotate = p
	}
}

// WithDamping sets the inertia policy. The strength is the fraction of pending motion applied
// each frame, typically 0.05 to 0.25.
func WithDamping(p Policy) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.damping = p
	}
}

// WithViewport sets the pixel size used to convert pointer deltas. Zero keeps the default.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - OrbitControlsOption: functional option to set the viewport
func WithViewport(width, height int) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.viewportWidth = common.Coalesce(max(width, 0), defaultViewportWidth)
		oc.viewportHeight = common.Coalesce(max(height, 0), defaultViewportHeight)
	}
}

// WithScreenSpacePanning chooses between panning in the screen plane (true) and along the
// plane orthogonal to the camera's up (false).
func WithScreenSpacePanning(enabled bool) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.screenSpacePanning = enabled
	}
}

// WithKeyPanSpeed sets the pixels panned per arrow key press.
func WithKeyPanSpeed(speed float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.keyPanSpeed = speed
	}
}

// WithLogger routes the controls' diagnostics. Nil keeps the silent default.
func WithLogger(logger common.Logger) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		if logger != nil {
			oc.logger = logger
		}
	}
}
