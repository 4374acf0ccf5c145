package controls

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Spherical is an offset expressed as a radius, a polar angle Phi measured from +Y and an
// azimuth Theta measured around +Y starting at +Z.
type Spherical struct {
	Radius float32
	Phi    float32
	Theta  float32
}

// SphericalFromVec3 converts a Cartesian offset. A zero-length offset yields all zeros.
// Phi comes from atan2 rather than acos so it stays accurate within ε of the poles.
//
// Parameters:
//   - v: Cartesian offset
//
// Returns:
//   - Spherical: the equivalent spherical coordinates
func SphericalFromVec3(v mgl32.Vec3) Spherical {
	radius := v.Len()
	if radius == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius: radius,
		Theta:  common.Atan2(v.X(), v.Z()),
		Phi:    common.Atan2(mgl32.Vec2{v.X(), v.Z()}.Len(), v.Y()),
	}
}

// Set replaces all three components.
//
// Parameters:
//   - radius: distance from the origin
//   - phi: polar angle in radians
//   - theta: azimuth in radians
func (s *Spherical) Set(radius, phi, theta float32) {
	s.Radius = radius
	s.Phi = phi
	s.Theta = theta
}

// MakeSafe keeps Phi strictly between the poles so the up vector never flips.
func (s *Spherical) MakeSafe() {
	s.Phi = common.Clamp(s.Phi, common.Epsilon, float32(math.Pi)-common.Epsilon)
}

// Vec3 converts back to a Cartesian offset.
//
// Returns:
//   - mgl32.Vec3: the Cartesian offset
func (s Spherical) Vec3() mgl32.Vec3 {
	sinPhi, cosPhi := common.SinCos(s.Phi)
	sinTheta, cosTheta := common.SinCos(s.Theta)
	sinPhiRadius := sinPhi * s.Radius
	return mgl32.Vec3{
		sinPhiRadius * sinTheta,
		cosPhi * s.Radius,
		sinPhiRadius * cosTheta,
	}
}
