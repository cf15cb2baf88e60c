package renderer

import (
	"math"

	"github.com/mzhang233/go-ray-tracing/pkg/core"
)

// CameraConfig holds camera placement and lens parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens aperture (0 = pinhole)
	FocusDistance float64   // Distance to the plane of perfect focus
}

// Camera generates rays for rendering. All fields are derived once at
// construction; parameter changes require a new camera.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	right           core.Vec3
	up              core.Vec3
	forward         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from placement parameters.
// A LookAt direction parallel to Up is an unchecked precondition: the basis
// degenerates and the resulting rays are NaN.
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := viewportHeight * config.AspectRatio

	forward := config.LookAt.Subtract(config.Center).Normalize()
	right := forward.Cross(config.Up).Normalize()
	up := right.Cross(forward)

	horizontal := right.Multiply(config.FocusDistance * viewportWidth)
	vertical := up.Multiply(config.FocusDistance * viewportHeight)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Add(forward.Multiply(config.FocusDistance))

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		right:           right,
		up:              up,
		forward:         forward,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray through viewport coordinates (u, v) in [0, 1],
// jittered within the lens disk for depth of field. With aperture 0 the
// offset is exactly zero and every ray originates at the camera origin.
func (c *Camera) GetRay(u, v float64, sampler core.Sampler) core.Ray {
	lens := core.SampleInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.right.Multiply(lens.X).Add(c.up.Multiply(lens.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(origin, direction)
}

// Forward returns the camera's viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}
