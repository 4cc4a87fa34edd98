package render

import (
	"math"

	"github.com/taigrr/drag3d/pkg/math3d"
)

// FocalLength is the distance used in the perspective scale
// focal / (z + focal).
const FocalLength = 500

// zEpsilon replaces a camera-space depth of exactly zero.
const zEpsilon = 0.01

// Camera is a free-look camera with a position and yaw/pitch orientation.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Orientation in degrees
	Yaw   float64 // Rotation around the vertical axis
	Pitch float64 // Rotation around the horizontal axis
}

// NewCamera creates a camera 500 units behind the origin, looking down +Z.
func NewCamera() *Camera {
	return &Camera{
		Position: math3d.V3(0, 0, -FocalLength),
	}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
}

// Move translates the camera by delta in world space.
func (c *Camera) Move(delta math3d.Vec3) {
	c.Position = c.Position.Add(delta)
}

// Rotate adds the given angles (degrees) to yaw and pitch. Angles are not
// clamped or wrapped.
func (c *Camera) Rotate(deltaYaw, deltaPitch float64) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
}

// ToCameraSpace translates p relative to the camera, then rotates it by yaw
// in the (x, z) plane and by pitch in the (y, z) plane, in that order.
func (c *Camera) ToCameraSpace(p math3d.Vec3) math3d.Vec3 {
	x := p.X - c.Position.X
	y := p.Y - c.Position.Y
	z := p.Z - c.Position.Z

	yaw := c.Yaw * math.Pi / 180
	pitch := c.Pitch * math.Pi / 180
	cosYaw, sinYaw := math.Cos(yaw), math.Sin(yaw)
	cosPitch, sinPitch := math.Cos(pitch), math.Sin(pitch)

	// Yaw
	x, z = x*cosYaw-z*sinYaw, x*sinYaw+z*cosYaw

	// Pitch uses the z already rotated by yaw
	y, z = y*cosPitch-z*sinPitch, y*sinPitch+z*cosPitch

	return math3d.V3(x, y, z)
}

// Project maps a world point to screen coordinates on a width x height
// surface. Screen y grows downward.
//
// There is no clipping: points at or behind z = -FocalLength produce
// inverted or infinite coordinates, and callers drawing them must cope.
func (c *Camera) Project(p math3d.Vec3, width, height int) math3d.Vec2 {
	cs := c.ToCameraSpace(p)

	z := cs.Z
	if z == 0 {
		z = zEpsilon
	}
	scale := FocalLength / (z + FocalLength)

	return math3d.V2(
		cs.X*scale+float64(width)/2,
		-cs.Y*scale+float64(height)/2,
	)
}
