package render

import "github.com/taigrr/drag3d/pkg/math3d"

// Light is a single directional light. Source is a world-space point that is
// used as the direction towards the light.
type Light struct {
	Source math3d.Vec3
}

// DefaultLight returns the light straight above the scene at (0, 200, 0).
func DefaultLight() Light {
	return Light{Source: math3d.V3(0, 200, 0)}
}

// Brightness returns the flat-shading intensity in [0, 255] for a face
// normal: (L·N)/|L| clamped at zero, scaled by 255 and truncated.
//
// The normal is used as given, so faces with the same orientation but a
// larger area come out brighter until the result saturates at 255.
func (l Light) Brightness(normal math3d.Vec3) int {
	length := l.Source.Len()
	if length == 0 {
		length = 1
	}

	d := l.Source.Dot(normal) / length
	if d < 0 {
		d = 0
	}

	b := int(255 * d)
	if b > 255 {
		b = 255
	}
	return b
}

// Shade returns the gray fill color for a face normal.
func (l Light) Shade(normal math3d.Vec3) Color {
	return Gray(uint8(l.Brightness(normal)))
}
