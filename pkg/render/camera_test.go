package render

import (
	"math"
	"testing"

	"github.com/taigrr/drag3d/pkg/math3d"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.Position != math3d.V3(0, 0, -500) {
		t.Errorf("default position = %v, want (0,0,-500)", c.Position)
	}
	if c.Yaw != 0 || c.Pitch != 0 {
		t.Errorf("default orientation yaw=%v pitch=%v", c.Yaw, c.Pitch)
	}
}

func TestProjectCenter(t *testing.T) {
	c := &Camera{}
	got := c.Project(math3d.V3(0, 0, 500), 800, 600)
	if got != math3d.V2(400, 300) {
		t.Errorf("Project = %v, want (400,300)", got)
	}
}

func TestProjectScale(t *testing.T) {
	c := &Camera{}

	tests := []struct {
		name  string
		point math3d.Vec3
		want  math3d.Vec2
	}{
		// z=500 -> scale 0.5
		{"right of center", math3d.V3(100, 0, 500), math3d.V2(450, 300)},
		// y up maps to screen up
		{"above center", math3d.V3(0, 100, 500), math3d.V2(400, 250)},
		// z=0 uses epsilon: scale = 500/500.01
		{"zero depth", math3d.V3(100, 0, 0), math3d.V2(100*500/500.01+400, 300)},
		// z=1500 -> scale 0.25
		{"far", math3d.V3(-200, -40, 1500), math3d.V2(350, 310)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Project(tc.point, 800, 600)
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Project(%v) = %v, want %v", tc.point, got, tc.want)
			}
		})
	}
}

func TestProjectTranslatesByCameraPosition(t *testing.T) {
	c := NewCamera() // at z = -500
	got := c.Project(math3d.V3(0, 0, 0), 800, 600)
	if got != math3d.V2(400, 300) {
		t.Errorf("origin seen from default camera = %v, want (400,300)", got)
	}

	c.Move(math3d.V3(10, 0, 0))
	got = c.Project(math3d.V3(0, 0, 0), 800, 600)
	// origin is now 10 units left of the camera at depth 500: scale 0.5
	if got != math3d.V2(395, 300) {
		t.Errorf("after moving right = %v, want (395,300)", got)
	}
}

func TestToCameraSpaceRotation(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float64
		point      math3d.Vec3
		want       math3d.Vec3
	}{
		{"identity", 0, 0, math3d.V3(1, 2, 3), math3d.V3(1, 2, 3)},
		// x' = x cos - z sin, z' = x sin + z cos
		{"yaw 90", 90, 0, math3d.V3(0, 0, 10), math3d.V3(-10, 0, 0)},
		{"yaw 90 x axis", 90, 0, math3d.V3(10, 0, 0), math3d.V3(0, 0, 10)},
		// y' = y cos - z sin, z' = y sin + z cos
		{"pitch 90", 0, 90, math3d.V3(0, 0, 10), math3d.V3(0, -10, 0)},
		// pitch applies to the z produced by yaw
		{"yaw then pitch", 90, 90, math3d.V3(10, 0, 0), math3d.V3(0, -10, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &Camera{Yaw: tc.yaw, Pitch: tc.pitch}
			got := c.ToCameraSpace(tc.point)
			if got.Sub(tc.want).Len() > 1e-9 {
				t.Errorf("ToCameraSpace(%v) = %v, want %v", tc.point, got, tc.want)
			}
		})
	}
}

func TestProjectDeterministic(t *testing.T) {
	c := &Camera{Position: math3d.V3(13, -7, -420), Yaw: 33.3, Pitch: -12.1}
	p := math3d.V3(120, 45, 310)

	first := c.Project(p, 640, 480)
	for range 100 {
		if got := c.Project(p, 640, 480); got != first {
			t.Fatalf("Project not deterministic: %v vs %v", got, first)
		}
	}
}

func TestProjectBehindCameraIsNotClipped(t *testing.T) {
	c := &Camera{}
	// z + focal < 0 gives a negative scale: the point is mirrored, not dropped.
	got := c.Project(math3d.V3(100, 0, -1000), 800, 600)
	if got.X >= 400 {
		t.Errorf("behind-camera point should project inverted, got %v", got)
	}
}

func TestCameraRotate(t *testing.T) {
	c := NewCamera()
	c.Rotate(1.5, -0.5)
	c.Rotate(1.5, -0.5)
	if c.Yaw != 3 || c.Pitch != -1 {
		t.Errorf("yaw=%v pitch=%v, want 3, -1", c.Yaw, c.Pitch)
	}
}

func BenchmarkProject(b *testing.B) {
	c := &Camera{Position: math3d.V3(0, 50, -500), Yaw: 15, Pitch: -10}
	p := math3d.V3(100, 5, 250)

	for b.Loop() {
		_ = c.Project(p, 800, 600)
	}
}
