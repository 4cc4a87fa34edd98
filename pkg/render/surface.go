package render

import "github.com/taigrr/drag3d/pkg/math3d"

// Surface is a 2D drawing target. Coordinates are in pixels with the origin
// at the top-left corner and y growing downward.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)
	// Clear erases everything drawn since the last Clear.
	Clear()
	DrawLine(x1, y1, x2, y2 float64, c Color)
	// DrawFilledPolygon fills the polygon with fill and strokes its edges
	// with outline.
	DrawFilledPolygon(points []math3d.Vec2, outline, fill Color)
	// DrawWirePolygon strokes the polygon's edges, leaving it unfilled.
	DrawWirePolygon(points []math3d.Vec2, outline Color)
	// Present shows the finished frame. An error means the surface is no
	// longer usable.
	Present() error
}

// View carries what a scene object needs to draw itself for one frame.
type View struct {
	Camera  *Camera
	Light   Light
	Surface Surface
	Width   int
	Height  int
}

// NewView creates a view sized to the surface's current dimensions.
func NewView(camera *Camera, light Light, s Surface) *View {
	w, h := s.Size()
	return &View{
		Camera:  camera,
		Light:   light,
		Surface: s,
		Width:   w,
		Height:  h,
	}
}

// Project maps a world point to the view's screen coordinates.
func (v *View) Project(p math3d.Vec3) math3d.Vec2 {
	return v.Camera.Project(p, v.Width, v.Height)
}

// ProjectAll projects every point, appending the results to dst.
func (v *View) ProjectAll(points []math3d.Vec3, dst []math3d.Vec2) []math3d.Vec2 {
	for _, p := range points {
		dst = append(dst, v.Project(p))
	}
	return dst
}
