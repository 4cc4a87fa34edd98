// Package render provides the camera, lighting and drawing surfaces for drag3d.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/vector"

	"github.com/taigrr/drag3d/pkg/math3d"
)

// Framebuffer is an in-memory RGBA surface.
type Framebuffer struct {
	Width      int
	Height     int
	Image      *image.RGBA
	Background Color // Color used by Clear

	raster *vector.Rasterizer
	mask   *image.Alpha
	frames int
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	bounds := image.Rect(0, 0, width, height)
	return &Framebuffer{
		Width:      width,
		Height:     height,
		Image:      image.NewRGBA(bounds),
		Background: ColorBlack,
		raster:     vector.NewRasterizer(width, height),
		mask:       image.NewAlpha(bounds),
	}
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (int, int) {
	return fb.Width, fb.Height
}

// Frames returns how many frames have been presented.
func (fb *Framebuffer) Frames() int {
	return fb.frames
}

// Clear fills the framebuffer with the background color.
func (fb *Framebuffer) Clear() {
	fb.Fill(fb.Background)
}

// Fill fills the framebuffer with a solid color.
func (fb *Framebuffer) Fill(c Color) {
	draw.Draw(fb.Image, fb.Image.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Image.SetRGBA(x, y, c)
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Image.RGBAAt(x, y)
}

// DrawLine draws a line, clipped to the framebuffer. Lines with non-finite
// endpoints are dropped.
func (fb *Framebuffer) DrawLine(x1, y1, x2, y2 float64, c Color) {
	x1, y1, x2, y2, ok := clipLine(x1, y1, x2, y2, float64(fb.Width-1), float64(fb.Height-1))
	if !ok {
		return
	}
	fb.drawLineInt(
		int(math.Round(x1)), int(math.Round(y1)),
		int(math.Round(x2)), int(math.Round(y2)),
		c,
	)
}

// drawLineInt draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) drawLineInt(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawWirePolygon strokes the closed outline of the polygon.
func (fb *Framebuffer) DrawWirePolygon(points []math3d.Vec2, outline Color) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := range n {
		a, b := points[i], points[(i+1)%n]
		fb.DrawLine(a.X, a.Y, b.X, b.Y, outline)
	}
}

// DrawFilledPolygon fills the polygon with hard (aliased) edges, then strokes
// its outline. Polygons with non-finite vertices are dropped.
func (fb *Framebuffer) DrawFilledPolygon(points []math3d.Vec2, outline, fill Color) {
	if len(points) < 3 || fb.Width == 0 || fb.Height == 0 {
		return
	}
	for _, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return
		}
	}

	clipped := clipPolygon(points, float64(fb.Width), float64(fb.Height))
	if len(clipped) >= 3 {
		fb.raster.Reset(fb.Width, fb.Height)
		fb.raster.MoveTo(float32(clipped[0].X), float32(clipped[0].Y))
		for _, p := range clipped[1:] {
			fb.raster.LineTo(float32(p.X), float32(p.Y))
		}
		fb.raster.ClosePath()

		clear(fb.mask.Pix)
		fb.raster.Draw(fb.mask, fb.mask.Bounds(), image.Opaque, image.Point{})

		for y := range fb.Height {
			row := fb.mask.Pix[y*fb.mask.Stride : y*fb.mask.Stride+fb.Width]
			for x, coverage := range row {
				if coverage >= 0x80 {
					fb.Image.SetRGBA(x, y, fill)
				}
			}
		}
	}

	fb.DrawWirePolygon(points, outline)
}

// Present counts the frame. A framebuffer has nothing to flush.
func (fb *Framebuffer) Present() error {
	fb.frames++
	return nil
}

// Snapshot returns a copy of the framebuffer upscaled by an integer factor
// with nearest-neighbor sampling, keeping pixels crisp.
func (fb *Framebuffer) Snapshot(scale int) *image.RGBA {
	if scale <= 1 {
		return transform.Resize(fb.Image, fb.Width, fb.Height, transform.NearestNeighbor)
	}
	return transform.Resize(fb.Image, fb.Width*scale, fb.Height*scale, transform.NearestNeighbor)
}

// SavePNG saves the framebuffer, upscaled by scale, as a PNG file.
func (fb *Framebuffer) SavePNG(path string, scale int) error {
	return imgio.Save(path, fb.Snapshot(scale), imgio.PNGEncoder())
}

// clipLine clips the segment to the rectangle [0, maxX] x [0, maxY] using
// Liang-Barsky. It reports false when nothing of the segment is inside.
func clipLine(x1, y1, x2, y2, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	if !finite(x1) || !finite(y1) || !finite(x2) || !finite(y2) || maxX < 0 || maxY < 0 {
		return 0, 0, 0, 0, false
	}

	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x1},
		{dx, maxX - x1},
		{-dy, y1},
		{dy, maxY - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// clipPolygon clips a polygon to the rectangle [0, w] x [0, h]
// (Sutherland-Hodgman).
func clipPolygon(points []math3d.Vec2, w, h float64) []math3d.Vec2 {
	type edge struct {
		inside func(p math3d.Vec2) bool
		cross  func(a, b math3d.Vec2) math3d.Vec2
	}
	atX := func(a, b math3d.Vec2, x float64) math3d.Vec2 {
		t := (x - a.X) / (b.X - a.X)
		return math3d.V2(x, a.Y+t*(b.Y-a.Y))
	}
	atY := func(a, b math3d.Vec2, y float64) math3d.Vec2 {
		t := (y - a.Y) / (b.Y - a.Y)
		return math3d.V2(a.X+t*(b.X-a.X), y)
	}
	edges := [4]edge{
		{func(p math3d.Vec2) bool { return p.X >= 0 }, func(a, b math3d.Vec2) math3d.Vec2 { return atX(a, b, 0) }},
		{func(p math3d.Vec2) bool { return p.X <= w }, func(a, b math3d.Vec2) math3d.Vec2 { return atX(a, b, w) }},
		{func(p math3d.Vec2) bool { return p.Y >= 0 }, func(a, b math3d.Vec2) math3d.Vec2 { return atY(a, b, 0) }},
		{func(p math3d.Vec2) bool { return p.Y <= h }, func(a, b math3d.Vec2) math3d.Vec2 { return atY(a, b, h) }},
	}

	out := points
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]math3d.Vec2, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					out = append(out, e.cross(prev, cur))
				}
				out = append(out, cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
