package render

import (
	"slices"

	"github.com/taigrr/drag3d/pkg/math3d"
)

// CommandKind identifies a recorded draw call.
type CommandKind int

const (
	CommandLine CommandKind = iota
	CommandFilledPolygon
	CommandWirePolygon
)

func (k CommandKind) String() string {
	switch k {
	case CommandLine:
		return "line"
	case CommandFilledPolygon:
		return "filled-polygon"
	case CommandWirePolygon:
		return "wire-polygon"
	default:
		return "unknown"
	}
}

// DrawCommand is one draw call: a list of 2D points plus its colors. Lines
// have two points. Fill is only set for filled polygons.
type DrawCommand struct {
	Kind    CommandKind
	Points  []math3d.Vec2
	Outline Color
	Fill    Color
}

// Recorder is a Surface that records draw commands instead of drawing them.
// Commands holds the calls made since the last Clear.
type Recorder struct {
	Width    int
	Height   int
	Commands []DrawCommand

	// Clears and Frames count Clear and Present calls.
	Clears int
	Frames int

	// OnPresent, if set, is called on every Present with the 1-based frame
	// number; its error is returned from Present.
	OnPresent func(frame int) error
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Size returns the recorder's reported dimensions.
func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Clear drops the commands of the previous frame.
func (r *Recorder) Clear() {
	r.Commands = r.Commands[:0]
	r.Clears++
}

// DrawLine records a line.
func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, c Color) {
	r.Commands = append(r.Commands, DrawCommand{
		Kind:    CommandLine,
		Points:  []math3d.Vec2{math3d.V2(x1, y1), math3d.V2(x2, y2)},
		Outline: c,
	})
}

// DrawFilledPolygon records a filled polygon.
func (r *Recorder) DrawFilledPolygon(points []math3d.Vec2, outline, fill Color) {
	r.Commands = append(r.Commands, DrawCommand{
		Kind:    CommandFilledPolygon,
		Points:  slices.Clone(points),
		Outline: outline,
		Fill:    fill,
	})
}

// DrawWirePolygon records an unfilled polygon.
func (r *Recorder) DrawWirePolygon(points []math3d.Vec2, outline Color) {
	r.Commands = append(r.Commands, DrawCommand{
		Kind:    CommandWirePolygon,
		Points:  slices.Clone(points),
		Outline: outline,
	})
}

// Present counts the frame and runs OnPresent.
func (r *Recorder) Present() error {
	r.Frames++
	if r.OnPresent != nil {
		return r.OnPresent(r.Frames)
	}
	return nil
}

// Count returns how many recorded commands have the given kind.
func (r *Recorder) Count(kind CommandKind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
