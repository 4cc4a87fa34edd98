package render

import (
	"errors"
	"testing"

	"github.com/taigrr/drag3d/pkg/math3d"
)

func TestRecorderRecordsFrame(t *testing.T) {
	r := NewRecorder(100, 50)
	pts := []math3d.Vec2{math3d.V2(0, 0), math3d.V2(1, 0), math3d.V2(0, 1)}

	r.DrawLine(0, 0, 10, 0, ColorWhite)
	r.Clear()
	r.DrawFilledPolygon(pts, ColorWhite, Gray(10))
	r.DrawWirePolygon(pts, ColorGreen)

	if len(r.Commands) != 2 {
		t.Fatalf("expected 2 commands after Clear, got %d", len(r.Commands))
	}
	if r.Count(CommandFilledPolygon) != 1 || r.Count(CommandWirePolygon) != 1 || r.Count(CommandLine) != 0 {
		t.Errorf("unexpected command mix: %+v", r.Commands)
	}
	if r.Commands[0].Fill != Gray(10) || r.Commands[0].Outline != ColorWhite {
		t.Errorf("filled polygon colors = %v/%v", r.Commands[0].Outline, r.Commands[0].Fill)
	}

	// The recorder keeps its own copy of the points.
	pts[0] = math3d.V2(99, 99)
	if r.Commands[0].Points[0] != math3d.V2(0, 0) {
		t.Error("recorded points alias the caller's slice")
	}
}

func TestRecorderPresentHook(t *testing.T) {
	errBoom := errors.New("boom")
	r := NewRecorder(1, 1)
	r.OnPresent = func(frame int) error {
		if frame == 2 {
			return errBoom
		}
		return nil
	}

	if err := r.Present(); err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	if err := r.Present(); !errors.Is(err, errBoom) {
		t.Fatalf("frame 2: expected errBoom, got %v", err)
	}
}

func TestCommandKindString(t *testing.T) {
	if CommandFilledPolygon.String() != "filled-polygon" {
		t.Errorf("String = %q", CommandFilledPolygon.String())
	}
}
