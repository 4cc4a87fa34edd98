package models

import (
	"errors"
	"testing"

	"github.com/taigrr/drag3d/pkg/math3d"
)

func triangle() []math3d.Vec3 {
	return []math3d.Vec3{
		math3d.V3(0, 0, 0),
		math3d.V3(1, 0, 0),
		math3d.V3(0, 1, 0),
	}
}

func TestNewMeshValidatesIndices(t *testing.T) {
	tests := []struct {
		name    string
		faces   []Face
		wantErr bool
	}{
		{"valid", []Face{{0, 1, 2}}, false},
		{"no faces", nil, false},
		{"index equals length", []Face{{0, 1, 3}}, true},
		{"negative index", []Face{{-1, 1, 2}}, true},
		{"second face bad", []Face{{0, 1, 2}, {2, 1, 9}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMesh("tri", triangle(), tc.faces)
			if tc.wantErr {
				if !errors.Is(err, ErrFaceIndexOutOfRange) {
					t.Errorf("expected ErrFaceIndexOutOfRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMustMeshPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustMesh should panic on a bad index")
		}
	}()
	MustMesh("bad", triangle(), []Face{{0, 1, 5}})
}

func TestMeshFaceNormal(t *testing.T) {
	m := MustMesh("tri", triangle(), []Face{{0, 1, 2}, {0, 2, 1}})

	if got := m.FaceNormal(0); got != math3d.V3(0, 0, 1) {
		t.Errorf("face 0 normal = %v, want (0,0,1)", got)
	}
	if got := m.FaceNormal(1); got != math3d.V3(0, 0, -1) {
		t.Errorf("face 1 normal = %v, want (0,0,-1)", got)
	}
}

func TestMeshBounds(t *testing.T) {
	m := Cube("cube", 2)

	if m.BoundsMin != math3d.V3(-1, -1, -1) || m.BoundsMax != math3d.V3(1, 1, 1) {
		t.Errorf("bounds = %v..%v", m.BoundsMin, m.BoundsMax)
	}
	if m.Center() != math3d.Zero3() {
		t.Errorf("center = %v", m.Center())
	}
	if m.Size() != math3d.V3(2, 2, 2) {
		t.Errorf("size = %v", m.Size())
	}
	if m.VertexCount() != 8 || m.TriangleCount() != 12 {
		t.Errorf("cube has %d vertices and %d triangles", m.VertexCount(), m.TriangleCount())
	}
}

func TestCubeNormalsPointOutward(t *testing.T) {
	m := Cube("cube", 2)
	for i := range m.Faces {
		f := m.Faces[i]
		centroid := m.Vertices[f[0]].Add(m.Vertices[f[1]]).Add(m.Vertices[f[2]]).Scale(1.0 / 3)
		if m.FaceNormal(i).Dot(centroid) <= 0 {
			t.Errorf("face %d normal %v points inward", i, m.FaceNormal(i))
		}
	}
}

func TestMeshTransform(t *testing.T) {
	m := Cube("cube", 2)
	m.Transform(math3d.Translate(math3d.V3(0, 100, 0)))

	if m.Center() != math3d.V3(0, 100, 0) {
		t.Errorf("center after transform = %v", m.Center())
	}
}

func TestMeshCloneIsIndependent(t *testing.T) {
	m := Cube("cube", 2)
	clone := m.Clone()

	clone.Vertices[0] = math3d.V3(99, 99, 99)
	clone.Faces[0] = Face{1, 1, 1}

	if m.Vertices[0] == clone.Vertices[0] {
		t.Error("Clone should copy vertices")
	}
	if m.Faces[0] == clone.Faces[0] {
		t.Error("Clone should copy faces")
	}
}
