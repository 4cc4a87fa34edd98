// Package models provides the mesh data model and the procedural terrain
// generator for drag3d.
package models

import (
	"errors"
	"fmt"

	"github.com/taigrr/drag3d/pkg/math3d"
)

// ErrFaceIndexOutOfRange is returned when a face references a vertex the mesh
// does not have.
var ErrFaceIndexOutOfRange = errors.New("face index out of range")

// Face is a triangle given by three indices into Mesh.Vertices.
type Face [3]int

// Mesh is an indexed triangle mesh.
//
// Winding order is not enforced, so face normals may point inward or outward
// depending on the input data.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (calculated on construction)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates a mesh from vertices and faces. Every face index must be a
// valid vertex index; the first violation is reported as
// ErrFaceIndexOutOfRange.
func NewMesh(name string, vertices []math3d.Vec3, faces []Face) (*Mesh, error) {
	m := &Mesh{
		Name:     name,
		Vertices: vertices,
		Faces:    faces,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.CalculateBounds()
	return m, nil
}

// MustMesh is like NewMesh but panics on invalid input. Meant for meshes
// built from literals.
func MustMesh(name string, vertices []math3d.Vec3, faces []Face) *Mesh {
	m, err := NewMesh(name, vertices, faces)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate checks that every face index addresses an existing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("mesh %q face %d: index %d with %d vertices: %w",
					m.Name, i, idx, n, ErrFaceIndexOutOfRange)
			}
		}
	}
	return nil
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceNormal returns the un-normalized normal of face i, computed from the
// untransformed vertex positions.
func (m *Mesh) FaceNormal(i int) math3d.Vec3 {
	f := m.Faces[i]
	return math3d.FaceNormal(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
}

// Transform applies a transformation matrix to all vertices. It is meant for
// placing a mesh once during scene setup.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// Cube returns an axis-aligned cube of the given edge length centered on the
// origin, with outward-facing (counter-clockwise) triangles.
func Cube(name string, size float64) *Mesh {
	h := size / 2
	vertices := []math3d.Vec3{
		{X: -h, Y: -h, Z: -h}, // 0: bottom-left-back
		{X: h, Y: -h, Z: -h},  // 1: bottom-right-back
		{X: h, Y: h, Z: -h},   // 2: top-right-back
		{X: -h, Y: h, Z: -h},  // 3: top-left-back
		{X: -h, Y: -h, Z: h},  // 4: bottom-left-front
		{X: h, Y: -h, Z: h},   // 5: bottom-right-front
		{X: h, Y: h, Z: h},    // 6: top-right-front
		{X: -h, Y: h, Z: h},   // 7: top-left-front
	}
	faces := []Face{
		{0, 2, 1}, {0, 3, 2}, // back
		{4, 5, 6}, {4, 6, 7}, // front
		{0, 4, 7}, {0, 7, 3}, // left
		{1, 2, 6}, {1, 6, 5}, // right
		{3, 7, 6}, {3, 6, 2}, // top
		{0, 1, 5}, {0, 5, 4}, // bottom
	}
	return MustMesh(name, vertices, faces)
}
