package models

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// BuildDocument converts meshes into a glTF document with one node per mesh
// in the default scene. Faces keep their declared winding. Meshes without
// vertices or faces are skipped, since glTF needs at least one primitive.
func BuildDocument(meshes ...*Mesh) (*gltf.Document, error) {
	doc := gltf.NewDocument()

	for _, m := range meshes {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("export mesh: %w", err)
		}
		if len(m.Vertices) == 0 || len(m.Faces) == 0 {
			continue
		}

		positions := make([][3]float32, len(m.Vertices))
		for i, v := range m.Vertices {
			positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		}

		indices := make([]uint32, 0, len(m.Faces)*3)
		for _, f := range m.Faces {
			indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
		}

		pos := modeler.WritePosition(doc, positions)
		idx := modeler.WriteIndices(doc, indices)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: m.Name,
			Primitives: []*gltf.Primitive{{
				Mode:       gltf.PrimitiveTriangles,
				Indices:    gltf.Index(idx),
				Attributes: map[string]int{gltf.POSITION: pos},
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: m.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	return doc, nil
}

// ExportGLB writes meshes to a binary glTF (.glb) file.
func ExportGLB(path string, meshes ...*Mesh) error {
	doc, err := BuildDocument(meshes...)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}
