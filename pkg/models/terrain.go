package models

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/taigrr/drag3d/pkg/math3d"
)

// Terrain heights are drawn uniformly from [MinTerrainHeight, MaxTerrainHeight].
const (
	MinTerrainHeight = -10
	MaxTerrainHeight = 10
)

// ErrInvalidTerrain is returned for terrain parameters that cannot describe a grid.
var ErrInvalidTerrain = errors.New("invalid terrain parameters")

// GenerateTerrain builds a heightmap grid mesh of width/gridSize rows by
// depth/gridSize columns (integer division). Vertex (row, col) sits at
// (row*gridSize, h, col*gridSize) where h is an integer drawn independently
// from rng. Each interior cell is split into two triangles.
//
// A nil rng uses the global random source.
func GenerateTerrain(width, depth, gridSize int, rng *rand.Rand) (*Mesh, error) {
	if gridSize <= 0 {
		return nil, fmt.Errorf("grid size %d: %w", gridSize, ErrInvalidTerrain)
	}
	if width < 0 || depth < 0 {
		return nil, fmt.Errorf("size %dx%d: %w", width, depth, ErrInvalidTerrain)
	}

	rows := width / gridSize
	cols := depth / gridSize

	vertices := make([]math3d.Vec3, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			h := randomHeight(rng)
			vertices = append(vertices, math3d.V3(
				float64(row*gridSize),
				float64(h),
				float64(col*gridSize),
			))
		}
	}

	var faces []Face
	if rows > 1 && cols > 1 {
		faces = make([]Face, 0, (rows-1)*(cols-1)*2)
	}
	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols-1; col++ {
			topLeft := row*cols + col
			topRight := topLeft + 1
			bottomLeft := topLeft + cols
			bottomRight := bottomLeft + 1
			faces = append(faces,
				Face{topLeft, bottomLeft, bottomRight},
				Face{topLeft, bottomRight, topRight},
			)
		}
	}

	return NewMesh("terrain", vertices, faces)
}

func randomHeight(rng *rand.Rand) int {
	span := MaxTerrainHeight - MinTerrainHeight + 1
	if rng == nil {
		return MinTerrainHeight + rand.IntN(span)
	}
	return MinTerrainHeight + rng.IntN(span)
}
