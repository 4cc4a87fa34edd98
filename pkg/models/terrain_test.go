package models

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestGenerateTerrainSmallGrid(t *testing.T) {
	m, err := GenerateTerrain(100, 100, 50, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("GenerateTerrain: %v", err)
	}

	if m.VertexCount() != 4 {
		t.Errorf("expected 2x2 = 4 vertices, got %d", m.VertexCount())
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("expected 2 faces, got %d", m.TriangleCount())
	}
	if m.Faces[0] != (Face{0, 2, 3}) {
		t.Errorf("face 0 = %v, want [0 2 3]", m.Faces[0])
	}
	if m.Faces[1] != (Face{0, 3, 1}) {
		t.Errorf("face 1 = %v, want [0 3 1]", m.Faces[1])
	}
}

func TestGenerateTerrainLayout(t *testing.T) {
	const grid = 50
	m, err := GenerateTerrain(800, 400, grid, rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatalf("GenerateTerrain: %v", err)
	}

	rows, cols := 800/grid, 400/grid
	if m.VertexCount() != rows*cols {
		t.Fatalf("vertex count = %d, want %d", m.VertexCount(), rows*cols)
	}
	if want := (rows - 1) * (cols - 1) * 2; m.TriangleCount() != want {
		t.Errorf("triangle count = %d, want %d", m.TriangleCount(), want)
	}

	for row := range rows {
		for col := range cols {
			v := m.Vertices[row*cols+col]
			if v.X != float64(row*grid) || v.Z != float64(col*grid) {
				t.Fatalf("vertex (%d,%d) at %v", row, col, v)
			}
			if v.Y < MinTerrainHeight || v.Y > MaxTerrainHeight || v.Y != float64(int(v.Y)) {
				t.Fatalf("vertex (%d,%d) height %v outside integer range", row, col, v.Y)
			}
		}
	}
}

func TestGenerateTerrainHeightsCoverRange(t *testing.T) {
	m, err := GenerateTerrain(2000, 2000, 10, rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatalf("GenerateTerrain: %v", err)
	}
	seen := make(map[float64]bool)
	for _, v := range m.Vertices {
		seen[v.Y] = true
	}
	for h := MinTerrainHeight; h <= MaxTerrainHeight; h++ {
		if !seen[float64(h)] {
			t.Errorf("height %d never generated across %d vertices", h, m.VertexCount())
		}
	}
}

func TestGenerateTerrainDegenerate(t *testing.T) {
	tests := []struct {
		name                 string
		width, depth, grid   int
		wantVerts, wantFaces int
	}{
		{"smaller than one cell", 40, 40, 50, 0, 0},
		{"single row", 50, 200, 50, 4, 0},
		{"uneven division", 149, 120, 50, 4, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := GenerateTerrain(tc.width, tc.depth, tc.grid, nil)
			if err != nil {
				t.Fatalf("GenerateTerrain: %v", err)
			}
			if m.VertexCount() != tc.wantVerts || m.TriangleCount() != tc.wantFaces {
				t.Errorf("got %d vertices, %d faces; want %d, %d",
					m.VertexCount(), m.TriangleCount(), tc.wantVerts, tc.wantFaces)
			}
		})
	}
}

func TestGenerateTerrainInvalid(t *testing.T) {
	for _, grid := range []int{0, -5} {
		if _, err := GenerateTerrain(100, 100, grid, nil); !errors.Is(err, ErrInvalidTerrain) {
			t.Errorf("grid %d: expected ErrInvalidTerrain, got %v", grid, err)
		}
	}
	if _, err := GenerateTerrain(-100, 100, 10, nil); !errors.Is(err, ErrInvalidTerrain) {
		t.Errorf("negative width: expected ErrInvalidTerrain, got %v", err)
	}
}
