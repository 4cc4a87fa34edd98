package main

import (
	"math"
	"math/rand/v2"

	"github.com/taigrr/drag3d/internal/config"
	"github.com/taigrr/drag3d/pkg/math3d"
	"github.com/taigrr/drag3d/pkg/models"
	"github.com/taigrr/drag3d/pkg/render"
	"github.com/taigrr/drag3d/pkg/scene"
)

const (
	cubeSize   = 100
	cubeHeight = 80

	// Turned and tipped so three faces catch different amounts of light.
	cubeYaw  = 30 * math.Pi / 180
	cubeTilt = 20 * math.Pi / 180
)

// demoScene builds the terrain and, if asked, a cube floating over its
// middle.
func demoScene(cfg config.Config, withCube bool, outline string) ([]scene.Object, error) {
	terrain, err := scene.NewTerrain(cfg.Terrain.Width, cfg.Terrain.Depth, cfg.Terrain.GridSize, terrainRand(cfg.Terrain.Seed))
	if err != nil {
		return nil, err
	}
	objects := []scene.Object{terrain}

	if withCube {
		c, err := render.ParseColor(outline)
		if err != nil {
			return nil, err
		}
		center := math3d.V3(float64(cfg.Terrain.Width)/2, cubeHeight, float64(cfg.Terrain.Depth)/2)
		cube := models.Cube("cube", 1)
		cube.Transform(cubePlacement(center))
		objects = append(objects, scene.NewGameObject(cube, c))
	}
	return objects, nil
}

// cubePlacement sizes a unit cube, tips it about x, turns it about
// the vertical axis and moves it to center.
func cubePlacement(center math3d.Vec3) math3d.Mat4 {
	return math3d.Translate(center).
		Mul(math3d.RotateY(cubeYaw)).
		Mul(math3d.RotateX(cubeTilt)).
		Mul(math3d.ScaleUniform(cubeSize))
}

// terrainRand returns a seeded source, or nil for seed 0 so terrain uses the
// global source.
func terrainRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// sceneMeshes collects the meshes of the built-in object kinds.
func sceneMeshes(objects []scene.Object) []*models.Mesh {
	var meshes []*models.Mesh
	for _, obj := range objects {
		switch o := obj.(type) {
		case *scene.Terrain:
			meshes = append(meshes, o.Mesh)
		case *scene.GameObject:
			meshes = append(meshes, o.Mesh)
		}
	}
	return meshes
}
