package scene

import (
	"math/rand/v2"

	"github.com/taigrr/drag3d/pkg/math3d"
	"github.com/taigrr/drag3d/pkg/models"
	"github.com/taigrr/drag3d/pkg/render"
)

// GameObject is a solid mesh drawn with flat-shaded, outlined faces.
type GameObject struct {
	Mesh    *models.Mesh
	Outline render.Color

	projected []math3d.Vec2
}

// NewGameObject wraps mesh with the given outline color.
func NewGameObject(mesh *models.Mesh, outline render.Color) *GameObject {
	return &GameObject{Mesh: mesh, Outline: outline}
}

// Update does nothing; game objects are static.
func (g *GameObject) Update() {}

// Render draws every face in declared order as a filled polygon. The fill is
// the light's shade for the face normal taken from the untransformed
// vertices.
func (g *GameObject) Render(v *render.View) {
	g.projected = v.ProjectAll(g.Mesh.Vertices, g.projected[:0])

	for i, f := range g.Mesh.Faces {
		points := []math3d.Vec2{g.projected[f[0]], g.projected[f[1]], g.projected[f[2]]}
		fill := v.Light.Shade(g.Mesh.FaceNormal(i))
		v.Surface.DrawFilledPolygon(points, g.Outline, fill)
	}
}

// TerrainColor is the wireframe color of terrain.
var TerrainColor = render.ColorGreen

// Terrain is a generated heightmap drawn as an unlit wireframe.
type Terrain struct {
	Mesh  *models.Mesh
	Color render.Color

	projected []math3d.Vec2
}

// NewTerrain generates a terrain mesh; see models.GenerateTerrain.
func NewTerrain(width, depth, gridSize int, rng *rand.Rand) (*Terrain, error) {
	mesh, err := models.GenerateTerrain(width, depth, gridSize, rng)
	if err != nil {
		return nil, err
	}
	return &Terrain{Mesh: mesh, Color: TerrainColor}, nil
}

// Update does nothing; the heightmap is generated once.
func (t *Terrain) Update() {}

// Render draws each face's outline. Terrain ignores lighting.
func (t *Terrain) Render(v *render.View) {
	t.projected = v.ProjectAll(t.Mesh.Vertices, t.projected[:0])

	for _, f := range t.Mesh.Faces {
		points := []math3d.Vec2{t.projected[f[0]], t.projected[f[1]], t.projected[f[2]]}
		v.Surface.DrawWirePolygon(points, t.Color)
	}
}
