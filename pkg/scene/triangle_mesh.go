package scene

import (
	"math"
	"strings"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
	"github.com/df07/go-ray-tracer/pkg/loaders"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// icosahedronOBJ is a unit-circumradius icosahedron split into two named
// halves. Vertices are (0, ±1, ±φ) and friends, scaled by 1/sqrt(1+φ²).
const icosahedronOBJ = `# Icosahedron
v -0.525731  0.850651  0.000000
v  0.525731  0.850651  0.000000
v -0.525731 -0.850651  0.000000
v  0.525731 -0.850651  0.000000
v  0.000000 -0.525731  0.850651
v  0.000000  0.525731  0.850651
v  0.000000 -0.525731 -0.850651
v  0.000000  0.525731 -0.850651
v  0.850651  0.000000 -0.525731
v  0.850651  0.000000  0.525731
v -0.850651  0.000000 -0.525731
v -0.850651  0.000000  0.525731

g top
f 1 12 6
f 1 6 2
f 1 2 8
f 1 8 11
f 1 11 12
f 2 6 10
f 6 12 5
f 12 11 3
f 11 8 7
f 8 2 9

g bottom
f 4 10 5
f 4 5 3
f 4 3 7
f 4 7 9
f 4 9 10
f 5 10 6
f 3 5 12
f 7 3 11
f 9 7 8
f 10 9 2
`

// pyramidOBJ is a square pyramid whose base is a single quad face
const pyramidOBJ = `v -1 0 -1
v  1 0 -1
v  1 0  1
v -1 0  1
v  0 1.5 0
f 1 2 3 4
f 1 2 5
f 2 3 5
f 3 4 5
f 4 1 5
`

// NewTriangleMeshScene creates a scene showcasing triangle mesh geometry
// parsed from OBJ text
func NewTriangleMeshScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       600,
		Height:      338,
		FieldOfView: math.Pi / 4,
		From:        core.NewPoint(0, 2, -6),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	arena := geometry.NewArena(nil)

	ground := newPatternedMaterial(material.NewCheckersPattern(core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.6, 0.6, 0.6)))
	ground.Specular = 0
	arena.AddPlane(geometry.WithMaterial(ground))

	// Faceted icosahedron
	blue := material.NewColoredMaterial(core.NewColor(0.2, 0.4, 0.9))
	blue.Specular = 0.6
	blue.Reflective = 0.15
	if _, err := loaders.ParseOBJ(strings.NewReader(icosahedronOBJ), arena, geometry.ShapeOptions{
		Transform: core.RotationY(0.3).Translate(-1.3, 1, 0),
		Material:  blue,
	}); err != nil {
		return nil, err
	}

	// Pyramid, whose quad base is fan triangulated
	sand := material.NewColoredMaterial(core.NewColor(0.9, 0.75, 0.45))
	sand.Specular = 0.2
	if _, err := loaders.ParseOBJ(strings.NewReader(pyramidOBJ), arena, geometry.ShapeOptions{
		Transform: core.Scaling(0.8, 0.8, 0.8).RotateY(math.Pi/5).Translate(1.3, 0, 0.3),
		Material:  sand,
	}); err != nil {
		return nil, err
	}

	// A single hand-placed glass triangle
	glass := material.NewGlassMaterial()
	glass.Pattern = material.NewSolidPattern(core.NewColor(0.1, 0.1, 0.1))
	glass.Reflective = 0.5
	arena.AddTriangle(geometry.WithMaterial(glass),
		core.NewPoint(-0.5, 0.1, -1.5), core.NewPoint(0.5, 0.1, -1.5), core.NewPoint(0, 1.0, -1.2))

	light := lights.NewPointLight(core.NewPoint(-4, 8, -6), core.White)
	return newScene(arena, light, cameraConfig, cameraOverrides)
}
