package scene

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// NewCSGScene creates a scene of constructive solid geometry: a rounded cube
// with bored holes, a glass lens and a bitten sphere
func NewCSGScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      225,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 3, -6),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	arena := geometry.NewArena(nil)

	floor := newPatternedMaterial(material.NewCheckersPattern(core.NewColor(0.85, 0.85, 0.85), core.NewColor(0.25, 0.25, 0.3)))
	floor.Specular = 0
	floor.Reflective = 0.1
	arena.AddPlane(geometry.WithMaterial(floor))

	// Rounded cube: cube intersected with a sphere, minus three crossing bores
	body := material.NewColoredMaterial(core.NewColor(0.8, 0.1, 0.1))
	body.Specular = 0.6
	body.Shininess = 100
	cube := arena.AddCube(geometry.WithMaterial(body))
	ball := arena.AddSphere(geometry.ShapeOptions{Transform: core.Scaling(1.35, 1.35, 1.35), Material: body})
	rounded := arena.AddCSG(geometry.ShapeOptions{}, geometry.OpIntersection, cube, ball)

	bore := material.NewColoredMaterial(core.NewColor(0.95, 0.95, 0.95))
	boreY := arena.AddCylinder(geometry.ShapeOptions{Transform: core.Scaling(0.5, 1, 0.5), Material: bore}, -2, 2, true)
	boreX := arena.AddCylinder(geometry.ShapeOptions{Transform: core.Scaling(0.5, 1, 0.5).RotateZ(math.Pi / 2), Material: bore}, -2, 2, true)
	boreZ := arena.AddCylinder(geometry.ShapeOptions{Transform: core.Scaling(0.5, 1, 0.5).RotateX(math.Pi / 2), Material: bore}, -2, 2, true)
	bores := arena.AddCSG(geometry.ShapeOptions{}, geometry.OpUnion,
		arena.AddCSG(geometry.ShapeOptions{}, geometry.OpUnion, boreX, boreY), boreZ)

	arena.AddCSG(geometry.WithTransform(core.Scaling(0.7, 0.7, 0.7).RotateY(math.Pi/6).Translate(-1.8, 0.7, 0.5)),
		geometry.OpDifference, rounded, bores)

	// Lens: the overlap of two spheres
	glass := material.NewGlassMaterial()
	glass.Pattern = material.NewSolidPattern(core.NewColor(0.05, 0.05, 0.1))
	glass.Reflective = 0.8
	glass.Transparency = 0.9
	glass.Specular = 1
	glass.Shininess = 300
	front := arena.AddSphere(geometry.ShapeOptions{Transform: core.Translation(0, 0, 0.7), Material: glass})
	back := arena.AddSphere(geometry.ShapeOptions{Transform: core.Translation(0, 0, -0.7), Material: glass})
	arena.AddCSG(geometry.WithTransform(core.Scaling(1.2, 1.2, 1.2).Translate(0, 1.2, 1)),
		geometry.OpIntersection, front, back)

	// Bitten sphere: a sphere minus a smaller offset sphere
	green := material.NewColoredMaterial(core.NewColor(0.3, 0.8, 0.3))
	green.Specular = 0.4
	apple := arena.AddSphere(geometry.WithMaterial(green))
	bite := material.NewColoredMaterial(core.NewColor(1, 1, 0.85))
	bitten := arena.AddSphere(geometry.ShapeOptions{
		Transform: core.Scaling(0.5, 0.5, 0.5).Translate(-0.7, 0.4, -0.6),
		Material:  bite,
	})
	arena.AddCSG(geometry.WithTransform(core.Scaling(0.8, 0.8, 0.8).Translate(1.9, 0.8, 0)),
		geometry.OpDifference, apple, bitten)

	light := lights.NewPointLight(core.NewPoint(-8, 10, -10), core.White)
	return newScene(arena, light, cameraConfig, cameraOverrides)
}
