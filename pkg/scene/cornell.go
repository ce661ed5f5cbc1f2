package scene

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// Cornell box dimensions: the room spans x in [-2.5, 2.5], y in [0, 5] and
// ends at a back wall at z = 2.5
const (
	cornellHalfWidth = 2.5
	cornellHeight    = 5.0
)

// NewCornellScene creates a Cornell box scene with a block, a mirror sphere
// and a glass sphere
func NewCornellScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      400, // Square aspect ratio for Cornell box
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 2.5, -6.5),
		To:          core.NewPoint(0, 2.5, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	arena := geometry.NewArena(nil)

	white := cornellWall(core.NewColor(0.73, 0.73, 0.73))
	red := cornellWall(core.NewColor(0.65, 0.05, 0.05))
	green := cornellWall(core.NewColor(0.12, 0.45, 0.15))

	// Walls are planes; the plane primitive is the y = 0 plane
	arena.AddPlane(geometry.WithMaterial(white))
	arena.AddPlane(geometry.ShapeOptions{Transform: core.Translation(0, cornellHeight, 0), Material: white})
	arena.AddPlane(geometry.ShapeOptions{
		Transform: core.RotationX(math.Pi/2).Translate(0, 0, cornellHalfWidth),
		Material:  white,
	})
	arena.AddPlane(geometry.ShapeOptions{
		Transform: core.RotationZ(math.Pi/2).Translate(-cornellHalfWidth, 0, 0),
		Material:  red,
	})
	arena.AddPlane(geometry.ShapeOptions{
		Transform: core.RotationZ(math.Pi/2).Translate(cornellHalfWidth, 0, 0),
		Material:  green,
	})

	// Tall block toward the back left
	block := material.NewColoredMaterial(core.NewColor(0.73, 0.73, 0.73))
	block.Specular = 0.1
	arena.AddCube(geometry.ShapeOptions{
		Transform: core.Scaling(0.6, 1.2, 0.6).RotateY(math.Pi/9).Translate(-0.9, 1.2, 1),
		Material:  block,
	})

	// Mirror sphere on the right
	mirror := material.NewColoredMaterial(core.NewColor(0.1, 0.1, 0.1))
	mirror.Diffuse = 0.1
	mirror.Specular = 1
	mirror.Shininess = 300
	mirror.Reflective = 0.9
	arena.AddSphere(geometry.ShapeOptions{
		Transform: core.Scaling(0.7, 0.7, 0.7).Translate(1, 0.7, 0.3),
		Material:  mirror,
	})

	// Glass sphere in front
	glass := material.NewGlassMaterial()
	glass.Pattern = material.NewSolidPattern(core.Black)
	glass.Ambient = 0
	glass.Diffuse = 0.1
	glass.Specular = 1
	glass.Shininess = 300
	glass.Reflective = 0.9
	glass.Transparency = 0.9
	arena.AddSphere(geometry.ShapeOptions{
		Transform: core.Scaling(0.5, 0.5, 0.5).Translate(-0.2, 0.5, -1.2),
		Material:  glass,
	})

	light := lights.NewPointLight(core.NewPoint(0, cornellHeight-0.2, 0), core.White)
	return newScene(arena, light, cameraConfig, cameraOverrides)
}

// cornellWall creates a matte wall material
func cornellWall(color core.Color) *material.Material {
	m := material.NewColoredMaterial(color)
	m.Ambient = 0.15
	m.Specular = 0
	return m
}
