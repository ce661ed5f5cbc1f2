package scene

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// NewGlassScene creates a refraction test scene: a hollow glass sphere with an
// air bubble in front of a checkered wall, over a shallow pool of water
func NewGlassScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      225,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	arena := geometry.NewArena(nil)

	// Pool floor under the water surface
	poolFloor := newPatternedMaterial(placePattern(
		material.NewCheckersPattern(core.NewColor(0.1, 0.3, 0.4), core.NewColor(0.8, 0.8, 0.6)),
		core.Scaling(0.5, 0.5, 0.5),
	))
	poolFloor.Specular = 0
	arena.AddPlane(geometry.ShapeOptions{Transform: core.Translation(0, -1, 0), Material: poolFloor})

	water := material.NewGlassMaterial()
	water.Pattern = material.NewSolidPattern(core.NewColor(0, 0.05, 0.1))
	water.Ambient = 0
	water.Diffuse = 0.1
	water.Reflective = 0.5
	water.Transparency = 0.9
	water.RefractiveIndex = material.RefractiveWater
	arena.AddPlane(geometry.WithMaterial(water))

	wall := newPatternedMaterial(material.NewCheckersPattern(core.NewColor(0.15, 0.15, 0.15), core.NewColor(0.85, 0.85, 0.85)))
	wall.Ambient = 0.8
	wall.Diffuse = 0.2
	wall.Specular = 0
	arena.AddPlane(geometry.ShapeOptions{
		Transform: core.RotationX(math.Pi/2).Translate(0, 0, 10),
		Material:  wall,
	})

	glass := material.NewGlassMaterial()
	glass.Pattern = material.NewSolidPattern(core.White)
	glass.Ambient = 0
	glass.Diffuse = 0
	glass.Specular = 0.9
	glass.Shininess = 300
	glass.Reflective = 0.9
	glass.Transparency = 0.9
	glass.RefractiveIndex = material.RefractiveGlass

	bubble := material.NewGlassMaterial()
	bubble.Pattern = material.NewSolidPattern(core.White)
	bubble.Ambient = 0
	bubble.Diffuse = 0
	bubble.Specular = 0.9
	bubble.Shininess = 300
	bubble.Reflective = 0.9
	bubble.Transparency = 0.9
	bubble.RefractiveIndex = material.RefractiveAir

	arena.AddSphere(geometry.ShapeOptions{Transform: core.Translation(0, 1.2, 0), Material: glass})
	arena.AddSphere(geometry.ShapeOptions{Transform: core.Scaling(0.5, 0.5, 0.5).Translate(0, 1.2, 0), Material: bubble})

	// A diamond half under water
	diamond := material.NewGlassMaterial()
	diamond.Pattern = material.NewSolidPattern(core.NewColor(0.1, 0.1, 0.15))
	diamond.Reflective = 0.9
	diamond.RefractiveIndex = material.RefractiveDiamond
	arena.AddCube(geometry.ShapeOptions{
		Transform: core.Scaling(0.4, 0.4, 0.4).RotateX(math.Pi/4).RotateY(math.Pi/4).Translate(-2, 0.1, 0.5),
		Material:  diamond,
	})

	light := lights.NewPointLight(core.NewPoint(2, 10, -5), core.NewColor(0.9, 0.9, 0.9))
	return newScene(arena, light, cameraConfig, cameraOverrides)
}
