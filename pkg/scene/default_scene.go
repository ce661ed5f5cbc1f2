package scene

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// NewDefaultScene creates a default scene with three spheres on a checkered floor
func NewDefaultScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      225, // 16:9 aspect ratio
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	arena := geometry.NewArena(nil)

	// Floor
	floor := newPatternedMaterial(material.NewCheckersPattern(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.35, 0.35, 0.35)))
	floor.Specular = 0
	floor.Reflective = 0.1
	arena.AddPlane(geometry.WithMaterial(floor))

	// Large striped sphere in the middle
	stripes := placePattern(
		material.NewStripePattern(core.NewColor(0.1, 1, 0.5), core.NewColor(0.05, 0.6, 0.3)),
		core.Scaling(0.2, 0.2, 0.2).RotateZ(math.Pi/4),
	)
	middle := newPatternedMaterial(stripes)
	middle.Diffuse = 0.7
	middle.Specular = 0.3
	arena.AddSphere(geometry.ShapeOptions{Transform: core.Translation(-0.5, 1, 0.5), Material: middle})

	// Smaller green sphere on the right
	right := material.NewColoredMaterial(core.NewColor(0.5, 1, 0.1))
	right.Diffuse = 0.7
	right.Specular = 0.3
	arena.AddSphere(geometry.ShapeOptions{
		Transform: core.Scaling(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5),
		Material:  right,
	})

	// Smallest, slightly reflective sphere on the left
	left := material.NewColoredMaterial(core.NewColor(1, 0.8, 0.1))
	left.Diffuse = 0.7
	left.Specular = 0.3
	left.Reflective = 0.2
	arena.AddSphere(geometry.ShapeOptions{
		Transform: core.Scaling(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75),
		Material:  left,
	})

	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)
	return newScene(arena, light, cameraConfig, cameraOverrides)
}
