package scene

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// NewPatternScene creates a scene showing every procedural pattern, including
// a stripe pattern chained onto a rotated ring pattern's space
func NewPatternScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      225,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 2, -6),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	arena := geometry.NewArena(nil)

	// 3D checkers floor
	floor := newPatternedMaterial(material.NewCheckersPattern(core.White, core.NewColor(0.1, 0.1, 0.1)))
	floor.Specular = 0
	arena.AddPlane(geometry.WithMaterial(floor))

	// Back wall with a gradient that runs across it
	wall := newPatternedMaterial(placePattern(
		material.NewGradientPattern(core.NewColor(0.9, 0.3, 0.2), core.NewColor(0.2, 0.3, 0.9)),
		core.Scaling(10, 1, 1).Translate(-5, 0, 0),
	))
	wall.Specular = 0
	arena.AddPlane(geometry.ShapeOptions{
		Transform: core.RotationX(math.Pi/2).Translate(0, 0, 6),
		Material:  wall,
	})

	white := core.NewColor(0.95, 0.95, 0.95)

	rings := newPatternedMaterial(placePattern(
		material.NewRingPattern(core.NewColor(0.9, 0.6, 0.1), white),
		core.Scaling(0.15, 0.15, 0.15).RotateX(math.Pi/2),
	))
	arena.AddSphere(geometry.ShapeOptions{Transform: core.Scaling(0.7, 0.7, 0.7).Translate(-2.4, 0.7, 1), Material: rings})

	stripes := newPatternedMaterial(placePattern(
		material.NewStripePattern(core.NewColor(0.1, 0.6, 0.3), white),
		core.Scaling(0.2, 0.2, 0.2).RotateZ(math.Pi/3),
	))
	arena.AddSphere(geometry.ShapeOptions{Transform: core.Scaling(0.7, 0.7, 0.7).Translate(-0.8, 0.7, 0.5), Material: stripes})

	gradient := newPatternedMaterial(placePattern(
		material.NewGradientPattern(core.NewColor(0.9, 0.1, 0.4), core.NewColor(0.1, 0.4, 0.9)),
		core.Scaling(2, 1, 1).Translate(-1, 0, 0),
	))
	arena.AddSphere(geometry.ShapeOptions{Transform: core.Scaling(0.7, 0.7, 0.7).Translate(0.8, 0.7, 0.5), Material: gradient})

	// Stripes evaluated in the space of a rotated ring pattern
	inner := material.NewRingPattern(core.Black, core.White)
	if err := inner.SetTransform(core.RotationY(math.Pi / 4)); err != nil {
		return nil, err
	}
	outer := material.NewStripePattern(core.NewColor(0.5, 0.2, 0.7), white)
	if err := outer.SetTransform(core.Scaling(0.25, 0.25, 0.25)); err != nil {
		return nil, err
	}
	outer.SetPrevious(inner)
	arena.AddCube(geometry.ShapeOptions{
		Transform: core.Scaling(0.6, 0.6, 0.6).RotateY(math.Pi/5).Translate(2.4, 0.6, 1),
		Material:  newPatternedMaterial(outer),
	})

	light := lights.NewPointLight(core.NewPoint(-5, 10, -10), core.White)
	return newScene(arena, light, cameraConfig, cameraOverrides)
}
