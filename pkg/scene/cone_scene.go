package scene

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// NewConeScene creates a test scene with a closed cone, a double cone and an
// ice cream cone built as a group
func NewConeScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      225,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 2.5, -6),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	arena := geometry.NewArena(nil)

	floor := material.NewColoredMaterial(core.NewColor(0.5, 0.5, 0.5))
	floor.Specular = 0
	floor.Reflective = 0.15
	arena.AddPlane(geometry.WithMaterial(floor))

	// Closed cone standing on its base: y in [-1, 0] has radius |y|
	orange := material.NewColoredMaterial(core.NewColor(0.9, 0.5, 0.1))
	orange.Specular = 0.4
	arena.AddCone(geometry.ShapeOptions{
		Transform: core.Scaling(0.8, 1.5, 0.8).Translate(-2, 1.5, 1),
		Material:  orange,
	}, -1, 0, true)

	// Double cone touching at its apex, like an hourglass
	hourglass := newPatternedMaterial(placePattern(
		material.NewStripePattern(core.NewColor(0.2, 0.3, 0.9), core.NewColor(0.9, 0.9, 0.9)),
		core.Scaling(0.1, 0.1, 0.1).RotateZ(math.Pi/2),
	))
	arena.AddCone(geometry.ShapeOptions{
		Transform: core.Scaling(0.6, 1, 0.6).Translate(0, 1, 1.5),
		Material:  hourglass,
	}, -1, 1, true)

	// Ice cream: an open cone with a scoop on top, grouped so it moves as one
	wafer := material.NewColoredMaterial(core.NewColor(0.85, 0.65, 0.35))
	wafer.Specular = 0.1
	cone := arena.AddCone(geometry.ShapeOptions{
		Transform: core.Scaling(0.4, 1.2, 0.4),
		Material:  wafer,
	}, 0, 1, false)

	cream := material.NewColoredMaterial(core.NewColor(1, 0.75, 0.8))
	cream.Specular = 0.5
	scoop := arena.AddSphere(geometry.ShapeOptions{
		Transform: core.Scaling(0.45, 0.45, 0.45).Translate(0, 1.3, 0),
		Material:  cream,
	})
	arena.AddGroup(geometry.WithTransform(core.RotationZ(-0.2).Translate(2, 0, 0)), cone, scoop)

	light := lights.NewPointLight(core.NewPoint(-6, 10, -8), core.White)
	return newScene(arena, light, cameraConfig, cameraOverrides)
}
