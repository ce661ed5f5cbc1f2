package scene

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// NewCylinderScene creates a simple test scene with open, closed and
// concentric cylinders
func NewCylinderScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      225,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 3, -6),
		To:          core.NewPoint(0, 0.8, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	arena := geometry.NewArena(nil)

	floor := newPatternedMaterial(placePattern(
		material.NewCheckersPattern(core.NewColor(0.5, 0.5, 0.5), core.NewColor(0.75, 0.75, 0.75)),
		core.RotationY(0.3).Scale(0.25, 0.25, 0.25),
	))
	floor.Specular = 0
	arena.AddPlane(geometry.WithMaterial(floor))

	// Open red tube, showing its inside
	red := material.NewColoredMaterial(core.NewColor(0.8, 0.2, 0.2))
	red.Specular = 0.3
	arena.AddCylinder(geometry.ShapeOptions{
		Transform: core.Scaling(0.6, 1, 0.6).RotateY(0.4).Translate(-2, 0, 1),
		Material:  red,
	}, 0, 1.5, false)

	// Closed gold drum lying on its side
	gold := material.NewColoredMaterial(core.NewColor(0.8, 0.6, 0.2))
	gold.Reflective = 0.3
	arena.AddCylinder(geometry.ShapeOptions{
		Transform: core.Scaling(0.5, 1, 0.5).RotateZ(math.Pi/2).Translate(0.2, 0.5, -1),
		Material:  gold,
	}, -1, 1, true)

	// Concentric closed cylinders stepping up like a tiered stand
	tiers := make([]geometry.Handle, 0, 4)
	for i := 0; i < 4; i++ {
		radius := 1 - 0.2*float64(i)
		tier := material.NewColoredMaterial(core.NewColor(0.2, 0.2+0.15*float64(i), 0.8))
		tier.Reflective = 0.1
		tiers = append(tiers, arena.AddCylinder(geometry.ShapeOptions{
			Transform: core.Scaling(radius, 1, radius),
			Material:  tier,
		}, 0, 0.3*float64(i+1), true))
	}
	arena.AddGroup(geometry.WithTransform(core.Translation(2, 0, 1.5)), tiers...)

	// Thin glass rod
	glass := material.NewGlassMaterial()
	glass.Pattern = material.NewSolidPattern(core.NewColor(0.1, 0.1, 0.1))
	glass.Reflective = 0.5
	arena.AddCylinder(geometry.ShapeOptions{
		Transform: core.Scaling(0.2, 1, 0.2).Translate(-0.8, 0, -2),
		Material:  glass,
	}, 0, 1.8, true)

	light := lights.NewPointLight(core.NewPoint(-5, 8, -8), core.White)
	return newScene(arena, light, cameraConfig, cameraOverrides)
}
