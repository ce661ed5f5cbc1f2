package scene

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// NewHexagonScene creates a hexagon of spheres and cylinders built as groups
// of groups, so every piece inherits the transforms of its ancestors
func NewHexagonScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      300,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 3, -3.5),
		To:          core.NewPoint(0, 0.5, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	arena := geometry.NewArena(nil)

	floor := material.NewColoredMaterial(core.NewColor(0.3, 0.3, 0.35))
	floor.Specular = 0
	floor.Reflective = 0.3
	arena.AddPlane(geometry.WithMaterial(floor))

	chrome := material.NewColoredMaterial(core.NewColor(0.8, 0.3, 0.2))
	chrome.Specular = 0.9
	chrome.Shininess = 250
	chrome.Reflective = 0.25

	sides := make([]geometry.Handle, 0, 6)
	for n := 0; n < 6; n++ {
		corner := arena.AddSphere(geometry.ShapeOptions{
			Transform: core.Scaling(0.25, 0.25, 0.25).Translate(0, 0, -1),
			Material:  chrome,
		})
		edge := arena.AddCylinder(geometry.ShapeOptions{
			Transform: core.Scaling(0.25, 1, 0.25).
				RotateZ(-math.Pi/2).
				RotateY(-math.Pi/6).
				Translate(0, 0, -1),
			Material: chrome,
		}, 0, 1, false)

		sides = append(sides, arena.AddGroup(
			geometry.WithTransform(core.RotationY(float64(n)*math.Pi/3)),
			corner, edge,
		))
	}
	arena.AddGroup(geometry.WithTransform(core.RotationX(-math.Pi/6).Translate(0, 1, 0)), sides...)

	light := lights.NewPointLight(core.NewPoint(-4, 6, -6), core.White)
	return newScene(arena, light, cameraConfig, cameraOverrides)
}
