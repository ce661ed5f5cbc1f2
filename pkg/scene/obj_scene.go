package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
	"github.com/df07/go-ray-tracer/pkg/loaders"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// objFitSize is the largest extent a loaded mesh is scaled to
const objFitSize = 2.0

// NewOBJScene creates a scene from an OBJ file. The mesh is centered over the
// origin, scaled to fit a 2-unit box and set on a floor.
func NewOBJScene(filename string, cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      300,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 2.2, -4.5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	arena := geometry.NewArena(nil)

	floor := newPatternedMaterial(placePattern(
		material.NewCheckersPattern(core.NewColor(0.85, 0.85, 0.85), core.NewColor(0.55, 0.55, 0.55)),
		core.Scaling(0.5, 0.5, 0.5),
	))
	floor.Specular = 0
	arena.AddPlane(geometry.WithMaterial(floor))

	clay := material.NewColoredMaterial(core.NewColor(0.8, 0.45, 0.3))
	clay.Specular = 0.3
	mesh, err := loaders.LoadOBJ(filename, arena, geometry.WithMaterial(clay))
	if err != nil {
		return nil, err
	}
	if mesh.Triangles == 0 {
		return nil, fmt.Errorf("%s: no triangles", filename)
	}

	fit, err := fitTransform(arena.Bounds(mesh.Group))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	arena.AddGroup(geometry.WithTransform(fit), mesh.Group)

	light := lights.NewPointLight(core.NewPoint(-6, 10, -8), core.White)
	return newScene(arena, light, cameraConfig, cameraOverrides)
}

// fitTransform centers bounds over the origin in x and z, scales the largest
// extent to objFitSize and rests the bottom on y = 0
func fitTransform(bounds core.AABB) (core.Matrix, error) {
	size := bounds.Size()
	extent := math.Max(size.X, math.Max(size.Y, size.Z))
	if !bounds.IsValid() || extent <= 0 || math.IsInf(extent, 0) {
		return core.Matrix{}, fmt.Errorf("mesh has no finite extent")
	}

	center := bounds.Center()
	scale := objFitSize / extent
	return core.Translation(-center.X, -bounds.Min.Y, -center.Z).
		Scale(scale, scale, scale), nil
}
