package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
	"github.com/df07/go-ray-tracer/pkg/material"
	"github.com/df07/go-ray-tracer/pkg/renderer"
	"github.com/df07/go-ray-tracer/pkg/world"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World        *world.World
	Camera       *renderer.Camera
	CameraConfig CameraConfig
	RenderConfig renderer.RenderConfig
}

// CameraConfig describes the camera of a scene
type CameraConfig struct {
	Width       int        // Image width in pixels
	Height      int        // Image height in pixels
	FieldOfView float64    // Field of view in radians
	From        core.Tuple // Eye position
	To          core.Tuple // Point the eye looks at
	Up          core.Tuple // Up direction
}

// MergeCameraConfig returns base with every set field of override applied.
// Points and vectors count as set when their w component is non-zero, or
// any component for Up.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	if override.Width > 0 {
		base.Width = override.Width
	}
	if override.Height > 0 {
		base.Height = override.Height
	}
	if override.FieldOfView > 0 {
		base.FieldOfView = override.FieldOfView
	}
	if override.From.W != 0 {
		base.From = override.From
	}
	if override.To.W != 0 {
		base.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		base.Up = override.Up
	}
	return base
}

// NewCamera builds the renderer camera for this configuration
func (c CameraConfig) NewCamera() (*renderer.Camera, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.FieldOfView <= 0 || c.FieldOfView >= math.Pi {
		return nil, fmt.Errorf("invalid field of view %f", c.FieldOfView)
	}

	camera := renderer.NewCamera(c.Width, c.Height, c.FieldOfView)
	if err := camera.SetTransform(core.ViewTransform(c.From, c.To, c.Up)); err != nil {
		return nil, err
	}
	return camera, nil
}

// newScene assembles a scene from a finished arena. The optional override is
// merged over the scene's own camera configuration.
func newScene(arena *geometry.Arena, light lights.Light, cameraConfig CameraConfig, cameraOverrides []CameraConfig) (*Scene, error) {
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	w, err := world.New(arena, light)
	if err != nil {
		return nil, err
	}

	camera, err := cameraConfig.NewCamera()
	if err != nil {
		return nil, err
	}

	return &Scene{
		World:        w,
		Camera:       camera,
		CameraConfig: cameraConfig,
		RenderConfig: renderer.DefaultRenderConfig(),
	}, nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, h := range s.World.Objects() {
		count += s.countPrimitivesInShape(h)
	}
	return count
}

// countPrimitivesInShape counts primitives below a shape, descending into
// groups and CSG operands
func (s *Scene) countPrimitivesInShape(h geometry.Handle) int {
	arena := s.World.Arena()
	shape := arena.Shape(h)

	switch shape.Kind {
	case geometry.KindGroup:
		count := 0
		for _, child := range shape.Children {
			count += s.countPrimitivesInShape(child)
		}
		return count
	case geometry.KindCSG:
		return s.countPrimitivesInShape(shape.Left) + s.countPrimitivesInShape(shape.Right)
	default:
		return 1
	}
}

// transformable is a pattern that can be placed in its object's space
type transformable interface {
	material.Pattern
	SetTransform(m core.Matrix) error
}

// placePattern sets the transform of a pattern built by a scene. The matrices
// come from the scene code itself, so a singular one is a programming error.
func placePattern(p transformable, m core.Matrix) material.Pattern {
	if err := p.SetTransform(m); err != nil {
		panic(fmt.Sprintf("scene pattern: %v", err))
	}
	return p
}

// newPatternedMaterial creates a default material with the given pattern
func newPatternedMaterial(p material.Pattern) *material.Material {
	m := material.NewMaterial()
	m.Pattern = p
	return m
}
