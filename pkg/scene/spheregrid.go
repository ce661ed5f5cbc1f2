package scene

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a scene with a 10x10 grid of spheres. Each row
// is a group so rays that miss a row's bounds skip all of its spheres.
func NewSphereGridScene(cameraOverrides ...CameraConfig) (*Scene, error) {
	cameraConfig := CameraConfig{
		Width:       800,
		Height:      450, // 16:9 aspect ratio
		FieldOfView: math.Pi / 4,
		From:        core.NewPoint(4.5, 6, -9),
		To:          core.NewPoint(4.5, 0.4, 4.5),
		Up:          core.NewVector(0, 1, 0),
	}

	arena := geometry.NewArena(nil)

	ground := material.NewColoredMaterial(core.NewColor(0.5, 0.5, 0.5))
	ground.Specular = 0
	ground.Reflective = 0.2
	arena.AddPlane(geometry.WithMaterial(ground))

	gridSize := 10
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := spacing * 0.35

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		row := make([]geometry.Handle, 0, gridSize)
		for j := 0; j < gridSize; j++ {
			z := float64(j) * spacing

			// Hue varies across x, chroma across z
			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			m := material.NewColoredMaterial(oklchToRGB(lightness, chroma, hue))
			m.Diffuse = 0.6
			m.Specular = 0.8
			m.Shininess = 150
			m.Reflective = 0.1 + 0.1*float64((i+j)%3)

			row = append(row, arena.AddSphere(geometry.ShapeOptions{
				Transform: core.Scaling(sphereRadius, sphereRadius, sphereRadius).Translate(0, sphereRadius, z),
				Material:  m,
			}))
		}
		arena.AddGroup(geometry.WithTransform(core.Translation(float64(i)*spacing, 0, 0)), row...)
	}

	light := lights.NewPointLight(core.NewPoint(-5, 15, -10), core.White)
	return newScene(arena, light, cameraConfig, cameraOverrides)
}
