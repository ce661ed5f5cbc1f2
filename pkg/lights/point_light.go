package lights

import "github.com/df07/go-ray-tracer/pkg/core"

// PointLight is a light source with no size, radiating equally in all directions
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Type implements the Light interface
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Sample implements the Light interface
func (pl *PointLight) Sample(point core.Tuple) LightSample {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Length()

	sample := LightSample{
		Position:  pl.Position,
		Distance:  distance,
		Intensity: pl.Intensity,
	}
	if distance > 0 {
		sample.Direction = toLight.Divide(distance)
	}
	return sample
}
