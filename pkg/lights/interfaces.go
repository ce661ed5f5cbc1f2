package lights

import "github.com/df07/go-ray-tracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light interface for objects that illuminate a shading point
type Light interface {
	Type() LightType

	// Sample returns the light arriving at point, with the direction FROM the
	// shading point TO the light
	Sample(point core.Tuple) LightSample
}

// LightSample contains information about the light reaching a shading point
type LightSample struct {
	Position  core.Tuple // Position of the light
	Direction core.Tuple // Normalized direction from shading point to light
	Distance  float64    // Distance to light
	Intensity core.Color // Light color and brightness
}
