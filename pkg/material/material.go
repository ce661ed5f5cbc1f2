package material

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/lights"
)

// Refractive indices of common media
const (
	RefractiveVacuum  = 1.0
	RefractiveAir     = 1.00029
	RefractiveWater   = 1.333
	RefractiveGlass   = 1.52
	RefractiveDiamond = 2.417
)

// Material describes the surface using the Phong reflection model plus
// reflection and refraction coefficients
type Material struct {
	Pattern         Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0 = matte, 1 = perfect mirror
	Transparency    float64 // 0 = opaque, 1 = fully transparent
	RefractiveIndex float64
}

// NewMaterial creates a material with the default white Phong parameters
func NewMaterial() *Material {
	return &Material{
		Pattern:         NewSolidPattern(core.White),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: RefractiveVacuum,
	}
}

// NewColoredMaterial creates a default material with a solid color
func NewColoredMaterial(color core.Color) *Material {
	m := NewMaterial()
	m.Pattern = NewSolidPattern(color)
	return m
}

// NewGlassMaterial creates a fully transparent glass material
func NewGlassMaterial() *Material {
	m := NewMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	return m
}

// Lighting computes the Phong color of a surface point.
// objectPoint is the hit point in the shape's object space and drives the
// pattern; point, eyev and normalv are in world space.
func (m *Material) Lighting(light lights.Light, objectPoint, point, eyev, normalv core.Tuple, inShadow bool) core.Color {
	sample := light.Sample(point)

	color := PatternAt(m.Pattern, objectPoint)
	effectiveColor := color.Hadamard(sample.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	// Cosine of the angle between the light vector and the normal;
	// negative means the light is on the other side of the surface
	lightDotNormal := sample.Direction.Dot(normalv)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectv := sample.Direction.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = sample.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}

// IsReflective reports whether the material contributes a reflected ray
func (m *Material) IsReflective() bool {
	return !core.FloatEquals(m.Reflective, 0)
}

// IsTransparent reports whether the material contributes a refracted ray
func (m *Material) IsTransparent() bool {
	return !core.FloatEquals(m.Transparency, 0)
}
