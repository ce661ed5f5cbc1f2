package world

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
)

// ColorAt traces ray into the world and returns the color it sees. depth is
// the number of reflection and refraction bounces still allowed.
func (w *World) ColorAt(ray core.Ray, depth int) core.Color {
	all := w.intersectAll(ray)
	xs := inFront(all)

	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}

	state := w.arena.PrepareComputations(hit, ray, xs)

	// Hits behind the origin still tell which media the ray starts in
	state.N1, state.N2 = w.refractionIndexes(hit.T, all)

	return w.ShadeHit(state, depth)
}

// ShadeHit returns the color at a prepared hit: the Phong surface color plus
// the reflected and refracted contributions
func (w *World) ShadeHit(state geometry.IntersectionState, depth int) core.Color {
	m := w.arena.MaterialOf(state.Object)

	shadowed := w.IsShadowed(state.OverPoint)
	surface := m.Lighting(w.light, state.ObjectPoint, state.OverPoint, state.Eyev, state.Normalv, shadowed)

	reflected := w.ReflectedColor(state, depth)
	refracted := w.RefractedColor(state, depth)

	// Glass-like surfaces split the light by the Fresnel reflectance
	if m.IsReflective() && m.IsTransparent() {
		reflectance := geometry.Schlick(state)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}

	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor follows the mirror ray from the hit
func (w *World) ReflectedColor(state geometry.IntersectionState, depth int) core.Color {
	m := w.arena.MaterialOf(state.Object)
	if depth <= 0 || !m.IsReflective() {
		return core.Black
	}

	reflectRay := core.NewRay(state.OverPoint, state.Reflectv)
	return w.ColorAt(reflectRay, depth-1).Multiply(m.Reflective)
}

// RefractedColor follows the transmitted ray through the hit, or returns
// black under total internal reflection
func (w *World) RefractedColor(state geometry.IntersectionState, depth int) core.Color {
	m := w.arena.MaterialOf(state.Object)
	if depth <= 0 || !m.IsTransparent() {
		return core.Black
	}

	// Snell's law
	nRatio := state.N1 / state.N2
	cosI := state.Eyev.Dot(state.Normalv)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := state.Normalv.Multiply(nRatio*cosI - cosT).Subtract(state.Eyev.Multiply(nRatio))

	refractRay := core.NewRay(state.UnderPoint, direction)
	return w.ColorAt(refractRay, depth-1).Multiply(m.Transparency)
}
