package geometry

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// IntersectionState holds everything shading needs about one hit
type IntersectionState struct {
	T      float64
	Object Handle

	Point       core.Tuple // world-space hit point
	ObjectPoint core.Tuple // over point in the object space of the shape, where patterns are sampled
	OverPoint   core.Tuple // nudged along the normal, origin of shadow and reflection rays
	UnderPoint  core.Tuple // nudged against the normal, origin of refraction rays

	Eyev     core.Tuple
	Normalv  core.Tuple
	Reflectv core.Tuple
	Inside   bool // normal was flipped to face the eye

	N1 float64 // refractive index of the medium being left
	N2 float64 // refractive index of the medium being entered
}

// PrepareComputations derives the shading state of hit. xs is the sorted list
// the hit came from and is walked to find the refractive indices on both
// sides of the surface. A nil xs treats hit as the only intersection.
func (a *Arena) PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) IntersectionState {
	state := IntersectionState{
		T:      hit.T,
		Object: hit.Object,
	}

	state.Point = ray.Position(hit.T)
	state.Eyev = ray.Direction.Negate()
	state.Normalv = a.NormalAt(hit.Object, state.Point, hit)

	if state.Normalv.Dot(state.Eyev) < 0 {
		state.Inside = true
		state.Normalv = state.Normalv.Negate()
	}

	state.Reflectv = ray.Direction.Reflect(state.Normalv)

	offset := state.Normalv.Multiply(core.Epsilon)
	state.OverPoint = state.Point.Add(offset)
	state.UnderPoint = state.Point.Subtract(offset)
	state.ObjectPoint = a.WorldToObject(hit.Object, state.OverPoint)

	if xs == nil {
		xs = Intersections{hit}
	}
	state.N1, state.N2 = a.refractiveIndices(hit, xs)

	return state
}

// refractiveIndices walks xs up to hit, tracking which objects the ray is
// inside of
func (a *Arena) refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = material.RefractiveVacuum, material.RefractiveVacuum
	var containers []Handle

	for _, x := range xs {
		isHit := x == hit

		if isHit && len(containers) > 0 {
			n1 = a.MaterialOf(containers[len(containers)-1]).RefractiveIndex
		}

		if i := indexOf(containers, x.Object); i >= 0 {
			containers = append(containers[:i], containers[i+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			if len(containers) > 0 {
				n2 = a.MaterialOf(containers[len(containers)-1]).RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

func indexOf(handles []Handle, h Handle) int {
	for i, candidate := range handles {
		if candidate == h {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction of
// light reflected rather than refracted
func Schlick(state IntersectionState) float64 {
	cos := state.Eyev.Dot(state.Normalv)

	// Total internal reflection is only possible when n1 > n2
	if state.N1 > state.N2 {
		n := state.N1 / state.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2t)
	}

	r0 := (state.N1 - state.N2) / (state.N1 + state.N2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
