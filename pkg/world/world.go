package world

import (
	"fmt"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
)

// DefaultMaxDepth bounds the recursion of reflected and refracted rays
const DefaultMaxDepth = 5

// World is a flat list of root shapes lit by a single light. It is
// read-only once built and safe for concurrent rendering.
type World struct {
	arena   *geometry.Arena
	objects []geometry.Handle
	light   lights.Light
}

// New creates a world over the shapes of arena. With no roots given every
// shape without a parent is used. Construction errors recorded on the arena
// are returned here.
func New(arena *geometry.Arena, light lights.Light, roots ...geometry.Handle) (*World, error) {
	if err := arena.Err(); err != nil {
		return nil, fmt.Errorf("scene construction failed: %w", err)
	}
	if light == nil {
		return nil, fmt.Errorf("world needs a light")
	}

	if len(roots) == 0 {
		roots = arena.Roots()
	}
	for _, h := range roots {
		if !arena.Valid(h) {
			return nil, fmt.Errorf("unknown shape handle %d", h)
		}
		if parent := arena.Shape(h).Parent; parent != geometry.NoParent {
			return nil, fmt.Errorf("shape %d is nested in shape %d and cannot be a root", h, parent)
		}
	}

	return &World{arena: arena, objects: roots, light: light}, nil
}

// Arena returns the shapes backing the world
func (w *World) Arena() *geometry.Arena {
	return w.arena
}

// Objects returns the root shape handles
func (w *World) Objects() []geometry.Handle {
	return w.objects
}

// Light returns the world light
func (w *World) Light() lights.Light {
	return w.light
}

// intersectAll returns every hit along the ray, including those behind the
// origin, sorted by t
func (w *World) intersectAll(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, h := range w.objects {
		xs = append(xs, w.arena.Intersect(h, ray)...)
	}
	xs.Sort()
	return xs
}

// Intersect returns the hits in front of the ray origin (t >= 0), sorted by
// t. Coincident hits such as a tangent ray are both kept.
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	return inFront(w.intersectAll(ray))
}

// inFront drops the hits behind the origin of a sorted list
func inFront(xs geometry.Intersections) geometry.Intersections {
	for i, x := range xs {
		if x.T >= 0 {
			return xs[i:]
		}
	}
	return nil
}

// IsShadowed reports whether anything lies between point and the light
func (w *World) IsShadowed(point core.Tuple) bool {
	sample := w.light.Sample(point)
	ray := core.NewRay(point, sample.Direction)

	hit, ok := w.Intersect(ray).Hit()
	return ok && hit.T < sample.Distance
}
