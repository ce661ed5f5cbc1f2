package world

import (
	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/lights"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// DefaultWorld builds the reference scene: two concentric spheres lit from
// the upper left. The outer sphere has a green-tinted matte material and the
// inner one is half its size.
func DefaultWorld() *World {
	arena := geometry.NewArena(nil)

	outer := material.NewColoredMaterial(core.NewColor(0.8, 1.0, 0.6))
	outer.Diffuse = 0.7
	outer.Specular = 0.2
	arena.AddSphere(geometry.WithMaterial(outer))
	arena.AddSphere(geometry.WithTransform(core.Scaling(0.5, 0.5, 0.5)))

	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)

	w, err := New(arena, light)
	if err != nil {
		panic(err)
	}
	return w
}
