package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/material"
)

func TestPrepareComputations_Outside(t *testing.T) {
	a := NewArena(nil)
	s := a.AddSphere(ShapeOptions{})
	r := ray(0, 0, -5, 0, 0, 1)

	state := a.PrepareComputations(NewIntersection(4, s), r, nil)

	if state.T != 4 || state.Object != s {
		t.Errorf("Expected t=4 on shape %d, got t=%f on %d", s, state.T, state.Object)
	}
	if !state.Point.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("Expected point (0,0,-1), got %v", state.Point)
	}
	if !state.Eyev.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected eyev (0,0,-1), got %v", state.Eyev)
	}
	if !state.Normalv.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normalv (0,0,-1), got %v", state.Normalv)
	}
	if state.Inside {
		t.Error("Expected the hit to be outside")
	}
}

func TestPrepareComputations_Inside(t *testing.T) {
	a := NewArena(nil)
	s := a.AddSphere(ShapeOptions{})
	r := ray(0, 0, 0, 0, 0, 1)

	state := a.PrepareComputations(NewIntersection(1, s), r, nil)

	if !state.Point.Equals(core.NewPoint(0, 0, 1)) {
		t.Errorf("Expected point (0,0,1), got %v", state.Point)
	}
	if !state.Eyev.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected eyev (0,0,-1), got %v", state.Eyev)
	}
	if !state.Inside {
		t.Error("Expected the hit to be inside")
	}
	// Normal flipped to face the eye
	if !state.Normalv.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normalv (0,0,-1), got %v", state.Normalv)
	}
}

func TestPrepareComputations_OffsetPoints(t *testing.T) {
	a := NewArena(nil)
	s := a.AddGlassSphere(WithTransform(core.Translation(0, 0, 1)))
	r := ray(0, 0, -5, 0, 0, 1)
	hit := NewIntersection(5, s)

	state := a.PrepareComputations(hit, r, Intersections{hit})

	if state.OverPoint.Z >= -core.Epsilon/2 || state.Point.Z <= state.OverPoint.Z {
		t.Errorf("Over point must sit above the surface: point=%v over=%v", state.Point, state.OverPoint)
	}
	if state.UnderPoint.Z <= core.Epsilon/2 || state.Point.Z >= state.UnderPoint.Z {
		t.Errorf("Under point must sit below the surface: point=%v under=%v", state.Point, state.UnderPoint)
	}
	// Patterns are sampled where the shadow ray leaves from
	if !state.ObjectPoint.Equals(core.NewPoint(0, 0, -1-core.Epsilon)) {
		t.Errorf("Expected object point (0,0,%f), got %v", -1-core.Epsilon, state.ObjectPoint)
	}
	if !state.ObjectPoint.Equals(a.WorldToObject(s, state.OverPoint)) {
		t.Errorf("Object point %v is not the over point in object space", state.ObjectPoint)
	}
}

func TestPrepareComputations_Reflectv(t *testing.T) {
	a := NewArena(nil)
	p := a.AddPlane(ShapeOptions{})
	s2 := math.Sqrt2 / 2
	r := ray(0, 1, -1, 0, -s2, s2)

	state := a.PrepareComputations(NewIntersection(math.Sqrt2, p), r, nil)
	if !state.Reflectv.Equals(core.NewVector(0, s2, s2)) {
		t.Errorf("Expected reflectv (0,%f,%f), got %v", s2, s2, state.Reflectv)
	}
}

func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	a := NewArena(nil)

	glass := func(index float64) *material.Material {
		m := material.NewGlassMaterial()
		m.RefractiveIndex = index
		return m
	}

	sa := a.AddSphere(ShapeOptions{Transform: core.Scaling(2, 2, 2), Material: glass(1.5)})
	sb := a.AddSphere(ShapeOptions{Transform: core.Translation(0, 0, -0.25), Material: glass(2.0)})
	sc := a.AddSphere(ShapeOptions{Transform: core.Translation(0, 0, 0.25), Material: glass(2.5)})

	r := ray(0, 0, -4, 0, 0, 1)
	xs := Intersections{
		NewIntersection(2, sa),
		NewIntersection(2.75, sb),
		NewIntersection(3.25, sc),
		NewIntersection(4.75, sb),
		NewIntersection(5.25, sc),
		NewIntersection(6, sa),
	}

	expected := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for i, want := range expected {
		state := a.PrepareComputations(xs[i], r, xs)
		if state.N1 != want.n1 || state.N2 != want.n2 {
			t.Errorf("Hit %d: expected n1=%f n2=%f, got n1=%f n2=%f", i, want.n1, want.n2, state.N1, state.N2)
		}
	}
}

func TestSchlick(t *testing.T) {
	s2 := math.Sqrt2 / 2

	tests := []struct {
		name     string
		ray      core.Ray
		ts       []float64
		hitIndex int
		expected float64
	}{
		{"total internal reflection", ray(0, 0, s2, 0, 1, 0), []float64{-s2, s2}, 1, 1.0},
		{"perpendicular", ray(0, 0, 0, 0, 1, 0), []float64{-1, 1}, 1, 0.04},
		{"small angle with n2 > n1", ray(0, 0.99, -2, 0, 0, 1), []float64{1.8589}, 0, 0.48873},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena(nil)
			s := a.AddGlassSphere(ShapeOptions{})

			var xs Intersections
			for _, v := range tt.ts {
				xs = append(xs, NewIntersection(v, s))
			}

			state := a.PrepareComputations(xs[tt.hitIndex], tt.ray, xs)
			if got := Schlick(state); !core.FloatEquals(got, tt.expected) {
				t.Errorf("Expected reflectance %f, got %f", tt.expected, got)
			}
		})
	}
}
