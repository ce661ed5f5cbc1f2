package core

import (
	"math"
	"testing"
)

func TestAABB_EmptyAndAdd(t *testing.T) {
	box := EmptyAABB()
	if box.IsValid() {
		t.Error("Expected empty box to be invalid")
	}

	box = box.Add(NewPoint(-5, 2, 0)).Add(NewPoint(7, 0, -3))
	if !box.Min.Equals(NewPoint(-5, 0, -3)) || !box.Max.Equals(NewPoint(7, 2, 0)) {
		t.Errorf("Unexpected box %v", box)
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewPoint(-5, -2, 0), NewPoint(7, 4, 4))
	b := NewAABB(NewPoint(8, -7, -2), NewPoint(14, 2, 8))

	u := a.Union(b)
	if !u.Min.Equals(NewPoint(-5, -7, -2)) || !u.Max.Equals(NewPoint(14, 4, 8)) {
		t.Errorf("Unexpected union %v", u)
	}

	if got := a.Union(EmptyAABB()); got != a {
		t.Errorf("Union with empty box should be a no-op, got %v", got)
	}
}

func TestAABB_Contains(t *testing.T) {
	box := NewAABB(NewPoint(5, -2, 0), NewPoint(11, 4, 7))
	tests := []struct {
		point    Tuple
		expected bool
	}{
		{NewPoint(5, -2, 0), true},
		{NewPoint(11, 4, 7), true},
		{NewPoint(8, 1, 3), true},
		{NewPoint(3, 0, 3), false},
		{NewPoint(8, -4, 3), false},
		{NewPoint(8, 1, -1), false},
		{NewPoint(13, 1, 3), false},
		{NewPoint(8, 5, 3), false},
		{NewPoint(8, 1, 8), false},
	}

	for _, tt := range tests {
		if got := box.Contains(tt.point); got != tt.expected {
			t.Errorf("Contains(%v): expected %v, got %v", tt.point, tt.expected, got)
		}
	}

	inner := NewAABB(NewPoint(6, -1, 1), NewPoint(10, 3, 6))
	if !box.ContainsBox(inner) {
		t.Error("Expected box to contain inner box")
	}
}

func TestAABB_Transform(t *testing.T) {
	box := NewAABB(NewPoint(-1, -1, -1), NewPoint(1, 1, 1))
	transformed := box.Transform(RotationX(math.Pi / 4).Multiply(RotationY(math.Pi / 4)))

	if !transformed.Min.Equals(NewPoint(-1.41421, -1.70711, -1.70711)) {
		t.Errorf("Unexpected min %v", transformed.Min)
	}
	if !transformed.Max.Equals(NewPoint(1.41421, 1.70711, 1.70711)) {
		t.Errorf("Unexpected max %v", transformed.Max)
	}
}

func TestAABB_TransformInfinite(t *testing.T) {
	inf := math.Inf(1)
	plane := NewAABB(NewPoint(-inf, 0, -inf), NewPoint(inf, 0, inf))

	moved := plane.Transform(Translation(0, 2, 0))
	if moved.Min.Y != 2 || moved.Max.Y != 2 {
		t.Errorf("Expected plane bounds at y=2, got %v", moved)
	}
	if !math.IsInf(moved.Min.X, -1) || !math.IsInf(moved.Max.Z, 1) {
		t.Errorf("Expected plane bounds to stay infinite, got %v", moved)
	}
	if math.IsNaN(moved.Min.X) || math.IsNaN(moved.Max.X) {
		t.Errorf("Transformed infinite bounds contain NaN: %v", moved)
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewPoint(5, -2, 0), NewPoint(11, 4, 7))

	tests := []struct {
		name      string
		origin    Tuple
		direction Tuple
		expected  bool
	}{
		{"+x", NewPoint(15, 1, 2), NewVector(-1, 0, 0), true},
		{"-x", NewPoint(-5, -1, 4), NewVector(1, 0, 0), true},
		{"+y", NewPoint(7, 6, 5), NewVector(0, -1, 0), true},
		{"-y", NewPoint(9, -5, 6), NewVector(0, 1, 0), true},
		{"+z", NewPoint(8, 2, 12), NewVector(0, 0, -1), true},
		{"-z", NewPoint(6, 0, -5), NewVector(0, 0, 1), true},
		{"inside", NewPoint(8, 1, 3.5), NewVector(0, 0, 1), true},
		{"miss diagonal", NewPoint(9, -1, -8), NewVector(2, 4, 6), false},
		{"miss parallel", NewPoint(18, -2, 5), NewVector(0, 0, -1), false},
		{"miss behind y", NewPoint(8, 1, -8), NewVector(0, -1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(tt.origin, tt.direction.Normalize())
			if got := box.Hit(ray); got != tt.expected {
				t.Errorf("Expected hit=%v, got %v", tt.expected, got)
			}
		})
	}

	if EmptyAABB().Hit(NewRay(NewPoint(0, 0, 0), NewVector(0, 0, 1))) {
		t.Error("Empty box should never be hit")
	}
}
