package geometry

import (
	"testing"

	"github.com/df07/go-ray-tracer/pkg/core"
)

func TestCSG_Construction(t *testing.T) {
	a := NewArena(nil)
	s1 := a.AddSphere(ShapeOptions{})
	s2 := a.AddCube(ShapeOptions{})
	c := a.AddCSG(ShapeOptions{}, OpUnion, s1, s2)

	shape := a.Shape(c)
	if shape.Operation != OpUnion || shape.Left != s1 || shape.Right != s2 {
		t.Errorf("Unexpected CSG fields %+v", shape)
	}
	if a.Shape(s1).Parent != c || a.Shape(s2).Parent != c {
		t.Error("Operands must point back at the CSG shape")
	}
	if shape.Operation.String() != "union" || shape.Kind.String() != "csg" {
		t.Errorf("Unexpected names %s %s", shape.Operation, shape.Kind)
	}
}

func TestIntersectionAllowed(t *testing.T) {
	tests := []struct {
		op       Operation
		leftHit  bool
		inLeft   bool
		inRight  bool
		expected bool
	}{
		{OpUnion, true, true, true, false},
		{OpUnion, true, true, false, true},
		{OpUnion, true, false, true, false},
		{OpUnion, true, false, false, true},
		{OpUnion, false, true, true, false},
		{OpUnion, false, true, false, false},
		{OpUnion, false, false, true, true},
		{OpUnion, false, false, false, true},

		{OpIntersection, true, true, true, true},
		{OpIntersection, true, true, false, false},
		{OpIntersection, true, false, true, true},
		{OpIntersection, true, false, false, false},
		{OpIntersection, false, true, true, true},
		{OpIntersection, false, true, false, true},
		{OpIntersection, false, false, true, false},
		{OpIntersection, false, false, false, false},

		{OpDifference, true, true, true, false},
		{OpDifference, true, true, false, true},
		{OpDifference, true, false, true, false},
		{OpDifference, true, false, false, true},
		{OpDifference, false, true, true, true},
		{OpDifference, false, true, false, true},
		{OpDifference, false, false, true, false},
		{OpDifference, false, false, false, false},
	}

	for _, tt := range tests {
		got := IntersectionAllowed(tt.op, tt.leftHit, tt.inLeft, tt.inRight)
		if got != tt.expected {
			t.Errorf("%s lhit=%v inl=%v inr=%v: expected %v, got %v",
				tt.op, tt.leftHit, tt.inLeft, tt.inRight, tt.expected, got)
		}
	}
}

func TestCSG_FilterIntersections(t *testing.T) {
	tests := []struct {
		op   Operation
		keep [2]int
	}{
		{OpUnion, [2]int{0, 3}},
		{OpIntersection, [2]int{1, 2}},
		{OpDifference, [2]int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			a := NewArena(nil)
			s1 := a.AddSphere(ShapeOptions{})
			s2 := a.AddCube(ShapeOptions{})
			c := a.AddCSG(ShapeOptions{}, tt.op, s1, s2)

			xs := Intersections{
				NewIntersection(1, s1),
				NewIntersection(2, s2),
				NewIntersection(3, s1),
				NewIntersection(4, s2),
			}

			result := a.FilterIntersections(c, xs)
			if len(result) != 2 {
				t.Fatalf("Expected 2 intersections, got %v", result.Ts())
			}
			if result[0] != xs[tt.keep[0]] || result[1] != xs[tt.keep[1]] {
				t.Errorf("Expected %v and %v, got %v", xs[tt.keep[0]], xs[tt.keep[1]], result)
			}
		})
	}
}

func TestCSG_RayMisses(t *testing.T) {
	a := NewArena(nil)
	c := a.AddCSG(ShapeOptions{}, OpUnion, a.AddSphere(ShapeOptions{}), a.AddCube(ShapeOptions{}))

	if xs := a.Intersect(c, ray(0, 2, -5, 0, 0, 1)); len(xs) != 0 {
		t.Errorf("Expected no intersections, got %v", xs.Ts())
	}
}

func TestCSG_RayHits(t *testing.T) {
	a := NewArena(nil)
	s1 := a.AddSphere(ShapeOptions{})
	s2 := a.AddSphere(WithTransform(core.Translation(0, 0, 0.5)))
	c := a.AddCSG(ShapeOptions{}, OpUnion, s1, s2)

	xs := a.Intersect(c, ray(0, 0, -5, 0, 0, 1))
	checkTs(t, xs, 4, 6.5)
	if xs[0].Object != s1 || xs[1].Object != s2 {
		t.Errorf("Expected hits on s1 then s2, got %d and %d", xs[0].Object, xs[1].Object)
	}
}

func TestCSG_DifferenceCarvesHole(t *testing.T) {
	a := NewArena(nil)
	cube := a.AddCube(ShapeOptions{})
	hole := a.AddSphere(WithTransform(core.Scaling(0.5, 0.5, 0.5)))
	c := a.AddCSG(ShapeOptions{}, OpDifference, cube, hole)

	// Down the z axis: cube front face, sphere front, sphere back, cube back face
	xs := a.Intersect(c, ray(0, 0, -5, 0, 0, 1))
	checkTs(t, xs, 4, 4.5, 5.5, 6)
	if xs[1].Object != hole || xs[2].Object != hole {
		t.Error("Inner surfaces must belong to the subtracted shape")
	}
}

func TestCSG_NestedGroupOperand(t *testing.T) {
	a := NewArena(nil)
	inner := a.AddSphere(ShapeOptions{})
	left := a.AddGroup(ShapeOptions{}, inner)
	right := a.AddSphere(WithTransform(core.Translation(0, 0, 0.5)))
	c := a.AddCSG(ShapeOptions{}, OpIntersection, left, right)

	xs := a.Intersect(c, ray(0, 0, -5, 0, 0, 1))
	checkTs(t, xs, 4.5, 6)
	if xs[0].Object != right || xs[1].Object != inner {
		t.Errorf("Expected right then inner, got %d and %d", xs[0].Object, xs[1].Object)
	}
}
