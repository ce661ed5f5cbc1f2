package geometry

import (
	"github.com/df07/go-ray-tracer/pkg/core"
)

// IntersectionAllowed decides whether a hit on one operand of a CSG shape is
// part of the combined surface. leftHit says which operand was hit; inLeft
// and inRight say whether the ray is currently inside each operand.
func IntersectionAllowed(op Operation, leftHit, inLeft, inRight bool) bool {
	switch op {
	case OpUnion:
		return (leftHit && !inRight) || (!leftHit && !inLeft)
	case OpIntersection:
		return (leftHit && inRight) || (!leftHit && inLeft)
	case OpDifference:
		return (leftHit && !inRight) || (!leftHit && inLeft)
	default:
		return false
	}
}

// FilterIntersections keeps the hits that lie on the surface of CSG shape h.
// xs must be sorted by t.
func (a *Arena) FilterIntersections(h Handle, xs Intersections) Intersections {
	s := &a.shapes[h]

	// Both operands start outside
	inLeft, inRight := false, false

	var result Intersections
	for _, x := range xs {
		leftHit := a.Includes(s.Left, x.Object)

		if IntersectionAllowed(s.Operation, leftHit, inLeft, inRight) {
			result = append(result, x)
		}

		if leftHit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}
	return result
}

// intersectCSG merges the hits of both operands and filters them
func (a *Arena) intersectCSG(h Handle, s *Shape, ray core.Ray) Intersections {
	if !s.bounds.Hit(ray) {
		return nil
	}

	xs := append(a.Intersect(s.Left, ray), a.Intersect(s.Right, ray)...)
	xs.Sort()
	return a.FilterIntersections(h, xs)
}
