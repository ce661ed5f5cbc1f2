package geometry

import (
	"fmt"

	"github.com/df07/go-ray-tracer/pkg/core"
)

// Intersect returns every hit of ray against shape h and the shapes nested
// beneath it. The ray is given in the space of h's parent (world space for a
// root shape). Negative t values are kept; callers filter them.
func (a *Arena) Intersect(h Handle, ray core.Ray) Intersections {
	s := &a.shapes[h]
	return a.localIntersect(h, ray.Transform(s.inverse))
}

// localIntersect dispatches to the solver of each kind, in object space
func (a *Arena) localIntersect(h Handle, ray core.Ray) Intersections {
	s := &a.shapes[h]
	switch s.Kind {
	case KindSphere:
		return intersectSphere(h, ray)
	case KindPlane:
		return intersectPlane(h, ray)
	case KindCube:
		return intersectCube(h, ray)
	case KindCylinder:
		return intersectCylinder(h, s, ray)
	case KindCone:
		return intersectCone(h, s, ray)
	case KindTriangle:
		return intersectTriangle(h, s, ray)
	case KindGroup:
		return a.intersectGroup(s, ray)
	case KindCSG:
		return a.intersectCSG(h, s, ray)
	default:
		panic(fmt.Sprintf("intersect: unknown shape kind %d", s.Kind))
	}
}

// localNormalAt returns the object-space normal of a leaf shape
func (a *Arena) localNormalAt(h Handle, point core.Tuple, hit Intersection) core.Tuple {
	s := &a.shapes[h]
	switch s.Kind {
	case KindSphere:
		return sphereNormal(point)
	case KindPlane:
		return planeNormal()
	case KindCube:
		return cubeNormal(point)
	case KindCylinder:
		return cylinderNormal(s, point)
	case KindCone:
		return coneNormal(s, point)
	case KindTriangle:
		return s.Normal
	default:
		// Composites have no surface of their own
		panic(fmt.Sprintf("normal requested on %s shape %d", s.Kind, h))
	}
}

// NormalAt returns the world-space unit normal of shape h at a world point
func (a *Arena) NormalAt(h Handle, worldPoint core.Tuple, hit Intersection) core.Tuple {
	localPoint := a.WorldToObject(h, worldPoint)
	localNormal := a.localNormalAt(h, localPoint, hit)
	return a.NormalToWorld(h, localNormal)
}

// WorldToObject maps a world point into the object space of h, walking the
// parent chain from the root down
func (a *Arena) WorldToObject(h Handle, point core.Tuple) core.Tuple {
	s := &a.shapes[h]
	if s.Parent != NoParent {
		point = a.WorldToObject(s.Parent, point)
	}
	return s.inverse.MultiplyTuple(point)
}

// NormalToWorld maps an object-space normal of h back to world space
func (a *Arena) NormalToWorld(h Handle, normal core.Tuple) core.Tuple {
	s := &a.shapes[h]
	normal = s.inverseTranspose.MultiplyTuple(normal)
	normal.W = 0
	normal = normal.Normalize()

	if s.Parent != NoParent {
		normal = a.NormalToWorld(s.Parent, normal)
	}
	return normal
}
