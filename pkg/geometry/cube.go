package geometry

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
)

// unitBounds spans [-1, 1] on every axis
var unitBounds = core.NewAABB(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))

// intersectCube intersects a ray with the axis-aligned cube [-1, 1]³ using
// the slab method
func intersectCube(h Handle, ray core.Ray) Intersections {
	tmin, tmax := unitBounds.Intersect(ray)
	if tmin > tmax {
		return nil
	}
	return Intersections{NewIntersection(tmin, h), NewIntersection(tmax, h)}
}

// cubeNormal picks the face on the axis with the largest absolute coordinate.
// Ties on an edge or corner resolve x first, then y, then z.
func cubeNormal(point core.Tuple) core.Tuple {
	absX := math.Abs(point.X)
	absY := math.Abs(point.Y)
	absZ := math.Abs(point.Z)
	maxc := math.Max(absX, math.Max(absY, absZ))

	switch maxc {
	case absX:
		return core.NewVector(point.X, 0, 0)
	case absY:
		return core.NewVector(0, point.Y, 0)
	default:
		return core.NewVector(0, 0, point.Z)
	}
}
