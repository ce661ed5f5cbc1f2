package geometry

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
)

// intersectPlane intersects a ray with the xz plane
func intersectPlane(h Handle, ray core.Ray) Intersections {
	// Parallel or coplanar rays never hit
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{NewIntersection(t, h)}
}

// planeNormal is +y everywhere
func planeNormal() core.Tuple {
	return core.NewVector(0, 1, 0)
}
