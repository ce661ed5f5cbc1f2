package geometry

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
)

// intersectTriangle tests a ray against a triangle using the Möller-Trumbore
// algorithm. The hit carries the barycentric (u, v) of the crossing point.
func intersectTriangle(h Handle, s *Shape, ray core.Ray) Intersections {
	dirCrossE2 := ray.Direction.Cross(s.E2)
	det := s.E1.Dot(dirCrossE2)

	// Ray lies in the plane of the triangle
	if math.Abs(det) < core.Epsilon {
		return nil
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Subtract(s.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(s.E1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * s.E2.Dot(originCrossE1)
	return Intersections{NewIntersectionWithUV(t, u, v, h)}
}
