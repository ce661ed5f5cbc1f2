package geometry

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
)

// intersectSphere intersects a ray with the unit sphere at the origin
func intersectSphere(h Handle, ray core.Ray) Intersections {
	// Vector from sphere center to ray origin
	sphereToRay := ray.Origin.Subtract(core.Origin)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	// A tangent ray reports the same t twice
	return Intersections{NewIntersection(t1, h), NewIntersection(t2, h)}
}

// sphereNormal points from the center to the surface point
func sphereNormal(point core.Tuple) core.Tuple {
	return point.Subtract(core.Origin)
}
