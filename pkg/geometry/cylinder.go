package geometry

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
)

// intersectCylinder intersects a ray with the unit-radius cylinder around the
// y axis, truncated to (Minimum, Maximum) and optionally capped
func intersectCylinder(h Handle, s *Shape, ray core.Ray) Intersections {
	var xs Intersections
	o, d := ray.Origin, ray.Direction

	// Quadratic in x and z only; a ≈ 0 means the ray runs parallel to the axis
	a := d.X*d.X + d.Z*d.Z
	if math.Abs(a) >= core.Epsilon {
		b := 2*o.X*d.X + 2*o.Z*d.Z
		c := o.X*o.X + o.Z*o.Z - 1

		discriminant := b*b - 4*a*c
		if discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)
			t0 := (-b - sqrtD) / (2 * a)
			t1 := (-b + sqrtD) / (2 * a)
			xs = appendWithinHeight(xs, h, s, ray, t0, t1)
		}
	}

	xs = intersectCaps(xs, h, s, ray, 1, 1)
	xs.Sort()
	return xs
}

// appendWithinHeight keeps the candidate hits whose y lies strictly inside
// the truncation range
func appendWithinHeight(xs Intersections, h Handle, s *Shape, ray core.Ray, ts ...float64) Intersections {
	for _, t := range ts {
		y := ray.Origin.Y + t*ray.Direction.Y
		if s.Minimum < y && y < s.Maximum {
			xs = append(xs, NewIntersection(t, h))
		}
	}
	return xs
}

// intersectCaps adds hits on the end caps of a closed cylinder or cone.
// minRadius and maxRadius are the disc radii at Minimum and Maximum.
func intersectCaps(xs Intersections, h Handle, s *Shape, ray core.Ray, minRadius, maxRadius float64) Intersections {
	if !s.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (s.Minimum - ray.Origin.Y) / ray.Direction.Y
	if withinDisc(ray, t, minRadius) {
		xs = append(xs, NewIntersection(t, h))
	}

	t = (s.Maximum - ray.Origin.Y) / ray.Direction.Y
	if withinDisc(ray, t, maxRadius) {
		xs = append(xs, NewIntersection(t, h))
	}
	return xs
}

// withinDisc reports whether the ray at t lies within radius of the y axis
func withinDisc(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

// cylinderNormal returns the radial normal, or ±y on the caps
func cylinderNormal(s *Shape, point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= s.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= s.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(point.X, 0, point.Z)
}
