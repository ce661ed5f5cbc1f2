package geometry

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
)

// intersectCone intersects a ray with the double-napped cone x² + z² = y²,
// truncated to (Minimum, Maximum) and optionally capped
func intersectCone(h Handle, s *Shape, ray core.Ray) Intersections {
	var xs Intersections
	o, d := ray.Origin, ray.Direction

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	c := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.Epsilon:
		// Ray parallel to one nappe: at most one hit, unless b vanishes too
		if math.Abs(b) >= core.Epsilon {
			xs = appendWithinHeight(xs, h, s, ray, -c/(2*b))
		}
	default:
		discriminant := b*b - 4*a*c
		if discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)
			t0 := (-b - sqrtD) / (2 * a)
			t1 := (-b + sqrtD) / (2 * a)
			xs = appendWithinHeight(xs, h, s, ray, t0, t1)
		}
	}

	// Cap radius equals |y| at each end
	xs = intersectCaps(xs, h, s, ray, math.Abs(s.Minimum), math.Abs(s.Maximum))
	xs.Sort()
	return xs
}

// coneNormal returns the slanted body normal, or ±y on the caps
func coneNormal(s *Shape, point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < s.Maximum*s.Maximum && point.Y >= s.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < s.Minimum*s.Minimum && point.Y <= s.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.NewVector(point.X, y, point.Z)
}
