package geometry

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
)

// Bounds returns the axis-aligned box of shape h in its own object space
func (a *Arena) Bounds(h Handle) core.AABB {
	s := &a.shapes[h]
	inf := math.Inf(1)

	switch s.Kind {
	case KindSphere, KindCube:
		return unitBounds
	case KindPlane:
		return core.NewAABB(core.NewPoint(-inf, 0, -inf), core.NewPoint(inf, 0, inf))
	case KindCylinder:
		return core.NewAABB(core.NewPoint(-1, s.Minimum, -1), core.NewPoint(1, s.Maximum, 1))
	case KindCone:
		limit := math.Max(math.Abs(s.Minimum), math.Abs(s.Maximum))
		return core.NewAABB(core.NewPoint(-limit, s.Minimum, -limit), core.NewPoint(limit, s.Maximum, limit))
	case KindTriangle:
		return core.NewAABBFromPoints(s.P1, s.P2, s.P3)
	default:
		// Groups and CSG cache the union of their children
		return s.bounds
	}
}

// ParentSpaceBounds returns the bounds of h transformed into its parent's space
func (a *Arena) ParentSpaceBounds(h Handle) core.AABB {
	return a.Bounds(h).Transform(a.shapes[h].Transform)
}
