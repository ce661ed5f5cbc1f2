package geometry

import (
	"github.com/df07/go-ray-tracer/pkg/core"
)

// intersectGroup rejects rays that miss the group bounds, otherwise merges
// the hits of every child in t order
func (a *Arena) intersectGroup(s *Shape, ray core.Ray) Intersections {
	if len(s.Children) == 0 || !s.bounds.Hit(ray) {
		return nil
	}

	var xs Intersections
	for _, child := range s.Children {
		xs = append(xs, a.Intersect(child, ray)...)
	}
	xs.Sort()
	return xs
}

// Children returns the child handles of a group
func (a *Arena) Children(h Handle) []Handle {
	return a.shapes[h].Children
}
