package geometry

import (
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-ray-tracer/pkg/core"
)

// Intersection is a candidate hit between a ray and a shape at parameter T.
// U and V carry barycentric coordinates for triangle hits.
type Intersection struct {
	T      float64
	U, V   float64
	Object Handle
}

// NewIntersection creates an intersection. A NaN t means a broken scene
// graph and panics.
func NewIntersection(t float64, object Handle) Intersection {
	if math.IsNaN(t) {
		panic(fmt.Sprintf("NaN intersection with shape %d", object))
	}
	return Intersection{T: t, Object: object}
}

// NewIntersectionWithUV creates an intersection carrying barycentric coordinates
func NewIntersectionWithUV(t, u, v float64, object Handle) Intersection {
	i := NewIntersection(t, object)
	i.U = u
	i.V = v
	return i
}

// Equals compares t within epsilon and the object identity
func (i Intersection) Equals(other Intersection) bool {
	return core.FloatEquals(i.T, other.T) && i.Object == other.Object
}

// Intersections is a list of hits, kept ascending by T
type Intersections []Intersection

// Sort orders the list by T, breaking ties by object handle
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(a, b int) bool {
		if xs[a].T != xs[b].T {
			return xs[a].T < xs[b].T
		}
		return xs[a].Object < xs[b].Object
	})
}

// Hit returns the nearest non-negative intersection of a sorted list
func (xs Intersections) Hit() (Intersection, bool) {
	for _, i := range xs {
		if i.T >= 0 {
			return i, true
		}
	}
	return Intersection{}, false
}

// Ts returns the t values in order
func (xs Intersections) Ts() []float64 {
	ts := make([]float64, len(xs))
	for i, x := range xs {
		ts[i] = x.T
	}
	return ts
}
