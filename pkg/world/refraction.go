package world

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/geometry"
	"github.com/df07/go-ray-tracer/pkg/material"
)

// interval is the stretch of a ray spent inside one object
type interval struct {
	start, end float64
	object     geometry.Handle
}

// RefractionIndexes returns the refractive index of the medium the ray is in
// just before t (n1) and just after t (n2). The medium is the innermost
// object, the one whose interval around t starts last. Outside every object
// the index is that of vacuum.
func (w *World) RefractionIndexes(t float64, ray core.Ray) (n1, n2 float64) {
	return w.refractionIndexes(t, w.intersectAll(ray))
}

func (w *World) refractionIndexes(t float64, xs geometry.Intersections) (n1, n2 float64) {
	n1, n2 = material.RefractiveVacuum, material.RefractiveVacuum
	before, after := math.Inf(-1), math.Inf(-1)

	for _, iv := range intervals(xs) {
		index := w.arena.MaterialOf(iv.object).RefractiveIndex

		if iv.start < t && t <= iv.end && iv.start > before {
			before = iv.start
			n1 = index
		}
		if iv.start <= t && t < iv.end && iv.start > after {
			after = iv.start
			n2 = index
		}
	}
	return n1, n2
}

// intervals pairs up the sorted hits of each object into entry and exit.
// An unmatched final hit (a plane or a triangle) stays open to infinity.
func intervals(xs geometry.Intersections) []interval {
	open := make(map[geometry.Handle]float64)
	var opened []geometry.Handle
	var result []interval

	for _, x := range xs {
		if start, inside := open[x.Object]; inside {
			result = append(result, interval{start: start, end: x.T, object: x.Object})
			delete(open, x.Object)
			continue
		}
		open[x.Object] = x.T
		opened = append(opened, x.Object)
	}

	for _, h := range opened {
		if start, inside := open[h]; inside {
			result = append(result, interval{start: start, end: math.Inf(1), object: h})
			delete(open, h)
		}
	}
	return result
}
