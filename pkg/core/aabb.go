package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Tuple // Minimum corner (point)
	Max Tuple // Maximum corner (point)
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Tuple) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns a box that contains nothing; adding a point makes it valid
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewPoint(inf, inf, inf),
		Max: NewPoint(-inf, -inf, -inf),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Tuple) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box = box.Add(point)
	}
	return box
}

// Add returns the box grown to include the point
func (aabb AABB) Add(point Tuple) AABB {
	return AABB{
		Min: NewPoint(math.Min(aabb.Min.X, point.X), math.Min(aabb.Min.Y, point.Y), math.Min(aabb.Min.Z, point.Z)),
		Max: NewPoint(math.Max(aabb.Max.X, point.X), math.Max(aabb.Max.Y, point.Y), math.Max(aabb.Max.Z, point.Z)),
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	if !other.IsValid() {
		return aabb
	}
	return aabb.Add(other.Min).Add(other.Max)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Contains reports whether the point lies inside the box (boundaries included)
func (aabb AABB) Contains(point Tuple) bool {
	return point.X >= aabb.Min.X && point.X <= aabb.Max.X &&
		point.Y >= aabb.Min.Y && point.Y <= aabb.Max.Y &&
		point.Z >= aabb.Min.Z && point.Z <= aabb.Max.Z
}

// ContainsBox reports whether other lies entirely inside the box
func (aabb AABB) ContainsBox(other AABB) bool {
	return aabb.Contains(other.Min) && aabb.Contains(other.Max)
}

// Transform returns the box that bounds all eight corners of this box after
// transformation by m
func (aabb AABB) Transform(m Matrix) AABB {
	if !aabb.IsValid() {
		return aabb
	}

	corners := [8]Tuple{
		aabb.Min,
		NewPoint(aabb.Min.X, aabb.Min.Y, aabb.Max.Z),
		NewPoint(aabb.Min.X, aabb.Max.Y, aabb.Min.Z),
		NewPoint(aabb.Min.X, aabb.Max.Y, aabb.Max.Z),
		NewPoint(aabb.Max.X, aabb.Min.Y, aabb.Min.Z),
		NewPoint(aabb.Max.X, aabb.Min.Y, aabb.Max.Z),
		NewPoint(aabb.Max.X, aabb.Max.Y, aabb.Min.Z),
		aabb.Max,
	}

	result := EmptyAABB()
	for _, corner := range corners {
		result = result.Add(transformBoundsPoint(m, corner))
	}

	// Inf-Inf along a rotated infinite axis: the box is unbounded there
	inf := math.Inf(1)
	if math.IsNaN(result.Min.X) || math.IsNaN(result.Max.X) {
		result.Min.X, result.Max.X = -inf, inf
	}
	if math.IsNaN(result.Min.Y) || math.IsNaN(result.Max.Y) {
		result.Min.Y, result.Max.Y = -inf, inf
	}
	if math.IsNaN(result.Min.Z) || math.IsNaN(result.Max.Z) {
		result.Min.Z, result.Max.Z = -inf, inf
	}
	return result
}

// transformBoundsPoint multiplies a point by m while treating 0*Inf as 0, so
// infinite boxes (planes) survive rotation without turning into NaN
func transformBoundsPoint(m Matrix, p Tuple) Tuple {
	in := [4]float64{p.X, p.Y, p.Z, 1}
	var out [3]float64
	for r := 0; r < 3; r++ {
		sum := 0.0
		for c := 0; c < 4; c++ {
			if m[r][c] == 0 {
				continue
			}
			sum += m[r][c] * in[c]
		}
		out[r] = sum
	}
	return NewPoint(out[0], out[1], out[2])
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray) bool {
	if !aabb.IsValid() {
		return false
	}
	tmin, tmax := aabb.Intersect(ray)
	return tmin <= tmax
}

// Intersect returns the entry and exit parameters of the ray against the box.
// The ray misses when tmin > tmax.
func (aabb AABB) Intersect(ray Ray) (tmin, tmax float64) {
	xmin, xmax := SlabIntersect(ray.Origin.X, ray.Direction.X, aabb.Min.X, aabb.Max.X)
	ymin, ymax := SlabIntersect(ray.Origin.Y, ray.Direction.Y, aabb.Min.Y, aabb.Max.Y)
	zmin, zmax := SlabIntersect(ray.Origin.Z, ray.Direction.Z, aabb.Min.Z, aabb.Max.Z)

	tmin = math.Max(xmin, math.Max(ymin, zmin))
	tmax = math.Min(xmax, math.Min(ymax, zmax))
	return tmin, tmax
}

// SlabIntersect returns the entry and exit parameters of a ray against the
// slab [min, max] along one axis
func SlabIntersect(origin, direction, min, max float64) (float64, float64) {
	// Handle parallel rays (direction near zero)
	if math.Abs(direction) < 1e-8 {
		if origin < min || origin > max {
			// Ray origin outside slab: empty interval
			return math.Inf(1), math.Inf(-1)
		}
		return math.Inf(-1), math.Inf(1)
	}

	t1 := (min - origin) / direction
	t2 := (max - origin) / direction

	// Ensure t1 <= t2 (swap if needed)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Tuple {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Tuple {
	return aabb.Max.Subtract(aabb.Min)
}
