package core

import "math"

// Epsilon is the tolerance used for approximate floating point comparisons
const Epsilon = 1e-4

// FloatEquals reports whether two floats are within Epsilon of each other
func FloatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Tuple is a homogeneous 4-component tuple. W is 1 for points and 0 for vectors.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a new Tuple
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a point (w = 1)
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector (w = 0)
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// Origin is the point (0, 0, 0)
var Origin = NewPoint(0, 0, 0)

// IsPoint returns true if the tuple is a point
func (t Tuple) IsPoint() bool {
	return FloatEquals(t.W, 1)
}

// IsVector returns true if the tuple is a vector
func (t Tuple) IsVector() bool {
	return FloatEquals(t.W, 0)
}

// Equals compares two tuples component-wise within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return FloatEquals(t.X, other.X) &&
		FloatEquals(t.Y, other.Y) &&
		FloatEquals(t.Z, other.Z) &&
		FloatEquals(t.W, other.W)
}

// Add returns the sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the difference of two tuples
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the negated tuple
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Length returns the magnitude of the tuple
func (t Tuple) Length() float64 {
	return math.Sqrt(t.LengthSquared())
}

// LengthSquared returns the squared magnitude of the tuple
func (t Tuple) LengthSquared() float64 {
	return t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W
}

// Normalize returns a unit tuple in the same direction.
// Normalizing a zero vector is undefined.
func (t Tuple) Normalize() Tuple {
	return t.Divide(t.Length())
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors (w is ignored, the result is a vector)
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect reflects the vector about the normal n
func (t Tuple) Reflect(n Tuple) Tuple {
	// r = v - 2*dot(v,n)*n
	return t.Subtract(n.Multiply(2 * t.Dot(n)))
}

// AsVector returns the tuple with w forced to 0
func (t Tuple) AsVector() Tuple {
	t.W = 0
	return t
}
