package core

import "math"

// Translation returns a matrix that moves points by (x, y, z)
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a matrix that scales by (x, y, z)
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a rotation around the X axis by r radians
func RotationX(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	m := Identity()
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotationY returns a rotation around the Y axis by r radians
func RotationY(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	m := Identity()
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotationZ returns a rotation around the Z axis by r radians
func RotationZ(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	m := Identity()
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Shearing returns a shear matrix. Each parameter moves one component in
// proportion to another, e.g. xy moves x in proportion to y.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// The chaining helpers left-multiply the new transform onto m, so
// Identity().RotateX(a).Scale(...).Translate(...) applies the rotation first.

// Translate returns Translation(x, y, z) * m
func (m Matrix) Translate(x, y, z float64) Matrix {
	return Translation(x, y, z).Multiply(m)
}

// Scale returns Scaling(x, y, z) * m
func (m Matrix) Scale(x, y, z float64) Matrix {
	return Scaling(x, y, z).Multiply(m)
}

// RotateX returns RotationX(r) * m
func (m Matrix) RotateX(r float64) Matrix {
	return RotationX(r).Multiply(m)
}

// RotateY returns RotationY(r) * m
func (m Matrix) RotateY(r float64) Matrix {
	return RotationY(r).Multiply(m)
}

// RotateZ returns RotationZ(r) * m
func (m Matrix) RotateZ(r float64) Matrix {
	return RotationZ(r).Multiply(m)
}

// Shear returns Shearing(...) * m
func (m Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Shearing(xy, xz, yx, yz, zx, zy).Multiply(m)
}

// ViewTransform returns the world-to-view matrix for an eye at from looking at to
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
