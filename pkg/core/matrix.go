package core

import (
	"errors"
	"fmt"
)

// ErrSingularMatrix is returned when inverting a matrix whose determinant is zero
var ErrSingularMatrix = errors.New("matrix is not invertible")

// Matrix is a row-major 4x4 transform matrix
type Matrix [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Equals compares two matrices element-wise within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !FloatEquals(m[r][c], other[r][c]) {
				return false
			}
		}
	}
	return true
}

// Multiply returns m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r][c] = m[r][0]*other[0][c] +
				m[r][1]*other[1][c] +
				m[r][2]*other[2][c] +
				m[r][3]*other[3][c]
		}
	}
	return result
}

// MultiplyTuple returns m * t
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the transpose of the matrix
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r][c] = m[c][r]
		}
	}
	return result
}

// Determinant returns the determinant of the matrix using cofactor expansion on the first row
func (m Matrix) Determinant() float64 {
	det := 0.0
	for c := 0; c < 4; c++ {
		det += m[0][c] * m.Cofactor(0, c)
	}
	return det
}

// Submatrix returns the 3x3 matrix left after removing the given row and column
func (m Matrix) Submatrix(row, col int) [3][3]float64 {
	var sub [3][3]float64
	sr := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		sc := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			sub[sr][sc] = m[r][c]
			sc++
		}
		sr++
	}
	return sub
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	s := m.Submatrix(row, col)
	return s[0][0]*(s[1][1]*s[2][2]-s[1][2]*s[2][1]) -
		s[0][1]*(s[1][0]*s[2][2]-s[1][2]*s[2][0]) +
		s[0][2]*(s[1][0]*s[2][1]-s[1][1]*s[2][0])
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Inverse returns the inverse of the matrix using the adjugate method.
// Returns ErrSingularMatrix when the determinant is zero.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrSingularMatrix
	}

	var result Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// Transposed assignment builds the adjugate directly
			result[c][r] = m.Cofactor(r, c) / det
		}
	}
	return result, nil
}

// MustInverse is like Inverse but panics on a singular matrix.
// Intended for literal transforms that are known to be invertible.
func (m Matrix) MustInverse() Matrix {
	inv, err := m.Inverse()
	if err != nil {
		panic(fmt.Sprintf("inverse of %v: %v", m, err))
	}
	return inv
}
