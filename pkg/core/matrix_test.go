package core

import (
	"errors"
	"math"
	"testing"
)

func TestMatrix_Multiply(t *testing.T) {
	a := Matrix{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	}
	b := Matrix{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	}
	expected := Matrix{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	}

	if got := a.Multiply(b); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if got := a.Multiply(Identity()); !got.Equals(a) {
		t.Errorf("Multiplying by identity changed the matrix: %v", got)
	}
}

func TestMatrix_MultiplyTuple(t *testing.T) {
	a := Matrix{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	}
	if got := a.MultiplyTuple(NewTuple(1, 2, 3, 1)); !got.Equals(NewTuple(18, 24, 33, 1)) {
		t.Errorf("Expected (18,24,33,1), got %v", got)
	}
}

func TestMatrix_Transpose(t *testing.T) {
	a := Matrix{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	}
	expected := Matrix{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 5, 5},
		{0, 8, 3, 8},
	}
	if got := a.Transpose(); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if got := Identity().Transpose(); !got.Equals(Identity()) {
		t.Errorf("Transpose of identity should be identity, got %v", got)
	}
}

func TestMatrix_DeterminantAndCofactor(t *testing.T) {
	a := Matrix{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	}

	cofactors := []struct {
		row, col int
		expected float64
	}{
		{0, 0, 690},
		{0, 1, 447},
		{0, 2, 210},
		{0, 3, 51},
	}
	for _, c := range cofactors {
		if got := a.Cofactor(c.row, c.col); !FloatEquals(got, c.expected) {
			t.Errorf("Cofactor(%d,%d): expected %f, got %f", c.row, c.col, c.expected, got)
		}
	}

	if got := a.Determinant(); !FloatEquals(got, -4071) {
		t.Errorf("Expected determinant -4071, got %f", got)
	}
}

func TestMatrix_Inverse(t *testing.T) {
	a := Matrix{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	}
	expected := Matrix{
		{0.21805, 0.45113, 0.24060, -0.04511},
		{-0.80827, -1.45677, -0.44361, 0.52068},
		{-0.07895, -0.22368, -0.05263, 0.19737},
		{-0.52256, -0.81391, -0.30075, 0.30639},
	}

	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("Inverse failed: %v", err)
	}
	if !inv.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, inv)
	}

	// Multiplying a product by the inverse of one factor recovers the other
	b := Matrix{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	}
	c := a.Multiply(b)
	if got := c.Multiply(b.MustInverse()); !got.Equals(a) {
		t.Errorf("Expected C * inverse(B) = A, got %v", got)
	}
}

func TestMatrix_InverseSingular(t *testing.T) {
	singular := Matrix{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	}

	if _, err := singular.Inverse(); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Expected ErrSingularMatrix, got %v", err)
	}

	if _, err := Scaling(0, 1, 1).Inverse(); err == nil {
		t.Error("Expected zero scaling to be singular")
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected MustInverse to panic on a singular matrix")
		}
	}()
	singular.MustInverse()
}

func TestTransform_Builders(t *testing.T) {
	tests := []struct {
		name      string
		transform Matrix
		input     Tuple
		expected  Tuple
	}{
		{"translate point", Translation(5, -3, 2), NewPoint(-3, 4, 5), NewPoint(2, 1, 7)},
		{"inverse translate point", Translation(5, -3, 2).MustInverse(), NewPoint(-3, 4, 5), NewPoint(-8, 7, 3)},
		{"translation ignores vectors", Translation(5, -3, 2), NewVector(-3, 4, 5), NewVector(-3, 4, 5)},
		{"scale point", Scaling(2, 3, 4), NewPoint(-4, 6, 8), NewPoint(-8, 18, 32)},
		{"scale vector", Scaling(2, 3, 4), NewVector(-4, 6, 8), NewVector(-8, 18, 32)},
		{"inverse scale", Scaling(2, 3, 4).MustInverse(), NewVector(-4, 6, 8), NewVector(-2, 2, 2)},
		{"reflection", Scaling(-1, 1, 1), NewPoint(2, 3, 4), NewPoint(-2, 3, 4)},
		{"rotate x half quarter", RotationX(math.Pi / 4), NewPoint(0, 1, 0), NewPoint(0, math.Sqrt2/2, math.Sqrt2/2)},
		{"rotate x full quarter", RotationX(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(0, 0, 1)},
		{"rotate y full quarter", RotationY(math.Pi / 2), NewPoint(0, 0, 1), NewPoint(1, 0, 0)},
		{"rotate z full quarter", RotationZ(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(-1, 0, 0)},
		{"shear x by y", Shearing(1, 0, 0, 0, 0, 0), NewPoint(2, 3, 4), NewPoint(5, 3, 4)},
		{"shear x by z", Shearing(0, 1, 0, 0, 0, 0), NewPoint(2, 3, 4), NewPoint(6, 3, 4)},
		{"shear y by x", Shearing(0, 0, 1, 0, 0, 0), NewPoint(2, 3, 4), NewPoint(2, 5, 4)},
		{"shear y by z", Shearing(0, 0, 0, 1, 0, 0), NewPoint(2, 3, 4), NewPoint(2, 7, 4)},
		{"shear z by x", Shearing(0, 0, 0, 0, 1, 0), NewPoint(2, 3, 4), NewPoint(2, 3, 6)},
		{"shear z by y", Shearing(0, 0, 0, 0, 0, 1), NewPoint(2, 3, 4), NewPoint(2, 3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.transform.MultiplyTuple(tt.input); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransform_ChainingOrder(t *testing.T) {
	p := NewPoint(1, 0, 1)

	chained := Identity().
		RotateX(math.Pi/2).
		Scale(5, 5, 5).
		Translate(10, 5, 7)

	explicit := Translation(10, 5, 7).Multiply(Scaling(5, 5, 5)).Multiply(RotationX(math.Pi / 2))

	if !chained.Equals(explicit) {
		t.Errorf("Chained transform should left-multiply, got %v", chained)
	}
	if got := chained.MultiplyTuple(p); !got.Equals(NewPoint(15, 0, 7)) {
		t.Errorf("Expected (15,0,7), got %v", got)
	}
}

func TestViewTransform(t *testing.T) {
	tests := []struct {
		name     string
		from     Tuple
		to       Tuple
		up       Tuple
		expected Matrix
	}{
		{
			name:     "default orientation",
			from:     NewPoint(0, 0, 0),
			to:       NewPoint(0, 0, -1),
			up:       NewVector(0, 1, 0),
			expected: Identity(),
		},
		{
			name:     "looking in positive z",
			from:     NewPoint(0, 0, 0),
			to:       NewPoint(0, 0, 1),
			up:       NewVector(0, 1, 0),
			expected: Scaling(-1, 1, -1),
		},
		{
			name:     "moves the world",
			from:     NewPoint(0, 0, 8),
			to:       NewPoint(0, 0, 0),
			up:       NewVector(0, 1, 0),
			expected: Translation(0, 0, -8),
		},
		{
			name: "arbitrary view",
			from: NewPoint(1, 3, 2),
			to:   NewPoint(4, -2, 8),
			up:   NewVector(1, 1, 0),
			expected: Matrix{
				{-0.50709, 0.50709, 0.67612, -2.36643},
				{0.76772, 0.60609, 0.12122, -2.82843},
				{-0.35857, 0.59761, -0.71714, 0.00000},
				{0.00000, 0.00000, 0.00000, 1.00000},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ViewTransform(tt.from, tt.to, tt.up); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
