package material

import (
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
)

// SolidPattern provides a uniform color
type SolidPattern struct {
	patternBase
	Color core.Color
}

// NewSolidPattern creates a new solid color pattern
func NewSolidPattern(color core.Color) *SolidPattern {
	return &SolidPattern{patternBase: newPatternBase(), Color: color}
}

// LocalColorAt returns the solid color regardless of position
func (s *SolidPattern) LocalColorAt(point core.Tuple) core.Color {
	return s.Color
}

// StripePattern alternates between two colors as x crosses each integer
type StripePattern struct {
	patternBase
	A, B core.Color
}

// NewStripePattern creates a stripe pattern starting with a at x = 0
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{patternBase: newPatternBase(), A: a, B: b}
}

// LocalColorAt implements Pattern
func (s *StripePattern) LocalColorAt(point core.Tuple) core.Color {
	if floorParityEven(point.X) {
		return s.A
	}
	return s.B
}

// RingPattern alternates between two colors in concentric rings around the y axis
type RingPattern struct {
	patternBase
	A, B core.Color
}

// NewRingPattern creates a ring pattern with a at the center
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{patternBase: newPatternBase(), A: a, B: b}
}

// LocalColorAt implements Pattern
func (r *RingPattern) LocalColorAt(point core.Tuple) core.Color {
	if floorParityEven(math.Sqrt(point.X*point.X + point.Z*point.Z)) {
		return r.A
	}
	return r.B
}

// CheckersPattern alternates between two colors in a 3D checkerboard of unit cubes
type CheckersPattern struct {
	patternBase
	A, B core.Color
}

// NewCheckersPattern creates a checkers pattern with a in the cube at the origin
func NewCheckersPattern(a, b core.Color) *CheckersPattern {
	return &CheckersPattern{patternBase: newPatternBase(), A: a, B: b}
}

// LocalColorAt implements Pattern
func (c *CheckersPattern) LocalColorAt(point core.Tuple) core.Color {
	sum := math.Floor(denoise(point.X)) + math.Floor(denoise(point.Y)) + math.Floor(denoise(point.Z))
	if math.Mod(sum, 2) == 0 {
		return c.A
	}
	return c.B
}

// GradientPattern blends linearly from a to b over each unit of x
type GradientPattern struct {
	patternBase
	A, B core.Color
}

// NewGradientPattern creates a gradient pattern
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{patternBase: newPatternBase(), A: a, B: b}
}

// LocalColorAt implements Pattern
func (g *GradientPattern) LocalColorAt(point core.Tuple) core.Color {
	fraction := point.X - math.Floor(point.X)
	return g.A.Add(g.B.Subtract(g.A).Multiply(fraction))
}
