package material

import (
	"fmt"
	"math"

	"github.com/df07/go-ray-tracer/pkg/core"
)

// PatternAt maps an object-space point through the pattern's transform
// chain and evaluates the pattern there. A chained previous pattern's
// transform is applied first, so layered patterns share a warped space.
func PatternAt(p Pattern, objectPoint core.Tuple) core.Color {
	return p.LocalColorAt(toPatternSpace(p, objectPoint))
}

func toPatternSpace(p Pattern, point core.Tuple) core.Tuple {
	if prev := p.Previous(); prev != nil {
		point = toPatternSpace(prev, point)
	}
	return p.InverseTransform().MultiplyTuple(point)
}

// patternBase holds the transform and chaining state shared by every pattern
type patternBase struct {
	transform core.Matrix
	inverse   core.Matrix
	previous  Pattern
}

func newPatternBase() patternBase {
	return patternBase{transform: core.Identity(), inverse: core.Identity()}
}

// Transform returns the pattern's object-to-pattern transform
func (b *patternBase) Transform() core.Matrix {
	return b.transform
}

// InverseTransform implements Pattern
func (b *patternBase) InverseTransform() core.Matrix {
	return b.inverse
}

// SetTransform sets the pattern transform, failing when it is not invertible
func (b *patternBase) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	b.transform = m
	b.inverse = inv
	return nil
}

// Previous implements Pattern
func (b *patternBase) Previous() Pattern {
	return b.previous
}

// SetPrevious chains another pattern in front of this one
func (b *patternBase) SetPrevious(p Pattern) {
	b.previous = p
}

// denoise snaps values within Epsilon of zero to exactly zero, so surface
// noise on either side of an axis plane floors to the same cell
func denoise(v float64) float64 {
	if math.Abs(v) <= core.Epsilon {
		return 0
	}
	return v
}

// floorParityEven reports whether floor(v) is even after denoising
func floorParityEven(v float64) bool {
	return math.Mod(math.Floor(denoise(v)), 2) == 0
}
