package material

import (
	"github.com/df07/go-ray-tracer/pkg/core"
)

// Pattern provides spatially-varying colors for materials
type Pattern interface {
	// LocalColorAt returns the color at a point already in pattern space
	LocalColorAt(point core.Tuple) core.Color

	// InverseTransform maps object space into this pattern's space
	InverseTransform() core.Matrix

	// Previous returns the chained pattern whose space this one is nested in, or nil
	Previous() Pattern
}
