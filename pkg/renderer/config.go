package renderer

import (
	"fmt"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/world"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	MaxDepth   int // Reflection and refraction bounces (0 = camera default)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0,
		MaxDepth:   world.DefaultMaxDepth,
	}
}

// MergeRenderConfig returns base with every non-zero field of override applied
func MergeRenderConfig(base, override RenderConfig) RenderConfig {
	if override.NumWorkers > 0 {
		base.NumWorkers = override.NumWorkers
	}
	if override.MaxDepth > 0 {
		base.MaxDepth = override.MaxDepth
	}
	return base
}
