package renderer

import "time"

// RenderStats contains statistics about a finished render
type RenderStats struct {
	Rows     int           // Rows written to the sink
	Pixels   int           // Pixels written to the sink
	Workers  int           // Workers that traced rows
	Duration time.Duration // Wall time from first submit to the sink update
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Pixels) / s.Duration.Seconds()
}
