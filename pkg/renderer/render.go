package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-ray-tracer/pkg/canvas"
	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/world"
)

// RenderParallel renders like Render but traces rows on a worker pool. Rows are
// written to sink by the calling goroutine only. Cancelling ctx stops the
// render between rows and leaves the sink partially written and not updated.
func (c *Camera) RenderParallel(ctx context.Context, w *world.World, sink canvas.Sink, config RenderConfig, logger core.Logger) (RenderStats, error) {
	if sink.Width() != c.HSize || sink.Height() != c.VSize {
		return RenderStats{}, fmt.Errorf("sink is %dx%d, camera is %dx%d", sink.Width(), sink.Height(), c.HSize, c.VSize)
	}
	if err := ctx.Err(); err != nil {
		return RenderStats{}, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	config = MergeRenderConfig(DefaultRenderConfig(), config)

	// Workers read the depth from a copy so the caller's camera is untouched
	cam := *c
	cam.MaxDepth = config.MaxDepth

	pool := NewWorkerPool(&cam, w, config.NumWorkers)
	logger.Printf("Rendering %dx%d (depth %d) using %d workers...\n",
		c.HSize, c.VSize, cam.MaxDepth, pool.GetNumWorkers())

	start := time.Now()
	pool.Start()
	for y := 0; y < c.VSize; y++ {
		pool.SubmitTask(RowTask{Y: y})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	// The result queue holds every row, so Stop never blocks on a send
	defer pool.Stop()

	for stats.Rows < c.VSize {
		select {
		case <-ctx.Done():
			pool.Cancel()
			logger.Printf("Rendering cancelled after %d of %d rows\n", stats.Rows, c.VSize)
			return stats, ctx.Err()
		case result := <-pool.Results():
			for x, color := range result.Pixels {
				sink.WritePixel(x, result.Y, color)
			}
			stats.Rows++
			stats.Pixels += len(result.Pixels)
		}
	}

	if err := sink.Update(); err != nil {
		return stats, fmt.Errorf("sink update: %w", err)
	}

	stats.Duration = time.Since(start)
	logger.Printf("Render completed in %v (%.0f pixels/s)\n", stats.Duration, stats.PixelsPerSecond())
	return stats, nil
}
