package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-ray-tracer/pkg/canvas"
	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/world"
)

func TestRenderParallel_MatchesSerial(t *testing.T) {
	w := world.DefaultWorld()
	c := defaultWorldCamera(t)

	serial := canvas.NewCanvas(11, 11)
	if err := c.Render(w, serial); err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{1, 3, 16} {
		parallel := canvas.NewCanvas(11, 11)
		stats, err := c.RenderParallel(context.Background(), w, parallel, RenderConfig{NumWorkers: workers}, nil)
		if err != nil {
			t.Fatalf("%d workers: %v", workers, err)
		}

		if stats.Rows != 11 || stats.Pixels != 121 || stats.Workers != workers {
			t.Errorf("%d workers: unexpected stats %+v", workers, stats)
		}
		if parallel.Updates() != 1 {
			t.Errorf("%d workers: expected one sink update, got %d", workers, parallel.Updates())
		}

		want := serial.Pixels()
		for i, got := range parallel.Pixels() {
			if got != want[i] {
				t.Errorf("%d workers: pixel %d differs: serial %v, parallel %v", workers, i, want[i], got)
				break
			}
		}
	}
}

func TestRenderParallel_Cancelled(t *testing.T) {
	c := defaultWorldCamera(t)
	img := canvas.NewCanvas(11, 11)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.RenderParallel(ctx, world.DefaultWorld(), img, DefaultRenderConfig(), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if img.Updates() != 0 {
		t.Error("A cancelled render must not update the sink")
	}
}

func TestRenderParallel_DepthOverrideLeavesCamera(t *testing.T) {
	c := defaultWorldCamera(t)
	img := canvas.NewCanvas(11, 11)

	if _, err := c.RenderParallel(context.Background(), world.DefaultWorld(), img, RenderConfig{MaxDepth: 1}, nil); err != nil {
		t.Fatal(err)
	}
	if c.MaxDepth != world.DefaultMaxDepth {
		t.Errorf("Expected camera depth to stay %d, got %d", world.DefaultMaxDepth, c.MaxDepth)
	}
}

type recordingLogger struct {
	lines int
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines++
}

func TestRenderParallel_Logs(t *testing.T) {
	c := defaultWorldCamera(t)
	logger := &recordingLogger{}

	if _, err := c.RenderParallel(context.Background(), world.DefaultWorld(), canvas.NewCanvas(11, 11), DefaultRenderConfig(), logger); err != nil {
		t.Fatal(err)
	}
	if logger.lines != 2 {
		t.Errorf("Expected a start and a completion line, got %d", logger.lines)
	}
}

func TestMergeRenderConfig(t *testing.T) {
	base := DefaultRenderConfig()

	got := MergeRenderConfig(base, RenderConfig{})
	if got != base {
		t.Errorf("An empty override must keep the base, got %+v", got)
	}

	got = MergeRenderConfig(base, RenderConfig{NumWorkers: 4, MaxDepth: 2})
	if got.NumWorkers != 4 || got.MaxDepth != 2 {
		t.Errorf("Unexpected merged config %+v", got)
	}
}

func TestWorkerPool_DefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(NewCamera(4, 4, 1), world.DefaultWorld(), 0)
	if pool.GetNumWorkers() < 1 {
		t.Errorf("Expected at least one worker, got %d", pool.GetNumWorkers())
	}
}

func TestWorkerPool_TracesEveryRow(t *testing.T) {
	c := defaultWorldCamera(t)
	pool := NewWorkerPool(c, world.DefaultWorld(), 2)
	pool.Start()
	for y := 0; y < c.VSize; y++ {
		pool.SubmitTask(RowTask{Y: y})
	}
	pool.Stop()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		if len(result.Pixels) != c.HSize {
			t.Errorf("Row %d has %d pixels", result.Y, len(result.Pixels))
		}
		seen[result.Y] = true
	}
	if len(seen) != c.VSize {
		t.Errorf("Expected %d distinct rows, got %d", c.VSize, len(seen))
	}
}

func TestRenderStats_PixelsPerSecond(t *testing.T) {
	if got := (RenderStats{Pixels: 100}).PixelsPerSecond(); got != 0 {
		t.Errorf("Expected 0 without a duration, got %f", got)
	}
	if got := (RenderStats{Pixels: 100, Duration: 2e9}).PixelsPerSecond(); got != 50 {
		t.Errorf("Expected 50, got %f", got)
	}
}

var _ core.Logger = (*recordingLogger)(nil)
