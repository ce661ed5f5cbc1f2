package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/world"
)

// RowTask represents a scanline rendering task for the worker pool
type RowTask struct {
	Y int
}

// RowResult contains a finished scanline. Each row is owned by exactly one
// task, so results can be copied into the sink without locking.
type RowResult struct {
	Y      int
	Pixels []core.Color
	Worker int
}

// WorkerPool traces rows of one camera and world in parallel
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
}

// Worker handles individual row tasks
type Worker struct {
	ID          int
	camera      *Camera
	world       *world.World
	taskQueue   chan RowTask
	resultQueue chan RowResult
	stopChan    chan struct{}
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(camera *Camera, w *world.World, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, camera.VSize),   // Buffer for every row
		resultQueue: make(chan RowResult, camera.VSize), // Buffer for every result
		numWorkers:  numWorkers,
		stopChan:    make(chan struct{}),
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			camera:      camera,
			world:       w,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
			stopChan:    wp.stopChan,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// Cancel makes workers skip the tasks still queued
func (wp *WorkerPool) Cancel() {
	wp.stopOnce.Do(func() { close(wp.stopChan) })
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// Results returns the channel of completed rows
func (wp *WorkerPool) Results() <-chan RowResult {
	return wp.resultQueue
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		select {
		case <-w.stopChan:
			continue
		default:
		}

		row := make([]core.Color, w.camera.HSize)
		w.camera.renderRow(w.world, task.Y, row)
		w.resultQueue <- RowResult{Y: task.Y, Pixels: row, Worker: w.ID}
	}
}
