package renderer

import (
	"context"
	"image"
	"runtime"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// ScanlineTask asks a worker to render one image row
type ScanlineTask struct {
	Row  int
	Seed int64 // Seed for the row's private sampler
}

// ScanlineResult contains the result from rendering a scanline
type ScanlineResult struct {
	Row   int
	Stats ScanlineStats
	Error error
}

// WorkerPool renders scanlines in parallel into a shared image.
// Rows never overlap, so workers write to the image without locking.
type WorkerPool struct {
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline tasks
type Worker struct {
	ID          int
	camera      *Camera
	world       geometry.Hittable
	img         *image.RGBA
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
}

// NewWorkerPool creates a worker pool for an initialized camera
func NewWorkerPool(camera *Camera, world geometry.Hittable, img *image.RGBA, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := camera.ImageHeight()
	wp := &WorkerPool{
		taskQueue:   make(chan ScanlineTask, rows),   // Buffer for every row
		resultQueue: make(chan ScanlineResult, rows), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			camera:      camera,
			world:       world,
			img:         img,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop closes the task queue, waits for the workers and closes the results
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a scanline task to the worker pool
func (wp *WorkerPool) SubmitTask(task ScanlineTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline result
func (wp *WorkerPool) GetResult() (ScanlineResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop. Once the context is done remaining tasks
// are answered with its error instead of being rendered.
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- ScanlineResult{Row: task.Row, Error: err}
			continue
		}

		sampler := core.NewSeededSampler(task.Seed)
		stats := w.camera.renderScanline(task.Row, w.img, w.world, sampler)

		w.resultQueue <- ScanlineResult{Row: task.Row, Stats: stats}
	}
}
