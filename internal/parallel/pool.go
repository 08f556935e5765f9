// Package parallel runs per-row image passes on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// minBandRows is the smallest number of rows handed to one task.
const minBandRows = 16

// WorkerPool is a fixed pool of goroutines that process horizontal bands
// of an image.
//
// Thread safety: WorkerPool is safe for concurrent use. Callers must make
// sure the bands they process write to disjoint memory.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queue feeds tasks to all workers.
	queue chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*2),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			p.drain()
			return
		case work := <-p.queue:
			work()
		}
	}
}

// drain runs tasks that were queued before the pool closed.
func (p *WorkerPool) drain() {
	for {
		select {
		case work := <-p.queue:
			work()
		default:
			return
		}
	}
}

// ExecuteAll runs every work item and waits for all of them to complete.
// On a closed pool the items run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for _, fn := range work {
		task := func() {
			defer wg.Done()
			fn()
		}
		select {
		case p.queue <- task:
		case <-p.done:
			task()
		}
	}
	wg.Wait()
}

// Rows splits [0, height) into contiguous bands and calls fn(y0, y1) for
// each band, in parallel, returning once all bands are done.
func (p *WorkerPool) Rows(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	bands := Bands(height, p.workers)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b[0], b[1]) }
	}
	p.ExecuteAll(work)
}

// Bands divides [0, height) into at most 4*workers half-open row ranges of
// at least minBandRows rows each (the last one may be shorter).
func Bands(height, workers int) [][2]int {
	if height <= 0 {
		return nil
	}
	workers = max(workers, 1)
	size := max((height+4*workers-1)/(4*workers), minBandRows)

	bands := make([][2]int, 0, (height+size-1)/size)
	for y := 0; y < height; y += size {
		bands = append(bands, [2]int{y, min(y+size, height)})
	}
	return bands
}

// Close stops all workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
