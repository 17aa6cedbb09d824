package workers

import (
	"context"
	"sync"
)

// Workers runs a fixed set of workers, each in its own goroutine.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// New returns a Workers aggregate over ws.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Add appends w. It must be called before Start.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Start launches every worker. They stop when ctx is cancelled.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
