// Package workers provides abstractions for managing and running
// background workers in the agent.
// It defines the Worker interface, a Workers aggregate that starts a set of
// workers under one context and joins them on shutdown, and a Ticker worker
// for periodic jobs such as auto-lock and background sync.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
