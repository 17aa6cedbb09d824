package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-agent/internal/logger"
)

// Ticker calls job every interval until its context is cancelled. A job
// always finishes before the next tick is taken; slow jobs delay ticks
// instead of overlapping.
type Ticker struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context)
	logger   *logger.Logger
}

// NewTicker builds a Ticker. A non-positive interval defaults to one minute.
func NewTicker(name string, interval time.Duration, job func(ctx context.Context), logger *logger.Logger) *Ticker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Ticker{name: name, interval: interval, job: job, logger: logger}
}

// Run implements Worker.
func (t *Ticker) Run(ctx context.Context) {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	t.logger.Debug().
		Str("worker", t.name).
		Dur("interval", t.interval).
		Msg("worker started")

	for {
		select {
		case <-ctx.Done():
			t.logger.Debug().Str("worker", t.name).Msg("worker stopped")
			return
		case <-tick.C:
			t.job(ctx)
		}
	}
}
