// Package batch runs indexed work items on a bounded pool of workers and
// writes their results to a sink.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Processor runs a fixed number of work items, serially or in parallel.
type Processor struct {
	workers int // 0 = auto, <0 = serial, >0 = fixed count
}

// Option configures a Processor.
type Option func(*Processor)

// WithWorkers sets the number of workers for parallel processing.
// Values < 0 force serial processing. Zero uses GOMAXPROCS.
// Values > 0 force a specific worker count.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		p.workers = n
	}
}

// NewProcessor creates a new batch processor.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process calls fn once for every index in [0, n).
//
// Items may run concurrently and in any order. Processing stops at the first
// error, which is returned; the context passed to fn is canceled when that
// happens or when ctx is done.
func (p *Processor) Process(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	workers := p.workerCount(n)
	if workers < 2 {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range n {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			return fn(egCtx, i)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	// Wait cancels egCtx; only the caller's context is reported.
	return ctx.Err()
}

// workerCount determines the number of workers to use for n items.
func (p *Processor) workerCount(n int) int {
	if n < 2 || p.workers < 0 {
		return 1
	}
	workers := p.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return min(workers, n)
}
