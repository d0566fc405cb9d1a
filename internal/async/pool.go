// Package async provides a small bounded worker pool for fanning out
// per-file work while keeping results in submission order.
package async

import (
	"context"
	"sync"
	"time"

	"log/slog"
)

// Result pairs one input path with what its worker produced.
type Result struct {
	Path string
	Text string
	Err  error
}

// WorkFunc does the per-path work. It must be safe for concurrent use.
type WorkFunc func(ctx context.Context, path string) (string, error)

type Pool struct {
	work    WorkFunc
	logger  *slog.Logger
	workers int
	timeout time.Duration
}

type Option func(*Pool)

func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewPool(work WorkFunc, logger *slog.Logger, opts ...Option) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{
		work:    work,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Map runs the work function over every path and returns one result per
// path, in the same order. Individual failures land in Result.Err; only
// context cancellation stops the whole batch early.
func (p *Pool) Map(ctx context.Context, paths []string) []Result {
	results := make([]Result, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	workers := p.workers
	if workers > len(paths) {
		workers = len(paths)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range jobs {
				path := paths[idx]
				jctx, cancel := context.WithTimeout(ctx, p.timeout)
				text, err := p.work(jctx, path)
				cancel()

				results[idx] = Result{Path: path, Text: text, Err: err}
				if err != nil {
					p.logger.Error("work failed", "worker_id", workerID, "path", path, "error", err)
				}
			}
		}(i + 1)
	}

	for idx := range paths {
		select {
		case <-ctx.Done():
			results[idx] = Result{Path: paths[idx], Err: ctx.Err()}
			continue
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()
	return results
}
