package solver

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/go-megaman/levelsolver/course"
	"github.com/go-megaman/levelsolver/internal/spinlock"
)

const numCh = 100

var numWorker = runtime.NumCPU()

// Outcome is the result of solving one spec of a batch. Exactly one of
// Result and Err is set.
type Outcome struct {
	Spec   string
	Result *Result
	Err    error
}

// Summary counts the outcomes of a batch.
type Summary struct {
	Solved      int
	Unreachable int
	Invalid     int
	Canceled    int
}

// Total returns the number of outcomes counted.
func (s Summary) Total() int { return s.Solved + s.Unreachable + s.Invalid + s.Canceled }

type summary struct {
	mu spinlock.Mutex
	Summary
}

func (s *summary) add(o *Outcome) {
	s.mu.Lock()
	switch {
	case o.Err == nil && o.Result.Solved():
		s.Solved++
	case o.Err == nil:
		s.Unreachable++
	case errors.Is(o.Err, course.ErrInvalidSpec):
		s.Invalid++
	default:
		s.Canceled++
	}
	s.mu.Unlock()
}

// BatchOption configures SolveAll.
type BatchOption func(*batchOptions)

type batchOptions struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers sets the number of concurrent solves. Values below one
// select runtime.NumCPU().
func WithWorkers(n int) BatchOption {
	return func(o *batchOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLogger sets the logger receiving per-spec debug records.
func WithLogger(l *slog.Logger) BatchOption {
	return func(o *batchOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// SolveAll solves specs concurrently. Outcomes are returned in input order.
// Once ctx is done no further spec is started and the remaining outcomes
// carry ctx.Err().
func SolveAll(ctx context.Context, specs []string, opts ...BatchOption) ([]Outcome, Summary) {
	o := batchOptions{workers: numWorker, logger: slog.Default()}
	for _, fn := range opts {
		fn(&o)
	}

	outcomes := make([]Outcome, len(specs))
	for i, spec := range specs {
		outcomes[i].Spec = spec
	}
	sum := new(summary)

	workerCh := make(chan int, numCh)
	wg := new(sync.WaitGroup)
	wg.Add(o.workers)
	for i := 0; i < o.workers; i++ {
		go func() {
			defer wg.Done()
			for idx := range workerCh {
				out := &outcomes[idx]
				solveOne(ctx, out, o.logger)
				sum.add(out)
			}
		}()
	}

dispatch:
	for i := range specs {
		select {
		case <-ctx.Done():
			break dispatch
		case workerCh <- i:
		}
	}
	close(workerCh)
	wg.Wait()

	for i := range outcomes {
		out := &outcomes[i]
		if out.Result == nil && out.Err == nil {
			out.Err = ctx.Err()
			sum.add(out)
		}
	}
	return outcomes, sum.Summary
}

func solveOne(ctx context.Context, out *Outcome, logger *slog.Logger) {
	if err := ctx.Err(); err != nil {
		out.Err = err
		return
	}
	out.Result, out.Err = Solve(out.Spec)
	if out.Err != nil {
		logger.Debug("invalid level", "spec", out.Spec, "err", out.Err)
		return
	}
	logger.Debug("level searched",
		"spec", out.Spec,
		"result", out.Result.Kind(),
		"progress", out.Result.Progress(),
		"states", out.Result.Stats().States)
}
