package langfeat

import (
	"context"
	"fmt"
	"iter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Fcakiroglu16/gofeatures/tour"
)

func init() {
	tour.MustRegister(tour.Routine{
		Name:    "completion-order",
		Summary: "Asynchronous helpers: as-completed iteration and bounded fan-out",
		Run:     runAsync,
	})
}

// TaskResult is the outcome of one task delivered by AsCompleted.
type TaskResult[T any] struct {
	// Index is the task's position in the input slice.
	Index   int
	Value   T
	Err     error
	Elapsed time.Duration
}

// AsCompleted runs every task concurrently and yields results in completion
// order, not submission order. Iteration stops early when the consumer breaks
// or ctx is cancelled; remaining tasks still run to completion in the
// background but their results are dropped (the result channel is buffered to
// the task count, so no goroutine blocks).
func AsCompleted[T any](ctx context.Context, tasks []func(context.Context) (T, error)) iter.Seq[TaskResult[T]] {
	return func(yield func(TaskResult[T]) bool) {
		results := make(chan TaskResult[T], len(tasks))
		for i, task := range tasks {
			go func() {
				start := time.Now()
				v, err := task(ctx)
				results <- TaskResult[T]{Index: i, Value: v, Err: err, Elapsed: time.Since(start)}
			}()
		}
		for range tasks {
			select {
			case <-ctx.Done():
				return
			case res := <-results:
				if !yield(res) {
					return
				}
			}
		}
	}
}

// FanOut applies fn to every input concurrently, with at most workers
// goroutines in flight (unbounded when workers <= 0). Results keep the input
// order. The first error cancels the remaining work.
func FanOut[T, R any](ctx context.Context, inputs []T, workers int, fn func(context.Context, T) (R, error)) ([]R, error) {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	results := make([]R, len(inputs))
	for i, in := range inputs {
		g.Go(func() error {
			r, err := fn(ctx, in)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runAsync(ctx context.Context, p *tour.Printer) error {
	p.Step("three timed tasks finish out of submission order")
	delays := []time.Duration{30 * time.Millisecond, 10 * time.Millisecond, 20 * time.Millisecond}
	tasks := make([]func(context.Context) (string, error), len(delays))
	for i, d := range delays {
		tasks[i] = func(ctx context.Context) (string, error) {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-timer.C:
				return fmt.Sprintf("task %d slept %v", i, d), nil
			}
		}
	}
	for res := range AsCompleted(ctx, tasks) {
		if res.Err != nil {
			return res.Err
		}
		p.Value("completed", res.Value)
	}

	p.Step("FanOut caps concurrency and keeps input order in the results")
	squares, err := FanOut(ctx, []int{1, 2, 3, 4, 5}, 2, func(ctx context.Context, n int) (int, error) {
		return n * n, nil
	})
	if err != nil {
		return err
	}
	p.Value("squares", squares)

	p.Step("a timed delay is just a context deadline around a wait")
	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Millisecond)
	defer cancel()
	<-waitCtx.Done()
	p.Value("deadline outcome", waitCtx.Err())

	return nil
}
