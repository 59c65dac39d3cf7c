// Package fanout runs independent tasks concurrently and joins them.
//
// Run is the fan-out/fan-in primitive used by every aggregate read: it
// launches one goroutine per task, waits for all of them, and returns the
// first error observed. The context passed to the tasks is cancelled as soon
// as any task fails, so siblings that honour it stop early. Tasks must write
// their results to variables they own; Run shares nothing between them.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task is one independent unit of work.
type Task func(ctx context.Context) error

// Run executes all tasks concurrently and returns the first error, if any.
// With no tasks it returns nil immediately.
func Run(ctx context.Context, tasks ...Task) error {
	if len(tasks) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			return task(gctx)
		})
	}

	return g.Wait()
}
