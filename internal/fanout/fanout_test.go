package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"support-analytics-service/internal/fanout"
)

func TestRun_AllTasksSucceed(t *testing.T) {
	var a, b, c int

	err := fanout.Run(context.Background(),
		func(ctx context.Context) error { a = 1; return nil },
		func(ctx context.Context) error { b = 2; return nil },
		func(ctx context.Context) error { c = 3; return nil },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != 1 || b != 2 || c != 3 {
		t.Fatalf("expected every task to run, got a=%d b=%d c=%d", a, b, c)
	}
}

func TestRun_NoTasks(t *testing.T) {
	if err := fanout.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRun_ReturnsFirstError(t *testing.T) {
	boom := errors.New("sentiment query failed")

	err := fanout.Run(context.Background(),
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error { return boom },
		func(ctx context.Context) error { return nil },
	)
	if !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
}

func TestRun_CancelsSiblingsOnFailure(t *testing.T) {
	boom := errors.New("boom")
	var cancelled atomic.Bool

	err := fanout.Run(context.Background(),
		func(ctx context.Context) error { return boom },
		func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				cancelled.Store(true)
				return ctx.Err()
			case <-time.After(5 * time.Second):
				return nil
			}
		},
	)
	if !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
	if !cancelled.Load() {
		t.Fatalf("expected sibling task to observe cancellation")
	}
}

func TestRun_TasksRunConcurrently(t *testing.T) {
	// Both tasks block until the other has started; sequential execution would deadlock.
	started := make(chan struct{}, 2)
	wait := func(ctx context.Context) error {
		started <- struct{}{}
		for len(started) < 2 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Millisecond):
			}
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := fanout.Run(ctx, wait, wait); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
