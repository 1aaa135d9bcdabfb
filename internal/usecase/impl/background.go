// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"sync"
)

// Background runs fire-and-forget work detached from the caller's cancellation.
// Request-scoped values such as the logger survive the response.
type Background struct {
	wg sync.WaitGroup
}

// NewBackground creates an empty tracker.
func NewBackground() *Background {
	return &Background{}
}

// Go runs fn on its own goroutine with a context that is never cancelled by the caller.
func (b *Background) Go(ctx context.Context, fn func(ctx context.Context)) {
	detached := context.WithoutCancel(ctx)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		fn(detached)
	}()
}

// Wait blocks until every started task has returned or ctx ends.
func (b *Background) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start runs fn like Go but returns a function that cancels fn's context.
func (b *Background) Start(ctx context.Context, fn func(ctx context.Context)) context.CancelFunc {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		fn(runCtx)
	}()

	return cancel
}
