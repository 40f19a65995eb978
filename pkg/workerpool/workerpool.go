// Package workerpool runs a function over items with bounded concurrency.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Process runs process for every item on at most workers goroutines. The first error
// cancels the context shared by the remaining calls and is returned. When every call
// succeeds, the parent context error, if any, is returned. workers <= 0 runs every item
// at once.
func Process[T any](ctx context.Context, workers int, items []T, process func(context.Context, T) error) error {
	if workers <= 0 || workers > len(items) {
		workers = len(items)
	}

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return process(gctx, item)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
