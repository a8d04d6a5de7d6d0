package concurrent

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers normalizes a requested worker count: zero or negative selects
// GOMAXPROCS, and the count never exceeds the number of items.
func Workers(requested, items int) int {
	if requested <= 0 {
		requested = runtime.GOMAXPROCS(0)
	}
	if items > 0 && requested > items {
		requested = items
	}
	return max(requested, 1)
}

// Map applies mapFn to every item with at most workers goroutines and returns
// the results in input order. The first error cancels the context handed to
// the remaining calls and is returned once every started call has finished;
// items not yet started are skipped.
func Map[T any, R any](ctx context.Context, items []T, workers int, mapFn func(context.Context, int, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(Workers(workers, len(items)))

	for idx, item := range items {
		if groupCtx.Err() != nil {
			break
		}
		idx, item := idx, item
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			r, err := mapFn(groupCtx, idx, item)
			if err != nil {
				return err
			}
			out[idx] = r
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ForEach is Map without results.
func ForEach[T any](ctx context.Context, items []T, workers int, action func(context.Context, int, T) error) error {
	_, err := Map(ctx, items, workers, func(ctx context.Context, idx int, item T) (struct{}, error) {
		return struct{}{}, action(ctx, idx, item)
	})
	return err
}
