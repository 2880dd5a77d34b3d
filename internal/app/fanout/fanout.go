// Package fanout runs one function over many items with a bounded number of
// goroutines. projectctl uses it to move several projects at once; results
// keep the input order so each outcome can be reported against its ID.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent calls.
// Results are returned in the same order as items.
//
// An item still waiting for a worker slot when ctx is canceled records
// ctx.Err() and fn is not called for it. Calls already running are not
// interrupted; fn should watch ctx itself if it can block.
//
// maxWorkers below 1 is treated as 1. An empty items slice yields an empty,
// non-nil result slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Join collects the failed results into one error, each prefixed with the
// label of its item. Returns nil when every item succeeded.
func Join[T, R any](items []T, results []Result[R], label func(T) string) error {
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", label(items[i]), r.Err))
		}
	}
	return errors.Join(errs...)
}
