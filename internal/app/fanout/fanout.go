// Package fanout runs a function over a slice of items on a fixed pool of
// worker goroutines and returns the results in input order. The batch
// resolution endpoint uses it to resolve many actions at once.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most maxWorkers goroutines and returns
// one Result per item, in input order. A maxWorkers below 1 is treated as 1.
//
// Workers check ctx before taking each item; items not yet started when ctx
// is done record ctx.Err() and fn is not called for them. fn is responsible
// for honoring ctx once it is running.
//
// Run blocks until every item has a result. For empty input it returns an
// empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	workers := min(max(maxWorkers, 1), len(items))
	indices := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for idx := range indices {
				if err := ctx.Err(); err != nil {
					results[idx] = Result[R]{Err: err}
					continue
				}
				val, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: val, Err: err}
			}
		}()
	}

	for i := range items {
		indices <- i
	}
	close(indices)
	wg.Wait()

	return results
}
