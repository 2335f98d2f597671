// Package workerpool provides the single, process-wide, lazily
// initialized bulk-synchronous pool backing the engine's three
// data-parallel operations (RGB→HSV conversion, eliminate-board cell
// sampling, frame-diff pixel classification). Its identity is never
// exposed; callers only ever see the blocking ForEachIndex call.
package workerpool

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	once     sync.Once
	workers  int
	initPool = func() {
		workers = runtime.GOMAXPROCS(0)
		if workers < 1 {
			workers = 1
		}
	}
)

// Workers returns the number of partitions ForEachIndex splits work into.
func Workers() int {
	once.Do(initPool)
	return workers
}

// ForEachIndex partitions [0, n) into contiguous, roughly equal chunks and
// runs fn over each chunk's indices on a worker drawn from the shared
// pool, blocking until every partition completes. No two partitions
// share mutable memory; fn must not mutate state outside the slice
// region it's given responsibility for.
func ForEachIndex(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	w := Workers()
	if w > n {
		w = n
	}

	chunk := (n + w - 1) / w

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
