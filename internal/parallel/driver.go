// Package parallel implements the block-chunked fork-join driver
// shared by the ECB, CTR, and GCM modes of operation. A mode supplies
// a pure function from block index to a disjoint 16-byte output
// region; the driver partitions the index range across a bounded pool
// of goroutines, runs them to completion, and returns.
//
// It mirrors a factory/instance dispatch pattern for picking an
// execution strategy: here the "instances" being dispatched across are
// index ranges of the same pure per-block function, rather than whole
// algorithm implementations.
package parallel

import (
	"runtime"
	"sync"
)

// Threshold is the input size, in bytes, above which block-parallel
// execution is worthwhile. Below it the fork/join overhead exceeds the
// cost of just doing the work on the calling goroutine. 4KiB matches
// the threshold aesp's CTR keystream parallelisation uses.
const Threshold = 4 * 1024

// BlockFunc computes the 16-byte (or shorter, for a final partial
// block) output for block index i. Implementations must satisfy:
// no shared mutable state across indices, the computed value for
// index i is a pure function of i, and distinct indices write to
// disjoint output regions.
type BlockFunc func(i int)

// Run executes f across the half-open block index range [0, nblocks)
// using a bounded pool of worker goroutines, and joins before
// returning. If totalBytes is at or below Threshold, or nblocks is
// small enough that forking wouldn't pay for itself, f runs serially
// on the calling goroutine instead — both paths are required to
// produce byte-identical results since f must be a pure per-index
// function.
func Run(nblocks int, totalBytes int, f BlockFunc) {
	if nblocks <= 0 {
		return
	}
	if totalBytes <= Threshold || nblocks == 1 {
		for i := 0; i < nblocks; i++ {
			f(i)
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > nblocks {
		workers = nblocks
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (nblocks + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < nblocks; start += chunk {
		end := start + chunk
		if end > nblocks {
			end = nblocks
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
