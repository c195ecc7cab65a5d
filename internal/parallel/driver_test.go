package parallel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunSerialBelowThreshold(t *testing.T) {
	var calls []int
	var mu sync.Mutex
	Run(4, Threshold, func(i int) {
		mu.Lock()
		calls = append(calls, i)
		mu.Unlock()
	})
	require.Equal(t, []int{0, 1, 2, 3}, calls)
}

func TestRunParallelMatchesSerialOutput(t *testing.T) {
	const nblocks = 10000
	serial := make([]int, nblocks)
	for i := range serial {
		serial[i] = i * i
	}

	parallelOut := make([]int, nblocks)
	Run(nblocks, Threshold+1, func(i int) {
		parallelOut[i] = i * i
	})

	require.Equal(t, serial, parallelOut)
}

func TestRunZeroBlocksIsNoOp(t *testing.T) {
	called := false
	Run(0, 0, func(i int) { called = true })
	require.False(t, called)
}

func TestRunVisitsEveryIndexExactlyOnce(t *testing.T) {
	const nblocks = 50000
	var mu sync.Mutex
	seen := make([]int, nblocks)

	Run(nblocks, Threshold+1, func(i int) {
		mu.Lock()
		seen[i]++
		mu.Unlock()
	})

	for i, count := range seen {
		require.Equal(t, 1, count, "index %d visited %d times", i, count)
	}
}
