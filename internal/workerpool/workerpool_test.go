package workerpool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForEachIndexVisitsEveryIndexOnce(t *testing.T) {
	const n = 1000
	var hits [n]int32

	ForEachIndex(n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	})

	for i, h := range hits {
		require.Equal(t, int32(1), h, "index %d visited %d times", i, h)
	}
}

func TestForEachIndexEmpty(t *testing.T) {
	called := false
	ForEachIndex(0, func(i int) { called = true })
	require.False(t, called)
}

func TestForEachIndexFewerItemsThanWorkers(t *testing.T) {
	seen := map[int]bool{}
	ForEachIndex(1, func(i int) { seen[i] = true })
	require.Equal(t, map[int]bool{0: true}, seen)
}
