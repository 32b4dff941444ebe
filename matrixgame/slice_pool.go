package matrixgame

import (
	"sync"
)

// Scratch vectors for strategy and utility computations. Shared by all
// games, so concurrently solved games do not each pay for allocation.
var floatSlicePool = sync.Pool{
	New: func() interface{} {
		return make([]float64, 0)
	},
}

func allocFloatSlice(n int) []float64 {
	s := floatSlicePool.Get().([]float64)
	if cap(s) < n {
		s = make([]float64, n)
	}
	return s[:n]
}

func freeFloatSlice(s []float64) {
	if cap(s) > 0 {
		floatSlicePool.Put(s[:0])
	}
}
