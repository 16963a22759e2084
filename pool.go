package parsweep

import (
	"sync"
)

// Float64Scratch is a pooled float64 slice used for transform output
// buffers. Call Release() when done to return it to the pool.
type Float64Scratch struct {
	Data []float64
	pool *sync.Pool
}

// Release returns the scratch buffer to the pool for reuse
func (s *Float64Scratch) Release() {
	if s.pool != nil && s.Data != nil {
		s.pool.Put(s)
	}
}

// Pool sizes - we use power-of-2 buckets for efficiency
var (
	scratchPools [32]*sync.Pool // pools for sizes 2^0 to 2^31
	poolInit     sync.Once
)

func initPools() {
	poolInit.Do(func() {
		for i := range scratchPools {
			size := 1 << i
			scratchPools[i] = &sync.Pool{
				New: func() interface{} {
					return &Float64Scratch{
						Data: make([]float64, size),
					}
				},
			}
		}
	})
}

// getBucket returns the pool bucket index for a given size
func getBucket(size int) int {
	if size <= 0 {
		return 0
	}
	// Find the smallest power of 2 >= size
	bucket := 0
	n := size - 1
	for n > 0 {
		n >>= 1
		bucket++
	}
	if bucket >= 32 {
		bucket = 31
	}
	return bucket
}

// getFloat64Scratch gets a scratch buffer from the pool with exactly 'size'
// visible length
func getFloat64Scratch(size int) *Float64Scratch {
	initPools()
	bucket := getBucket(size)
	pool := scratchPools[bucket]
	scratch := pool.Get().(*Float64Scratch)
	scratch.pool = pool

	// Ensure correct size (pool may have larger capacity)
	poolSize := 1 << bucket
	if len(scratch.Data) != size {
		scratch.Data = scratch.Data[:size]
	}
	// If we need more than pool size, allocate new
	if size > poolSize {
		scratch.Data = make([]float64, size)
	}

	return scratch
}
