package parsweep

import (
	"github.com/apache/arrow-go/v18/arrow/array"
	arrowmath "github.com/apache/arrow-go/v18/arrow/math"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ============================================================================
// Baseline Reducers
// ============================================================================
//
// Reference implementations the manual block-partitioned reducer is measured
// against. They stand in for the three execution policies of the comparison:
// plain sequential, scheduler-driven parallel, and parallel + vectorized.
// Callers treat them as black boxes; only the result contract matters.

// TransformReduceSeq folds data sequentially in element order, applying
// transform to each element before combining, seeded from init.
func TransformReduceSeq[T Numeric](data []T, init T, combine func(T, T) T, transform func(T) T) T {
	result := init
	for _, v := range data {
		result = combine(result, transform(v))
	}
	return result
}

// TransformReduceParallel folds data using the work-stealing morsel engine.
// Worker count and morsel size come from the global Config; small inputs
// fall back to the sequential path. Partial results merge in completion
// order, so combine must be associative and commutative.
func TransformReduceParallel[T Numeric](data []T, init T, combine func(T, T) T, transform func(T) T) T {
	cfg := globalConfig
	if !cfg.shouldParallelize(len(data)) {
		return TransformReduceSeq(data, init, combine, transform)
	}

	partials := ParallelForWithResult(len(data), func(start, end int) T {
		var acc T
		for i := start; i < end; i++ {
			acc = combine(acc, transform(data[i]))
		}
		return acc
	})

	result := init
	for _, p := range partials {
		result = combine(result, p)
	}
	return result
}

// SquareSumVectorized computes sum(x*x for x in data) with the vectorized
// policy: the squares are materialized in parallel into a pooled scratch
// buffer, then summed through the Arrow SIMD float64 kernel.
func SquareSumVectorized(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	scratch := getFloat64Scratch(len(data))
	defer scratch.Release()

	squares := scratch.Data
	ParallelFor(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			squares[i] = data[i] * data[i]
		}
	})

	b := array.NewFloat64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(squares, nil)

	arr := b.NewFloat64Array()
	defer arr.Release()

	return arrowmath.Float64.Sum(arr)
}
