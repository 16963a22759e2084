package parsweep

import "sync"

// ============================================================================
// Block Partitioning
// ============================================================================

// Block is a contiguous sub-range [Start, End) of an input sequence,
// owned by exactly one worker.
type Block struct {
	Start int
	End   int
}

// Len returns the number of elements in the block
func (b Block) Len() int {
	return b.End - b.Start
}

// Partition splits n elements into at most k contiguous blocks laid out in
// sequence order. Block sizes differ by at most one: the first n%k blocks
// carry one extra element. k is clamped to n so no block is ever empty.
// Returns nil when n <= 0 or k <= 0.
func Partition(n, k int) []Block {
	if n <= 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}

	base := n / k
	rem := n % k

	blocks := make([]Block, k)
	start := 0
	for i := range blocks {
		size := base
		if i < rem {
			size++
		}
		blocks[i] = Block{Start: start, End: start + size}
		start += size
	}
	return blocks
}

// ============================================================================
// Manual Block-Partitioned Transform-Reduce
// ============================================================================

// Numeric covers the element types the reducers operate on
type Numeric interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// TransformReduce folds data with an explicit worker count k: the input is
// partitioned into k contiguous blocks, one goroutine per block computes a
// local transform-then-combine fold, and the partial results are merged
// sequentially in block order, seeded from init.
//
// Each worker's local fold starts from the zero value of T, which the
// combine operator must treat as its neutral element (0 for addition); init
// is folded in exactly once, during the final merge. combine must be
// associative, since block boundaries reassociate the fold. For a fixed
// (len(data), k) the partitioning is deterministic, so results are exactly
// reproducible across runs.
//
// Degenerate inputs (empty data or k <= 0) return init without spawning
// any worker. k > len(data) is clamped so no worker receives an empty
// block. A panicking worker is not recovered.
func TransformReduce[T Numeric](data []T, init T, combine func(T, T) T, transform func(T) T, k int) T {
	blocks := Partition(len(data), k)
	if blocks == nil {
		return init
	}

	// One write-once slot per block; slot i is owned exclusively by
	// worker i until the join below, so no locking is needed.
	partials := make([]T, len(blocks))

	var wg sync.WaitGroup
	for i, b := range blocks {
		wg.Add(1)
		go func(slot int, b Block) {
			defer wg.Done()
			var acc T
			for _, v := range data[b.Start:b.End] {
				acc = combine(acc, transform(v))
			}
			partials[slot] = acc
		}(i, b)
	}
	wg.Wait()

	// Merge in ascending block order, folding in the caller's init once
	result := init
	for _, p := range partials {
		result = combine(result, p)
	}
	return result
}
