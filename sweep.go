package parsweep

import (
	"fmt"
	"io"
	"math"
)

// ============================================================================
// Benchmark Records
// ============================================================================

// Trial is one timed reducer invocation. K is 0 for baseline variants.
type Trial struct {
	Label string
	K     int
	MS    float64
}

// SweepResult aggregates every trial run for one input size
type SweepResult struct {
	Size      int
	Baselines []Trial
	Sweep     []Trial
	BestK     int
	BestMS    float64
	Ratio     float64 // BestK / hardware thread count
}

// bestTracker keeps the minimum elapsed time and its worker count across a
// sweep. Updates use strict less-than, so ties keep the earliest K.
type bestTracker struct {
	bestMS float64
	bestK  int
}

func newBestTracker() bestTracker {
	return bestTracker{bestMS: math.Inf(1), bestK: 1}
}

func (bt *bestTracker) observe(k int, ms float64) {
	if ms < bt.bestMS {
		bt.bestMS = ms
		bt.bestK = k
	}
}

// ============================================================================
// Sweep Driver
// ============================================================================

// sink keeps reduction results live so the benchmarked work cannot be elided
var sink float64

// RunSweep benchmarks every reducer variant over one freshly generated
// dataset of the given size: each baseline once, then the manual reducer for
// every worker count K from 1 to 2*hw inclusive. Report lines go to w in
// trial order; the aggregated records and the best K are returned.
func RunSweep(w io.Writer, gen *Generator, size, hw int) SweepResult {
	fmt.Fprintf(w, "\n===== SIZE = %d =====\n", size)

	data := gen.Uniform(size)

	combine := func(a, b float64) float64 { return a + b }
	square := func(x float64) float64 { return x * x }

	res := SweepResult{Size: size}

	var r float64
	for _, bl := range []struct {
		label string
		run   func()
	}{
		{"transform-reduce (sequential)", func() {
			r = TransformReduceSeq(data, 0, combine, square)
		}},
		{"transform-reduce (parallel)", func() {
			r = TransformReduceParallel(data, 0, combine, square)
		}},
		{"transform-reduce (vectorized)", func() {
			r = SquareSumVectorized(data)
		}},
	} {
		t := MeasureMS(bl.run)
		sink = r
		res.Baselines = append(res.Baselines, Trial{Label: bl.label, MS: t})
		fmt.Fprintf(w, "%s: %.3f ms\n", bl.label, t)
	}

	fmt.Fprintf(w, "\nManual parallel transform-reduce:\n")
	fmt.Fprintf(w, "K\tTime_ms\n")

	best := newBestTracker()
	for k := 1; k <= hw*2; k++ {
		t := MeasureMS(func() {
			r = TransformReduce(data, 0, combine, square, k)
		})
		sink = r
		res.Sweep = append(res.Sweep, Trial{Label: "manual", K: k, MS: t})
		fmt.Fprintf(w, "%d\t%.3f\n", k, t)
		best.observe(k, t)
	}

	res.BestK = best.bestK
	res.BestMS = best.bestMS
	res.Ratio = float64(best.bestK) / float64(hw)
	fmt.Fprintf(w, "\nBest K = %d, K/hw = %.3f\n", res.BestK, res.Ratio)

	return res
}
