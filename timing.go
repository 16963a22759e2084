package parsweep

import (
	"runtime"
	"sort"
	"time"
)

// MeasureMS returns the wall-clock duration of one call to fn in fractional
// milliseconds. The measurement covers everything fn does, including worker
// spawn and join for the parallel reducers.
func MeasureMS(fn func()) float64 {
	start := time.Now()
	fn()
	return float64(time.Since(start).Microseconds()) / 1000.0
}

// Stats summarizes repeated timings of one unit of work, in milliseconds
type Stats struct {
	Median float64
	Min    float64
	Max    float64
	Mean   float64
}

// Benchmark runs fn warmup times untimed, then iterations times timed, with
// a GC before each timed run to keep collector pauses out of the samples.
func Benchmark(warmup, iterations int, fn func()) Stats {
	for i := 0; i < warmup; i++ {
		fn()
	}

	if iterations < 1 {
		iterations = 1
	}
	times := make([]float64, iterations)
	for i := 0; i < iterations; i++ {
		runtime.GC()
		times[i] = MeasureMS(fn)
	}

	sort.Float64s(times)

	var sum float64
	for _, t := range times {
		sum += t
	}

	return Stats{
		Median: times[len(times)/2],
		Min:    times[0],
		Max:    times[len(times)-1],
		Mean:   sum / float64(len(times)),
	}
}
