package parsweep

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// ============================================================================
// Parallel Execution Configuration
// ============================================================================

// Config controls the work-stealing engine used by the parallel baseline
// reducers. The manual block-partitioned reducer does not consult it: there
// the caller chooses the worker count explicitly.
type Config struct {
	// MinSizeForParallel is the minimum element count to justify the
	// overhead of spawning workers
	MinSizeForParallel int

	// MorselSize is the number of elements per work unit (default 4096)
	MorselSize int

	// MaxWorkers limits the number of worker goroutines (0 = GOMAXPROCS)
	MaxWorkers int

	// Enabled controls whether parallelism is used at all
	Enabled bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		MinSizeForParallel: 8192,
		MorselSize:         4096,
		MaxWorkers:         0, // Use all CPUs
		Enabled:            true,
	}
}

// globalConfig is the default configuration
var globalConfig = DefaultConfig()

// SetConfig sets the global parallelization configuration
func SetConfig(cfg *Config) {
	if cfg != nil {
		globalConfig = cfg
	}
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	return globalConfig
}

// numWorkers returns the number of workers to use
func (cfg *Config) numWorkers() int {
	if cfg.MaxWorkers > 0 {
		return cfg.MaxWorkers
	}
	return runtime.GOMAXPROCS(0)
}

// shouldParallelize determines if an operation should be parallelized
func (cfg *Config) shouldParallelize(n int) bool {
	return cfg.Enabled && n >= cfg.MinSizeForParallel
}

// HardwareThreads reports the number of hardware execution threads,
// falling back to 1 when detection yields nothing usable.
func HardwareThreads() int {
	hw := runtime.NumCPU()
	if hw < 1 {
		hw = 1
	}
	return hw
}

// ============================================================================
// Morsel-Based Work Distribution
// ============================================================================

// Morsel represents a range of elements to process
type Morsel struct {
	Start int
	End   int
}

// MorselIterator provides work-stealing morsel distribution
type MorselIterator struct {
	total      int
	morselSize int
	nextStart  int64 // atomic counter for work-stealing
}

// NewMorselIterator creates a new morsel iterator
func NewMorselIterator(total, morselSize int) *MorselIterator {
	if morselSize <= 0 {
		morselSize = globalConfig.MorselSize
	}
	return &MorselIterator{
		total:      total,
		morselSize: morselSize,
		nextStart:  0,
	}
}

// Next returns the next morsel, or nil if exhausted
// This is safe for concurrent use (work-stealing)
func (mi *MorselIterator) Next() *Morsel {
	for {
		start := atomic.LoadInt64(&mi.nextStart)
		if int(start) >= mi.total {
			return nil
		}

		end := int(start) + mi.morselSize
		if end > mi.total {
			end = mi.total
		}

		// Try to claim this morsel
		if atomic.CompareAndSwapInt64(&mi.nextStart, start, int64(end)) {
			return &Morsel{Start: int(start), End: end}
		}
		// Another worker claimed it, try again
	}
}

// ============================================================================
// Parallel Execution Helpers
// ============================================================================

// ParallelFor executes fn for each morsel in parallel using work-stealing
func ParallelFor(total int, fn func(start, end int)) {
	cfg := globalConfig
	if !cfg.shouldParallelize(total) {
		// Sequential execution
		fn(0, total)
		return
	}

	numWorkers := cfg.numWorkers()
	morselIter := NewMorselIterator(total, cfg.MorselSize)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				morsel := morselIter.Next()
				if morsel == nil {
					return
				}
				fn(morsel.Start, morsel.End)
			}
		}()
	}
	wg.Wait()
}

// ParallelForWithResult executes fn for each morsel and collects results.
// Result order follows morsel completion, not input order, so it is only
// suitable for order-insensitive merges.
func ParallelForWithResult[T any](total int, fn func(start, end int) T) []T {
	cfg := globalConfig
	if !cfg.shouldParallelize(total) {
		// Sequential execution
		return []T{fn(0, total)}
	}

	numWorkers := cfg.numWorkers()
	morselIter := NewMorselIterator(total, cfg.MorselSize)

	// Pre-calculate number of morsels for result slice
	numMorsels := (total + cfg.MorselSize - 1) / cfg.MorselSize
	results := make([]T, numMorsels)
	resultIdx := int64(0)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				morsel := morselIter.Next()
				if morsel == nil {
					return
				}
				result := fn(morsel.Start, morsel.End)
				idx := atomic.AddInt64(&resultIdx, 1) - 1
				if int(idx) < len(results) {
					results[idx] = result
				}
			}
		}()
	}
	wg.Wait()

	// Trim to actual number of results
	actualResults := atomic.LoadInt64(&resultIdx)
	if int(actualResults) < len(results) {
		results = results[:actualResults]
	}
	return results
}
