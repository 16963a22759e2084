package parsweep

import (
	"sync/atomic"
	"testing"
)

// ============================================================================
// Config Tests
// ============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.MinSizeForParallel <= 0 {
		t.Errorf("MinSizeForParallel should be positive, got %d", cfg.MinSizeForParallel)
	}
	if cfg.MorselSize <= 0 {
		t.Errorf("MorselSize should be positive, got %d", cfg.MorselSize)
	}
	if !cfg.Enabled {
		t.Error("Enabled should be true by default")
	}
}

func TestSetGetConfig(t *testing.T) {
	// Save original config
	original := GetConfig()
	defer SetConfig(original)

	custom := &Config{
		MinSizeForParallel: 1000,
		MorselSize:         512,
		MaxWorkers:         2,
		Enabled:            false,
	}
	SetConfig(custom)

	if got := GetConfig(); got != custom {
		t.Errorf("GetConfig() = %+v, want %+v", got, custom)
	}

	// Setting nil should not change config
	SetConfig(nil)
	if GetConfig() != custom {
		t.Error("SetConfig(nil) should not change config")
	}
}

func TestConfig_NumWorkers(t *testing.T) {
	cfg := &Config{MaxWorkers: 4}
	if cfg.numWorkers() != 4 {
		t.Errorf("numWorkers() = %d, want 4", cfg.numWorkers())
	}

	cfg.MaxWorkers = 0
	if workers := cfg.numWorkers(); workers <= 0 {
		t.Errorf("numWorkers() with MaxWorkers=0 should use GOMAXPROCS, got %d", workers)
	}
}

func TestConfig_ShouldParallelize(t *testing.T) {
	cfg := &Config{
		MinSizeForParallel: 1000,
		Enabled:            true,
	}

	if cfg.shouldParallelize(500) {
		t.Error("should not parallelize 500 elements when min is 1000")
	}
	if !cfg.shouldParallelize(2000) {
		t.Error("should parallelize 2000 elements when min is 1000")
	}

	cfg.Enabled = false
	if cfg.shouldParallelize(2000) {
		t.Error("should not parallelize when disabled")
	}
}

func TestHardwareThreads(t *testing.T) {
	if hw := HardwareThreads(); hw < 1 {
		t.Errorf("HardwareThreads() = %d, want >= 1", hw)
	}
}

// ============================================================================
// Morsel Iterator Tests
// ============================================================================

func TestMorselIterator_Next(t *testing.T) {
	mi := NewMorselIterator(25, 10)

	want := []Morsel{{0, 10}, {10, 20}, {20, 25}}
	for i, w := range want {
		m := mi.Next()
		if m == nil || *m != w {
			t.Errorf("morsel %d = %v, want %v", i, m, w)
		}
	}

	if m := mi.Next(); m != nil {
		t.Errorf("exhausted iterator returned %v", m)
	}
}

func TestMorselIterator_Empty(t *testing.T) {
	mi := NewMorselIterator(0, 10)
	if m := mi.Next(); m != nil {
		t.Errorf("empty iterator should return nil, got %v", m)
	}
}

func TestMorselIterator_DefaultSize(t *testing.T) {
	mi := NewMorselIterator(100, 0)
	if mi.morselSize <= 0 {
		t.Error("morselSize should use default when 0")
	}
}

// ============================================================================
// Parallel Execution Tests
// ============================================================================

func TestParallelFor_Sequential(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	// Below threshold: single sequential call
	SetConfig(&Config{
		MinSizeForParallel: 10000,
		MorselSize:         100,
		Enabled:            true,
	})

	sum := int64(0)
	ParallelFor(100, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt64(&sum, int64(i))
		}
	})

	expected := int64(99 * 100 / 2)
	if sum != expected {
		t.Errorf("sum = %d, want %d", sum, expected)
	}
}

func TestParallelFor_Parallel(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	SetConfig(&Config{
		MinSizeForParallel: 10,
		MorselSize:         100,
		MaxWorkers:         4,
		Enabled:            true,
	})

	sum := int64(0)
	ParallelFor(1000, func(start, end int) {
		localSum := int64(0)
		for i := start; i < end; i++ {
			localSum += int64(i)
		}
		atomic.AddInt64(&sum, localSum)
	})

	expected := int64(999 * 1000 / 2)
	if sum != expected {
		t.Errorf("sum = %d, want %d", sum, expected)
	}
}

func TestParallelForWithResult(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	SetConfig(&Config{
		MinSizeForParallel: 10,
		MorselSize:         100,
		MaxWorkers:         4,
		Enabled:            true,
	})

	results := ParallelForWithResult(500, func(start, end int) int {
		sum := 0
		for i := start; i < end; i++ {
			sum += i
		}
		return sum
	})

	total := 0
	for _, r := range results {
		total += r
	}

	expected := 499 * 500 / 2
	if total != expected {
		t.Errorf("total = %d, want %d", total, expected)
	}
}
