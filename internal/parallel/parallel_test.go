package parallel

import (
	"sync/atomic"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.NumWorkers <= 0 {
		t.Errorf("Expected positive worker count, got %d", cfg.NumWorkers)
	}
	if cfg.MinChunkSize <= 0 {
		t.Errorf("Expected positive chunk size, got %d", cfg.MinChunkSize)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	visited := make([]bool, 100)
	For(100, func(i int) { visited[i] = true }, cfg)

	for i, v := range visited {
		if !v {
			t.Errorf("Index %d not visited", i)
		}
	}
}

func TestFor_Parallel(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	const n = 10000
	var count atomic.Int64
	For(n, func(i int) { count.Add(1) }, cfg)

	if count.Load() != n {
		t.Errorf("Expected %d invocations, got %d", n, count.Load())
	}
}

func TestFor_EachIndexOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 1}

	const n = 1000
	counts := make([]atomic.Int32, n)
	For(n, func(i int) { counts[i].Add(1) }, cfg)

	for i := range counts {
		if got := counts[i].Load(); got != 1 {
			t.Errorf("Index %d visited %d times, want 1", i, got)
		}
	}
}

func TestForRange_CoversAll(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	const n = 5000
	var sum atomic.Int64
	ForRange(n, func(start, end int) {
		var local int64
		for i := start; i < end; i++ {
			local += int64(i)
		}
		sum.Add(local)
	}, cfg)

	want := int64(n) * (n - 1) / 2
	if sum.Load() != want {
		t.Errorf("Expected sum %d, got %d", want, sum.Load())
	}
}

func TestForRange_SmallFallsBackToOneChunk(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1024}

	calls := 0
	ForRange(10, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("Expected single chunk [0, 10), got [%d, %d)", start, end)
		}
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 chunk call, got %d", calls)
	}
}
