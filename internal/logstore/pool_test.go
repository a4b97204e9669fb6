package logstore

import (
	"testing"
	"time"
)

func TestPool_GetAllocatesWhenEmpty(t *testing.T) {
	pool := NewPool(4)
	rec := pool.Get("hello", LevelInfo, time.Now(), "")
	if rec == nil || rec.Message != "hello" {
		t.Fatalf("Get returned %+v", rec)
	}
	stats := pool.Stats()
	if stats.Allocations != 1 || stats.Reuses != 0 {
		t.Fatalf("stats = %+v, want 1 allocation, 0 reuses", stats)
	}
}

func TestPool_ReuseRatioHalfAfterRoundTrip(t *testing.T) {
	const n = 5
	pool := NewPool(n)

	records := make([]*Record, n)
	for i := range records {
		records[i] = pool.Get("x", LevelInfo, time.Now(), "")
	}
	for _, rec := range records {
		pool.Put(rec)
	}
	for i := 0; i < n; i++ {
		pool.Get("y", LevelInfo, time.Now(), "")
	}

	stats := pool.Stats()
	if stats.Allocations != n || stats.Reuses != n {
		t.Fatalf("stats = %+v, want %d/%d", stats, n, n)
	}
	if stats.ReuseRatio != 0.5 {
		t.Fatalf("ReuseRatio = %v, want 0.5", stats.ReuseRatio)
	}
}

func TestPool_ReuseRatioZeroWhenUnused(t *testing.T) {
	if ratio := NewPool(1).Stats().ReuseRatio; ratio != 0 {
		t.Fatalf("ReuseRatio = %v, want 0", ratio)
	}
}

func TestPool_OverflowDropsContainers(t *testing.T) {
	pool := NewPool(1)

	first := pool.Get("a", LevelInfo, time.Now(), "")
	second := pool.Get("b", LevelInfo, time.Now(), "")
	pool.Put(first)  // kept
	pool.Put(second) // dropped, list full

	if pool.Size() != 1 {
		t.Fatalf("Size = %d, want 1", pool.Size())
	}

	pool.Get("c", LevelInfo, time.Now(), "")
	stats := pool.Stats()
	if stats.Allocations != 2 || stats.Reuses != 1 {
		t.Fatalf("stats = %+v, want 2 allocations, 1 reuse", stats)
	}
	if pool.Size() != 0 {
		t.Fatalf("free list size = %d after final Get, want 0", pool.Size())
	}
}

func TestPool_PutClearsStringFields(t *testing.T) {
	pool := NewPool(2)
	rec := pool.Get("sensitive payload", LevelError, time.Now(), "trace")
	pool.Put(rec)
	if rec.Message != "" || rec.Trace != "" {
		t.Fatalf("pooled record retains strings: %+v", rec)
	}
}

func TestPool_SetMaxSizeTrims(t *testing.T) {
	pool := NewPool(5)
	records := make([]*Record, 4)
	for i := range records {
		records[i] = pool.Get("x", LevelInfo, time.Now(), "")
	}
	for _, rec := range records {
		pool.Put(rec)
	}
	if pool.Size() != 4 {
		t.Fatalf("Size = %d, want 4", pool.Size())
	}

	pool.SetMaxSize(2)
	if pool.Size() != 2 {
		t.Fatalf("Size after SetMaxSize(2) = %d, want 2", pool.Size())
	}

	pool.SetMaxSize(0)
	if pool.MaxSize() != 1 {
		t.Fatalf("MaxSize after SetMaxSize(0) = %d, want 1", pool.MaxSize())
	}
	if pool.Size() != 1 {
		t.Fatalf("Size after clamp = %d, want 1", pool.Size())
	}
}

func TestNewPool_ClampsSize(t *testing.T) {
	if NewPool(-3).MaxSize() != 1 {
		t.Fatalf("NewPool(-3) max size != 1")
	}
}

func TestPool_NilPutIgnored(t *testing.T) {
	pool := NewPool(1)
	pool.Put(nil)
	if pool.Size() != 0 {
		t.Fatalf("Size = %d after nil Put, want 0", pool.Size())
	}
}
