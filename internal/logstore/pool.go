package logstore

import (
	"sync"
	"time"
)

const defaultMaxPoolSize = 128

// PoolStats reports allocation behavior since the pool was created.
type PoolStats struct {
	Allocations uint64
	Reuses      uint64
	ReuseRatio  float64
}

// Pool caches Record containers so sustained logging does not allocate one
// container per message. The intended pattern is for a Store to drive the
// pool from inside its own critical section, but the pool carries its own
// lock so independent use stays safe.
type Pool struct {
	mu      sync.Mutex
	free    []*Record
	maxSize int
	allocs  uint64
	reuses  uint64
}

// NewPool creates a pool holding at most maxSize free containers.
// Sizes below 1 are clamped to 1.
func NewPool(maxSize int) *Pool {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Pool{
		free:    make([]*Record, 0, maxSize),
		maxSize: maxSize,
	}
}

// Get returns a container populated with the given fields, reusing a free
// container when one is available and allocating otherwise.
func (p *Pool) Get(message string, level Level, ts time.Time, trace string) *Record {
	p.mu.Lock()
	defer p.mu.Unlock()

	var rec *Record
	if n := len(p.free); n > 0 {
		rec = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		p.reuses++
	} else {
		rec = &Record{}
		p.allocs++
	}
	rec.Message = message
	rec.Level = level
	rec.Time = ts
	rec.Trace = trace
	return rec
}

// Put returns a container to the free list. Once the list is full the
// container is dropped and left to the garbage collector.
func (p *Pool) Put(rec *Record) {
	if rec == nil {
		return
	}
	// Release string references so a pooled container cannot pin large
	// messages in memory between reuses.
	rec.Message = ""
	rec.Trace = ""

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) < p.maxSize {
		p.free = append(p.free, rec)
	}
}

// SetMaxSize adjusts the free-list bound, clamping to at least 1 and
// trimming any excess free containers immediately.
func (p *Pool) SetMaxSize(n int) {
	if n < 1 {
		n = 1
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maxSize = n
	if len(p.free) > n {
		for i := n; i < len(p.free); i++ {
			p.free[i] = nil
		}
		p.free = p.free[:n]
	}
}

// Size returns the current number of free containers.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// MaxSize returns the effective free-list bound.
func (p *Pool) MaxSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxSize
}

// Stats returns a snapshot of allocation counters. ReuseRatio is zero when
// the pool has never been used.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := PoolStats{Allocations: p.allocs, Reuses: p.reuses}
	if total := p.allocs + p.reuses; total > 0 {
		stats.ReuseRatio = float64(p.reuses) / float64(total)
	}
	return stats
}
