package logstore

import (
	"strings"
	"sync"
	"time"
)

const (
	minCapacity = 1
	maxCapacity = 1000

	// Heuristic memory accounting, not exact: two bytes per message
	// character plus a flat per-record overhead.
	estBytesPerChar   = 2
	estRecordOverhead = 64
)

// Colorizer wraps a formatted line in display markup for its level.
// A nil colorizer leaves lines plain.
type Colorizer func(level Level, line string) string

// Store is a fixed-capacity, insertion-ordered collection of records.
// Once full, adding a record evicts the oldest one, so count never exceeds
// capacity across any public call boundary. All operations on one Store
// serialize through a single mutex; Add is safe to call from any number of
// goroutines.
type Store struct {
	mu       sync.Mutex
	records  []*Record
	capacity int
	pool     *Pool
	colorize Colorizer

	onAdded   []func(Record)
	onCleared []func()
}

// New creates a store with the given capacity, clamped to [1,1000].
// A nil pool gets a private default-sized pool.
func New(capacity int, pool *Pool) *Store {
	if pool == nil {
		pool = NewPool(defaultMaxPoolSize)
	}
	return &Store{
		records:  make([]*Record, 0, clampCapacity(capacity)),
		capacity: clampCapacity(capacity),
		pool:     pool,
	}
}

func clampCapacity(n int) int {
	if n < minCapacity {
		return minCapacity
	}
	if n > maxCapacity {
		return maxCapacity
	}
	return n
}

// OnAdded registers a callback invoked with each accepted record.
// Callbacks fire in registration order, outside the store lock; a panic in
// one callback does not block delivery to the rest.
func (s *Store) OnAdded(fn func(Record)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.onAdded = append(s.onAdded, fn)
	s.mu.Unlock()
}

// OnCleared registers a callback invoked once per Clear.
func (s *Store) OnCleared(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.onCleared = append(s.onCleared, fn)
	s.mu.Unlock()
}

// SetColorizer installs the markup wrapper used by FormattedText.
func (s *Store) SetColorizer(c Colorizer) {
	s.mu.Lock()
	s.colorize = c
	s.mu.Unlock()
}

// Add appends one record stamped with the current time. Empty messages are
// silently ignored; every other string, including pure whitespace, is
// accepted. When the append pushes the store over capacity the oldest
// records are evicted and returned to the pool before Add returns.
func (s *Store) Add(message string, level Level, trace string) {
	s.Append(Record{Message: message, Level: level, Trace: trace})
}

// Append stores a prebuilt record value, keeping its timestamp when set
// (a zero Time is replaced with the current time). Empty messages are
// silently ignored. Append makes the store usable as a fan-out sink.
func (s *Store) Append(in Record) {
	if in.Message == "" {
		return
	}
	ts := in.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	s.mu.Lock()
	rec := s.pool.Get(in.Message, in.Level, ts, in.Trace)
	s.records = append(s.records, rec)
	s.evictOverflowLocked()
	added := *rec
	callbacks := s.onAdded
	s.mu.Unlock()

	for _, fn := range callbacks {
		invoke(func() { fn(added) })
	}
}

// evictOverflowLocked returns head records to the pool until the store is
// back within capacity. Callers must hold s.mu.
func (s *Store) evictOverflowLocked() {
	for len(s.records) > s.capacity {
		head := s.records[0]
		s.records[0] = nil
		s.records = s.records[1:]
		s.pool.Put(head)
	}
}

// Len returns the current record count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Capacity returns the effective capacity.
func (s *Store) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capacity
}

// All returns a chronological snapshot. Records are copied out by value so
// the live sequence is never exposed.
func (s *Store) All() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	for i, rec := range s.records {
		out[i] = *rec
	}
	return out
}

// Clear evicts every record back to the pool and fires the cleared
// callbacks once.
func (s *Store) Clear() {
	s.mu.Lock()
	for i, rec := range s.records {
		s.pool.Put(rec)
		s.records[i] = nil
	}
	s.records = s.records[:0]
	callbacks := s.onCleared
	s.mu.Unlock()

	for _, fn := range callbacks {
		invoke(fn)
	}
}

// SetCapacity changes the capacity, clamped to [1,1000]. Shrinking below
// the current count evicts the oldest records immediately.
func (s *Store) SetCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capacity = clampCapacity(n)
	s.evictOverflowLocked()
}

// ForceCleanup evicts the oldest half of the stored records, returning the
// number evicted. It is the hook a memory coordinator calls when usage
// crosses the normal threshold.
func (s *Store) ForceCleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	keep := len(s.records) / 2
	evict := len(s.records) - keep
	for i := 0; i < evict; i++ {
		s.pool.Put(s.records[i])
		s.records[i] = nil
	}
	s.records = append(s.records[:0], s.records[evict:]...)
	return evict
}

// FormattedText renders every record as "[<timestamp>][<LEVEL>] <message>"
// joined by newlines, oldest first. With a colorizer installed each line is
// wrapped in level markup. An empty store yields the empty string.
func (s *Store) FormattedText() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return ""
	}
	var b strings.Builder
	for i, rec := range s.records {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := "[" + rec.Time.Format("2006-01-02 15:04:05") + "][" + rec.Level.String() + "] " + rec.Message
		if s.colorize != nil {
			line = s.colorize(rec.Level, line)
		}
		b.WriteString(line)
	}
	return b.String()
}

// EstimateMemoryUsage returns a rough byte cost of the stored records.
func (s *Store) EstimateMemoryUsage() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, rec := range s.records {
		total += len(rec.Message)*estBytesPerChar + estRecordOverhead
	}
	return total
}

// invoke runs one subscriber, swallowing a panic so the remaining
// subscribers still receive the signal.
func invoke(fn func()) {
	defer func() { _ = recover() }()
	fn()
}
