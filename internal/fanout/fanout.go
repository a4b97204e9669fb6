// Package fanout forwards captured records to multiple sinks. It exists so
// one producer stream can feed a display store and any number of auxiliary
// consumers, with a failing consumer isolated from its siblings.
package fanout

import (
	"sync"

	"github.com/logpane/logpane/internal/logstore"
)

// Sink consumes one record. *logstore.Store satisfies Sink via Append.
type Sink interface {
	Append(rec logstore.Record)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(rec logstore.Record)

// Append implements Sink.
func (f SinkFunc) Append(rec logstore.Record) { f(rec) }

// Multi delivers each record to an ordered list of sinks. Delivery order is
// attachment order, and a sink that panics is recovered so the remaining
// sinks still receive the record.
type Multi struct {
	mu    sync.Mutex
	sinks []Sink
}

// New creates a fan-out over the given sinks. Nil sinks are skipped.
func New(sinks ...Sink) *Multi {
	m := &Multi{}
	for _, s := range sinks {
		m.Attach(s)
	}
	return m
}

// Attach appends a sink to the delivery list.
func (m *Multi) Attach(s Sink) {
	if s == nil {
		return
	}
	m.mu.Lock()
	m.sinks = append(m.sinks, s)
	m.mu.Unlock()
}

// Len returns the number of attached sinks.
func (m *Multi) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sinks)
}

// Append implements Sink, forwarding the record to every attached sink.
func (m *Multi) Append(rec logstore.Record) {
	m.mu.Lock()
	sinks := make([]Sink, len(m.sinks))
	copy(sinks, m.sinks)
	m.mu.Unlock()

	for _, s := range sinks {
		deliver(s, rec)
	}
}

func deliver(s Sink, rec logstore.Record) {
	defer func() { _ = recover() }()
	s.Append(rec)
}
