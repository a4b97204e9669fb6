// Package logstore provides the bounded, concurrency-safe capture buffer at
// the heart of logpane.
//
// # Overview
//
// The package has two cooperating pieces:
//
//  1. Store: a fixed-capacity, insertion-ordered record collection that
//     evicts its oldest entries once full
//  2. Pool: a free-list cache of Record containers that keeps sustained
//     logging from allocating one container per message
//
// Producers call Store.Add from any goroutine; a display layer periodically
// calls Store.FormattedText (or Store.All) and renders the result.
//
// # Bounded Capacity
//
// A Store never holds more than its capacity (clamped to [1, 1000]):
//
//	store.Add(...)   // append, then evict from the head while over capacity
//	store.SetCapacity(k)  // shrinking evicts the oldest entries immediately
//
// Eviction happens inside the same critical section as the mutation that
// caused it, so the count <= capacity invariant holds at every public call
// boundary, never just eventually.
//
// # Record Ownership
//
// Every Record container is owned by exactly one of the Store and the
// Pool's free list at any moment. Add moves a container from the pool into
// the store; eviction and Clear move containers back. Both transfers happen
// under the store's lock, so a record is never simultaneously live and
// free. Containers returned to a full pool are simply dropped.
//
// # Input Handling
//
// Add("" , ...) is a silent no-op: no state change, no added signal.
// Whitespace-only messages are legitimate content and are stored. There is
// no error path; out-of-range configuration is clamped rather than
// rejected.
//
// # Signals
//
// OnAdded and OnCleared register ordered subscriber lists. Callbacks run
// after the store lock is released, in registration order, and a panicking
// subscriber is recovered so the rest still fire. Callbacks receive record
// values, not pointers, so they cannot mutate stored state.
//
// # Concurrency
//
// All Store operations serialize through one mutex per instance. Lock hold
// time is O(1) for an in-capacity append and O(k) while sweeping k overflow
// records; nothing inside the lock blocks on I/O. The Pool carries its own
// mutex so it remains safe if used independently of a Store.
package logstore
