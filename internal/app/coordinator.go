package app

import (
	"context"
	"time"

	"github.com/logpane/logpane/internal/logstore"
	"github.com/logpane/logpane/internal/memwatch"
)

// coordinatorTick is how often the coordinating loop nudges the monitor.
// The monitor applies its own configured sampling interval on top, so this
// only bounds reaction latency.
const coordinatorTick = 250 * time.Millisecond

// WireCleanup connects the monitor's threshold signals to the store's
// cleanup operations: a normal crossing sheds the oldest half, a critical
// crossing empties the buffer and asks the runtime to give memory back.
func WireCleanup(store *logstore.Store, monitor *memwatch.Monitor) {
	monitor.OnThreshold(func(memwatch.Stats) {
		store.ForceCleanup()
	})
	monitor.OnCritical(func(memwatch.Stats) {
		store.Clear()
		monitor.TriggerReclamation()
	})
}

// StartCoordinator launches a background goroutine that drives the
// monitor's polling Update at a fixed cadence. It returns immediately.
func StartCoordinator(ctx context.Context, monitor *memwatch.Monitor, tick time.Duration) {
	if tick <= 0 {
		tick = coordinatorTick
	}
	go func() {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				monitor.Stop()
				return
			case <-ticker.C:
				monitor.Update()
			}
		}
	}()
}
