package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/logpane/logpane/internal/fanout"
	"github.com/logpane/logpane/internal/logstore"
)

// Synthetic diagnostics for standalone demo runs. Weighted toward info so
// the stream looks like a real service under light stress.
var demoMessages = []struct {
	level   logstore.Level
	message string
	trace   bool
}{
	{logstore.LevelInfo, "request served path=/api/items status=200", false},
	{logstore.LevelInfo, "cache refresh completed entries=412", false},
	{logstore.LevelInfo, "scheduler tick: 3 jobs dispatched", false},
	{logstore.LevelInfo, "session established client=10.0.0.%d", false},
	{logstore.LevelInfo, "checkpoint written seq=%d", false},
	{logstore.LevelWarn, "slow query took %dms, threshold 200ms", false},
	{logstore.LevelWarn, "retrying upstream call, attempt %d", false},
	{logstore.LevelError, "connection reset by peer addr=10.0.0.%d", true},
	{logstore.LevelError, "job %d failed: context deadline exceeded", true},
}

// StartProducer launches a background goroutine emitting synthetic records
// at approximately rate records per second. It returns immediately.
func StartProducer(ctx context.Context, sink fanout.Sink, rate int) {
	if rate <= 0 {
		return
	}
	interval := time.Second / time.Duration(rate)
	if interval <= 0 {
		interval = time.Millisecond
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sink.Append(nextDemoRecord())
			}
		}
	}()
}

func nextDemoRecord() logstore.Record {
	// Bias toward the info-heavy front of the table.
	idx := rand.Intn(len(demoMessages))
	if rand.Intn(3) != 0 {
		idx = rand.Intn(5)
	}
	entry := demoMessages[idx]

	message := entry.message
	if containsVerb(message) {
		message = fmt.Sprintf(message, rand.Intn(900)+100)
	}
	rec := logstore.Record{Level: entry.level, Message: message}
	if entry.trace {
		rec.Trace = "goroutine dump elided; see service journal"
	}
	return rec
}

func containsVerb(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '%' && s[i+1] == 'd' {
			return true
		}
	}
	return false
}
