package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/logpane/logpane/internal/config"
	"github.com/logpane/logpane/internal/display"
	"github.com/logpane/logpane/internal/fanout"
	"github.com/logpane/logpane/internal/ingest"
	"github.com/logpane/logpane/internal/logstore"
	"github.com/logpane/logpane/internal/memwatch"
	"github.com/logpane/logpane/internal/prefs"
	"github.com/logpane/logpane/internal/ui"
)

// Options configure the logpane application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/logpane/prefs.toml
	LogFile    string // overrides config when set
	DemoRate   int    // records/second; overrides config when > 0
}

// Run boots the logpane console until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	pool := logstore.NewPool(cfg.PoolSize)
	store := logstore.New(cfg.Capacity, pool)

	monitor := memwatch.NewMonitor(nil)
	monitor.SetThreshold(cfg.MemoryThreshold)
	monitor.SetCriticalThreshold(cfg.CriticalThreshold)
	monitor.SetInterval(time.Duration(cfg.SampleIntervalMS) * time.Millisecond)

	optimizer := display.NewOptimizer()
	optimizer.SetMaxChars(cfg.MaxChars)
	optimizer.SetMaxLines(cfg.MaxLines)
	optimizer.SetStrategy(display.ParseStrategy(cfg.Strategy))
	optimizer.SetRatio(cfg.TruncationRatio)

	sink := fanout.New(store)

	// Route the process's own stdlib logging into the capture buffer;
	// writing to stderr would corrupt the alternate screen anyway.
	log.SetFlags(0)
	log.SetOutput(&captureWriter{sink: sink})

	logFile := opts.LogFile
	if logFile == "" {
		logFile = cfg.LogFile
	}
	if logFile != "" {
		records, err := ingest.Tail(logFile, store.Capacity())
		if err != nil {
			log.Printf("WARN ingest %s: %v", logFile, err)
		}
		for _, rec := range records {
			sink.Append(rec)
		}
	}

	WireCleanup(store, monitor)
	monitor.Start()
	StartCoordinator(ctx, monitor, coordinatorTick)

	rate := opts.DemoRate
	if rate <= 0 {
		rate = cfg.DemoRate
	}
	if rate > 0 {
		StartProducer(ctx, sink, rate)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Pool:      pool,
		Monitor:   monitor,
		Optimizer: optimizer,
		ThemeName: userPrefs.Theme,
		Follow:    userPrefs.Follow,
		PrefsPath: prefsPath,
	})
}

// captureWriter adapts the stdlib logger to the fan-out sink, one record
// per written line.
type captureWriter struct {
	sink fanout.Sink
}

func (w *captureWriter) Write(p []byte) (int, error) {
	for _, line := range splitLines(string(p)) {
		w.sink.Append(logstore.Record{
			Message: line,
			Level:   ingest.GuessLevel(line),
		})
	}
	return len(p), nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
