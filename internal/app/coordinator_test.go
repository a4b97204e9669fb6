package app

import (
	"strings"
	"testing"

	"github.com/logpane/logpane/internal/fanout"
	"github.com/logpane/logpane/internal/logstore"
	"github.com/logpane/logpane/internal/memwatch"
)

// steppingSampler returns baseline once, then the configured usage total.
func steppingSampler(baseline, total uint64) memwatch.Sampler {
	first := true
	return func() (uint64, error) {
		if first {
			first = false
			return baseline, nil
		}
		return total, nil
	}
}

func fillStore(store *logstore.Store, n int) {
	for i := 0; i < n; i++ {
		store.Add("record", logstore.LevelInfo, "")
	}
}

func TestWireCleanup_NormalCrossingEvictsHalf(t *testing.T) {
	store := logstore.New(100, nil)
	fillStore(store, 10)

	monitor := memwatch.NewMonitor(steppingSampler(1000, 1000+64<<10))
	monitor.SetThreshold(32 << 10)
	monitor.SetCriticalThreshold(1 << 30)
	WireCleanup(store, monitor)

	monitor.Start()
	monitor.ForceCheck()

	if store.Len() != 5 {
		t.Fatalf("Len after normal crossing = %d, want 5", store.Len())
	}
}

func TestWireCleanup_CriticalCrossingClears(t *testing.T) {
	store := logstore.New(100, nil)
	fillStore(store, 10)

	monitor := memwatch.NewMonitor(steppingSampler(1000, 1000+512<<10))
	monitor.SetThreshold(32 << 10)
	monitor.SetCriticalThreshold(256 << 10)
	WireCleanup(store, monitor)

	monitor.Start()
	monitor.ForceCheck()

	if store.Len() != 0 {
		t.Fatalf("Len after critical crossing = %d, want 0", store.Len())
	}
	if got := monitor.Stats().CriticalCleanups; got != 1 {
		t.Fatalf("CriticalCleanups = %d, want 1", got)
	}
}

func TestCaptureWriter_SplitsLinesAndGuessesLevels(t *testing.T) {
	store := logstore.New(10, nil)
	w := &captureWriter{sink: fanout.New(store)}

	n, err := w.Write([]byte("plain note\nERROR disk full\n"))
	if err != nil || n != len("plain note\nERROR disk full\n") {
		t.Fatalf("Write = %d, %v", n, err)
	}

	records := store.All()
	if len(records) != 2 {
		t.Fatalf("captured %d records, want 2", len(records))
	}
	if records[0].Level != logstore.LevelInfo || records[0].Message != "plain note" {
		t.Fatalf("records[0] = %+v", records[0])
	}
	if records[1].Level != logstore.LevelError {
		t.Fatalf("records[1].Level = %v, want error", records[1].Level)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", nil},
		{"one", []string{"one"}},
		{"one\ntwo\n", []string{"one", "two"}},
		{"a\n\nb", []string{"a", "b"}},
	}
	for _, tt := range tests {
		got := splitLines(tt.in)
		if len(got) != len(tt.want) {
			t.Fatalf("splitLines(%q) = %v, want %v", tt.in, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("splitLines(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestNextDemoRecord_AlwaysHasMessage(t *testing.T) {
	for i := 0; i < 200; i++ {
		rec := nextDemoRecord()
		if rec.Message == "" {
			t.Fatalf("demo record %d has empty message", i)
		}
		if strings.Contains(rec.Message, "%!") {
			t.Fatalf("demo record %d has a formatting artifact: %q", i, rec.Message)
		}
	}
}
