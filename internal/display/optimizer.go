package display

import (
	"math"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Strategy selects which part of oversized text is discarded.
type Strategy int

const (
	// DropOldest keeps the trailing portion; recent content survives.
	DropOldest Strategy = iota
	// DropNewest keeps the leading portion.
	DropNewest
	// DropMiddle keeps a head and a tail with an omission marker between.
	DropMiddle
)

// String returns the configuration-file name of the strategy.
func (s Strategy) String() string {
	switch s {
	case DropNewest:
		return "drop-newest"
	case DropMiddle:
		return "drop-middle"
	default:
		return "drop-oldest"
	}
}

// ParseStrategy maps a configuration name to a Strategy, defaulting to
// DropOldest.
func ParseStrategy(name string) Strategy {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "drop-newest", "newest":
		return DropNewest
	case "drop-middle", "middle":
		return DropMiddle
	default:
		return DropOldest
	}
}

const (
	minCharLimit = 10
	minLineLimit = 1

	defaultCharLimit = 8000
	defaultLineLimit = 200
	defaultRatio     = 0.5

	// Markers inserted by DropMiddle. Count-free so the synchronous and
	// incremental paths produce identical output.
	lineMarker = "--- content omitted ---"
	charMarker = " ... "
)

// OptimizerStats reports usage counters for an Optimizer.
type OptimizerStats struct {
	Optimizations      uint64
	Truncations        uint64
	LastProcessingTime time.Duration
}

// Optimizer shapes text to fit a display surface with fixed character and
// line budgets. It is stateless with respect to content; configuration and
// counters are the only instance state.
type Optimizer struct {
	mu       sync.Mutex
	maxChars int
	maxLines int
	strategy Strategy
	ratio    float64

	optimizations uint64
	truncations   uint64
	lastDuration  time.Duration
}

// NewOptimizer creates an optimizer with default limits (8000 characters,
// 200 lines, DropOldest, even head/tail split).
func NewOptimizer() *Optimizer {
	return &Optimizer{
		maxChars: defaultCharLimit,
		maxLines: defaultLineLimit,
		strategy: DropOldest,
		ratio:    defaultRatio,
	}
}

// SetMaxChars sets the character limit, clamped to at least 10.
func (o *Optimizer) SetMaxChars(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if n < minCharLimit {
		n = minCharLimit
	}
	o.maxChars = n
}

// SetMaxLines sets the line limit, clamped to at least 1.
func (o *Optimizer) SetMaxLines(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if n < minLineLimit {
		n = minLineLimit
	}
	o.maxLines = n
}

// SetStrategy selects the truncation strategy.
func (o *Optimizer) SetStrategy(s Strategy) {
	o.mu.Lock()
	defer o.mu.Unlock()
	switch s {
	case DropOldest, DropNewest, DropMiddle:
		o.strategy = s
	default:
		o.strategy = DropOldest
	}
}

// SetRatio sets the share of the retained budget given to the head segment
// under DropMiddle, clamped to [0,1]. The head receives the ceiling of its
// share, the tail the floor.
func (o *Optimizer) SetRatio(r float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if r < 0 || math.IsNaN(r) {
		r = 0
	}
	if r > 1 {
		r = 1
	}
	o.ratio = r
}

// Stats returns a snapshot of the usage counters.
func (o *Optimizer) Stats() OptimizerStats {
	o.mu.Lock()
	defer o.mu.Unlock()
	return OptimizerStats{
		Optimizations:      o.optimizations,
		Truncations:        o.truncations,
		LastProcessingTime: o.lastDuration,
	}
}

// config captures the settings one optimization runs with, so a concurrent
// setter cannot change strategy mid-pass.
type config struct {
	maxChars int
	maxLines int
	strategy Strategy
	ratio    float64
}

func (o *Optimizer) snapshotConfig() config {
	o.mu.Lock()
	defer o.mu.Unlock()
	return config{maxChars: o.maxChars, maxLines: o.maxLines, strategy: o.strategy, ratio: o.ratio}
}

func (o *Optimizer) record(start time.Time, truncated bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.optimizations++
	if truncated {
		o.truncations++
	}
	o.lastDuration = time.Since(start)
}

// Optimize returns text shaped to fit both limits. Empty input yields the
// empty string; input already within limits is returned unchanged.
func (o *Optimizer) Optimize(text string) string {
	start := time.Now()
	cfg := o.snapshotConfig()

	if text == "" {
		o.record(start, false)
		return ""
	}
	if fits(text, cfg) {
		o.record(start, false)
		return text
	}

	out := charPass(linePass(text, cfg), cfg)
	o.record(start, out != text)
	return out
}

func fits(text string, cfg config) bool {
	return utf8.RuneCountInString(text) <= cfg.maxChars && countLines(text) <= cfg.maxLines
}

func countLines(text string) int {
	return strings.Count(text, "\n") + 1
}

// splitBudget divides a retained budget between head and tail. The head
// gets the ceiling of its share so an odd budget biases toward the head.
func splitBudget(budget int, ratio float64) (head, tail int) {
	if budget <= 0 {
		return 0, 0
	}
	head = int(math.Ceil(float64(budget) * ratio))
	if head > budget {
		head = budget
	}
	return head, budget - head
}

// linePass reduces text to at most maxLines lines using the strategy.
func linePass(text string, cfg config) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= cfg.maxLines {
		return text
	}
	switch cfg.strategy {
	case DropNewest:
		return strings.Join(lines[:cfg.maxLines], "\n")
	case DropMiddle:
		head, tail := splitBudget(cfg.maxLines-1, cfg.ratio)
		kept := make([]string, 0, cfg.maxLines)
		kept = append(kept, lines[:head]...)
		kept = append(kept, lineMarker)
		if tail > 0 {
			kept = append(kept, lines[len(lines)-tail:]...)
		}
		return strings.Join(kept, "\n")
	default: // DropOldest
		return strings.Join(lines[len(lines)-cfg.maxLines:], "\n")
	}
}

// charPass reduces text to at most maxChars runes using the strategy.
func charPass(text string, cfg config) string {
	runes := []rune(text)
	if len(runes) <= cfg.maxChars {
		return text
	}
	switch cfg.strategy {
	case DropNewest:
		return string(runes[:cfg.maxChars])
	case DropMiddle:
		marker := []rune(charMarker)
		budget := cfg.maxChars - len(marker)
		if budget < 2 {
			return string(runes[:cfg.maxChars])
		}
		head, tail := splitBudget(budget, cfg.ratio)
		out := make([]rune, 0, cfg.maxChars)
		out = append(out, runes[:head]...)
		out = append(out, marker...)
		out = append(out, runes[len(runes)-tail:]...)
		return string(out)
	default: // DropOldest
		return string(runes[len(runes)-cfg.maxChars:])
	}
}
