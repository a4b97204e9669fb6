package display

import (
	"strings"
	"time"
)

const (
	defaultSliceBudget = 8 * time.Millisecond

	// Lines scanned between deadline checks. Large enough that the clock
	// read is amortized, small enough that a slice overruns its budget by
	// at most a few hundred microseconds of scanning.
	scanChunk = 64
)

type phase int

const (
	phaseForward phase = iota
	phaseBackward
	phaseDone
)

// Cursor is the resumable state of one incremental optimization. It is an
// opaque value from the caller's perspective: obtain one from
// OptimizeIncremental and hand it back unchanged to continue. A Cursor is
// not safe for concurrent use.
type Cursor struct {
	text string
	cfg  config

	phase    phase
	headWant int
	tailWant int
	head     []string
	tail     []string // collected back to front
	fwd      int      // forward scan offset
	bwd      int      // backward scan offset (exclusive)

	result string
}

// Done reports whether the optimization has finished.
func (c *Cursor) Done() bool { return c != nil && c.phase == phaseDone }

func newCursor(text string, cfg config) *Cursor {
	c := &Cursor{text: text, cfg: cfg, bwd: len(text)}
	switch cfg.strategy {
	case DropNewest:
		c.phase = phaseForward
		c.headWant = cfg.maxLines
	case DropMiddle:
		c.phase = phaseForward
		c.headWant, c.tailWant = splitBudget(cfg.maxLines-1, cfg.ratio)
		if c.headWant == 0 {
			c.phase = phaseBackward
		}
	default: // DropOldest
		c.phase = phaseBackward
		c.tailWant = cfg.maxLines
	}
	return c
}

// OptimizeIncremental performs the same logical optimization as Optimize,
// bounded by a wall-clock slice so very large inputs can be processed
// across multiple scheduler turns. Pass a nil cursor to start; while done
// is false, call again with the returned cursor to continue. The partial
// result is the best content assembled so far and is safe to render.
//
// A non-positive budget uses a small default slice. The budget caps time
// between yield points cooperatively; an in-progress chunk scan is not
// interrupted.
func (o *Optimizer) OptimizeIncremental(text string, budget time.Duration, cur *Cursor) (partial string, done bool, next *Cursor) {
	start := time.Now()
	if budget <= 0 {
		budget = defaultSliceBudget
	}

	if cur == nil {
		cfg := o.snapshotConfig()
		if text == "" {
			o.record(start, false)
			return "", true, &Cursor{phase: phaseDone}
		}
		if fits(text, cfg) {
			o.record(start, false)
			return text, true, &Cursor{phase: phaseDone, text: text, result: text}
		}
		cur = newCursor(text, cfg)
	}

	if cur.phase == phaseDone {
		o.record(start, false)
		return cur.result, true, cur
	}

	deadline := start.Add(budget)
	for cur.phase != phaseDone && time.Now().Before(deadline) {
		switch cur.phase {
		case phaseForward:
			cur.scanForward()
		case phaseBackward:
			cur.scanBackward()
		}
	}

	if cur.phase != phaseDone {
		o.record(start, false)
		return cur.partial(), false, cur
	}

	cur.result = cur.assemble()
	o.record(start, cur.result != cur.text)
	return cur.result, true, cur
}

// scanForward collects up to scanChunk leading lines, advancing to the next
// phase when the head budget is met or input is exhausted.
func (c *Cursor) scanForward() {
	for i := 0; i < scanChunk; i++ {
		if len(c.head) >= c.headWant || c.fwd >= c.bwd {
			c.advancePhase()
			return
		}
		rest := c.text[c.fwd:c.bwd]
		if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
			c.head = append(c.head, rest[:idx])
			c.fwd += idx + 1
		} else {
			c.head = append(c.head, rest)
			c.fwd = c.bwd
		}
	}
}

// scanBackward collects up to scanChunk trailing lines, back to front.
func (c *Cursor) scanBackward() {
	for i := 0; i < scanChunk; i++ {
		if len(c.tail) >= c.tailWant || c.bwd <= c.fwd {
			c.phase = phaseDone
			return
		}
		rest := c.text[c.fwd:c.bwd]
		if idx := strings.LastIndexByte(rest, '\n'); idx >= 0 {
			c.tail = append(c.tail, rest[idx+1:])
			c.bwd = c.fwd + idx
		} else {
			c.tail = append(c.tail, rest)
			c.bwd = c.fwd
		}
	}
}

func (c *Cursor) advancePhase() {
	if c.cfg.strategy == DropMiddle && c.fwd < c.bwd {
		c.phase = phaseBackward
		return
	}
	c.phase = phaseDone
}

// partial returns the best-effort content assembled so far.
func (c *Cursor) partial() string {
	switch c.phase {
	case phaseBackward:
		return strings.Join(reversed(c.tail), "\n")
	default:
		return strings.Join(c.head, "\n")
	}
}

// assemble produces the final result once scanning is complete.
func (c *Cursor) assemble() string {
	var out string
	switch c.cfg.strategy {
	case DropNewest:
		out = strings.Join(c.head, "\n")
	case DropMiddle:
		if c.fwd >= c.bwd || strings.IndexByte(c.text[c.fwd:c.bwd], '\n') < 0 {
			// The scans met, or at most one line sits between them. The
			// input fits the line budget after all, so defer to the
			// synchronous pass for exactness.
			out = linePass(c.text, c.cfg)
		} else {
			parts := make([]string, 0, len(c.head)+1+len(c.tail))
			parts = append(parts, c.head...)
			parts = append(parts, lineMarker)
			parts = append(parts, reversed(c.tail)...)
			out = strings.Join(parts, "\n")
		}
	default: // DropOldest
		out = strings.Join(reversed(c.tail), "\n")
	}
	return charPass(out, c.cfg)
}

func reversed(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[len(lines)-1-i] = line
	}
	return out
}
