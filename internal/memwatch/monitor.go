package memwatch

import (
	"runtime"
	"runtime/debug"
	"sync"
	"time"
)

const (
	minThreshold = 1024 // bytes
	minInterval  = 100 * time.Millisecond

	defaultThreshold = 10 << 20 // 10 MiB over baseline
	defaultInterval  = time.Second
)

// Stats is a point-in-time snapshot of the monitor's counters.
type Stats struct {
	Baseline          uint64
	Current           uint64
	Peak              uint64
	NormalThreshold   uint64
	CriticalThreshold uint64
	NormalCleanups    uint64
	CriticalCleanups  uint64
	Monitoring        bool
}

// Monitor samples process memory growth relative to a baseline and fires
// threshold signals when usage crosses configured limits. It holds no
// process-wide state; every field lives on the instance.
type Monitor struct {
	mu       sync.Mutex
	sampler  Sampler
	now      func() time.Time
	interval time.Duration

	baseline   uint64
	current    uint64
	peak       uint64
	lastTotal  uint64
	lastSample time.Time

	normal   uint64
	critical uint64

	monitoring  bool
	everStarted bool

	normalCount   uint64
	criticalCount uint64

	onNormal   []func(Stats)
	onCritical []func(Stats)
	onStats    []func(Stats)
}

// NewMonitor creates a monitor driven by the given sampler. A nil sampler
// selects the platform process sampler.
func NewMonitor(sampler Sampler) *Monitor {
	if sampler == nil {
		sampler = ProcessSampler()
	}
	return &Monitor{
		sampler:  sampler,
		now:      time.Now,
		interval: defaultInterval,
		normal:   defaultThreshold,
		critical: 2 * defaultThreshold,
	}
}

// OnThreshold registers a callback fired when usage reaches the normal
// threshold. Delivery order follows registration order.
func (m *Monitor) OnThreshold(fn func(Stats)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.onNormal = append(m.onNormal, fn)
	m.mu.Unlock()
}

// OnCritical registers a callback fired when usage reaches the critical
// threshold.
func (m *Monitor) OnCritical(fn func(Stats)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.onCritical = append(m.onCritical, fn)
	m.mu.Unlock()
}

// OnStats registers a callback fired with every sample, threshold or not.
func (m *Monitor) OnStats(fn func(Stats)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.onStats = append(m.onStats, fn)
	m.mu.Unlock()
}

// Start enables monitoring and (re-)captures the baseline reading.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if total, err := m.sampler(); err == nil {
		m.baseline = total
		m.lastTotal = total
	}
	m.monitoring = true
	m.everStarted = true
	m.lastSample = time.Time{}
}

// Stop freezes the monitor. Counters and baseline are preserved.
func (m *Monitor) Stop() {
	m.mu.Lock()
	m.monitoring = false
	m.mu.Unlock()
}

// Monitoring reports whether Update currently samples.
func (m *Monitor) Monitoring() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.monitoring
}

// SetThreshold sets the normal threshold in bytes, clamped to at least
// 1024. The critical threshold is raised if it falls under twice the new
// normal value.
func (m *Monitor) SetThreshold(bytes uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if bytes < minThreshold {
		bytes = minThreshold
	}
	m.normal = bytes
	if m.critical < 2*m.normal {
		m.critical = 2 * m.normal
	}
}

// SetCriticalThreshold sets the critical threshold in bytes, clamped to at
// least twice the normal threshold.
func (m *Monitor) SetCriticalThreshold(bytes uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if bytes < 2*m.normal {
		bytes = 2 * m.normal
	}
	m.critical = bytes
}

// SetInterval sets the minimum spacing between Update samples, clamped to
// at least 100ms.
func (m *Monitor) SetInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d < minInterval {
		d = minInterval
	}
	m.interval = d
}

// Update samples if monitoring is active and the configured interval has
// elapsed since the previous sample; otherwise it is a no-op. It is meant
// to be driven by an external periodic loop.
func (m *Monitor) Update() {
	m.mu.Lock()
	if !m.monitoring {
		m.mu.Unlock()
		return
	}
	now := m.now()
	if !m.lastSample.IsZero() && now.Sub(m.lastSample) < m.interval {
		m.mu.Unlock()
		return
	}
	m.sampleLocked(now)
}

// ForceCheck samples immediately, ignoring the interval and the monitoring
// flag. It is a safe no-op when monitoring was never started.
func (m *Monitor) ForceCheck() {
	m.mu.Lock()
	if !m.everStarted {
		m.mu.Unlock()
		return
	}
	m.sampleLocked(m.now())
}

// sampleLocked takes one sample, evaluates thresholds, and fires signals.
// Callers must hold m.mu; the lock is released before callbacks run so a
// subscriber may call back into the monitor. Threshold evaluation and the
// matching counter bump happen as one unit under the lock.
func (m *Monitor) sampleLocked(now time.Time) {
	total, err := m.sampler()
	if err != nil {
		total = m.lastTotal
	}
	m.lastTotal = total
	m.lastSample = now

	if total > m.baseline {
		m.current = total - m.baseline
	} else {
		m.current = 0
	}
	if m.current > m.peak {
		m.peak = m.current
	}

	var fire []func(Stats)
	switch {
	case m.current >= m.critical:
		m.criticalCount++
		fire = append(fire, m.onCritical...)
	case m.current >= m.normal:
		m.normalCount++
		fire = append(fire, m.onNormal...)
	}
	fire = append(fire, m.onStats...)
	snap := m.statsLocked()
	m.mu.Unlock()

	for _, fn := range fire {
		notify(fn, snap)
	}
}

func notify(fn func(Stats), snap Stats) {
	defer func() { _ = recover() }()
	fn(snap)
}

// Reset re-baselines at the current reading and zeroes peak usage and both
// cleanup counters. Thresholds, interval, and the monitoring flag are left
// untouched.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if total, err := m.sampler(); err == nil {
		m.baseline = total
		m.lastTotal = total
	} else {
		m.baseline = m.lastTotal
	}
	m.current = 0
	m.peak = 0
	m.normalCount = 0
	m.criticalCount = 0
}

// TriggerReclamation forces a garbage collection pass and asks the runtime
// to return free memory to the OS, reporting the heap bytes released. The
// result is clamped at zero when the heap grew during the pass.
func (m *Monitor) TriggerReclamation() uint64 {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	runtime.GC()
	debug.FreeOSMemory()
	runtime.ReadMemStats(&after)
	if after.HeapAlloc >= before.HeapAlloc {
		return 0
	}
	return before.HeapAlloc - after.HeapAlloc
}

// Stats returns a snapshot of the monitor's counters.
func (m *Monitor) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statsLocked()
}

func (m *Monitor) statsLocked() Stats {
	return Stats{
		Baseline:          m.baseline,
		Current:           m.current,
		Peak:              m.peak,
		NormalThreshold:   m.normal,
		CriticalThreshold: m.critical,
		NormalCleanups:    m.normalCount,
		CriticalCleanups:  m.criticalCount,
		Monitoring:        m.monitoring,
	}
}
