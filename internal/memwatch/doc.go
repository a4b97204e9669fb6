// Package memwatch tracks process memory growth and signals threshold
// crossings so a coordinator can shed diagnostic state before the host
// application feels the pressure.
//
// # Model
//
// A Monitor measures usage relative to a baseline captured at Start:
//
//	usage = max(0, currentTotal - baseline)
//
// Sampling is polling-based: a coordinating loop calls Update on a cadence,
// and the monitor itself decides whether enough time has passed since the
// previous sample. ForceCheck bypasses both the interval gate and the
// monitoring flag (but stays a no-op until the first Start so an unused
// monitor never fires).
//
// Two thresholds gate the signals. The critical threshold is always kept at
// two times the normal threshold or higher; setters clamp rather than
// error. While usage sits at or above a threshold, the matching signal
// re-fires on every sample — the monitor deliberately does not
// edge-detect, so a sluggish cleanup gets repeated nudges.
//
// # Sampling
//
// The default Sampler reads resident set size through gopsutil; the
// runtime fallback reads Go heap statistics. Tests inject a deterministic
// sampler. A failed sample reuses the previous reading instead of
// surfacing an error.
package memwatch
