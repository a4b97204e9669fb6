// Package display shapes captured log text to fit a fixed-capacity
// rendering surface.
//
// # Overview
//
// An Optimizer enforces two budgets, a character limit and a line limit,
// and discards the overflow according to a Strategy:
//
//   - DropOldest: keep the trailing content (default; recent logs matter)
//   - DropNewest: keep the leading content
//   - DropMiddle: keep a head and a tail, with one omission marker between
//
// Text already within both budgets passes through untouched, so callers can
// run every frame's content through Optimize unconditionally.
//
// # DropMiddle Split
//
// The retained line budget is the line limit minus one (the marker line).
// The ratio setting gives the head its share of that budget; the head gets
// the ceiling and the tail the floor, so an odd budget biases toward the
// head. The same rule applies to the character stage.
//
// # Incremental Mode
//
// OptimizeIncremental processes very large inputs cooperatively: each call
// scans until a wall-clock budget elapses, then yields a partial result and
// a resumable Cursor. Progress is driven purely by repeated calls — there
// are no goroutines or timers inside. The scan is strategy-aware, so
// DropOldest never walks the bulk of a huge input forward; it collects
// trailing lines from the end.
//
// # Failure Behavior
//
// Nothing here returns an error. Empty input yields the empty string,
// out-of-range configuration is clamped (limits never reach zero), and the
// character stage counts runes so multi-byte text is never split mid
// character.
package display
