package logstore

import "time"

// Level classifies a captured record's severity.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// String returns the display form used in formatted output.
func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel maps a level name to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "WARN", "WARNING", "warn", "warning":
		return LevelWarn
	case "ERROR", "error", "ERR", "err":
		return LevelError
	default:
		return LevelInfo
	}
}

// Record is one captured diagnostic message. Callers receive records by
// value and must treat them as immutable; the pointer form is mutated only
// while a record sits on the pool's free list awaiting reuse.
type Record struct {
	Message string
	Level   Level
	Time    time.Time
	Trace   string
}
