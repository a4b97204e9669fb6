package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/logpane/logpane/internal/logstore"
)

// maxTailLines caps the ring allocation. It mirrors the display store's
// maximum capacity; lines beyond it could never be kept anyway.
const maxTailLines = 1000

// Tail returns records for at most maxLines from the end of the file at
// path, oldest first. A missing file yields nil, nil so startup ingest is
// optional by construction. Line budgets above 1000 are clamped.
func Tail(path string, maxLines int) ([]logstore.Record, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	if maxLines > maxTailLines {
		maxLines = maxTailLines
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	records := make([]logstore.Record, 0, count)
	start := 0
	if count == maxLines {
		start = idx
	}
	for i := 0; i < count; i++ {
		line := ring[(start+i)%maxLines]
		if line == "" {
			continue
		}
		records = append(records, logstore.Record{
			Message: line,
			Level:   GuessLevel(line),
		})
	}
	return records, nil
}

// GuessLevel inspects a raw log line for a conventional severity token.
// Unrecognized lines are treated as info.
func GuessLevel(line string) logstore.Level {
	upper := strings.ToUpper(line)
	switch {
	case containsToken(upper, "ERROR"), containsToken(upper, "FATAL"), containsToken(upper, "PANIC"):
		return logstore.LevelError
	case containsToken(upper, "WARN"), containsToken(upper, "WARNING"):
		return logstore.LevelWarn
	default:
		return logstore.LevelInfo
	}
}

// containsToken reports whether tok appears in s without alphabetic
// neighbors, so "ERROR" matches "[ERROR]" but not "TERRORS".
func containsToken(s, tok string) bool {
	for from := 0; ; {
		idx := strings.Index(s[from:], tok)
		if idx < 0 {
			return false
		}
		idx += from
		before := idx - 1
		after := idx + len(tok)
		leftOK := before < 0 || !isAlpha(s[before])
		rightOK := after >= len(s) || !isAlpha(s[after])
		if leftOK && rightOK {
			return true
		}
		from = idx + 1
	}
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
