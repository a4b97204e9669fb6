package ui

import (
	"strings"

	"github.com/logpane/logpane/internal/logstore"
)

// formatRecords renders records at or above min severity in the store's
// display shape, "[<timestamp>][<LEVEL>] <message>", oldest first.
func formatRecords(records []logstore.Record, min logstore.Level) string {
	var b strings.Builder
	first := true
	for _, rec := range records {
		if rec.Level < min {
			continue
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString("[")
		b.WriteString(rec.Time.Format("2006-01-02 15:04:05"))
		b.WriteString("][")
		b.WriteString(rec.Level.String())
		b.WriteString("] ")
		b.WriteString(rec.Message)
	}
	return b.String()
}

// colorizeLines tints each display line by the severity token it carries.
// Colorizing happens after truncation so escape sequences never count
// against the display budgets. Lines without a recognizable token render
// in the info style.
func colorizeLines(text string, styles Styles) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = colorizeLine(line, styles)
	}
	return strings.Join(lines, "\n")
}

func colorizeLine(line string, styles Styles) string {
	switch {
	case strings.Contains(line, "[ERROR]"):
		return styles.ErrorLine.Render(line)
	case strings.Contains(line, "[WARN]"):
		return styles.WarnLine.Render(line)
	default:
		return styles.InfoLine.Render(line)
	}
}
