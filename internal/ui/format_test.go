package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/logpane/logpane/internal/logstore"
)

func sampleRecords() []logstore.Record {
	ts := time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)
	return []logstore.Record{
		{Message: "starting up", Level: logstore.LevelInfo, Time: ts},
		{Message: "cache miss ratio high", Level: logstore.LevelWarn, Time: ts.Add(time.Second)},
		{Message: "connection lost", Level: logstore.LevelError, Time: ts.Add(2 * time.Second)},
	}
}

func TestFormatRecords_AllLevels(t *testing.T) {
	out := formatRecords(sampleRecords(), logstore.LevelInfo)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("formatted %d lines, want 3", len(lines))
	}
	if lines[0] != "[2026-08-26 09:30:00][INFO] starting up" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[2], "[ERROR] connection lost") {
		t.Fatalf("line 2 = %q", lines[2])
	}
}

func TestFormatRecords_FiltersBelowMin(t *testing.T) {
	out := formatRecords(sampleRecords(), logstore.LevelWarn)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("formatted %d lines, want 2", len(lines))
	}
	if strings.Contains(out, "starting up") {
		t.Fatalf("info record survived warn+ filter: %q", out)
	}

	out = formatRecords(sampleRecords(), logstore.LevelError)
	if strings.Count(out, "\n") != 0 || !strings.Contains(out, "connection lost") {
		t.Fatalf("error-only filter = %q", out)
	}
}

func TestFormatRecords_Empty(t *testing.T) {
	if out := formatRecords(nil, logstore.LevelInfo); out != "" {
		t.Fatalf("formatRecords(nil) = %q, want empty", out)
	}
}

func TestColorizeLines_PicksStyleByToken(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()
	text := "[2026-08-26 09:30:00][ERROR] boom\n[2026-08-26 09:30:01][INFO] fine"
	out := colorizeLines(text, styles)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("colorized %d lines, want 2", len(lines))
	}
	if want := styles.ErrorLine.Render("[2026-08-26 09:30:00][ERROR] boom"); lines[0] != want {
		t.Fatalf("error line not styled as error:\n got %q\nwant %q", lines[0], want)
	}
	if want := styles.InfoLine.Render("[2026-08-26 09:30:01][INFO] fine"); lines[1] != want {
		t.Fatalf("info line not styled as info:\n got %q\nwant %q", lines[1], want)
	}
}

func TestColorizeLines_Empty(t *testing.T) {
	if out := colorizeLines("", GetTheme("Slate").Styles()); out != "" {
		t.Fatalf("colorizeLines(empty) = %q, want empty", out)
	}
}
