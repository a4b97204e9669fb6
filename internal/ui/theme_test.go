package ui

import (
	"testing"

	"github.com/logpane/logpane/internal/logstore"
)

func TestGetTheme_KnownAndFallback(t *testing.T) {
	if got := GetTheme("Slate"); got.Name != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q", got.Name)
	}
	if got := GetTheme("nope"); got.Name != "Nightfox" {
		t.Fatalf("GetTheme(unknown).Name = %q, want Nightfox fallback", got.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	start := themeOrder[0]
	current := start
	for range themeOrder {
		current = NextTheme(current)
	}
	if current != start {
		t.Fatalf("cycling all themes returned %q, want %q", current, start)
	}
	if NextTheme("unknown") != themeOrder[0] {
		t.Fatalf("NextTheme(unknown) != first theme")
	}
}

func TestThemeNames_MatchesRegistry(t *testing.T) {
	for _, name := range ThemeNames() {
		if _, ok := themes[name]; !ok {
			t.Fatalf("theme %q listed but not registered", name)
		}
	}
}

func TestColorizer_MatchesThemeStyles(t *testing.T) {
	theme := GetTheme("Nightfox")
	styles := theme.Styles()
	colorize := theme.Colorizer()

	// Compare against the same styles so the assertion holds regardless of
	// the terminal color profile tests run under.
	if got, want := colorize(logstore.LevelError, "x"), styles.ErrorLine.Render("x"); got != want {
		t.Fatalf("error markup = %q, want %q", got, want)
	}
	if got, want := colorize(logstore.LevelWarn, "x"), styles.WarnLine.Render("x"); got != want {
		t.Fatalf("warn markup = %q, want %q", got, want)
	}
	if got, want := colorize(logstore.LevelInfo, "x"), styles.InfoLine.Render("x"); got != want {
		t.Fatalf("info markup = %q, want %q", got, want)
	}
}
