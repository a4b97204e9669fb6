// Package prefs handles logpane viewer preferences persistence.
// Preferences are stored in ~/.config/logpane/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds per-user viewer preferences.
type Prefs struct {
	Theme  string
	Follow bool // auto-scroll to the newest record on startup
}

const (
	defaultPrefsPath = "~/.config/logpane/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. Every failure mode degrades
// to the defaults; a broken prefs file must never keep the viewer from
// starting.
func Load(path string) Prefs {
	defaults := Prefs{Theme: defaultTheme, Follow: true}

	resolved, err := resolvePath(path)
	if err != nil {
		return defaults
	}

	file, err := os.Open(resolved)
	if err != nil {
		return defaults
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return defaults
	}

	var raw struct {
		Theme  string `toml:"theme"`
		Follow *bool  `toml:"follow"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return defaults
	}

	prefs := defaults
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		prefs.Theme = theme
	}
	if raw.Follow != nil {
		prefs.Follow = *raw.Follow
	}
	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	raw := struct {
		Theme  string `toml:"theme"`
		Follow bool   `toml:"follow"`
	}{Theme: p.Theme, Follow: p.Follow}

	bytes, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
