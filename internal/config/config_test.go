package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_OverridesAndKeepsUnsetDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
capacity = 200
strategy = "  drop-middle  "
truncation_ratio = 0.7
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Capacity != 200 {
		t.Fatalf("Capacity = %d, want 200", cfg.Capacity)
	}
	if cfg.Strategy != "drop-middle" {
		t.Fatalf("Strategy = %q, want drop-middle", cfg.Strategy)
	}
	if cfg.TruncationRatio != 0.7 {
		t.Fatalf("TruncationRatio = %v, want 0.7", cfg.TruncationRatio)
	}
	if cfg.PoolSize != Default().PoolSize {
		t.Fatalf("PoolSize = %d, want default %d", cfg.PoolSize, Default().PoolSize)
	}
	if cfg.MaxLines != Default().MaxLines {
		t.Fatalf("MaxLines = %d, want default %d", cfg.MaxLines, Default().MaxLines)
	}
}

func TestLoad_ExpandsLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_file = "~/diag/app.log"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`capacity = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_ExplicitZeroRatioIsKept(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`truncation_ratio = 0.0`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TruncationRatio != 0 {
		t.Fatalf("TruncationRatio = %v, want explicit 0 preserved", cfg.TruncationRatio)
	}
}

func TestLoad_OutOfRangeValuesPassThrough(t *testing.T) {
	// Components own clamping; the loader must not reject or mangle.
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
capacity = 999999
max_chars = 3
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Capacity != 999999 || cfg.MaxChars != 3 {
		t.Fatalf("cfg = %+v, want raw out-of-range values preserved", cfg)
	}
}
