package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config carries every tunable the logpane engine exposes. Values are
// handed to the owning component as independent settings; each component
// clamps its own value, so nothing here fails on out-of-range input.
type Config struct {
	// Capture buffer
	Capacity int `toml:"capacity"`
	PoolSize int `toml:"pool_size"`

	// Memory monitor
	MemoryThreshold   uint64 `toml:"memory_threshold"`          // bytes over baseline
	CriticalThreshold uint64 `toml:"critical_memory_threshold"` // bytes over baseline
	SampleIntervalMS  int    `toml:"sample_interval_ms"`

	// Display shaping
	MaxChars        int     `toml:"max_chars"`
	MaxLines        int     `toml:"max_lines"`
	Strategy        string  `toml:"strategy"`
	TruncationRatio float64 `toml:"truncation_ratio"`

	// Demo producer and optional startup ingest
	DemoRate int    `toml:"demo_rate"` // synthetic records per second
	LogFile  string `toml:"log_file"`  // file tailed into the store at startup
}

const defaultConfigPath = "~/.config/logpane/config.toml"

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Capacity:          500,
		PoolSize:          128,
		MemoryThreshold:   32 << 20,
		CriticalThreshold: 64 << 20,
		SampleIntervalMS:  1000,
		MaxChars:          8000,
		MaxLines:          200,
		Strategy:          "drop-oldest",
		TruncationRatio:   0.5,
		DemoRate:          5,
	}
}

// Load locates and parses the logpane config, falling back to defaults when
// the file is missing. Unset fields keep their defaults; range validation
// belongs to the components consuming each value.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.merge(raw)

	if cfg.LogFile != "" {
		cfg.LogFile = mustExpand(cfg.LogFile)
	}
	return cfg, nil
}

// rawConfig mirrors Config for decoding. The ratio is a pointer so an
// explicit 0.0, which is a valid setting, stays distinguishable from an
// unset field.
type rawConfig struct {
	Capacity          int      `toml:"capacity"`
	PoolSize          int      `toml:"pool_size"`
	MemoryThreshold   uint64   `toml:"memory_threshold"`
	CriticalThreshold uint64   `toml:"critical_memory_threshold"`
	SampleIntervalMS  int      `toml:"sample_interval_ms"`
	MaxChars          int      `toml:"max_chars"`
	MaxLines          int      `toml:"max_lines"`
	Strategy          string   `toml:"strategy"`
	TruncationRatio   *float64 `toml:"truncation_ratio"`
	DemoRate          int      `toml:"demo_rate"`
	LogFile           string   `toml:"log_file"`
}

// merge overlays set fields from raw onto the defaults. Zero means unset
// for the remaining fields; components clamp explicit out-of-range values.
func (c *Config) merge(raw rawConfig) {
	if raw.Capacity != 0 {
		c.Capacity = raw.Capacity
	}
	if raw.PoolSize != 0 {
		c.PoolSize = raw.PoolSize
	}
	if raw.MemoryThreshold != 0 {
		c.MemoryThreshold = raw.MemoryThreshold
	}
	if raw.CriticalThreshold != 0 {
		c.CriticalThreshold = raw.CriticalThreshold
	}
	if raw.SampleIntervalMS != 0 {
		c.SampleIntervalMS = raw.SampleIntervalMS
	}
	if raw.MaxChars != 0 {
		c.MaxChars = raw.MaxChars
	}
	if raw.MaxLines != 0 {
		c.MaxLines = raw.MaxLines
	}
	if s := strings.TrimSpace(raw.Strategy); s != "" {
		c.Strategy = s
	}
	if raw.TruncationRatio != nil {
		c.TruncationRatio = *raw.TruncationRatio
	}
	if raw.DemoRate != 0 {
		c.DemoRate = raw.DemoRate
	}
	if f := strings.TrimSpace(raw.LogFile); f != "" {
		c.LogFile = f
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
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
