// Package config loads logpane's settings from a TOML file.
//
// The file lives at ~/.config/logpane/config.toml by default and every
// field is optional. Loading degrades gracefully: a missing file yields
// the defaults, unset fields keep their defaults, and out-of-range values
// are passed through untouched because each consuming component clamps its
// own setting (the store clamps capacity, the monitor clamps thresholds,
// the optimizer clamps limits). Only an unreadable or syntactically broken
// file is an error.
package config
