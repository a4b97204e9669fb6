// Package ui provides the Bubble Tea console that renders captured
// diagnostics.
//
// # Overview
//
// The console is a single-view TUI: a scrolling viewport of formatted log
// lines between a header (filter and follow state) and a status footer
// (buffer fill, pool reuse ratio, memory growth, truncation count).
//
// On every tick the model pulls the store's formatted text, runs it through
// the display optimizer so it fits the configured budgets, colorizes the
// result by severity token, and hands it to the viewport. Colorizing
// happens after truncation; otherwise lipgloss escape sequences would count
// against the character budget.
//
// # Keys
//
//	q / ctrl+c   quit
//	f            toggle follow (auto-scroll to newest)
//	v            cycle level filter: all → warn+ → error
//	c            clear captured records
//	x            evict the oldest half
//	m            force a memory check
//	T            cycle theme (persisted to prefs)
//	h / ?        help overlay
//
// Manual scrolling turns follow off, matching what a reader expects when
// they page up through history.
//
// # Ownership
//
// The UI owns no engine state. The store, pool, monitor, and optimizer are
// constructed by the app layer and passed in; the console only reads their
// snapshots and invokes their public operations, so it stays a thin
// replaceable surface over the core.
package ui
