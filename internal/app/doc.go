// Package app is the composition root for logpane.
//
// # Overview
//
// Run wires the engine together and blocks in the TUI:
//
//  1. Load configuration from ~/.config/logpane/config.toml
//  2. Build the entry pool, capture store, memory monitor, and optimizer
//  3. Route the stdlib logger and any configured log file into the store
//     through the fan-out sink
//  4. Connect threshold signals to cleanup (WireCleanup)
//  5. Launch the coordinating loop and the optional demo producer
//  6. Start the console and block until exit
//
// # Coordinating Loop
//
// The memory monitor is polling-based: it never samples on its own. The
// coordinator goroutine ticks every 250ms and calls Update; the monitor's
// own sampling interval decides whether a tick becomes a sample. Cleanup is
// two-staged: a normal threshold crossing evicts the oldest half of the
// buffer, a critical crossing clears it entirely and triggers a runtime
// reclamation pass. Because threshold signals re-fire while usage stays
// high, a cleanup that frees too little is retried on the next sample.
//
// # Demo Producer
//
// With demo_rate > 0 (the default when no config file exists) a background
// goroutine feeds synthetic service diagnostics into the sink so the
// binary is explorable standalone. Set demo_rate = -1 to disable it and
// point log_file at a real log instead; both producers write through the
// same fan-out, so they also compose.
package app
