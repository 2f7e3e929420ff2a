// Package logging assembles structured slog loggers used across krokindex.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and defines the standard attribute keys (component, source,
// path, event_type, correlation_id) so every ingestion pass emits log lines
// with the same shape. A no-op logger is provided for tests and wiring code
// that cannot fail.
package logging
