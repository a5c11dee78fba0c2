// Package logging provides structured logging using Go's standard library log/slog.
// It supports JSON output for machines and text output for terminal diagnostics,
// and integrates with Uber's Fx dependency injection framework.
package logging
