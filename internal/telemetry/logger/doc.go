// Package logger provides structured logging for sortbench.
//
// This package wraps log/slog:
//
//   - logger.go: handler selection, level control and the default logger
//   - context.go: context-carried logger and run id
//   - truncate.go: clipping of oversized attribute values
//
// Logs go to stderr so the report on stdout stays machine readable.
package logger
