// Package telemetry groups the observability subpackages: logging
// (structured slog-based logging) and metrics (Prometheus instrumentation
// for validation runs).
package telemetry
