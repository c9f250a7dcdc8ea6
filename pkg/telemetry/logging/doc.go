// Package logging provides structured logging for turnlint, built on
// log/slog with configurable level and output format. The CLI builds one
// logger at startup and passes it down; packages never log through a
// process-wide default.
package logging
