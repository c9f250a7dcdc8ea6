// Package cli provides shared helpers for turnlint commands: typed command
// and configuration errors, and signal-driven context cancellation for the
// long-running watch mode.
package cli
