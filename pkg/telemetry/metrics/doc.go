// Package metrics exposes Prometheus metrics for validation runs: run
// counts by outcome, findings by category, turns validated, and pass
// duration. One-shot CLI runs don't need metrics; watch mode observes every
// re-validation and can serve the registry over HTTP.
package metrics
