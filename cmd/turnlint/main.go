// Turnlint validates multi-turn conversational datasets for LLM training.
//
// It checks each conversation against a configurable schema: required
// fields and types per turn, speaker roles, tool-call triplets, content
// length bounds, confidence-score ranges, and turn_id sequencing. It
// reports every problem found, never just the first.
//
// Usage:
//
//	# Validate one or more dataset files with the default rules
//	turnlint validate conversations.json
//
//	# Validate with a custom rule configuration
//	turnlint validate --config turnlint.yaml conversations.jsonl
//
//	# Emit a markdown report to a file
//	turnlint validate --format markdown --output report.md conversations.json
//
//	# Re-validate on every change, exposing Prometheus metrics
//	turnlint watch datasets/ --metrics-addr :9464
//
//	# Write example dataset and configuration files
//	turnlint examples
//
// The exit code is 0 when every input validates cleanly, non-zero otherwise.
package main

func main() {
	Execute()
}
