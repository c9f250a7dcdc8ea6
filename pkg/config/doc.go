// Package config defines the validation configuration for turnlint.
//
// A Config enumerates every tunable rule parameter: turn-count and length
// bounds, required and optional field sets, allowed speakers and tools,
// tool-triplet requirements, the confidence-score range, and behavior flags
// (strict mode, sequence checking, empty-message handling).
//
// Configurations are loaded from YAML with Load, which applies per-field
// defaults and validates internal consistency (min <= max invariants,
// non-empty speaker set) before returning. A loaded Config is immutable and
// safe to share across concurrent validations.
//
//	cfg, err := config.Load("turnlint.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Use Default for an all-defaults configuration.
package config
