// Package report renders validation results for people: console text for
// interactive runs and markdown for documents checked into review. JSON
// output for CI pipelines lives in the CLI layer, since a Result marshals
// directly.
package report
