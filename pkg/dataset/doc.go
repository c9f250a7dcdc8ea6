// Package dataset validates multi-turn conversational datasets against a
// configurable schema.
//
// A dataset is an ordered array of turn objects, each carrying a turn_id,
// a speaker, the speaker's content (message or assistant_reply), and
// optionally a tool-call triplet (tool_used, tool_input, tool_output), a
// confidence_score, and metadata.
//
// The package is organized into subpackages:
//
//   - errors: the closed error taxonomy and the Result aggregate
//   - loader: JSON array / JSON Lines / YAML parsing
//   - validator: the conversation and per-turn rule engine
//   - report: console and markdown rendering of a Result
//
// # Basic usage
//
// Validate a file with the default configuration:
//
//	result := dataset.ValidateFile("conversations.json", config.Default())
//	if !result.IsValid {
//	    for _, err := range result.Errors {
//	        fmt.Println(err)
//	    }
//	}
//
// Validation is synchronous, pure, and bounded by input size. Multiple
// datasets may be validated concurrently; a Config is read-only after
// construction and safe to share.
package dataset
