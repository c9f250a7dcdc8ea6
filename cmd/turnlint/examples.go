package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"turnlint-hq/turnlint/pkg/cli"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [DIR]",
	Short: "Write example dataset and configuration files",
	Long: `Write example files for trying out the validator:

  valid_example.json    - a conversation that passes the default rules
  invalid_example.json  - a conversation with deliberate errors
  turnlint.yaml         - a rule configuration with the defaults spelled out

Files are written to DIR (default: current directory).`,
	Args: cobra.MaximumNArgs(1),
	RunE: writeExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

const validExample = `[
  {
    "turn_id": 1,
    "speaker": "user",
    "message": "What's the weather like today?"
  },
  {
    "turn_id": 2,
    "speaker": "assistant",
    "assistant_reply": "I'll help you check the weather.",
    "tool_used": "weather_api",
    "tool_input": {"location": "current"},
    "tool_output": {"temperature": "72F", "condition": "sunny"}
  },
  {
    "turn_id": 3,
    "speaker": "user",
    "message": "Thanks!"
  },
  {
    "turn_id": 4,
    "speaker": "assistant",
    "assistant_reply": "You're welcome! Is there anything else I can help you with?"
  }
]
`

const invalidExample = `[
  {
    "turn_id": 1,
    "speaker": "user",
    "message": "Hello"
  },
  {
    "speaker": "assistant",
    "assistant_reply": "Hi there!"
  },
  {
    "turn_id": "3",
    "speaker": "invalid_speaker",
    "assistant_reply": "This has errors"
  },
  {
    "turn_id": 5,
    "speaker": "assistant",
    "assistant_reply": "Using a tool",
    "tool_used": "search",
    "tool_input": {"query": "test"}
  }
]
`

const exampleConfig = `# Turnlint rule configuration. Every field is optional; unset fields take
# the defaults shown here.
min_turns: 1
max_turns: 10000
min_message_length: 1
max_message_length: 10000
min_assistant_reply_length: 1
max_assistant_reply_length: 20000
required_fields: []
optional_fields:
  - tool_used
  - tool_input
  - tool_output
  - confidence_score
  - metadata
allowed_speakers:
  - user
  - assistant
# allowed_tools:        # unrestricted when unset
#   - weather_api
#   - search
require_tool_input: true
require_tool_output: true
confidence_score_min: 0.0
confidence_score_max: 1.0
strict_mode: false
check_turn_sequence: true
allow_empty_messages: false
# metadata_schema: metadata.schema.json
`

func writeExamples(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	files := map[string]string{
		"valid_example.json":   validExample,
		"invalid_example.json": invalidExample,
		"turnlint.yaml":        exampleConfig,
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return cli.NewCommandError("examples", fmt.Errorf("failed to write %s: %w", path, err))
		}
	}

	fmt.Println("Created example files:")
	fmt.Printf("  %s\n", filepath.Join(dir, "valid_example.json"))
	fmt.Printf("  %s\n", filepath.Join(dir, "invalid_example.json"))
	fmt.Printf("  %s\n", filepath.Join(dir, "turnlint.yaml"))
	return nil
}
