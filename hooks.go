package gagiteck

import (
	"context"
	"encoding/json"
)

// PreToolDecision is the outcome of a PreToolUse hook. A blocked call is
// reported to the model as an error tool result instead of executing.
// UpdatedInput, when non-nil, replaces the tool's input.
type PreToolDecision struct {
	Block        bool
	Reason       string
	UpdatedInput json.RawMessage
}

// Hooks intercept tool execution inside the agent loop. Both fields are
// optional. A PreToolUse error blocks the call; PostToolUse errors are
// ignored by the loop.
type Hooks struct {
	PreToolUse  func(ctx context.Context, toolName string, input json.RawMessage) (*PreToolDecision, error)
	PostToolUse func(ctx context.Context, toolName string, input json.RawMessage, output string, isError bool) error
}
