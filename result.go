package gagiteck

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ToolInvocation records one tool execution during a run, in execution order.
type ToolInvocation struct {
	ToolName   string          `json:"tool_name"`
	Arguments  json.RawMessage `json:"arguments"`
	Output     string          `json:"output"`
	IsError    bool            `json:"is_error,omitempty"`
	DurationMs int64           `json:"duration_ms"`
}

// RunResult is the outcome of one Agent.Run invocation. It is created fresh
// per run and owned by the caller.
type RunResult struct {
	// Text is the model's final answer. Empty when the run ended via a
	// structured output tool; see Structured.
	Text string

	// Structured holds the raw JSON captured by a WithOutputFormat hidden
	// tool, if one was configured.
	Structured json.RawMessage

	// ToolInvocations is the ordered trace of tool calls made during the run.
	ToolInvocations []ToolInvocation

	Model      string
	NumTurns   int
	DurationMs int64
	Usage      Usage
	TotalCost  decimal.Decimal
}

// DecodeStructured unmarshals the structured output of a run into T.
func DecodeStructured[T any](r *RunResult) (*T, error) {
	var out T
	if err := json.Unmarshal(r.Structured, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
