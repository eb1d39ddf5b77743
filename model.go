package gagiteck

import "context"

// ToolSchema is a JSON Schema object describing a tool's input parameters.
type ToolSchema struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
	Required   []string       `json:"required,omitempty"`
}

// ToolDef is the provider-neutral advertisement of a tool: what the model
// sees when deciding whether to call it.
type ToolDef struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	InputSchema ToolSchema `json:"input_schema"`
}

// StopReason indicates why the model stopped producing output.
type StopReason string

const (
	// StopEndTurn means the model produced a final answer.
	StopEndTurn StopReason = "end_turn"
	// StopToolUse means the model is requesting one or more tool executions.
	StopToolUse StopReason = "tool_use"
	// StopMaxTokens means the response was truncated by the token limit.
	StopMaxTokens StopReason = "max_tokens"
)

// Usage tracks token consumption for one model invocation or a whole run.
type Usage struct {
	InputTokens              int64 `json:"input_tokens"`
	OutputTokens             int64 `json:"output_tokens"`
	CacheReadInputTokens     int64 `json:"cache_read_input_tokens,omitempty"`
	CacheCreationInputTokens int64 `json:"cache_creation_input_tokens,omitempty"`
}

// Add accumulates another usage sample into u.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.CacheReadInputTokens += other.CacheReadInputTokens
	u.CacheCreationInputTokens += other.CacheCreationInputTokens
}

// ModelRequest is one round-trip to a model provider: the conversation so
// far plus the advertised tool definitions.
type ModelRequest struct {
	Model       string
	System      string
	Messages    []Message
	Tools       []ToolDef
	ToolChoice  string // force the named tool; empty means the model decides
	MaxTokens   int
	Temperature float64
}

// ModelResponse is the provider's answer: either a final text answer
// (StopEndTurn) or a request to execute tools (StopToolUse with ToolCalls).
type ModelResponse struct {
	StopReason StopReason
	Text       string
	ToolCalls  []ToolCall
	Usage      Usage
}

// ModelClient sends a conversation plus tool schema to a model provider.
// Implementations return *TransportError for network/timeout failures and
// *ProviderError for remote-side errors; the agent loop propagates both to
// the caller wrapped in a *RunError.
//
// The [anthropic] sub-package provides a ModelClient backed by the
// Anthropic API.
type ModelClient interface {
	Invoke(ctx context.Context, req ModelRequest) (*ModelResponse, error)
}
