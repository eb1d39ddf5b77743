package gagiteck

import "encoding/json"

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCall is a model-issued request to execute a named tool with JSON arguments.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolResultBlock carries the output of one executed tool call back to the model.
type ToolResultBlock struct {
	ToolCallID string `json:"tool_call_id"`
	Content    string `json:"content"`
	IsError    bool   `json:"is_error,omitempty"`
}

// Message is one entry in a conversation. Order within a conversation is
// chronological and semantically significant.
//
// Assistant messages may carry ToolCalls; tool messages carry ToolResults.
type Message struct {
	Role        Role              `json:"role"`
	Content     string            `json:"content,omitempty"`
	ToolCalls   []ToolCall        `json:"tool_calls,omitempty"`
	ToolResults []ToolResultBlock `json:"tool_results,omitempty"`
}

// NewUserMessage builds a user message with text content.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage builds an assistant message with text content.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// newToolResultMessage builds a tool message carrying execution results.
func newToolResultMessage(results []ToolResultBlock) Message {
	return Message{Role: RoleTool, ToolResults: results}
}
