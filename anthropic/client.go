// Package anthropic provides a gagiteck.ModelClient backed by the Anthropic API.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"

	gagiteck "github.com/gagiteck/gagiteck-go"
)

// messageCreator abstracts the Anthropic Messages API so the client can be
// tested with a fake. Production code passes the real service.
type messageCreator interface {
	New(ctx context.Context, params sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// Client invokes Anthropic models through the official SDK.
type Client struct {
	messages messageCreator
}

var _ gagiteck.ModelClient = (*Client)(nil)

// New creates a Client. Credentials follow the Anthropic SDK conventions
// (ANTHROPIC_API_KEY) unless overridden with request options.
func New(opts ...option.RequestOption) *Client {
	c := sdk.NewClient(opts...)
	return &Client{messages: &c.Messages}
}

// NewWithAPIKey creates a Client with an explicit Anthropic API key.
func NewWithAPIKey(key string) *Client {
	return New(option.WithAPIKey(key))
}

// Invoke sends the conversation and tool schema to the Anthropic Messages API.
func (c *Client) Invoke(ctx context.Context, req gagiteck.ModelRequest) (*gagiteck.ModelResponse, error) {
	msg, err := c.messages.New(ctx, buildParams(req))
	if err != nil {
		return nil, mapError(err)
	}
	return convertResponse(msg), nil
}

// buildParams translates a provider-neutral request into Anthropic params.
func buildParams(req gagiteck.ModelRequest) sdk.MessageNewParams {
	params := sdk.MessageNewParams{
		Model:     sdk.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  convertMessages(req.Messages),
	}

	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = param.NewOpt(req.Temperature)
	}

	for _, def := range req.Tools {
		params.Tools = append(params.Tools, sdk.ToolUnionParam{
			OfTool: &sdk.ToolParam{
				Name:        def.Name,
				Description: param.NewOpt(def.Description),
				InputSchema: sdk.ToolInputSchemaParam{
					Properties: def.InputSchema.Properties,
					Required:   def.InputSchema.Required,
				},
			},
		})
	}
	if req.ToolChoice != "" {
		params.ToolChoice = sdk.ToolChoiceParamOfTool(req.ToolChoice)
	}

	return params
}

// convertMessages maps the neutral conversation onto Anthropic message params.
// Tool results travel as user messages per the Anthropic wire format.
func convertMessages(messages []gagiteck.Message) []sdk.MessageParam {
	out := make([]sdk.MessageParam, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case gagiteck.RoleUser:
			out = append(out, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))

		case gagiteck.RoleAssistant:
			var blocks []sdk.ContentBlockParamUnion
			if m.Content != "" {
				blocks = append(blocks, sdk.NewTextBlock(m.Content))
			}
			for _, call := range m.ToolCalls {
				blocks = append(blocks, sdk.ContentBlockParamUnion{
					OfToolUse: &sdk.ToolUseBlockParam{
						ID:    call.ID,
						Name:  call.Name,
						Input: call.Arguments,
					},
				})
			}
			out = append(out, sdk.NewAssistantMessage(blocks...))

		case gagiteck.RoleTool:
			blocks := make([]sdk.ContentBlockParamUnion, 0, len(m.ToolResults))
			for _, r := range m.ToolResults {
				blocks = append(blocks, sdk.NewToolResultBlock(r.ToolCallID, r.Content, r.IsError))
			}
			out = append(out, sdk.NewUserMessage(blocks...))
		}
	}
	return out
}

// convertResponse maps an Anthropic message back onto the neutral response.
func convertResponse(msg *sdk.Message) *gagiteck.ModelResponse {
	resp := &gagiteck.ModelResponse{
		Usage: gagiteck.Usage{
			InputTokens:              msg.Usage.InputTokens,
			OutputTokens:             msg.Usage.OutputTokens,
			CacheReadInputTokens:     msg.Usage.CacheReadInputTokens,
			CacheCreationInputTokens: msg.Usage.CacheCreationInputTokens,
		},
	}

	var text strings.Builder
	for _, block := range msg.Content {
		switch block.Type {
		case "text":
			text.WriteString(block.Text)
		case "tool_use":
			resp.ToolCalls = append(resp.ToolCalls, gagiteck.ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: json.RawMessage(block.Input),
			})
		}
	}
	resp.Text = text.String()

	switch msg.StopReason {
	case sdk.StopReasonToolUse:
		resp.StopReason = gagiteck.StopToolUse
	case sdk.StopReasonMaxTokens:
		resp.StopReason = gagiteck.StopMaxTokens
	default:
		resp.StopReason = gagiteck.StopEndTurn
	}
	return resp
}

// mapError translates SDK errors into the gagiteck error taxonomy.
func mapError(err error) error {
	var apierr *sdk.Error
	if errors.As(err, &apierr) {
		return &gagiteck.ProviderError{
			StatusCode: apierr.StatusCode,
			Message:    apierr.Error(),
		}
	}
	timeout := errors.Is(err, context.DeadlineExceeded)
	return &gagiteck.TransportError{Timeout: timeout, Err: err}
}
