package gagiteck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagiteck/gagiteck-go/internal/budget"
)

// loopConfig holds everything the agent loop needs to execute one run.
type loopConfig struct {
	agentName string
	client    ModelClient
	tools     *ToolRegistry

	model       string
	system      string
	maxTokens   int
	temperature float64
	maxTurns    int

	// requestTimeout bounds each individual model invocation. Zero means
	// the caller's context is the only limit.
	requestTimeout time.Duration

	hooks  *Hooks
	budget *budget.Tracker
	output *OutputFormat

	// messages is the mutable conversation history. The loop appends to it.
	messages *[]Message
}

// runLoop is the core agent execution loop. One iteration is one turn: a
// round-trip to the model client followed by tool execution when requested.
func runLoop(ctx context.Context, cfg loopConfig) (*RunResult, error) {
	start := time.Now()

	result := &RunResult{Model: cfg.model}
	fail := func(cause error) (*RunResult, error) {
		return nil, &RunError{Agent: cfg.agentName, Turns: result.NumTurns, Err: cause}
	}

	tools := cfg.tools.Defs()
	toolChoice := ""
	if cfg.output != nil {
		tools = append(tools, cfg.output.def())
		toolChoice = cfg.output.Name
	}

	for {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		resp, err := invoke(ctx, cfg, ModelRequest{
			Model:       cfg.model,
			System:      cfg.system,
			Messages:    *cfg.messages,
			Tools:       tools,
			ToolChoice:  toolChoice,
			MaxTokens:   cfg.maxTokens,
			Temperature: cfg.temperature,
		})
		if err != nil {
			return fail(err)
		}

		result.NumTurns++
		result.Usage.Add(resp.Usage)
		cfg.budget.RecordUsage(cfg.model, budget.Usage{
			InputTokens:              resp.Usage.InputTokens,
			OutputTokens:             resp.Usage.OutputTokens,
			CacheReadInputTokens:     resp.Usage.CacheReadInputTokens,
			CacheCreationInputTokens: resp.Usage.CacheCreationInputTokens,
		})
		result.TotalCost = cfg.budget.TotalCost()
		if cfg.budget.Exhausted() {
			return fail(ErrBudgetExhausted)
		}

		if resp.StopReason != StopToolUse || len(resp.ToolCalls) == 0 {
			// Final answer.
			*cfg.messages = append(*cfg.messages, NewAssistantMessage(resp.Text))
			result.Text = resp.Text
			result.DurationMs = time.Since(start).Milliseconds()
			return result, nil
		}

		// Structured output arrives as a call to the hidden output tool.
		if cfg.output != nil {
			if call, ok := findToolCall(resp.ToolCalls, cfg.output.Name); ok {
				*cfg.messages = append(*cfg.messages, Message{
					Role:      RoleAssistant,
					Content:   resp.Text,
					ToolCalls: resp.ToolCalls,
				})
				result.Structured = call.Arguments
				result.DurationMs = time.Since(start).Milliseconds()
				return result, nil
			}
		}

		// A request for an unregistered tool is terminal: retrying against a
		// misbehaving model would loop forever.
		for _, call := range resp.ToolCalls {
			if !cfg.tools.Has(call.Name) {
				return fail(fmt.Errorf("%w: %s", ErrUnknownTool, call.Name))
			}
		}

		*cfg.messages = append(*cfg.messages, Message{
			Role:      RoleAssistant,
			Content:   resp.Text,
			ToolCalls: resp.ToolCalls,
		})

		blocks := make([]ToolResultBlock, 0, len(resp.ToolCalls))
		for _, call := range resp.ToolCalls {
			inv, block := executeToolCall(ctx, cfg, call)
			result.ToolInvocations = append(result.ToolInvocations, inv)
			blocks = append(blocks, block)
		}
		*cfg.messages = append(*cfg.messages, newToolResultMessage(blocks))

		if cfg.maxTurns > 0 && result.NumTurns >= cfg.maxTurns {
			return fail(ErrMaxTurns)
		}
	}
}

// invoke performs a single model round-trip, applying the per-request timeout
// and normalizing timeout errors into *TransportError.
func invoke(ctx context.Context, cfg loopConfig, req ModelRequest) (*ModelResponse, error) {
	if cfg.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.requestTimeout)
		defer cancel()
	}

	resp, err := cfg.client.Invoke(ctx, req)
	if err != nil {
		var te *TransportError
		if !errors.As(err, &te) && errors.Is(err, context.DeadlineExceeded) {
			return nil, &TransportError{Timeout: true, Err: err}
		}
		return nil, err
	}
	return resp, nil
}

// executeToolCall runs one tool call through pre-hooks, the registry, and
// post-hooks. Handler failures are recovered into error tool results so a
// single bad call does not kill the run.
func executeToolCall(ctx context.Context, cfg loopConfig, call ToolCall) (ToolInvocation, ToolResultBlock) {
	callID := call.ID
	if callID == "" {
		callID = GenerateID(PrefixCall)
	}
	input := call.Arguments

	if cfg.hooks != nil && cfg.hooks.PreToolUse != nil {
		decision, err := cfg.hooks.PreToolUse(ctx, call.Name, input)
		if err != nil {
			return toolFailure(call, callID, input, fmt.Sprintf("hook error: %s", err.Error()))
		}
		if decision != nil {
			if decision.Block {
				reason := decision.Reason
				if reason == "" {
					reason = "blocked by hook"
				}
				return toolFailure(call, callID, input, "tool blocked: "+reason)
			}
			if decision.UpdatedInput != nil {
				input = decision.UpdatedInput
			}
		}
	}

	execStart := time.Now()
	res, err := cfg.tools.Execute(ctx, call.Name, input)

	var content string
	var isError bool
	switch {
	case err != nil:
		// Recovered: the model sees the failure and can react.
		toolErr := &ToolExecutionError{Tool: call.Name, Err: err}
		content = toolErr.Error()
		isError = true
	default:
		content = res.Content
		isError = res.IsError
	}

	if cfg.hooks != nil && cfg.hooks.PostToolUse != nil {
		_ = cfg.hooks.PostToolUse(ctx, call.Name, input, content, isError)
	}

	inv := ToolInvocation{
		ToolName:   call.Name,
		Arguments:  input,
		Output:     content,
		IsError:    isError,
		DurationMs: time.Since(execStart).Milliseconds(),
	}
	block := ToolResultBlock{ToolCallID: callID, Content: content, IsError: isError}
	return inv, block
}

// toolFailure builds a blocked/failed invocation record without executing.
func toolFailure(call ToolCall, callID string, input []byte, content string) (ToolInvocation, ToolResultBlock) {
	inv := ToolInvocation{
		ToolName:  call.Name,
		Arguments: input,
		Output:    content,
		IsError:   true,
	}
	block := ToolResultBlock{ToolCallID: callID, Content: content, IsError: true}
	return inv, block
}

func findToolCall(calls []ToolCall, name string) (ToolCall, bool) {
	for _, c := range calls {
		if c.Name == name {
			return c, true
		}
	}
	return ToolCall{}, false
}
