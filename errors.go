package gagiteck

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by the agent loop and registry operations.
var (
	ErrDuplicateTool   = errors.New("gagiteck: duplicate tool name")
	ErrUnknownTool     = errors.New("gagiteck: unknown tool")
	ErrMaxTurns        = errors.New("gagiteck: max turns reached")
	ErrBudgetExhausted = errors.New("gagiteck: budget exhausted")
	ErrNoModelClient   = errors.New("gagiteck: no model client configured")
	ErrNoSessionStore  = errors.New("gagiteck: no session store configured")
)

// AuthenticationError indicates a missing or malformed API key, or a key
// rejected by the platform (HTTP 401).
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return "gagiteck: authentication failed: " + e.Message
}

// APIError is a non-auth error response from the Gagiteck platform API.
// RetryAfter is set for rate-limit responses (HTTP 429).
type APIError struct {
	StatusCode int
	Message    string
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gagiteck: API error %d: %s", e.StatusCode, e.Message)
}

// IsRateLimit reports whether the error is a rate-limit rejection.
func (e *APIError) IsRateLimit() bool { return e.StatusCode == 429 }

// TransportError indicates the request never produced a usable response:
// connection failures, TLS errors, or a caller-specified timeout.
// Callers may retry.
type TransportError struct {
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return "gagiteck: request timed out: " + e.Err.Error()
	}
	return "gagiteck: transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProviderError indicates the model provider returned an error response
// (rate limit, overloaded, invalid request). It is not retried by the SDK.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("gagiteck: provider error %d: %s", e.StatusCode, e.Message)
}

// ToolExecutionError wraps a failure inside a tool handler. The agent loop
// recovers from these by reporting them to the model as error tool results;
// the type exists so hooks and logs can identify the failing tool.
type ToolExecutionError struct {
	Tool string
	Err  error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("gagiteck: tool %q failed: %s", e.Tool, e.Err.Error())
}

func (e *ToolExecutionError) Unwrap() error { return e.Err }

// RunError is the single failure type returned by Agent.Run. It wraps the
// underlying cause (transport, provider, unknown tool, max turns, budget)
// so callers can branch with errors.Is / errors.As.
type RunError struct {
	Agent string
	Turns int
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("gagiteck: agent %q run failed after %d turn(s): %s", e.Agent, e.Turns, e.Err.Error())
}

func (e *RunError) Unwrap() error { return e.Err }
