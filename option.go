package gagiteck

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgentOption configures an Agent via the functional options pattern.
type AgentOption func(*agentOptions)

// agentOptions holds all configurable fields set via AgentOption functions.
type agentOptions struct {
	model          string
	systemPrompt   string
	maxTokens      int
	temperature    float64
	maxTurns       int
	maxBudget      decimal.Decimal
	requestTimeout time.Duration

	modelClient ModelClient
	tools       []ToolHandle
	hooks       *Hooks
	output      *OutputFormat

	settingSources []string
}

// applyDefaults fills in zero-value fields with sensible defaults.
func (o *agentOptions) applyDefaults() {
	if o.model == "" {
		o.model = DefaultModel
	}
	if o.maxTokens == 0 {
		o.maxTokens = DefaultMaxTokens
	}
	if o.temperature == 0 {
		o.temperature = DefaultTemperature
	}
	if o.maxTurns == 0 {
		o.maxTurns = DefaultMaxTurns
	}
}

// resolveOptions applies all option functions and fills defaults.
func resolveOptions(opts []AgentOption) agentOptions {
	var o agentOptions
	for _, fn := range opts {
		fn(&o)
	}
	o.applyDefaults()
	return o
}

// --- Model ---

// WithModel sets the model identifier, e.g. "claude-3-opus".
func WithModel(model string) AgentOption {
	return func(o *agentOptions) { o.model = model }
}

// WithModelClient sets the model provider used to execute runs.
// An Agent without a model client fails Run with ErrNoModelClient.
func WithModelClient(client ModelClient) AgentOption {
	return func(o *agentOptions) { o.modelClient = client }
}

// WithSystemPrompt sets the agent's system prompt.
func WithSystemPrompt(prompt string) AgentOption {
	return func(o *agentOptions) { o.systemPrompt = prompt }
}

// WithMaxTokens sets the maximum output tokens per model response.
func WithMaxTokens(tokens int) AgentOption {
	return func(o *agentOptions) { o.maxTokens = tokens }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temp float64) AgentOption {
	return func(o *agentOptions) { o.temperature = temp }
}

// WithMaxTurns sets the maximum number of model round-trips per run.
// Zero selects DefaultMaxTurns.
func WithMaxTurns(n int) AgentOption {
	return func(o *agentOptions) { o.maxTurns = n }
}

// WithRequestTimeout bounds each individual model invocation. A timed-out
// invocation aborts the run with a *TransportError cause.
func WithRequestTimeout(d time.Duration) AgentOption {
	return func(o *agentOptions) { o.requestTimeout = d }
}

// --- Budget ---

// WithMaxBudget sets the maximum spend in USD for a run. Zero means unlimited.
func WithMaxBudget(maxUSD decimal.Decimal) AgentOption {
	return func(o *agentOptions) { o.maxBudget = maxUSD }
}

// --- Tools ---

// WithTools adds tools to the agent at construction. Duplicate names make
// NewAgent fail with ErrDuplicateTool.
func WithTools(tools ...ToolHandle) AgentOption {
	return func(o *agentOptions) { o.tools = append(o.tools, tools...) }
}

// WithHooks installs tool-execution hooks.
func WithHooks(hooks Hooks) AgentOption {
	return func(o *agentOptions) { o.hooks = &hooks }
}

// --- Output ---

// WithOutputFormat makes the agent answer through a hidden structured output
// tool; the run's result carries the raw JSON in RunResult.Structured.
func WithOutputFormat(format OutputFormat) AgentOption {
	return func(o *agentOptions) { o.output = &format }
}

// --- Settings ---

// WithSettingSources loads agent defaults from JSON settings files.
// Explicit options take precedence over file values.
func WithSettingSources(paths ...string) AgentOption {
	return func(o *agentOptions) { o.settingSources = paths }
}
