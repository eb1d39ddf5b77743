package gagiteck

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gagiteck/gagiteck-go/internal/budget"
	"github.com/gagiteck/gagiteck-go/internal/config"
)

// Agent is a local agent: a named bundle of model identifier, system prompt,
// and tool set that drives a tool-calling conversation loop against a
// ModelClient. Agents are immutable after construction and safe to share
// across goroutines; each Run owns its own conversation and result.
type Agent struct {
	id    string
	name  string
	tools *ToolRegistry
	opts  agentOptions
}

// NewAgent creates a new Agent with the given options. Registering two tools
// with the same name fails with ErrDuplicateTool.
func NewAgent(name string, opts ...AgentOption) (*Agent, error) {
	// Capture user-set values before applying defaults
	var userSet agentOptions
	for _, fn := range opts {
		fn(&userSet)
	}

	resolved := resolveOptions(opts)

	// Apply overrides from JSON settings files.
	// User-explicit options take precedence over file-based settings.
	if len(resolved.settingSources) > 0 {
		settings, err := config.LoadSettings(resolved.settingSources...)
		if err == nil {
			applySettings(&resolved, settings, &userSet)
		}
	}

	registry := NewToolRegistry()
	for _, h := range resolved.tools {
		if err := registry.Register(h); err != nil {
			return nil, fmt.Errorf("agent %q: %w", name, err)
		}
	}

	return &Agent{
		id:    GenerateID(PrefixAgent),
		name:  name,
		tools: registry,
		opts:  resolved,
	}, nil
}

// applySettings merges loaded settings into resolved options.
// Options set explicitly via WithXxx take precedence over settings files.
// We check against zero values to detect whether the user set an explicit option.
func applySettings(o *agentOptions, s *config.Settings, userSet *agentOptions) {
	if userSet.model == "" && s.Model != "" {
		o.model = s.Model
	}
	if userSet.systemPrompt == "" && s.SystemPrompt != "" {
		o.systemPrompt = s.SystemPrompt
	}
	if userSet.maxTurns == 0 && s.MaxTurns > 0 {
		o.maxTurns = s.MaxTurns
	}
	if userSet.maxTokens == 0 && s.MaxTokens > 0 {
		o.maxTokens = s.MaxTokens
	}
	if userSet.maxBudget.IsZero() && s.MaxBudgetUSD > 0 {
		o.maxBudget = decimal.NewFromFloat(s.MaxBudgetUSD)
	}
}

// ID returns the agent's generated identifier.
func (a *Agent) ID() string { return a.id }

// Name returns the agent's name.
func (a *Agent) Name() string { return a.name }

// Model returns the configured model identifier.
func (a *Agent) Model() string { return a.opts.model }

// SystemPrompt returns the configured system prompt.
func (a *Agent) SystemPrompt() string { return a.opts.systemPrompt }

// Tools returns the agent's tool registry. The registry is sealed at
// construction; it must not be mutated while runs are in flight.
func (a *Agent) Tools() *ToolRegistry { return a.tools }

// Run executes the agent against a single user message with a fresh
// conversation and returns the result. Tool handler failures are reported to
// the model and do not abort the run; transport, provider, unknown-tool, and
// max-turns failures return a *RunError wrapping the cause.
func (a *Agent) Run(ctx context.Context, message string) (*RunResult, error) {
	messages := []Message{NewUserMessage(message)}
	return a.execute(ctx, &messages)
}

// RunSession executes the agent within an existing session: the session's
// history is sent to the model and extended with this run's messages.
func (a *Agent) RunSession(ctx context.Context, session *Session, message string) (*RunResult, error) {
	session.Messages = append(session.Messages, NewUserMessage(message))

	result, err := a.execute(ctx, &session.Messages)
	if err != nil {
		return nil, err
	}

	session.Metadata.Model = result.Model
	session.Metadata.NumTurns += result.NumTurns
	session.Metadata.TotalTokens.Add(result.Usage)
	session.Metadata.TotalCost = session.Metadata.TotalCost.Add(result.TotalCost)
	session.UpdatedAt = time.Now()
	return result, nil
}

// execute runs the conversation loop over the given mutable message history.
func (a *Agent) execute(ctx context.Context, messages *[]Message) (*RunResult, error) {
	if a.opts.modelClient == nil {
		return nil, ErrNoModelClient
	}

	tracker := budget.NewTracker(a.opts.maxBudget, budget.DefaultPricing)

	return runLoop(ctx, loopConfig{
		agentName:      a.name,
		client:         a.opts.modelClient,
		tools:          a.tools,
		model:          a.opts.model,
		system:         a.opts.systemPrompt,
		maxTokens:      a.opts.maxTokens,
		temperature:    a.opts.temperature,
		maxTurns:       a.opts.maxTurns,
		requestTimeout: a.opts.requestTimeout,
		hooks:          a.opts.hooks,
		budget:         tracker,
		output:         a.opts.output,
		messages:       messages,
	})
}
