package gagiteck

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ListParams control pagination for list endpoints.
type ListParams struct {
	Limit  int // default 20
	Offset int
}

func (p ListParams) query() url.Values {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(p.Offset))
	return q
}

// Page is one page of list results.
type Page[T any] struct {
	Data   []T `json:"data"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// AgentResource is a platform-hosted agent.
type AgentResource struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Model        string    `json:"model"`
	SystemPrompt string    `json:"system_prompt,omitempty"`
	Tools        []ToolDef `json:"tools,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AgentCreateParams are the fields for creating a hosted agent.
type AgentCreateParams struct {
	Name         string         `json:"name"`
	Model        string         `json:"model,omitempty"`
	SystemPrompt string         `json:"system_prompt,omitempty"`
	Tools        []ToolDef      `json:"tools,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// AgentUpdateParams are the patchable fields of a hosted agent.
// Nil pointers leave the field unchanged.
type AgentUpdateParams struct {
	Name         *string   `json:"name,omitempty"`
	Model        *string   `json:"model,omitempty"`
	SystemPrompt *string   `json:"system_prompt,omitempty"`
	Tools        []ToolDef `json:"tools,omitempty"`
}

// AgentRunParams are the inputs for a remote agent run.
type AgentRunParams struct {
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// AgentRunResponse is the outcome of a remote agent run.
type AgentRunResponse struct {
	ExecutionID string     `json:"execution_id"`
	Content     string     `json:"content"`
	Model       string     `json:"model"`
	ToolCalls   []ToolCall `json:"tool_calls,omitempty"`
	Usage       Usage      `json:"usage"`
}

// AgentsService manages platform-hosted agents.
type AgentsService struct {
	client *Client
}

// List returns a page of agents.
func (s *AgentsService) List(ctx context.Context, params ListParams) (*Page[AgentResource], error) {
	var page Page[AgentResource]
	if err := s.client.do(ctx, http.MethodGet, "/agents", params.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns an agent by ID.
func (s *AgentsService) Get(ctx context.Context, agentID string) (*AgentResource, error) {
	var a AgentResource
	if err := s.client.do(ctx, http.MethodGet, "/agents/"+agentID, nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create creates a new hosted agent.
func (s *AgentsService) Create(ctx context.Context, params AgentCreateParams) (*AgentResource, error) {
	if params.Model == "" {
		params.Model = DefaultModel
	}
	var a AgentResource
	if err := s.client.do(ctx, http.MethodPost, "/agents", nil, params, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Update patches an existing agent.
func (s *AgentsService) Update(ctx context.Context, agentID string, params AgentUpdateParams) (*AgentResource, error) {
	var a AgentResource
	if err := s.client.do(ctx, http.MethodPatch, "/agents/"+agentID, nil, params, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes an agent.
func (s *AgentsService) Delete(ctx context.Context, agentID string) error {
	return s.client.do(ctx, http.MethodDelete, "/agents/"+agentID, nil, nil, nil)
}

// Run executes a hosted agent with a message. Remote runs are fully handled
// by the platform; they share no code path with local Agent.Run.
func (s *AgentsService) Run(ctx context.Context, agentID string, params AgentRunParams) (*AgentRunResponse, error) {
	var r AgentRunResponse
	if err := s.client.do(ctx, http.MethodPost, "/agents/"+agentID+"/run", nil, params, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// WorkflowResource is a platform workflow.
type WorkflowResource struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkflowTriggerParams are the inputs for triggering a workflow.
type WorkflowTriggerParams struct {
	Inputs map[string]any `json:"inputs"`
}

// WorkflowsService manages platform workflows.
type WorkflowsService struct {
	client *Client
}

// List returns a page of workflows.
func (s *WorkflowsService) List(ctx context.Context, params ListParams) (*Page[WorkflowResource], error) {
	var page Page[WorkflowResource]
	if err := s.client.do(ctx, http.MethodGet, "/workflows", params.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns a workflow by ID.
func (s *WorkflowsService) Get(ctx context.Context, workflowID string) (*WorkflowResource, error) {
	var w WorkflowResource
	if err := s.client.do(ctx, http.MethodGet, "/workflows/"+workflowID, nil, nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// Trigger starts a workflow and returns the resulting execution.
func (s *WorkflowsService) Trigger(ctx context.Context, workflowID string, params WorkflowTriggerParams) (*ExecutionResource, error) {
	if params.Inputs == nil {
		params.Inputs = map[string]any{}
	}
	var e ExecutionResource
	if err := s.client.do(ctx, http.MethodPost, "/workflows/"+workflowID+"/trigger", nil, params, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ExecutionResource is one run of an agent or workflow on the platform.
type ExecutionResource struct {
	ID         string     `json:"id"`
	AgentID    string     `json:"agent_id,omitempty"`
	WorkflowID string     `json:"workflow_id,omitempty"`
	Status     string     `json:"status"` // queued | running | succeeded | failed
	Output     string     `json:"output,omitempty"`
	Error      string     `json:"error,omitempty"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// ExecutionsService inspects platform executions.
type ExecutionsService struct {
	client *Client
}

// List returns a page of executions.
func (s *ExecutionsService) List(ctx context.Context, params ListParams) (*Page[ExecutionResource], error) {
	var page Page[ExecutionResource]
	if err := s.client.do(ctx, http.MethodGet, "/executions", params.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns an execution by ID.
func (s *ExecutionsService) Get(ctx context.Context, executionID string) (*ExecutionResource, error) {
	var e ExecutionResource
	if err := s.client.do(ctx, http.MethodGet, "/executions/"+executionID, nil, nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
