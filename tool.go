package gagiteck

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gagiteck/gagiteck-go/internal/schema"
)

// Tool is the generic interface for agent tools. The type parameter T defines
// the input struct that will be automatically deserialized from JSON; its
// struct tags (json, jsonschema) drive the schema advertised to the model.
type Tool[T any] interface {
	Name() string
	Description() string
	Execute(ctx context.Context, input T) (*ToolResult, error)
}

// ToolResult is the output of a tool execution.
type ToolResult struct {
	Content  string
	IsError  bool
	Metadata map[string]any
}

// TextResult is a convenience constructor for a successful text result.
func TextResult(text string) *ToolResult {
	return &ToolResult{Content: text}
}

// ErrorResult is a convenience constructor for an error tool result.
func ErrorResult(text string) *ToolResult {
	return &ToolResult{Content: text, IsError: true}
}

// ToolHandle is the type-erased form of a tool, ready for registration.
// Build one from a [Tool] implementation with [HandleTool], or directly from
// a function with [NewTool].
type ToolHandle struct {
	def     ToolDef
	execute func(ctx context.Context, raw json.RawMessage) (*ToolResult, error)
}

// Def returns the tool definition advertised to the model.
func (h ToolHandle) Def() ToolDef { return h.def }

// HandleTool wraps a generic Tool[T] into a ToolHandle.
// The input type T is used to auto-generate the JSON Schema.
func HandleTool[T any](tool Tool[T]) ToolHandle {
	return NewTool[T](tool.Name(), tool.Description(), tool.Execute)
}

// NewTool builds a ToolHandle from a plain function plus metadata. This is
// the explicit registration path for ad-hoc tools:
//
//	search := gagiteck.NewTool("search", "Search the web.",
//	    func(ctx context.Context, in SearchInput) (*gagiteck.ToolResult, error) {
//	        return gagiteck.TextResult("results for " + in.Query), nil
//	    })
func NewTool[T any](name, description string, fn func(ctx context.Context, input T) (*ToolResult, error)) ToolHandle {
	s := schema.Generate[T]()
	return ToolHandle{
		def: ToolDef{
			Name:        name,
			Description: description,
			InputSchema: ToolSchema{
				Type:       "object",
				Properties: s.Properties,
				Required:   s.Required,
			},
		},
		execute: func(ctx context.Context, raw json.RawMessage) (*ToolResult, error) {
			var input T
			if len(raw) > 0 {
				if err := json.Unmarshal(raw, &input); err != nil {
					return ErrorResult(fmt.Sprintf("invalid input: %s", err.Error())), nil
				}
			}
			return fn(ctx, input)
		},
	}
}

// RawTool builds a ToolHandle with a pre-built schema and execute function,
// for dynamic tool sources that don't use the generic Tool[T] interface.
func RawTool(
	name, description string,
	inputSchema ToolSchema,
	execute func(ctx context.Context, raw json.RawMessage) (*ToolResult, error),
) ToolHandle {
	return ToolHandle{
		def:     ToolDef{Name: name, Description: description, InputSchema: inputSchema},
		execute: execute,
	}
}

// ToolRegistry manages registered tools. It is concurrent-safe, but an
// Agent's registry is sealed at construction and never mutated during runs.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]ToolHandle
	order []string // preserve registration order
}

// NewToolRegistry creates a new empty ToolRegistry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]ToolHandle),
	}
}

// Register adds a tool to the registry. Registering a second tool with the
// same name fails with ErrDuplicateTool.
func (r *ToolRegistry) Register(h ToolHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[h.def.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, h.def.Name)
	}
	r.tools[h.def.Name] = h
	r.order = append(r.order, h.def.Name)
	return nil
}

// RegisterTool registers a generic tool into the registry.
func RegisterTool[T any](r *ToolRegistry, tool Tool[T]) error {
	return r.Register(HandleTool(tool))
}

// Has reports whether a tool with the given name is registered.
func (r *ToolRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tools[name]
	return ok
}

// Resolve returns the definition of the named tool, or ErrUnknownTool.
func (r *ToolRegistry) Resolve(name string) (ToolDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.tools[name]
	if !ok {
		return ToolDef{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return h.def, nil
}

// Execute runs a tool by name with the given raw JSON input.
// An unregistered name fails with ErrUnknownTool.
func (r *ToolRegistry) Execute(ctx context.Context, name string, input json.RawMessage) (*ToolResult, error) {
	r.mu.RLock()
	h, ok := r.tools[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return h.execute(ctx, input)
}

// Defs returns the registered tool definitions in registration order,
// ready to advertise to a model provider.
func (r *ToolRegistry) Defs() []ToolDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]ToolDef, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].def)
	}
	return defs
}

// Names returns the names of all registered tools in registration order.
func (r *ToolRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered tools.
func (r *ToolRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
