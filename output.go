package gagiteck

import (
	"github.com/gagiteck/gagiteck-go/internal/schema"
)

// OutputFormat defines a structured output format using the hidden tool
// pattern: the loop injects a tool with the desired JSON Schema and forces
// the model to answer through it.
type OutputFormat struct {
	Name   string
	Schema ToolSchema
}

// NewOutputFormat creates an OutputFormat with the given name and schema.
func NewOutputFormat(name string, s ToolSchema) OutputFormat {
	return OutputFormat{Name: name, Schema: s}
}

// OutputFormatFor creates an OutputFormat from a Go struct type T.
// The schema is auto-generated from struct tags.
func OutputFormatFor[T any](name string) OutputFormat {
	s := schema.Generate[T]()
	return OutputFormat{
		Name: name,
		Schema: ToolSchema{
			Type:       "object",
			Properties: s.Properties,
			Required:   s.Required,
		},
	}
}

// def returns the hidden tool definition injected into model requests.
func (f OutputFormat) def() ToolDef {
	return ToolDef{
		Name:        f.Name,
		Description: "Return structured output matching the schema",
		InputSchema: f.Schema,
	}
}
