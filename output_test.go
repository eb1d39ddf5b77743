package gagiteck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoiceOutput struct {
	Number string  `json:"number" jsonschema:"required,description=Invoice number"`
	Amount float64 `json:"amount" jsonschema:"required"`
	Notes  string  `json:"notes,omitempty"`
}

func TestOutputFormatFor(t *testing.T) {
	format := OutputFormatFor[invoiceOutput]("invoice")

	assert.Equal(t, "invoice", format.Name)
	assert.Equal(t, "object", format.Schema.Type)
	assert.Contains(t, format.Schema.Properties, "number")
	assert.Contains(t, format.Schema.Properties, "amount")
	assert.Contains(t, format.Schema.Required, "number")
	assert.NotContains(t, format.Schema.Required, "notes")
}

func TestOutputFormatDef(t *testing.T) {
	format := NewOutputFormat("report", ToolSchema{
		Type:       "object",
		Properties: map[string]any{"title": map[string]any{"type": "string"}},
		Required:   []string{"title"},
	})

	def := format.def()
	assert.Equal(t, "report", def.Name)
	assert.NotEmpty(t, def.Description)
	assert.Equal(t, format.Schema, def.InputSchema)
}

func TestDecodeStructured(t *testing.T) {
	result := &RunResult{Structured: json.RawMessage(`{"number":"INV-7","amount":99.5}`)}

	out, err := DecodeStructured[invoiceOutput](result)
	require.NoError(t, err)
	assert.Equal(t, "INV-7", out.Number)
	assert.Equal(t, 99.5, out.Amount)
}

func TestDecodeStructured_InvalidJSON(t *testing.T) {
	result := &RunResult{Structured: json.RawMessage(`not json`)}

	_, err := DecodeStructured[invoiceOutput](result)
	assert.Error(t, err)
}
