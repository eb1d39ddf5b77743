package gagiteck

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveOptions_Defaults(t *testing.T) {
	o := resolveOptions(nil)

	assert.Equal(t, DefaultModel, o.model)
	assert.Equal(t, DefaultMaxTokens, o.maxTokens)
	assert.Equal(t, DefaultTemperature, o.temperature)
	assert.Equal(t, DefaultMaxTurns, o.maxTurns)
	assert.True(t, o.maxBudget.IsZero())
	assert.Zero(t, o.requestTimeout)
}

func TestResolveOptions_Overrides(t *testing.T) {
	o := resolveOptions([]AgentOption{
		WithModel("claude-3-haiku"),
		WithSystemPrompt("Be brief."),
		WithMaxTokens(256),
		WithTemperature(0.1),
		WithMaxTurns(5),
		WithMaxBudget(decimal.NewFromInt(2)),
		WithRequestTimeout(10 * time.Second),
	})

	assert.Equal(t, "claude-3-haiku", o.model)
	assert.Equal(t, "Be brief.", o.systemPrompt)
	assert.Equal(t, 256, o.maxTokens)
	assert.Equal(t, 0.1, o.temperature)
	assert.Equal(t, 5, o.maxTurns)
	assert.True(t, o.maxBudget.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, 10*time.Second, o.requestTimeout)
}

func TestResolveOptions_ToolsAccumulate(t *testing.T) {
	h1 := weatherTool(t, nil)
	h2 := NewTool("other", "Another tool.", (&mockSearchTool{}).Execute)

	o := resolveOptions([]AgentOption{
		WithTools(h1),
		WithTools(h2),
	})

	assert.Len(t, o.tools, 2)
	assert.Equal(t, "get_weather", o.tools[0].Def().Name)
	assert.Equal(t, "other", o.tools[1].Def().Name)
}
